package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/attendly/attendly/internal/app/models/dto"
)

// HandleBindingError converts a ShouldBindJSON failure into the standard
// 400 envelope with per-field messages where the validator provides them.
func HandleBindingError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, formatValidationError(fieldError))
		}
		errorDetail = errorDetail.WithDetails(messages)
	} else {
		errorDetail = errorDetail.WithDetails(err.Error())
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "attdate":
		return e.Field() + " must be a valid YYYY-MM-DD calendar date"
	case "attrole":
		return e.Field() + " must be one of: admin, teacher, student, pending"
	case "attstatus":
		return e.Field() + " must be one of: present, absent, late"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
