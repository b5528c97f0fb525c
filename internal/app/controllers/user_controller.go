package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/app/models/dto"
	"github.com/attendly/attendly/internal/app/services"
	"github.com/attendly/attendly/internal/middleware"
)

// UserController handles administrator user management operations
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers returns every user in the roster
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse} "User list"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users := c.userService.List()
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.UserListResponse{
		Users: dto.NewUserResponses(users),
		Total: len(users),
	}))
}

// SaveUser creates a new user
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveUserRequest true "User payload"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Created user"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /users [post]
func (c *UserController) SaveUser(ctx *gin.Context) {
	var req dto.SaveUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	saved, err := c.userService.Save(models.User{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", saved.ID).Str("role", string(saved.Role)).Msg("User saved")

	status := http.StatusCreated
	if req.ID != 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, dto.NewAPIResponse(dto.NewUserResponse(saved)))
}

// UpdateUser replaces an existing user
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.SaveUserRequest true "User payload"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Updated user"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SaveUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	saved, err := c.userService.Save(models.User{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", saved.ID).Msg("User updated")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewUserResponse(saved)))
}

// DeleteUser removes a user. Deleting the requesting account is rejected.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse "User deleted"
// @Failure 409 {object} dto.ErrorResponse "Cannot delete own account"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	requestingUserID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.Delete(id, requestingUserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", id).Msg("User deleted")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("User deleted"))
}

// ExportUsers streams the roster as a CSV attachment
// @Summary Export users as CSV
// @Tags users
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV document"
// @Router /users/export [get]
func (c *UserController) ExportUsers(ctx *gin.Context) {
	csv := c.userService.ExportCSV()
	ctx.Header("Content-Disposition", `attachment; filename="users.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
