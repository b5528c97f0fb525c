package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/attendly/attendly/internal/app/models"
)

// Validation rule patterns
var (
	// Calendar-date pattern used by attendance records (YYYY-MM-DD)
	DatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Date *regexp.Regexp
}{
	Date: regexp.MustCompile(DatePattern),
}

// IsCalendarDate reports whether value has the YYYY-MM-DD shape.
func IsCalendarDate(value string) bool {
	return CompiledPatterns.Date.MatchString(value)
}

// Register installs the custom binding validators on the given engine.
// Tags: attdate (YYYY-MM-DD), attrole, attstatus.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("attdate", func(fl validator.FieldLevel) bool {
		return IsCalendarDate(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("attrole", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("attstatus", func(fl validator.FieldLevel) bool {
		return models.AttendanceStatus(fl.Field().String()).Valid()
	})
}
