package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks every field of cfg against its validation tags and reports
// all failures in one error
func Validate(cfg *Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, formatFieldError(e))
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(problems, "; "))
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value())
	case "file":
		return fmt.Sprintf("%s %q does not exist", e.Field(), e.Value())
	case "timezone":
		return fmt.Sprintf("%s %q is not a known timezone", e.Field(), e.Value())
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	default:
		return fmt.Sprintf("%s failed %s=%s (got %v)", e.Field(), e.Tag(), e.Param(), e.Value())
	}
}

// Warnings returns non-fatal observations about a valid config
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.UpdateWorkers > runtime.NumCPU() {
		warnings = append(warnings, fmt.Sprintf("UPDATE_WORKERS=%d exceeds the %d available CPUs", cfg.UpdateWorkers, runtime.NumCPU()))
	}

	if cfg.ItemsFile == "" {
		warnings = append(warnings, "ITEMS_FILE is not set - using the built-in stock fixture")
	}

	return warnings
}
