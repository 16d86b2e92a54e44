package config

import (
	"slices"
	"strings"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration and returns *ValidationErrors
// describing every problem found, or nil.
func (c *Config) Validate() error {
	var errs []ValidationError

	if strings.TrimSpace(c.Commands.Install) == "" {
		errs = append(errs, ValidationError{
			Field:   "commands.install",
			Message: "must not be empty",
			Wrapped: ErrEmptyCommand,
		})
	}
	if strings.TrimSpace(c.Commands.Start) == "" {
		errs = append(errs, ValidationError{
			Field:   "commands.start",
			Message: "must not be empty",
			Wrapped: ErrEmptyCommand,
		})
	}
	if c.Log.Level != "" && !slices.Contains(validLogLevels, c.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: "unknown level",
			Value:   c.Log.Level,
			Wrapped: ErrInvalidLogLevel,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
