package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDefaultConfig(t *testing.T) {
	t.Parallel()

	if err := NewDefaultConfig().Validate(); err != nil {
		t.Errorf("Validate() expected no error for defaults, got: %v", err)
	}
}

func TestValidateEmptyCommands(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()
	cfg.Commands.Install = "   "
	cfg.Commands.Start = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for empty commands")
	}

	var ve *ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(ve.Errors) != 2 {
		t.Fatalf("expected 2 validation errors, got %d: %v", len(ve.Errors), err)
	}
	if ve.Errors[0].Field != "commands.install" || ve.Errors[1].Field != "commands.start" {
		t.Errorf("unexpected fields: %q, %q", ve.Errors[0].Field, ve.Errors[1].Field)
	}
	if !errors.Is(err, ErrEmptyCommand) {
		t.Error("expected errors.Is(err, ErrEmptyCommand)")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("expected errors.Is(err, ErrInvalidConfig)")
	}
}

func TestValidateLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"", false},
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"trace", true},
		{"DEBUG", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			cfg := NewDefaultConfig()
			cfg.Log.Level = tt.level
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidLogLevel) {
				t.Errorf("expected ErrInvalidLogLevel, got %v", err)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	e := &ValidationError{Field: "log.level", Message: "unknown level", Value: "trace"}
	if got := e.Error(); !strings.Contains(got, `"log.level"`) || !strings.Contains(got, "trace") {
		t.Errorf("Error() = %q", got)
	}

	empty := &ValidationErrors{}
	if got := empty.Error(); got != "validation: no errors" {
		t.Errorf("Error() = %q", got)
	}
}
