package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError_Error(t *testing.T) {
	err := NewConfigError("MaxAttempts", "must be at least 1, got 0", ErrInvalidAttempts)

	msg := err.Error()
	if !strings.Contains(msg, "MaxAttempts") {
		t.Errorf("Error() = %q, should name the field", msg)
	}
	if !strings.Contains(msg, "must be at least 1") {
		t.Errorf("Error() = %q, should carry the reason", msg)
	}
}

func TestConfigError_FieldlessMessage(t *testing.T) {
	err := NewConfigError("", "operation missing", ErrNilOperation)

	if got := err.Error(); got != "invalid configuration: operation missing" {
		t.Errorf("Error() = %q", got)
	}
}

func TestConfigError_Is(t *testing.T) {
	err := NewConfigError("MinDelay", "must be non-negative", ErrInvalidDelayBounds)

	if !errors.Is(err, ErrInvalidDelayBounds) {
		t.Error("errors.Is should match the sentinel cause")
	}
	if errors.Is(err, ErrInvalidAttempts) {
		t.Error("errors.Is should not match an unrelated sentinel")
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	err := NewConfigError("primary", "must not be nil", ErrNilOperation)

	if errors.Unwrap(err) != ErrNilOperation {
		t.Error("Unwrap should return the sentinel cause")
	}
}

func TestIsConfigError(t *testing.T) {
	cfgErr := NewConfigError("MaxAttempts", "bad", ErrInvalidAttempts)

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"config error", cfgErr, true},
		{"wrapped config error", fmt.Errorf("setup: %w", cfgErr), true},
		{"operation error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfigError(tt.err); got != tt.want {
				t.Errorf("IsConfigError() = %v, want %v", got, tt.want)
			}
		})
	}
}
