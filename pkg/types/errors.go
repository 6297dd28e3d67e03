// Package types defines error types
package types

import (
	"errors"
	"fmt"
)

// Predefined errors
var (
	// ErrNilOperation indicates a required operation was not provided
	ErrNilOperation = errors.New("operation is nil")

	// ErrInvalidAttempts indicates a retry attempt count below one
	ErrInvalidAttempts = errors.New("max attempts must be at least 1")

	// ErrInvalidDelayBounds indicates min/max delay bounds that cannot form a range
	ErrInvalidDelayBounds = errors.New("invalid delay bounds")
)

// ConfigError represents structurally invalid configuration. It is returned
// synchronously, before any operation executes, and is distinct from failures
// raised by the operations themselves.
type ConfigError struct {
	// Field is the configuration field that failed validation
	Field string

	// Reason describes why the value was rejected
	Reason string

	// Cause is the matching sentinel error, if any
	Cause error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying sentinel error
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches a sentinel
func (e *ConfigError) Is(target error) bool {
	return errors.Is(e.Cause, target)
}

// NewConfigError creates a new configuration error
func NewConfigError(field, reason string, cause error) *ConfigError {
	return &ConfigError{
		Field:  field,
		Reason: reason,
		Cause:  cause,
	}
}

// IsConfigError reports whether err is a configuration error rather than an
// operation failure.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
