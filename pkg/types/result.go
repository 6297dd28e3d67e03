package types

import "time"

// Result carries the outcome of an asynchronously executed operation.
type Result[T any] struct {
	// Value is the operation result on success
	Value T

	// Error is the terminal error, nil on success
	Error error

	// Attempts is the number of invocations performed
	Attempts int

	// Duration is the total wall time including backoff waits
	Duration time.Duration
}
