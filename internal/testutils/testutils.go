// Package testutils provides testing utilities and helper functions
package testutils

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// DefaultTimeout bounds individual test executions
const DefaultTimeout = 5 * time.Second

// Context returns a context with the default test timeout, cancelled on
// test cleanup.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	t.Cleanup(cancel)
	return ctx
}

// CountingOp records how many times it was invoked
type CountingOp[T any] struct {
	calls int32
	fn    func(ctx context.Context, call int) (T, error)
}

// NewCountingOp creates an operation that delegates to fn with the 1-based
// call number.
func NewCountingOp[T any](fn func(ctx context.Context, call int) (T, error)) *CountingOp[T] {
	return &CountingOp[T]{fn: fn}
}

// Op returns the operation function
func (c *CountingOp[T]) Op() func(ctx context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		call := int(atomic.AddInt32(&c.calls, 1))
		return c.fn(ctx, call)
	}
}

// Calls returns the number of invocations so far
func (c *CountingOp[T]) Calls() int {
	return int(atomic.LoadInt32(&c.calls))
}

// AlwaysFail creates a counting operation that fails every call with err
func AlwaysFail[T any](err error) *CountingOp[T] {
	var zero T
	return NewCountingOp(func(ctx context.Context, call int) (T, error) {
		return zero, err
	})
}

// SucceedOn creates a counting operation that fails with err until call n,
// then returns result.
func SucceedOn[T any](n int, result T, err error) *CountingOp[T] {
	var zero T
	return NewCountingOp(func(ctx context.Context, call int) (T, error) {
		if call < n {
			return zero, err
		}
		return result, nil
	})
}
