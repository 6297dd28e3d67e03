// Package flow provides the primary/fallback flow controller
package flow

import (
	"context"

	"github.com/google/uuid"

	"github.com/jzx17/gofallback/pkg/types"
)

// Operation is a deferred, possibly-failing unit of work supplied by the
// caller. The controller never retains it beyond a single call.
type Operation[T any] func(ctx context.Context) (T, error)

// Controller executes a primary operation and redirects to a fallback
// operation when the primary fails. It holds no mutable state across calls:
// every Execute is independent and reentrant.
//
// The controller performs no retries of its own. Retry and fallback are
// orthogonal layers: wrap either operation with the retry package before
// passing it in.
type Controller[T any] struct {
	observer Observer
	newRunID func() string
}

// NewController creates a flow controller
func NewController[T any](opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		observer: NopObserver{},
		newRunID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Execute runs primary and, if it fails, the optional fallback.
//
// A nil fallback means "no fallback configured" and is valid: the primary's
// error is then returned unchanged. When a fallback runs and also fails, the
// fallback's error is returned, since it was the last operation attempted.
// A nil primary is a configuration error, detected before anything runs.
//
// Context cancellation wins over fallback logic: if ctx is cancelled when the
// primary fails, the fallback is not engaged and ctx.Err() is returned.
func (c *Controller[T]) Execute(ctx context.Context, primary, fallback Operation[T], label string) (T, error) {
	var zero T

	if primary == nil {
		return zero, types.NewConfigError("primary", "must not be nil", types.ErrNilOperation)
	}

	runID := c.newRunID()

	c.observer.OnPrimaryStart(ctx, label, runID)

	result, err := primary(ctx)
	if err == nil {
		return result, nil
	}

	c.observer.OnPrimaryFailure(ctx, label, runID, err)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return zero, ctxErr
	}

	if fallback == nil {
		c.observer.OnNoFallback(ctx, label, runID, err)
		return zero, err
	}

	c.observer.OnFallbackStart(ctx, label, runID)

	result, fbErr := fallback(ctx)
	if fbErr == nil {
		c.observer.OnFallbackSuccess(ctx, label, runID)
		return result, nil
	}

	c.observer.OnFallbackFailure(ctx, label, runID, fbErr)

	// the fallback ran last, so its error is the terminal cause
	return zero, fbErr
}

// Option configures a controller
type Option[T any] func(*Controller[T])

// WithObserver sets the flow observer
func WithObserver[T any](observer Observer) Option[T] {
	return func(c *Controller[T]) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// WithRunID replaces the run ID generator, e.g. for deterministic tests
func WithRunID[T any](newRunID func() string) Option[T] {
	return func(c *Controller[T]) {
		if newRunID != nil {
			c.newRunID = newRunID
		}
	}
}

// Execute runs primary with an optional fallback on a one-shot controller
// with the given options. Convenience for call sites that do not reuse a
// controller.
func Execute[T any](ctx context.Context, primary, fallback Operation[T], label string, opts ...Option[T]) (T, error) {
	return NewController(opts...).Execute(ctx, primary, fallback, label)
}
