// Package retry provides the retry executor implementation
package retry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jzx17/gofallback/pkg/types"
)

// Executor runs operations under a retry policy
type Executor struct {
	policy       Policy
	eventHandler EventHandler
	stats        Stats
	clock        types.Clock
}

// ExecuteFunc is the operation type to retry: a deferred, possibly-failing
// unit of work. The executor never retains it beyond a single call.
type ExecuteFunc[T any] func(ctx context.Context) (T, error)

// Stats contains executor-wide retry statistics
type Stats struct {
	TotalAttempts   int64         // total attempt count
	TotalRetries    int64         // operations that needed more than one attempt
	TotalSuccesses  int64         // operations that eventually succeeded
	TotalFailures   int64         // operations that exhausted their attempts
	TotalRetryDelay time.Duration // cumulative backoff wait time
	mu              sync.RWMutex
}

// EventHandler receives retry lifecycle events
type EventHandler interface {
	// OnAttempt fires before each invocation
	OnAttempt(ctx context.Context, name string, attempt, maxAttempts int)

	// OnRetryScheduled fires after a failed attempt that will be retried
	OnRetryScheduled(ctx context.Context, name string, attempt int, delay time.Duration, err error)

	// OnSuccess fires when an invocation succeeds
	OnSuccess(ctx context.Context, name string, attempt int, duration time.Duration)

	// OnExhausted fires when an attempt fails and no further attempts
	// will be made
	OnExhausted(ctx context.Context, name string, attempts int, err error)
}

// NewExecutor creates a retry executor
func NewExecutor(policy Policy, opts ...ExecutorOption) *Executor {
	executor := &Executor{
		policy: policy,
		clock:  types.NewRealClock(),
	}

	for _, opt := range opts {
		opt(executor)
	}

	return executor
}

// Execute runs fn with retry logic
func Execute[T any](e *Executor, ctx context.Context, fn ExecuteFunc[T]) (T, error) {
	return ExecuteNamed(e, ctx, "default", fn)
}

// ExecuteNamed runs fn with retry logic, tagging events with name.
//
// On success the result of the succeeding attempt is returned and no further
// attempts happen. When every attempt fails, the error of the final attempt
// is returned unchanged: no wrapping, so the caller sees the operation's own
// error value. Context cancellation is observed before every attempt and
// during every backoff wait and always wins over retry logic.
func ExecuteNamed[T any](e *Executor, ctx context.Context, name string, fn ExecuteFunc[T]) (T, error) {
	var zero T
	attempt := 0

	for {
		attempt++

		e.updateStats(func(stats *Stats) {
			stats.TotalAttempts++
		})

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		if e.eventHandler != nil {
			e.eventHandler.OnAttempt(ctx, name, attempt, e.policy.MaxAttempts())
		}

		start := e.clock.Now()
		result, err := fn(ctx)
		elapsed := e.clock.Since(start)

		if err == nil {
			e.updateStats(func(stats *Stats) {
				stats.TotalSuccesses++
				if attempt > 1 {
					stats.TotalRetries++
				}
			})

			if e.eventHandler != nil {
				e.eventHandler.OnSuccess(ctx, name, attempt, elapsed)
			}

			return result, nil
		}

		if !e.policy.ShouldRetry(err, attempt) {
			e.updateStats(func(stats *Stats) {
				stats.TotalFailures++
				if attempt > 1 {
					stats.TotalRetries++
				}
			})

			if e.eventHandler != nil {
				e.eventHandler.OnExhausted(ctx, name, attempt, err)
			}

			// the final attempt's error surfaces as-is
			return zero, err
		}

		delay := e.policy.NextDelay(attempt)

		if e.eventHandler != nil {
			e.eventHandler.OnRetryScheduled(ctx, name, attempt, delay, err)
		}

		e.updateStats(func(stats *Stats) {
			stats.TotalRetryDelay += delay
		})

		if delay > 0 {
			timer := e.clock.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C():
			}
		}
	}
}

// ExecuteAsync runs fn with retry logic asynchronously
func ExecuteAsync[T any](e *Executor, ctx context.Context, fn ExecuteFunc[T]) <-chan types.Result[T] {
	return ExecuteAsyncNamed(e, ctx, "default", fn)
}

// ExecuteAsyncNamed runs fn with retry logic asynchronously, tagging events
// with name
func ExecuteAsyncNamed[T any](e *Executor, ctx context.Context, name string, fn ExecuteFunc[T]) <-chan types.Result[T] {
	resultChan := make(chan types.Result[T], 1)

	go func() {
		defer close(resultChan)

		var attempts int
		counted := func(ctx context.Context) (T, error) {
			attempts++
			return fn(ctx)
		}

		start := e.clock.Now()
		value, err := ExecuteNamed(e, ctx, name, counted)
		duration := e.clock.Since(start)

		resultChan <- types.Result[T]{
			Value:    value,
			Error:    err,
			Attempts: attempts,
			Duration: duration,
		}
	}()

	return resultChan
}

// GetStats returns a snapshot of the retry statistics
func (e *Executor) GetStats() Stats {
	e.stats.mu.RLock()
	defer e.stats.mu.RUnlock()
	return Stats{
		TotalAttempts:   e.stats.TotalAttempts,
		TotalRetries:    e.stats.TotalRetries,
		TotalSuccesses:  e.stats.TotalSuccesses,
		TotalFailures:   e.stats.TotalFailures,
		TotalRetryDelay: e.stats.TotalRetryDelay,
		// don't copy mutex
	}
}

// ResetStats resets statistics
func (e *Executor) ResetStats() {
	e.stats.mu.Lock()
	defer e.stats.mu.Unlock()

	e.stats.TotalAttempts = 0
	e.stats.TotalRetries = 0
	e.stats.TotalSuccesses = 0
	e.stats.TotalFailures = 0
	e.stats.TotalRetryDelay = 0
}

// updateStats updates statistics (thread-safe)
func (e *Executor) updateStats(fn func(*Stats)) {
	e.stats.mu.Lock()
	defer e.stats.mu.Unlock()
	fn(&e.stats)
}

// ExecutorOption is a configuration option for the executor
type ExecutorOption func(*Executor)

// WithEventHandler sets the event handler
func WithEventHandler(handler EventHandler) ExecutorOption {
	return func(e *Executor) {
		e.eventHandler = handler
	}
}

// WithClock sets the clock for time operations
func WithClock(clock types.Clock) ExecutorOption {
	return func(e *Executor) {
		e.clock = clock
	}
}

// LogEventHandler writes retry events through a structured logger
type LogEventHandler struct {
	logger *slog.Logger
}

// NewLogEventHandler creates an event handler backed by logger. A nil logger
// uses slog.Default.
func NewLogEventHandler(logger *slog.Logger) *LogEventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEventHandler{logger: logger}
}

func (h *LogEventHandler) OnAttempt(ctx context.Context, name string, attempt, maxAttempts int) {
	h.logger.DebugContext(ctx, "attempt starting",
		"operation", name, "attempt", attempt, "max_attempts", maxAttempts)
}

func (h *LogEventHandler) OnRetryScheduled(ctx context.Context, name string, attempt int, delay time.Duration, err error) {
	h.logger.WarnContext(ctx, "attempt failed, retry scheduled",
		"operation", name, "attempt", attempt, "delay", delay, "error", err)
}

func (h *LogEventHandler) OnSuccess(ctx context.Context, name string, attempt int, duration time.Duration) {
	if attempt > 1 {
		h.logger.InfoContext(ctx, "operation recovered",
			"operation", name, "attempt", attempt, "duration", duration)
	}
}

func (h *LogEventHandler) OnExhausted(ctx context.Context, name string, attempts int, err error) {
	h.logger.ErrorContext(ctx, "attempts exhausted",
		"operation", name, "attempts", attempts, "error", err)
}
