package flow

import (
	"context"
	"log/slog"
)

// Observer receives flow transition events. Implementations must be safe for
// concurrent use; the controller may be shared across goroutines.
type Observer interface {
	// OnPrimaryStart fires before the primary operation runs
	OnPrimaryStart(ctx context.Context, label, runID string)

	// OnPrimaryFailure fires when the primary operation fails
	OnPrimaryFailure(ctx context.Context, label, runID string, err error)

	// OnFallbackStart fires before the fallback operation runs
	OnFallbackStart(ctx context.Context, label, runID string)

	// OnFallbackSuccess fires when the fallback operation succeeds
	OnFallbackSuccess(ctx context.Context, label, runID string)

	// OnFallbackFailure fires when the fallback operation fails
	OnFallbackFailure(ctx context.Context, label, runID string, err error)

	// OnNoFallback fires when the primary fails and no fallback is configured
	OnNoFallback(ctx context.Context, label, runID string, err error)
}

// NopObserver discards all events
type NopObserver struct{}

func (NopObserver) OnPrimaryStart(context.Context, string, string)           {}
func (NopObserver) OnPrimaryFailure(context.Context, string, string, error)  {}
func (NopObserver) OnFallbackStart(context.Context, string, string)          {}
func (NopObserver) OnFallbackSuccess(context.Context, string, string)        {}
func (NopObserver) OnFallbackFailure(context.Context, string, string, error) {}
func (NopObserver) OnNoFallback(context.Context, string, string, error)      {}

// LogObserver writes flow events through a structured logger
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an observer backed by logger. A nil logger uses
// slog.Default.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnPrimaryStart(ctx context.Context, label, runID string) {
	o.logger.InfoContext(ctx, "executing primary",
		"context", label, "run_id", runID)
}

func (o *LogObserver) OnPrimaryFailure(ctx context.Context, label, runID string, err error) {
	o.logger.WarnContext(ctx, "primary failed",
		"context", label, "run_id", runID, "error", err)
}

func (o *LogObserver) OnFallbackStart(ctx context.Context, label, runID string) {
	o.logger.InfoContext(ctx, "engaging fallback",
		"context", label, "run_id", runID)
}

func (o *LogObserver) OnFallbackSuccess(ctx context.Context, label, runID string) {
	o.logger.InfoContext(ctx, "recovered via fallback",
		"context", label, "run_id", runID)
}

func (o *LogObserver) OnFallbackFailure(ctx context.Context, label, runID string, err error) {
	o.logger.ErrorContext(ctx, "fallback failed",
		"context", label, "run_id", runID, "error", err)
}

func (o *LogObserver) OnNoFallback(ctx context.Context, label, runID string, err error) {
	o.logger.ErrorContext(ctx, "primary failed with no fallback configured",
		"context", label, "run_id", runID, "error", err)
}
