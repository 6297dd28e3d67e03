package retry

import (
	"context"

	"github.com/jzx17/gofallback/pkg/types"
)

// Wrap turns an operation into a retrying operation governed by config. The
// returned operation invokes fn up to config.MaxAttempts times with bounded
// exponential backoff between attempts; composition stays visible at the call
// site instead of hiding behind a global policy.
//
// Config validation happens here, before the operation can run: an invalid
// config returns a ConfigError and a nil operation.
func Wrap[T any](fn ExecuteFunc[T], config Config, opts ...ExecutorOption) (ExecuteFunc[T], error) {
	return WrapNamed(fn, "default", config, opts...)
}

// WrapNamed is like Wrap but tags retry events with name
func WrapNamed[T any](fn ExecuteFunc[T], name string, config Config, opts ...ExecutorOption) (ExecuteFunc[T], error) {
	if fn == nil {
		return nil, types.NewConfigError("operation", "must not be nil", types.ErrNilOperation)
	}

	policy, err := NewPolicy(config)
	if err != nil {
		return nil, err
	}

	executor := NewExecutor(policy, opts...)

	return func(ctx context.Context) (T, error) {
		return ExecuteNamed(executor, ctx, name, fn)
	}, nil
}
