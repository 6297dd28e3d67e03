// Package retry provides a retry executor with configurable policies and
// backoff strategies.
//
// Key features:
//
// 1. Policy configuration:
//   - Config: attempt budget plus delay bounds, validated before use
//   - Custom retry conditions via WithCondition
//
// 2. Backoff strategies:
//   - ExponentialBackoff: bounded doubling, the default
//   - FixedBackoff: constant delay
//   - LinearBackoff: arithmetic growth
//   - FullJitter / EqualJitter jitter functions
//
// 3. Retry executor:
//   - Generic synchronous and asynchronous execution
//   - Context cancellation observed before attempts and during waits
//   - Event notification and per-executor statistics
//   - Mockable clock for deterministic tests
//
// The error of the final failed attempt is returned to the caller unchanged;
// retries that eventually succeed are invisible except through events.
//
// Basic usage:
//
//	op, err := retry.Wrap(fetchRemote, retry.Config{
//		MaxAttempts: 3,
//		MinDelay:    100 * time.Millisecond,
//		MaxDelay:    4 * time.Second,
//	})
//	if err != nil {
//		return err // invalid configuration
//	}
//	data, err := op(ctx)
//
// Executor usage with events:
//
//	policy := retry.MustPolicy(retry.DefaultConfig())
//	executor := retry.NewExecutor(policy,
//		retry.WithEventHandler(retry.NewLogEventHandler(logger)))
//	result, err := retry.Execute(executor, ctx, fetchRemote)
//
// The package does not distinguish retryable from non-retryable errors by
// default; every failure is retried until the attempt budget runs out unless
// a custom condition says otherwise.
package retry
