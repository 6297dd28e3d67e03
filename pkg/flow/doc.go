// Package flow provides predictable degradation for a single logical
// operation: run a preferred primary operation and redirect to an alternate
// fallback when the primary fails.
//
// The flow is a two-state machine with no branching back:
//
//	RUN_PRIMARY  -> success:       return result
//	             -> failure, no fallback: return primary error
//	             -> failure, fallback:    RUN_FALLBACK
//	RUN_FALLBACK -> success:       return result
//	             -> failure:       return fallback error
//
// Exactly one error ever surfaces: whichever operation ran last. Errors pass
// through unchanged so callers can match on their own error kinds.
//
// Retry is composed, not built in:
//
//	primary, err := retry.Wrap(fetchRemote, retry.Config{
//		MaxAttempts: 3,
//		MinDelay:    time.Second,
//		MaxDelay:    4 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	controller := flow.NewController[string](
//		flow.WithObserver[string](flow.NewLogObserver(logger)))
//	data, err := controller.Execute(ctx, flow.Operation[string](primary), loadBackup, "data-sync")
//
// Each Execute call is independent; the controller holds no shared mutable
// state and may be used concurrently.
package flow
