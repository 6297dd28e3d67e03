package types

import (
	"context"
	"testing"
	"time"
)

func TestRealClock_TimerFires(t *testing.T) {
	clock := NewRealClock()

	timer := clock.NewTimer(5 * time.Millisecond)
	select {
	case <-timer.C():
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestRealClock_Since(t *testing.T) {
	clock := NewRealClock()

	start := clock.Now()
	clock.Sleep(5 * time.Millisecond)
	if clock.Since(start) < 5*time.Millisecond {
		t.Error("Since() shorter than the slept duration")
	}
}

func TestClockFromContext(t *testing.T) {
	// without a clock in the context the real clock is returned
	if clock := ClockFromContext(context.Background()); clock == nil {
		t.Fatal("expected a default clock")
	}

	marker := &RealClock{}
	ctx := WithClock(context.Background(), marker)
	if got := ClockFromContext(ctx); got != marker {
		t.Error("expected the clock stored in the context")
	}
}
