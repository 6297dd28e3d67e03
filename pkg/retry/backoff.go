// Package retry provides backoff algorithm implementations
package retry

import (
	"math"
	"math/rand"
	"time"
)

// BackoffStrategy defines the backoff strategy interface
type BackoffStrategy interface {
	// NextDelay calculates the delay before the next attempt
	NextDelay(attempt int) time.Duration
}

// FixedBackoff implements fixed backoff strategy
type FixedBackoff struct {
	delay  time.Duration
	jitter JitterFunc
}

// NewFixedBackoff creates a fixed backoff strategy
func NewFixedBackoff(delay time.Duration, opts ...BackoffOption) *FixedBackoff {
	b := &FixedBackoff{
		delay: delay,
	}

	for _, opt := range opts {
		opt.applyToFixed(b)
	}

	return b
}

// NextDelay calculates the delay before the next attempt
func (b *FixedBackoff) NextDelay(attempt int) time.Duration {
	delay := b.delay
	if b.jitter != nil {
		delay = b.jitter(delay)
	}
	return delay
}

// ExponentialBackoff implements bounded exponential backoff: the first wait is
// minDelay, every following wait doubles (or grows by the configured
// multiplier) and is capped at maxDelay. With a jitter function configured the
// result is still clamped to [minDelay, maxDelay] so callers can rely on the
// bounds.
type ExponentialBackoff struct {
	minDelay   time.Duration
	maxDelay   time.Duration
	multiplier float64
	jitter     JitterFunc
}

// NewExponentialBackoff creates an exponential backoff strategy
func NewExponentialBackoff(minDelay, maxDelay time.Duration, opts ...BackoffOption) *ExponentialBackoff {
	b := &ExponentialBackoff{
		minDelay:   minDelay,
		maxDelay:   maxDelay,
		multiplier: 2.0,
	}

	for _, opt := range opts {
		opt.applyToExponential(b)
	}

	return b
}

// NextDelay calculates the delay before the next attempt
func (b *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		attempt = 1
	}

	delay := time.Duration(float64(b.minDelay) * math.Pow(b.multiplier, float64(attempt-1)))

	// overflow from large exponents shows up as a negative duration
	if delay > b.maxDelay || delay < 0 {
		delay = b.maxDelay
	}

	if b.jitter != nil {
		delay = b.jitter(delay)
		if delay < b.minDelay {
			delay = b.minDelay
		}
		if delay > b.maxDelay {
			delay = b.maxDelay
		}
	}

	return delay
}

// LinearBackoff implements linear backoff strategy
type LinearBackoff struct {
	initialDelay time.Duration
	increment    time.Duration
	maxDelay     time.Duration
	jitter       JitterFunc
}

// NewLinearBackoff creates a linear backoff strategy
func NewLinearBackoff(initialDelay, increment, maxDelay time.Duration, opts ...BackoffOption) *LinearBackoff {
	b := &LinearBackoff{
		initialDelay: initialDelay,
		increment:    increment,
		maxDelay:     maxDelay,
	}

	for _, opt := range opts {
		opt.applyToLinear(b)
	}

	return b
}

// NextDelay calculates the delay before the next attempt
func (b *LinearBackoff) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		attempt = 1
	}

	delay := b.initialDelay + time.Duration(attempt-1)*b.increment

	if delay > b.maxDelay {
		delay = b.maxDelay
	}

	if b.jitter != nil {
		delay = b.jitter(delay)
		if delay > b.maxDelay {
			delay = b.maxDelay
		}
		if delay < 0 {
			delay = 0
		}
	}

	return delay
}

// JitterFunc jitter function type
type JitterFunc func(time.Duration) time.Duration

// FullJitter picks a random delay within [0, delay]
func FullJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(delay)))
}

// EqualJitter picks delay/2 + random(0, delay/2)
func EqualJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}
	half := delay / 2
	return half + time.Duration(rand.Int63n(int64(half)))
}

// BackoffOption configures a backoff strategy
type BackoffOption interface {
	applyToFixed(*FixedBackoff)
	applyToExponential(*ExponentialBackoff)
	applyToLinear(*LinearBackoff)
}

type backoffOption struct {
	multiplier *float64
	jitter     JitterFunc
}

func (o *backoffOption) applyToFixed(b *FixedBackoff) {
	if o.jitter != nil {
		b.jitter = o.jitter
	}
}

func (o *backoffOption) applyToExponential(b *ExponentialBackoff) {
	if o.multiplier != nil {
		b.multiplier = *o.multiplier
	}
	if o.jitter != nil {
		b.jitter = o.jitter
	}
}

func (o *backoffOption) applyToLinear(b *LinearBackoff) {
	if o.jitter != nil {
		b.jitter = o.jitter
	}
}

// WithMultiplier sets the growth factor (exponential backoff only)
func WithMultiplier(multiplier float64) BackoffOption {
	return &backoffOption{multiplier: &multiplier}
}

// WithJitter sets the jitter function
func WithJitter(jitter JitterFunc) BackoffOption {
	return &backoffOption{jitter: jitter}
}
