// Package retry provides retry policy configuration and implementations
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jzx17/gofallback/pkg/types"
)

// Config describes a retry policy: how many attempts to make and the delay
// bounds between them.
type Config struct {
	// MaxAttempts is the total number of invocations, including the first.
	// Must be at least 1; 1 means no retries.
	MaxAttempts int

	// MinDelay is the wait before the first retry
	MinDelay time.Duration

	// MaxDelay caps the exponentially growing wait
	MaxDelay time.Duration
}

// DefaultConfig returns the default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		MinDelay:    100 * time.Millisecond,
		MaxDelay:    4 * time.Second,
	}
}

// Validate checks the configuration for structural validity
func (c Config) Validate() error {
	if c.MaxAttempts < 1 {
		return types.NewConfigError("MaxAttempts",
			fmt.Sprintf("must be at least 1, got %d", c.MaxAttempts),
			types.ErrInvalidAttempts)
	}
	if c.MinDelay < 0 {
		return types.NewConfigError("MinDelay",
			fmt.Sprintf("must be non-negative, got %v", c.MinDelay),
			types.ErrInvalidDelayBounds)
	}
	if c.MaxDelay < c.MinDelay {
		return types.NewConfigError("MaxDelay",
			fmt.Sprintf("must be at least MinDelay (%v), got %v", c.MinDelay, c.MaxDelay),
			types.ErrInvalidDelayBounds)
	}
	return nil
}

// Policy defines the retry decision interface
type Policy interface {
	// ShouldRetry determines whether to attempt again after a failure
	ShouldRetry(err error, attempt int) bool

	// NextDelay returns the wait after the given attempt number
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the total attempt budget
	MaxAttempts() int
}

// Condition decides whether an error is worth retrying
type Condition func(error) bool

// DefaultCondition retries every failure except context cancellation.
// The policy deliberately does not classify errors further: a permanent
// failure is retried the same as a transient one.
func DefaultCondition(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// backoffPolicy combines a Config with a backoff strategy
type backoffPolicy struct {
	config    Config
	backoff   BackoffStrategy
	condition Condition
}

// NewPolicy creates a policy from a validated Config using bounded
// exponential backoff. Returns a ConfigError if the config is invalid.
func NewPolicy(config Config, opts ...PolicyOption) (Policy, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p := &backoffPolicy{
		config:    config,
		backoff:   NewExponentialBackoff(config.MinDelay, config.MaxDelay),
		condition: DefaultCondition,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// MustPolicy is like NewPolicy but panics on invalid config. Intended for
// package-level defaults with literal configs.
func MustPolicy(config Config, opts ...PolicyOption) Policy {
	p, err := NewPolicy(config, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// ShouldRetry determines whether to attempt again after a failure
func (p *backoffPolicy) ShouldRetry(err error, attempt int) bool {
	if attempt >= p.config.MaxAttempts {
		return false
	}
	return p.condition(err)
}

// NextDelay returns the wait after the given attempt number
func (p *backoffPolicy) NextDelay(attempt int) time.Duration {
	return p.backoff.NextDelay(attempt)
}

// MaxAttempts returns the total attempt budget
func (p *backoffPolicy) MaxAttempts() int {
	return p.config.MaxAttempts
}

// PolicyOption configures a policy
type PolicyOption func(*backoffPolicy)

// WithBackoff replaces the default exponential backoff strategy
func WithBackoff(backoff BackoffStrategy) PolicyOption {
	return func(p *backoffPolicy) {
		p.backoff = backoff
	}
}

// WithCondition replaces the default retry condition
func WithCondition(condition Condition) PolicyOption {
	return func(p *backoffPolicy) {
		p.condition = condition
	}
}
