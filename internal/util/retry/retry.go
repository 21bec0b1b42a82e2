// Package retry provides fixed-interval condition polling for remote
// state transitions.
package retry

import (
	"context"
	"time"
)

// Config holds polling configuration.
type Config struct {
	Interval    time.Duration
	MaxAttempts int
}

// Option is a functional option for polling configuration.
type Option func(*Config)

// Condition reports whether the awaited state has been reached.
// A non-nil error aborts the poll immediately.
type Condition func(ctx context.Context) (bool, error)

// Poll sleeps Interval, then evaluates the condition, up to MaxAttempts
// times. It returns true as soon as the condition holds, false when every
// attempt is exhausted. The interval is fixed; there is no backoff.
// Context cancellation is respected during each sleep.
func Poll(ctx context.Context, cond Condition, opts ...Option) (bool, error) {
	cfg := &Config{
		Interval:    5 * time.Second,
		MaxAttempts: 12,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	timer := time.NewTimer(cfg.Interval)
	defer timer.Stop()

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
		}

		done, err := cond(ctx)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}

		timer.Reset(cfg.Interval)
	}

	return false, nil
}

// WithInterval sets the delay before each condition check.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

// WithMaxAttempts sets the maximum number of condition checks.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}
