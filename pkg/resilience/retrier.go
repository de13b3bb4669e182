package resilience

import (
	"context"
	"math/rand/v2"
	"time"
)

// Backoff computes the wait before re-running a failed attempt.
// The attempt index is zero-based.
type Backoff func(attempt int) time.Duration

// ConstantBackoff waits the same delay after every failed attempt.
func ConstantBackoff(delay time.Duration) Backoff {
	return func(int) time.Duration {
		return delay
	}
}

// ExponentialBackoff waits base*2^attempt plus up to one second of
// jitter, capped at max. The cap applies after jitter.
func ExponentialBackoff(base, max time.Duration) Backoff {
	return func(attempt int) time.Duration {
		d := base << uint(attempt)
		d += rand.N(time.Second)
		if d > max {
			d = max
		}
		return d
	}
}

// Retrier re-runs an operation according to a backoff schedule.
type Retrier struct {
	maxAttempts int
	backoff     Backoff
}

// NewRetrier creates a retrier that runs fn up to maxAttempts times.
func NewRetrier(maxAttempts int, backoff Backoff) *Retrier {
	return &Retrier{
		maxAttempts: maxAttempts,
		backoff:     backoff,
	}
}

// Do runs fn until it succeeds or attempts are exhausted, sleeping per
// the backoff schedule between attempts. Returns nil on the first
// success, the last error on exhaustion, and the context error if
// cancelled during a backoff sleep.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt < r.maxAttempts-1 {
			if err := Sleep(ctx, r.backoff(attempt)); err != nil {
				return err
			}
		}
	}
	return lastErr
}
