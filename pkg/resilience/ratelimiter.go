// Package resilience provides the rate limiting, circuit breaking and
// retry primitives that guard calls to external services.
package resilience

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a sliding-window limiter: at most maxCalls acquisitions
// may fall within any trailing window. Safe for concurrent use.
type RateLimiter struct {
	mu       sync.Mutex
	maxCalls int
	window   time.Duration
	calls    []time.Time

	// now is replaceable in tests.
	now func() time.Time
}

// NewRateLimiter creates a limiter allowing maxCalls per window.
func NewRateLimiter(maxCalls int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxCalls: maxCalls,
		window:   window,
		now:      time.Now,
	}
}

// Acquire blocks until the call fits within the window, then records it.
// Returns the context error if the caller is cancelled while waiting.
func (l *RateLimiter) Acquire(ctx context.Context) error {
	for {
		l.mu.Lock()
		now := l.now()

		// Drop acquisitions that have slid out of the window.
		cutoff := now.Add(-l.window)
		kept := l.calls[:0]
		for _, t := range l.calls {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
		l.calls = kept

		if len(l.calls) < l.maxCalls {
			l.calls = append(l.calls, now)
			l.mu.Unlock()
			return nil
		}

		// Wait until the oldest recorded call leaves the window, then
		// re-check: another goroutine may have claimed the freed slot.
		wait := l.calls[0].Add(l.window).Sub(now)
		l.mu.Unlock()

		if wait <= 0 {
			continue
		}
		if err := Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// Sleep waits for d or until ctx is cancelled, returning the context
// error in the latter case. A non-positive d returns immediately.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
