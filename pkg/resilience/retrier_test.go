package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrier_SucceedsFirstAttempt(t *testing.T) {
	r := NewRetrier(3, ConstantBackoff(time.Millisecond))

	calls := 0
	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetrier_RetriesUntilSuccess(t *testing.T) {
	r := NewRetrier(3, ConstantBackoff(time.Millisecond))

	calls := 0
	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_ExhaustionReturnsLastError(t *testing.T) {
	r := NewRetrier(3, ConstantBackoff(time.Millisecond))

	calls := 0
	last := errors.New("attempt 3")
	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		if calls == 3 {
			return last
		}
		return errors.New("earlier")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, last)
}

func TestRetrier_CancelledDuringBackoff(t *testing.T) {
	r := NewRetrier(3, ConstantBackoff(10*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	calls := 0
	start := time.Now()
	err := r.Do(ctx, func(context.Context) error {
		calls++
		return errors.New("always fails")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "cancellation during backoff must stop further attempts")
	assert.Less(t, time.Since(start), time.Second)
}

func TestConstantBackoff(t *testing.T) {
	b := ConstantBackoff(2 * time.Second)
	assert.Equal(t, 2*time.Second, b(0))
	assert.Equal(t, 2*time.Second, b(5))
}

func TestExponentialBackoff(t *testing.T) {
	b := ExponentialBackoff(time.Second, 60*time.Second)

	// base*2^attempt plus up to one second of jitter.
	for attempt, base := range map[int]time.Duration{
		0: 1 * time.Second,
		1: 2 * time.Second,
		2: 4 * time.Second,
	} {
		d := b(attempt)
		assert.GreaterOrEqual(t, d, base, "attempt %d", attempt)
		assert.Less(t, d, base+time.Second, "attempt %d", attempt)
	}

	// Large attempts are capped.
	assert.Equal(t, 60*time.Second, b(10))

	// A 30s base (the rate-limit schedule) caps from the second retry.
	rl := ExponentialBackoff(30*time.Second, 60*time.Second)
	d := rl(0)
	assert.GreaterOrEqual(t, d, 30*time.Second)
	assert.Less(t, d, 31*time.Second)
	assert.Equal(t, 60*time.Second, rl(1))
}
