package resilience

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsUpToMaxCalls(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Acquire(ctx))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond,
		"acquisitions within the limit must not block")
}

func TestRateLimiter_BlocksWhenWindowFull(t *testing.T) {
	limiter := NewRateLimiter(1, 100*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, limiter.Acquire(ctx))

	start := time.Now()
	require.NoError(t, limiter.Acquire(ctx))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond,
		"second acquisition must wait for the window to slide")
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(2, time.Minute)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, limiter.Acquire(ctx))
	require.NoError(t, limiter.Acquire(ctx))

	// Advance past the window: both prior calls expire, so the next
	// acquisition must not block.
	now = now.Add(61 * time.Second)

	done := make(chan error, 1)
	go func() { done <- limiter.Acquire(ctx) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Acquire blocked after the window slid")
	}
}

func TestRateLimiter_CancelledWhileWaiting(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)

	require.NoError(t, limiter.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := limiter.Acquire(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRateLimiter_ConcurrentAcquires(t *testing.T) {
	limiter := NewRateLimiter(5, 100*time.Millisecond)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = limiter.Acquire(ctx)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "acquire %d", i)
	}
}

func TestSleep(t *testing.T) {
	t.Run("returns after the duration", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, Sleep(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	})

	t.Run("non-positive duration returns immediately", func(t *testing.T) {
		require.NoError(t, Sleep(context.Background(), 0))
		require.NoError(t, Sleep(context.Background(), -time.Second))
	})

	t.Run("honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		err := Sleep(ctx, 10*time.Second)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), time.Second)
	})
}
