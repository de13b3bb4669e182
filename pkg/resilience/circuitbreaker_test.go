package resilience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBreaker returns a breaker with a controllable clock.
func testBreaker(threshold int, cooldown time.Duration) (*CircuitBreaker, *time.Time) {
	now := time.Now()
	b := NewCircuitBreaker(threshold, cooldown)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	b, _ := testBreaker(3, 300*time.Second)

	b.RecordFailure()
	b.RecordFailure()
	require.NoError(t, b.Allow(), "two failures must not open the breaker")
	assert.Equal(t, StateClosed, b.State())

	b.RecordFailure()
	assert.Equal(t, StateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestCircuitBreaker_ClosedSuccessKeepsFailureCount(t *testing.T) {
	b, _ := testBreaker(3, 300*time.Second)

	// Intermittent failures accumulate: a success in CLOSED does not
	// reset the counter, so the third failure still opens the breaker.
	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()

	assert.Equal(t, StateOpen, b.State())
}

func TestCircuitBreaker_HalfOpenProbeSuccess(t *testing.T) {
	b, now := testBreaker(3, 300*time.Second)

	for i := 0; i < 3; i++ {
		b.RecordFailure()
	}
	require.Equal(t, StateOpen, b.State())

	// Before the cooldown elapses the breaker stays open.
	*now = now.Add(299 * time.Second)
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	// After the cooldown the next Allow admits a single probe.
	*now = now.Add(2 * time.Second)
	require.NoError(t, b.Allow())
	assert.Equal(t, StateHalfOpen, b.State())

	// A second caller is rejected while the probe is in flight.
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	b.RecordSuccess()
	assert.Equal(t, StateClosed, b.State())

	// The counter was reset: it takes three fresh failures to reopen.
	b.RecordFailure()
	b.RecordFailure()
	assert.Equal(t, StateClosed, b.State())
	b.RecordFailure()
	assert.Equal(t, StateOpen, b.State())
}

func TestCircuitBreaker_HalfOpenProbeFailureReopens(t *testing.T) {
	b, now := testBreaker(3, 300*time.Second)

	for i := 0; i < 3; i++ {
		b.RecordFailure()
	}
	*now = now.Add(301 * time.Second)
	require.NoError(t, b.Allow())
	require.Equal(t, StateHalfOpen, b.State())

	b.RecordFailure()
	assert.Equal(t, StateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	// The cooldown restarts from the probe failure.
	*now = now.Add(301 * time.Second)
	require.NoError(t, b.Allow())
	assert.Equal(t, StateHalfOpen, b.State())
}

func TestCircuitBreaker_StateString(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half_open", StateHalfOpen.String())
}
