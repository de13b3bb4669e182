package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned by Allow while the breaker is rejecting calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the circuit breaker state.
type State int

const (
	// StateClosed passes all calls through.
	StateClosed State = iota
	// StateOpen rejects all calls until the cooldown elapses.
	StateOpen
	// StateHalfOpen admits a single probe call to test recovery.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// CircuitBreaker tracks consecutive failures of an external dependency
// and stops calling it for a cooldown period once a threshold is hit.
//
// Callers gate each call with Allow and report the outcome with
// RecordSuccess or RecordFailure. The failure counter is reset only on
// the HALF_OPEN to CLOSED transition; successes in CLOSED leave it
// untouched, so intermittent failures accumulate toward the threshold.
type CircuitBreaker struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration

	state       State
	failures    int
	lastFailure time.Time
	probing     bool

	// now is replaceable in tests.
	now func() time.Time
}

// NewCircuitBreaker creates a breaker that opens after threshold
// consecutive failures and stays open for cooldown.
func NewCircuitBreaker(threshold int, cooldown time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		threshold: threshold,
		cooldown:  cooldown,
		state:     StateClosed,
		now:       time.Now,
	}
}

// Allow reports whether a call may proceed. While OPEN it returns
// ErrCircuitOpen until the cooldown elapses, then admits one HALF_OPEN
// probe; further calls are rejected until the probe's outcome is
// recorded.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if b.now().Sub(b.lastFailure) > b.cooldown {
			b.state = StateHalfOpen
			b.probing = true
			return nil
		}
		return ErrCircuitOpen
	case StateHalfOpen:
		if b.probing {
			return ErrCircuitOpen
		}
		b.probing = true
		return nil
	default:
		return nil
	}
}

// RecordSuccess notes a successful call. A HALF_OPEN probe success
// closes the breaker and clears the failure counter.
func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.state = StateClosed
		b.failures = 0
		b.probing = false
	}
}

// RecordFailure notes a failed call. The breaker opens when the
// consecutive-failure threshold is reached, or immediately when a
// HALF_OPEN probe fails.
func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	b.lastFailure = b.now()

	if b.state == StateHalfOpen || b.failures >= b.threshold {
		b.state = StateOpen
		b.probing = false
	}
}

// State returns the breaker's current state.
func (b *CircuitBreaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
