// Package resilience guards outbound calls to the auth service with a
// circuit breaker. One long-lived breaker instance exists per downstream
// dependency and is shared by every request-handling goroutine.
package resilience

import (
	"sync"
	"time"
)

// CircuitBreaker tracks consecutive transient failures against a threshold.
//
// Closed: every call is admitted. Open: entered when the failure count
// reaches the threshold; calls are rejected until the recovery window has
// elapsed since the tripping failure, after which IsAvailable admits probe
// calls again without flipping the state flag. Only RecordSuccess closes
// the circuit.
type CircuitBreaker struct {
	mu          sync.Mutex
	failures    uint32
	open        bool
	lastFailure time.Time

	threshold      uint32
	recoveryWindow time.Duration

	now func() time.Time
}

// NewCircuitBreaker creates a closed breaker. threshold is the number of
// consecutive transient failures that trips it; recoveryWindow is the
// cool-down before probes are admitted again. threshold 0 trips on the
// first failure, recoveryWindow 0 admits probes immediately after tripping.
func NewCircuitBreaker(threshold uint32, recoveryWindow time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		threshold:      threshold,
		recoveryWindow: recoveryWindow,
		now:            time.Now,
	}
}

// IsAvailable reports whether a call should be admitted. While open it
// becomes true again once the recovery window has elapsed since the
// tripping failure; the open flag itself is only cleared by RecordSuccess.
func (b *CircuitBreaker) IsAvailable() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return true
	}
	return b.now().Sub(b.lastFailure) >= b.recoveryWindow
}

// RecordSuccess resets the failure count and closes the circuit. A single
// successful probe fully closes it.
func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	b.open = false
}

// RecordFailure increments the consecutive failure count and trips the
// breaker when the count reaches the threshold. The trip timestamp is
// written only at the failure that crosses the threshold; failures arriving
// while already open do not extend the cool-down.
func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	if !b.open && b.failures >= b.threshold {
		b.open = true
		b.lastFailure = b.now()
	}
}
