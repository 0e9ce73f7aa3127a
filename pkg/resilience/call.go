package resilience

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
)

// ReasonCircuitOpen marks fast-fail rejections issued without attempting the
// downstream call. Adapters map it to a service-unavailable status, distinct
// from a genuine downstream internal error.
const ReasonCircuitOpen = "CIRCUIT_OPEN"

// ErrCircuitOpen returns the rejection issued while the breaker is open.
func ErrCircuitOpen() *errors.Error {
	return errors.New(503, ReasonCircuitOpen, "auth service is temporarily unavailable")
}

// IsCircuitOpen reports whether err is a breaker fast-fail rejection.
func IsCircuitOpen(err error) bool {
	e := errors.FromError(err)
	return e != nil && e.Reason == ReasonCircuitOpen && e.Code == 503
}

// Call wraps one outbound call with the shared failure-handling policy:
// consult the breaker, invoke, classify, record. Every protocol adapter goes
// through this single path so their failure behavior cannot diverge.
//
// A call abandoned by context cancellation records nothing: the downstream
// never resolved, so neither success nor failure is known. Deadline
// expiration by contrast did resolve (as a timeout) and counts as transient.
func Call[T any](ctx context.Context, cb *CircuitBreaker, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	if !cb.IsAvailable() {
		return zero, ErrCircuitOpen()
	}

	out, err := fn(ctx)

	if err != nil && errors.Is(err, context.Canceled) {
		return zero, err
	}

	switch Classify(err) {
	case Success:
		cb.RecordSuccess()
	case TransientFailure:
		cb.RecordFailure()
	case BusinessRejection:
		// deliberately unrecorded
	}

	return out, err
}
