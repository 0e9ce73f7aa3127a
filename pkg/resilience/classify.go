package resilience

import (
	"github.com/go-kratos/kratos/v2/errors"
)

// Outcome is the classification of a downstream call result.
type Outcome int

const (
	// Success is a call that returned without error.
	Success Outcome = iota
	// TransientFailure is an infrastructure fault (unavailable, timeout,
	// internal). Only these feed the breaker's failure count.
	TransientFailure
	// BusinessRejection is a legitimate domain refusal (bad credentials,
	// duplicate email, unknown user). The breaker must stay blind to these,
	// otherwise a burst of wrong passwords would open the circuit.
	BusinessRejection
)

// Classify maps a downstream call outcome to one of the three classes.
// Errors are normalized through the Kratos error codec, so anything that is
// not a structured service error (dial failures, decode failures) comes back
// as code 500 and lands in TransientFailure. Unknown codes also classify as
// TransientFailure: tripping the breaker on a surprise is the safe default.
func Classify(err error) Outcome {
	if err == nil {
		return Success
	}

	switch errors.FromError(err).Code {
	case 400, 401, 403, 404, 409:
		// invalid-argument, unauthenticated, permission-denied, not-found,
		// already-exists
		return BusinessRejection
	case 500, 503, 504:
		// internal, unavailable, deadline-exceeded
		return TransientFailure
	default:
		return TransientFailure
	}
}
