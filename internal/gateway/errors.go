package gateway

import (
	kerrors "github.com/go-kratos/kratos/v2/errors"

	"CredLane/pkg/resilience"
)

// GraphQL error extension codes, Apollo-conventional where one exists.
const (
	codeBadUserInput       = "BAD_USER_INPUT"
	codeUnauthenticated    = "UNAUTHENTICATED"
	codeForbidden          = "FORBIDDEN"
	codeNotFound           = "NOT_FOUND"
	codeAlreadyExists      = "ALREADY_EXISTS"
	codeServiceUnavailable = "SERVICE_UNAVAILABLE"
	codeInternal           = "INTERNAL_SERVER_ERROR"
)

// apiError satisfies gqlerrors.ExtendedError so the code and upstream
// reason land in the errors[].extensions of the GraphQL response.
type apiError struct {
	message string
	code    string
	reason  string
}

func (e *apiError) Error() string { return e.message }

func (e *apiError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	if e.reason != "" {
		ext["reason"] = e.reason
	}
	return ext
}

// toAPIError converts an upstream kratos error into a GraphQL-facing one.
// The HTTP status class picks the extension code, the kratos reason rides
// along untouched.
func toAPIError(err error) error {
	if err == nil {
		return nil
	}

	ke := kerrors.FromError(err)
	code := codeInternal
	switch ke.Code {
	case 400:
		code = codeBadUserInput
	case 401:
		code = codeUnauthenticated
	case 403:
		code = codeForbidden
	case 404:
		code = codeNotFound
	case 409:
		code = codeAlreadyExists
	case 503, 504:
		code = codeServiceUnavailable
	}
	if resilience.IsCircuitOpen(err) {
		code = codeServiceUnavailable
	}

	return &apiError{
		message: ke.Message,
		code:    code,
		reason:  ke.Reason,
	}
}
