package v1

import (
	"github.com/go-kratos/kratos/v2/errors"
)

// Error reasons for the auth API. The numeric code travels as the HTTP status
// and is what the gateway-side failure classifier keys on, so the mapping
// below is part of the wire contract.
const (
	ReasonUserAlreadyExists  = "USER_ALREADY_EXISTS"
	ReasonUserNotFound       = "USER_NOT_FOUND"
	ReasonInvalidCredentials = "INVALID_CREDENTIALS"
	ReasonInvalidToken       = "INVALID_TOKEN"
	ReasonTokenExpired       = "TOKEN_EXPIRED"
	ReasonInvalidEmail       = "INVALID_EMAIL"
	ReasonWeakPassword       = "WEAK_PASSWORD"
	ReasonAccountInactive    = "ACCOUNT_INACTIVE"
	ReasonInternal           = "INTERNAL"
)

// ErrorUserAlreadyExists indicates the email is already registered.
func ErrorUserAlreadyExists(format string, args ...interface{}) *errors.Error {
	return errors.Newf(409, ReasonUserAlreadyExists, format, args...)
}

// ErrorUserNotFound indicates the user does not exist.
func ErrorUserNotFound(format string, args ...interface{}) *errors.Error {
	return errors.Newf(404, ReasonUserNotFound, format, args...)
}

// ErrorInvalidCredentials indicates a wrong email/password pair. Lookups by
// unknown email converge to this same error so the API never leaks which
// addresses are registered.
func ErrorInvalidCredentials(format string, args ...interface{}) *errors.Error {
	return errors.Newf(401, ReasonInvalidCredentials, format, args...)
}

// ErrorInvalidToken indicates a malformed or badly signed token.
func ErrorInvalidToken(format string, args ...interface{}) *errors.Error {
	return errors.Newf(401, ReasonInvalidToken, format, args...)
}

// ErrorTokenExpired indicates a token past its expiry.
func ErrorTokenExpired(format string, args ...interface{}) *errors.Error {
	return errors.Newf(401, ReasonTokenExpired, format, args...)
}

// ErrorInvalidEmail indicates a syntactically invalid email address.
func ErrorInvalidEmail(format string, args ...interface{}) *errors.Error {
	return errors.Newf(400, ReasonInvalidEmail, format, args...)
}

// ErrorWeakPassword indicates a password below the minimum strength.
func ErrorWeakPassword(format string, args ...interface{}) *errors.Error {
	return errors.Newf(400, ReasonWeakPassword, format, args...)
}

// ErrorAccountInactive indicates a deactivated account.
func ErrorAccountInactive(format string, args ...interface{}) *errors.Error {
	return errors.Newf(403, ReasonAccountInactive, format, args...)
}

// ErrorInternal indicates an infrastructure failure.
func ErrorInternal(format string, args ...interface{}) *errors.Error {
	return errors.Newf(500, ReasonInternal, format, args...)
}

// IsUserAlreadyExists reports whether err is a USER_ALREADY_EXISTS error.
func IsUserAlreadyExists(err error) bool {
	e := errors.FromError(err)
	return e != nil && e.Reason == ReasonUserAlreadyExists && e.Code == 409
}

// IsUserNotFound reports whether err is a USER_NOT_FOUND error.
func IsUserNotFound(err error) bool {
	e := errors.FromError(err)
	return e != nil && e.Reason == ReasonUserNotFound && e.Code == 404
}

// IsInvalidCredentials reports whether err is an INVALID_CREDENTIALS error.
func IsInvalidCredentials(err error) bool {
	e := errors.FromError(err)
	return e != nil && e.Reason == ReasonInvalidCredentials && e.Code == 401
}

// IsInvalidToken reports whether err is an INVALID_TOKEN error.
func IsInvalidToken(err error) bool {
	e := errors.FromError(err)
	return e != nil && e.Reason == ReasonInvalidToken && e.Code == 401
}

// IsTokenExpired reports whether err is a TOKEN_EXPIRED error.
func IsTokenExpired(err error) bool {
	e := errors.FromError(err)
	return e != nil && e.Reason == ReasonTokenExpired && e.Code == 401
}

// IsInvalidEmail reports whether err is an INVALID_EMAIL error.
func IsInvalidEmail(err error) bool {
	e := errors.FromError(err)
	return e != nil && e.Reason == ReasonInvalidEmail && e.Code == 400
}

// IsWeakPassword reports whether err is a WEAK_PASSWORD error.
func IsWeakPassword(err error) bool {
	e := errors.FromError(err)
	return e != nil && e.Reason == ReasonWeakPassword && e.Code == 400
}

// IsAccountInactive reports whether err is an ACCOUNT_INACTIVE error.
func IsAccountInactive(err error) bool {
	e := errors.FromError(err)
	return e != nil && e.Reason == ReasonAccountInactive && e.Code == 403
}
