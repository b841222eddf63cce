package errs

import "strings"

// HTTPError is the error handlers return when a request fails.
//
// Code is a machine-friendly name (e.g. "SERVICE_UNAVAILABLE"), Message is
// shown to the visitor and Status is the HTTP status code.
type HTTPError struct {
	Code    string
	Message string
	Status  int

	// cause is the error that triggered this one. It is logged, not shown.
	cause error
}

// Error returns the visitor facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Cause returns the wrapped driver or service error, if any.
func (e *HTTPError) Cause() error {
	return e.cause
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := *e
	cp.Message = message
	return &cp
}

// WithCause returns a copy of e that wraps cause.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	cp := *e
	cp.cause = cause
	return &cp
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
