package errs

import (
	"net/http"
)

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code optionally replaces the default "BAD_REQUEST".
func NewBadRequestError(message string, code *string) *HTTPError {
	err := newHTTPError(http.StatusBadRequest, message)
	if code != nil {
		err.Code = *code
	}
	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	err := newHTTPError(http.StatusNotFound, message)
	if code != nil {
		err.Code = *code
	}
	return err
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError.
func NewMethodNotAllowedError(message string) *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed, message)
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
// An empty message falls back to the generic status text.
func NewInternalServerError(message ...string) *HTTPError {
	msg := http.StatusText(http.StatusInternalServerError)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return newHTTPError(http.StatusInternalServerError, msg)
}

// NewServiceUnavailableError creates a 503 Service Unavailable HTTPError,
// used when the database cannot be reached.
func NewServiceUnavailableError(message string) *HTTPError {
	return newHTTPError(http.StatusServiceUnavailable, message)
}
