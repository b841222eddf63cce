// Package errs defines the error type handlers return to the HTTP layer.
//
// An HTTPError carries the status code and the message the visitor sees on
// the error page. The underlying cause is kept for logging only and never
// rendered.
package errs
