// Package handler contains the HTTP request handlers.
//
// Handlers translate a request (method, path id, form fields) into one
// service call and answer with a rendered page or a redirect. Every
// service failure is converted into an *errs.HTTPError here, so the
// global error handler only ever renders the error page.
package handler
