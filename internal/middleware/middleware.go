// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, tracing, contact form rate
// limiting, panic recovery and rendering failures as error pages.
package middleware
