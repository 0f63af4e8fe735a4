// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the HTTP layer is an *HTTPError so clients
// always receive the same JSON shape: a message, a machine-friendly code,
// optional field-level validation errors and, for unexpected store
// failures, an error_detail diagnostic.
package errs
