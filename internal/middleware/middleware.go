// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request IDs, request logging, CORS, per-IP rate limiting, New Relic
// tracing and panic recovery. GlobalErrorHandler is the single place
// error responses are written.
package middleware
