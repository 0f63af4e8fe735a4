// Package handler is the HTTP layer that sits right after the router.
//
// Each resource handler binds and validates its request payload with the
// validation package, calls the matching service and returns the response
// body. Errors are returned to Echo untouched; the global error handler in
// the middleware package writes them.
package handler
