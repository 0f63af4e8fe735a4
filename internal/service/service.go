// Package service implements the catalog and ordering operations on top
// of the store interfaces in stores.go.
//
// Services run the pre-write checks (duplicate keys, visibility windows)
// and translate store errors into *errs.HTTPError values.
package service
