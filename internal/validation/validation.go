// Package validation binds request payloads and checks their struct tags.
//
// Failures come back as a 400 *errs.HTTPError listing one entry per
// offending JSON field. Nullable lets a payload tell an absent key from an
// explicit null.
package validation
