package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "name", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message, always present.
//   - Status: HTTP status code (not serialized).
//   - Override: the message is safe to show to end users as is.
//   - Errors: per-field validation errors.
//   - ErrorDetail: lower-level error text attached for diagnostics only.
type HTTPError struct {
	Code        string       `json:"code"`
	Message     string       `json:"message"`
	Status      int          `json:"-"`
	Override    bool         `json:"-"`
	Errors      []FieldError `json:"errors,omitempty"`
	ErrorDetail string       `json:"error_detail,omitempty"`
}

// Error makes *HTTPError satisfy the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It does not compare
// codes or statuses.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithDetail returns a copy of this HTTPError carrying err as diagnostic detail.
func (e *HTTPError) WithDetail(err error) *HTTPError {
	clone := *e
	if err != nil {
		clone.ErrorDetail = err.Error()
	}
	return &clone
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
