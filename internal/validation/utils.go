package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required"`)
//   - Implement Validate() error that calls validation.Struct(req)
//   - Append CustomValidationErrors for cross-field rules
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue that cannot be
// expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

// newValidator builds the shared validator.
//
// Field names are reported by their json tag, and decimal.Decimal is
// validated through its float value so `required` rejects a zero amount
// the same way it rejects a zero int.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	registerNullable(v)

	return v
}

// Struct validates s against its `validate` tags with the shared validator.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. Path params, then the JSON body, are bound into payload.
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400) with field-level errors on failure.
//
// Bind failures get a fixed message; the decoder's text only travels in
// error_detail. payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	binder := &echo.DefaultBinder{}

	if err := binder.BindPathParams(c, payload); err != nil {
		return bindError("Invalid path parameter", err)
	}

	if err := binder.BindBody(c, payload); err != nil {
		return bindError("Invalid request body", err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// bindError is a 400 carrying the underlying decode error as detail.
func bindError(message string, err error) error {
	cause := err
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Internal != nil {
		cause = echoErr.Internal
	}
	return errs.NewBadRequestError(message, true, nil, nil).WithDetail(cause)
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &customValidationErrors):
		for _, cerr := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: cerr.Field,
				Error: cerr.Message,
			})
		}

	case errors.As(err, &validationErrors):
		for _, verr := range validationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: strings.ToLower(verr.Field()),
				Error: fieldErrorMessage(verr),
			})
		}

	default:
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "body", Error: err.Error()})
	}

	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fe.Field+" "+fe.Error)
	}

	return "Validation failed: " + strings.Join(parts, ", "), fieldErrors
}

func fieldErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s:%s", err.Tag(), err.Param())
		}
		return err.Tag()
	}
}

// Combine merges a validator error with custom validation errors so one
// response lists every problem. It returns nil when both are empty.
func Combine(tagErr error, custom CustomValidationErrors) error {
	if tagErr == nil {
		if len(custom) == 0 {
			return nil
		}
		return custom
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(tagErr, &validationErrors) || len(custom) == 0 {
		return tagErr
	}

	for _, verr := range validationErrors {
		custom = append(custom, CustomValidationError{
			Field:   strings.ToLower(verr.Field()),
			Message: fieldErrorMessage(verr),
		})
	}
	return custom
}
