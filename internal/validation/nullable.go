package validation

import (
	"encoding/json"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Nullable is a JSON field that tells an absent key apart from an explicit
// null. Set is true whenever the key was present in the body; Value is nil
// for null.
//
// With `validate:"required"` only a missing key fails, so `"price": null`
// passes and clears the column.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON is only called by encoding/json when the key is present.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) present() bool {
	return n.Set
}

type presence interface {
	present() bool
}

// registerNullable teaches v that a Nullable has a value when its key was
// sent. Each instantiation used by a request type must be listed.
func registerNullable(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if p, ok := field.Interface().(presence); ok && p.present() {
			return true
		}
		return nil
	}, Nullable[string]{}, Nullable[decimal.Decimal]{})
}
