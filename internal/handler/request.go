package handler

import (
	"github.com/deppfellow/ordering-backend/internal/validation"
	"github.com/shopspring/decimal"
)

// ListRequest is the payload of collection reads that take no input.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

// IDRequest carries the :id path parameter. A non-integer id fails binding.
type IDRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
