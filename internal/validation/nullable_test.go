package validation

import (
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type replaceRequest struct {
	Description Nullable[string]          `json:"description" validate:"required"`
	Price       Nullable[decimal.Decimal] `json:"price" validate:"required"`
}

func (r *replaceRequest) Validate() error {
	return Struct(r)
}

func TestNullableAcceptsExplicitNull(t *testing.T) {
	c := newContext(t, `{"description":null,"price":"12.50"}`)

	var req replaceRequest
	require.NoError(t, BindAndValidate(c, &req))

	assert.True(t, req.Description.Set)
	assert.Nil(t, req.Description.Value)
	require.NotNil(t, req.Price.Value)
	assert.True(t, req.Price.Value.Equal(decimal.RequireFromString("12.5")))
}

func TestNullableRejectsMissingKey(t *testing.T) {
	c := newContext(t, `{"description":"hot"}`)

	err := BindAndValidate(c, &replaceRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "price", httpErr.Errors[0].Field)
}

func TestNullableBadValue(t *testing.T) {
	c := newContext(t, `{"description":"hot","price":"abc"}`)

	err := BindAndValidate(c, &replaceRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}
