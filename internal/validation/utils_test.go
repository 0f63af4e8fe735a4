package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemRequest struct {
	ID       int64            `param:"id" json:"-"`
	Name     string           `json:"name" validate:"required"`
	Price    decimal.Decimal  `json:"price" validate:"required"`
	Discount *decimal.Decimal `json:"discount" validate:"required"`
	Active   *bool            `json:"is_active" validate:"required"`
}

func (r *itemRequest) Validate() error {
	return Struct(r)
}

type windowRequest struct {
	Start int `json:"start" validate:"required"`
	End   int `json:"end" validate:"required"`
}

func (r *windowRequest) Validate() error {
	var custom CustomValidationErrors
	if r.Start > r.End {
		custom = append(custom, CustomValidationError{Field: "start", Message: "must not be after end"})
	}
	return Combine(Struct(r), custom)
}

func newContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/items/7", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("7")
	return c
}

func TestBindAndValidateAccepts(t *testing.T) {
	c := newContext(t, `{"name":"Latte","price":"45.50","discount":"0","is_active":false}`)

	var req itemRequest
	require.NoError(t, BindAndValidate(c, &req))

	assert.Equal(t, int64(7), req.ID)
	assert.Equal(t, "Latte", req.Name)
	assert.True(t, req.Price.Equal(decimal.RequireFromString("45.5")))
	require.NotNil(t, req.Discount)
	assert.True(t, req.Discount.IsZero())
	require.NotNil(t, req.Active)
	assert.False(t, *req.Active)
}

func TestBindAndValidateRejectsFalsyAndMissing(t *testing.T) {
	c := newContext(t, `{"name":"","price":0}`)

	err := BindAndValidate(c, &itemRequest{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	fields := map[string]string{}
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, map[string]string{
		"name":      "is required",
		"price":     "is required",
		"discount":  "is required",
		"is_active": "is required",
	}, fields)
	assert.Contains(t, httpErr.Message, "name is required")
}

func TestBindAndValidateBindFailures(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		body    string
		message string
		detail  string
	}{
		{name: "malformed json", id: "7", body: `{"name":`, message: "Invalid request body"},
		{name: "wrong json shape", id: "7", body: `[1,2]`, message: "Invalid request body", detail: "cannot unmarshal"},
		{name: "non-numeric id", id: "abc", body: `{}`, message: "Invalid path parameter", detail: "invalid syntax"},
		{name: "id out of range", id: "99999999999999999999", body: `{}`, message: "Invalid path parameter", detail: "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPut, "/items/"+tt.id, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			c := e.NewContext(req, httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			err := BindAndValidate(c, &itemRequest{})

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.message, httpErr.Message)
			assert.Empty(t, httpErr.Errors)
			require.NotEmpty(t, httpErr.ErrorDetail)
			if tt.detail != "" {
				assert.Contains(t, httpErr.ErrorDetail, tt.detail)
			}
		})
	}
}

func TestCombineMergesCustomAndTagErrors(t *testing.T) {
	c := newContext(t, `{"start":5}`)

	err := BindAndValidate(c, &windowRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))

	fields := map[string]string{}
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, "must not be after end", fields["start"])
	assert.Equal(t, "is required", fields["end"])
}

func TestCombineNil(t *testing.T) {
	assert.NoError(t, Combine(nil, nil))
}
