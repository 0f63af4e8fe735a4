package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsSetStatusAndCode(t *testing.T) {
	cases := []struct {
		err    *HTTPError
		status int
		code   string
	}{
		{NewBadRequestError("bad", false, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{NewConflictError("dup", nil), http.StatusConflict, "CONFLICT"},
		{NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{NewInternalServerError(nil), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestCustomCode(t *testing.T) {
	code := "PRODUCT_NOT_FOUND"
	err := NewNotFoundError("Product not found", true, &code)
	assert.Equal(t, code, err.Code)
}

func TestInternalServerErrorKeepsDetailOutOfMessage(t *testing.T) {
	err := NewInternalServerError(errors.New("connection refused"))

	assert.NotContains(t, err.Message, "connection refused")
	assert.Equal(t, "connection refused", err.ErrorDetail)

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code":"INTERNAL_SERVER_ERROR","message":"An error occurred while processing your request","error_detail":"connection refused"}`, string(body))
}

func TestHTTPErrorMatchesWithErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NotFound("Order"))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "Order not found", httpErr.Message)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestWithDetailDoesNotMutate(t *testing.T) {
	base := NewBadRequestError("Invalid request body", true, nil, nil)
	detailed := base.WithDetail(errors.New("unexpected EOF"))

	assert.Empty(t, base.ErrorDetail)
	assert.Equal(t, "unexpected EOF", detailed.ErrorDetail)
	assert.Equal(t, base.Message, detailed.Message)
	assert.Empty(t, base.WithDetail(nil).ErrorDetail)
}
