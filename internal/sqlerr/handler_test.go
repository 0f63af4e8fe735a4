package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorForeignKeyOnInsert(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		Severity:       "ERROR",
		Message:        `insert or update on table "combo_set_items" violates foreign key constraint "combo_set_items_combo_set_id_fkey"`,
		TableName:      "combo_set_items",
		ConstraintName: "combo_set_items_combo_set_id_fkey",
	}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert: %w", pgErr)))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "The referenced Combo Set does not exist", httpErr.Message)
	assert.Equal(t, "COMBO_SET_ITEM_NOT_FOUND", httpErr.Code)
}

func TestHandleErrorUniqueViolationIsConflict(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		TableName:      "promotions",
		ConstraintName: "promotions_coupon_code_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, "PROMOTION_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Promotion with this Code already exists", httpErr.Message)
}

func TestHandleErrorNotNull(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", TableName: "toppings", ColumnName: "price"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "The Price is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "price", httpErr.Errors[0].Field)
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleErrorUnknownCarriesDetail(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "dial tcp: connection refused", httpErr.ErrorDetail)
	assert.NotContains(t, httpErr.Message, "refused")
}

func TestHandleErrorUnknownPgErrorIs500(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "40P01", Severity: "ERROR", Message: "deadlock detected"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Contains(t, httpErr.ErrorDetail, "deadlock detected")
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NotFound("Product")
	assert.Same(t, original, HandleError(original))
	assert.Nil(t, HandleError(nil))
}

func TestHandleDeleteErrorStillReferenced(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		TableName:      "order_items",
		ConstraintName: "order_items_product_id_fkey",
	}

	httpErr := asHTTPError(t, HandleDeleteError(pgErr, "Product"))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PRODUCT_IN_USE", httpErr.Code)
	assert.Equal(t, "Cannot delete product: it is still referenced in order items", httpErr.Message)
}

func TestHandleDeleteErrorConvertedAndWrapped(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{
		Code:           "23503",
		TableName:      "orders",
		ConstraintName: "orders_address_id_fkey",
	})

	httpErr := asHTTPError(t, HandleDeleteError(fmt.Errorf("failed to delete address 3: %w", converted), "Address"))
	assert.Equal(t, "ADDRESS_IN_USE", httpErr.Code)
	assert.Equal(t, "Cannot delete address: it is still referenced in orders", httpErr.Message)
}

func TestHandleDeleteErrorFallsBack(t *testing.T) {
	httpErr := asHTTPError(t, HandleDeleteError(errors.New("boom"), "Combo Set"))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, ErrCode(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, ForeignKeyViolation, ErrCode(ConvertPgError(&pgconn.PgError{Code: "23503"})))
	assert.Equal(t, Other, ErrCode(errors.New("x")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "name", extractColumnForUniqueViolation("products_name_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
