package service

import (
	"errors"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/deppfellow/ordering-backend/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

// storeError maps a store failure to an *errs.HTTPError. A missing row
// becomes "<entity> not found".
func storeError(err error, entity string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound(entity)
	}
	return sqlerr.HandleError(err)
}

// deleteError is storeError for deletes, where a foreign key violation
// means the row is still referenced.
func deleteError(err error, entity string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound(entity)
	}
	return sqlerr.HandleDeleteError(err, entity)
}
