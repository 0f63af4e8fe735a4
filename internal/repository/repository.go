// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Conventions shared by every repository:
//   - reads that match nothing return pgx.ErrNoRows (single row) or an
//     empty, non-nil slice (lists)
//   - Update and Delete return pgx.ErrNoRows when the id does not exist
//   - driver errors are wrapped with %w so *pgconn.PgError stays reachable
//     for sqlerr
package repository

import (
	"github.com/jackc/pgx/v5"
)

// collectAll scans every row of a Query result into T by column name.
func collectAll[T any](rows pgx.Rows, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// collectOne scans exactly one row into T. No row yields pgx.ErrNoRows.
func collectOne[T any](rows pgx.Rows, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
}
