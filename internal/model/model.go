// Package model holds the row types shared by the repository, service and
// handler layers.
//
// Every struct maps 1:1 to a table. `db` tags drive pgx.RowToStructByName,
// `json` tags are the wire names. Nullable columns are pointers (or
// decimal.NullDecimal for money), so an unset optional is written as SQL
// NULL and rendered as JSON null.
package model
