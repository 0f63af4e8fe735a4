// Package repotest provides in-memory stores satisfying the service store
// interfaces.
//
// A DB holds every table and enforces the same primary key, unique and
// foreign key constraints as the PostgreSQL schema. Violations are
// reported as *pgconn.PgError with the real SQLSTATE, table and constraint
// names, so tests exercise the same error mapping as production.
package repotest

import (
	"fmt"
	"sync"
	"time"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
)

type optionRow struct {
	productID int64
	available bool
	option    model.ProductOption
}

// DB is an in-memory stand-in for the ordering schema. Rows keep insertion
// order, which plays the role of the store's natural order.
type DB struct {
	mu sync.Mutex

	// Now is the clock used for the promotion validity window.
	Now func() time.Time

	// Err, when set, is returned by every store call.
	Err error

	seq map[string]int64

	products      []model.Product
	options       []optionRow
	comboSets     []model.ComboSet
	comboSetItems []model.ComboSetItem
	toppings      []model.Topping
	promotions    []model.Promotion
	addresses     []model.Address
	orders        []model.Order
	orderItems    []model.OrderItem
}

func New() *DB {
	return &DB{
		Now: time.Now,
		seq: make(map[string]int64),
	}
}

func (db *DB) next(table string) int64 {
	db.seq[table]++
	return db.seq[table]
}

// AddProductOption seeds an option row for productID.
func (db *DB) AddProductOption(productID int64, option model.ProductOption, available bool) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if option.ID == 0 {
		option.ID = db.next("product_options")
	}
	db.options = append(db.options, optionRow{productID: productID, available: available, option: option})
}

func (db *DB) Products() *ProductStore           { return &ProductStore{db: db} }
func (db *DB) ComboSets() *ComboSetStore         { return &ComboSetStore{db: db} }
func (db *DB) ComboSetItems() *ComboSetItemStore { return &ComboSetItemStore{db: db} }
func (db *DB) Toppings() *ToppingStore           { return &ToppingStore{db: db} }
func (db *DB) Promotions() *PromotionStore       { return &PromotionStore{db: db} }
func (db *DB) Addresses() *AddressStore          { return &AddressStore{db: db} }
func (db *DB) Orders() *OrderStore               { return &OrderStore{db: db} }
func (db *DB) OrderItems() *OrderItemStore       { return &OrderItemStore{db: db} }

func uniqueViolation(table, constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        fmt.Sprintf("duplicate key value violates unique constraint %q", constraint),
		TableName:      table,
		ConstraintName: constraint,
	}
}

func foreignKeyViolation(table, constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        fmt.Sprintf("insert or update on table %q violates foreign key constraint %q", table, constraint),
		TableName:      table,
		ConstraintName: constraint,
	}
}

// stillReferenced is the error PostgreSQL raises when a DELETE would orphan
// rows of the referencing table.
func stillReferenced(referenced, table, constraint string) error {
	return &pgconn.PgError{
		Severity: "ERROR",
		Code:     "23503",
		Message: fmt.Sprintf("update or delete on table %q violates foreign key constraint %q on table %q",
			referenced, constraint, table),
		TableName:      table,
		ConstraintName: constraint,
	}
}

func indexOf[T any](rows []T, match func(T) bool) int {
	for i, row := range rows {
		if match(row) {
			return i
		}
	}
	return -1
}

func filter[T any](rows []T, keep func(T) bool) []T {
	out := []T{}
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
