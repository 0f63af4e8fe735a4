package model

import "github.com/shopspring/decimal"

// Topping is unique per (name, category).
type Topping struct {
	ID          int64           `db:"topping_id" json:"topping_id"`
	Name        string          `db:"name" json:"name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Category    string          `db:"category" json:"category"`
	IsAvailable bool            `db:"is_available" json:"is_available"`
}
