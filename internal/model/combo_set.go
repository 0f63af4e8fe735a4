package model

import "github.com/shopspring/decimal"

type ComboSet struct {
	ID          int64           `db:"combo_set_id" json:"combo_set_id"`
	Name        string          `db:"name" json:"name"`
	Description *string         `db:"description" json:"description"`
	BasePrice   decimal.Decimal `db:"base_price" json:"base_price"`
	ImageURL    *string         `db:"image_url" json:"image_url"`
	IsActive    bool            `db:"is_active" json:"is_active"`
}

// ComboSetItem is one slot of a combo set. Its ID is chosen by the client.
type ComboSetItem struct {
	ID           int64  `db:"item_id" json:"item_id"`
	ComboSetID   int64  `db:"combo_set_id" json:"combo_set_id"`
	CategoryName string `db:"category_name" json:"category_name"`
	Quantity     int    `db:"quantity" json:"quantity"`
}
