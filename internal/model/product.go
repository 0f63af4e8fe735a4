package model

import "github.com/shopspring/decimal"

// Product is a row of the products table. Price may be NULL.
type Product struct {
	ID          int64               `db:"product_id" json:"product_id"`
	Name        string              `db:"name" json:"name"`
	Description *string             `db:"description" json:"description"`
	Price       decimal.NullDecimal `db:"price" json:"price"`
	Category    *string             `db:"category" json:"category"`
	ImageURL    *string             `db:"image_url" json:"image_url"`
	IsAvailable bool                `db:"is_available" json:"is_available"`
}

// ProductOption is an available option of a product, as returned by
// GET /products/:id/options.
type ProductOption struct {
	ID              int64           `db:"option_id" json:"option_id"`
	OptionType      string          `db:"option_type" json:"option_type"`
	OptionName      string          `db:"option_name" json:"option_name"`
	AdditionalPrice decimal.Decimal `db:"additional_price" json:"additional_price"`
}
