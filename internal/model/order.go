package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            int64           `db:"order_id" json:"order_id"`
	UserID        int64           `db:"user_id" json:"user_id"`
	AddressID     int64           `db:"address_id" json:"address_id"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
	Status        string          `db:"status" json:"status"`
	OrderDate     time.Time       `db:"order_date" json:"order_date"`
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	IsAvailable   bool            `db:"is_available" json:"is_available"`
}

// OrderItem is a line of an order. It is only visible while its order is
// available.
type OrderItem struct {
	ID             int64           `db:"order_item_id" json:"order_item_id"`
	OrderID        int64           `db:"order_id" json:"order_id"`
	ProductID      int64           `db:"product_id" json:"product_id"`
	Quantity       int             `db:"quantity" json:"quantity"`
	PricePerUnit   decimal.Decimal `db:"price_per_unit" json:"price_per_unit"`
	Customizations *string         `db:"customizations" json:"customizations"`
}
