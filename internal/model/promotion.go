package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion is a coupon valid between StartDate and ExpiryDate inclusive.
type Promotion struct {
	ID            int64           `db:"promotion_id" json:"promotion_id"`
	CouponCode    string          `db:"coupon_code" json:"coupon_code"`
	Description   *string         `db:"description" json:"description"`
	DiscountType  string          `db:"discount_type" json:"discount_type"`
	DiscountValue decimal.Decimal `db:"discount_value" json:"discount_value"`
	MinPurchase   decimal.Decimal `db:"min_purchase" json:"min_purchase"`
	StartDate     time.Time       `db:"start_date" json:"start_date"`
	ExpiryDate    time.Time       `db:"expiry_date" json:"expiry_date"`
}

// ActiveAt reports whether the promotion is visible at t.
func (p *Promotion) ActiveAt(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.ExpiryDate)
}
