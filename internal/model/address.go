package model

// Address is a delivery address. At most one address per user has
// IsDefault set.
type Address struct {
	ID            int64   `db:"address_id" json:"address_id"`
	UserID        int64   `db:"user_id" json:"user_id"`
	AddressLine1  string  `db:"address_line1" json:"address_line1"`
	City          string  `db:"city" json:"city"`
	Province      string  `db:"province" json:"province"`
	PostalCode    string  `db:"postal_code" json:"postal_code"`
	IsDefault     bool    `db:"is_default" json:"is_default"`
	RecipientName string  `db:"recipient_name" json:"recipient_name"`
	PhoneNumber   string  `db:"phone_number" json:"phone_number"`
	AddressLabel  *string `db:"address_label" json:"address_label"`
	SubDistrict   *string `db:"sub_district" json:"sub_district"`
}
