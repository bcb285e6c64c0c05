package models

import "forge/internal/domain"

// PaymentMethod is a saved, tokenized instrument. Card fields are display
// metadata only; the full card never touches this system. Deactivated rows
// stay in the table for history but are hidden from user-facing listings.
type PaymentMethod struct {
	Base
	UserID                string `gorm:"size:64;not null;index" json:"user_id"`
	StripePaymentMethodID string `gorm:"size:100;not null" json:"stripe_payment_method_id"`
	PaymentType           string `gorm:"size:20;not null;default:'card'" json:"payment_type"`

	CardBrand    string `gorm:"size:20" json:"card_brand"`
	CardLast4    string `gorm:"size:4" json:"card_last4"`
	CardExpMonth *int   `json:"card_exp_month"`
	CardExpYear  *int   `json:"card_exp_year"`

	BillingName         string `gorm:"size:200" json:"billing_name"`
	BillingEmail        string `gorm:"size:254" json:"billing_email"`
	BillingAddressLine1 string `gorm:"size:200" json:"billing_address_line1"`
	BillingAddressLine2 string `gorm:"size:200" json:"billing_address_line2"`
	BillingCity         string `gorm:"size:100" json:"billing_city"`
	BillingState        string `gorm:"size:100" json:"billing_state"`
	BillingPostalCode   string `gorm:"size:20" json:"billing_postal_code"`
	BillingCountry      string `gorm:"size:2" json:"billing_country"`

	IsDefault bool `gorm:"not null;default:false;index" json:"is_default"`
	IsActive  bool `gorm:"not null;default:true;index" json:"is_active"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// Label is the human-readable name shown in listings, e.g. "Visa ending in 4242".
func (m *PaymentMethod) Label() string {
	if m.PaymentType == domain.MethodTypeCard && m.CardBrand != "" && m.CardLast4 != "" {
		return m.CardBrand + " ending in " + m.CardLast4
	}
	return m.PaymentType
}
