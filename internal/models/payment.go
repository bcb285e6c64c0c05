package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is one transaction attempt. Amounts and currency are fixed at
// creation; status is written only by the processor callback path and
// moves forward through domain.CanTransitionPayment. UserID is nullable so
// rows survive identity deletion.
type Payment struct {
	Base
	UserID          *string    `gorm:"size:64;index" json:"user_id"`
	PaymentMethodID *uuid.UUID `gorm:"type:char(36);index" json:"payment_method_id"`

	Variant     string `gorm:"size:50;not null" json:"variant"`
	Status      string `gorm:"size:20;not null;index" json:"status"`
	FraudStatus string `gorm:"size:20;not null;default:'unknown'" json:"fraud_status"`

	Currency       string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Delivery       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"delivery"`
	Tax            decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"tax"`
	CapturedAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"captured_amount"`

	Description string `gorm:"type:text" json:"description"`

	BillingName       string `gorm:"size:200" json:"billing_name"`
	BillingEmail      string `gorm:"size:254" json:"billing_email"`
	BillingAddress    string `gorm:"size:200" json:"billing_address"`
	BillingCity       string `gorm:"size:100" json:"billing_city"`
	BillingPostalCode string `gorm:"size:20" json:"billing_postal_code"`
	BillingCountry    string `gorm:"size:2" json:"billing_country"`

	// Processor-side reference (checkout session / transaction id).
	// Nullable so rows created before the processor call, or whose call
	// failed, do not collide on the unique index.
	TransactionID *string `gorm:"size:255;uniqueIndex" json:"transaction_id,omitempty"`

	PaymentMethod *PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// PurchasedItem is a line item handed to the processor integration.
type PurchasedItem struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	SKU      string          `json:"sku"`
}

// PurchasedItems returns what this payment charges for: always one
// synthetic line item covering the full total.
func (p *Payment) PurchasedItems() []PurchasedItem {
	name := p.Description
	if name == "" {
		name = "Service"
	}
	return []PurchasedItem{{
		Name:     name,
		Quantity: 1,
		Price:    p.Total,
		Currency: p.Currency,
		SKU:      "FORGE-SERVICE",
	}}
}

// FailureURL is the redirect target the processor sends the user to when
// the charge fails or is abandoned.
func (p *Payment) FailureURL() string {
	return "/payment/failure/"
}

// SuccessURL is the redirect target after a successful charge.
func (p *Payment) SuccessURL() string {
	return "/payment/success/"
}
