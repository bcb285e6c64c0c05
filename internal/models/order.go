package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order records what was purchased. Its status is set by order-fulfillment
// callers and is deliberately not derived from the linked Payment's status.
// All three references are nullable: deleting the identity, payment or
// payment method nulls the pointer and leaves the row in place.
type Order struct {
	Base
	UserID          *string    `gorm:"size:64;index" json:"user_id"`
	PaymentID       *uuid.UUID `gorm:"type:char(36);index" json:"payment_id"`
	PaymentMethodID *uuid.UUID `gorm:"type:char(36);index" json:"payment_method_id"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Currency    string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
	Status      string          `gorm:"size:20;not null;default:'pending';index" json:"status"`

	Description string `gorm:"type:text" json:"description"`
	Notes       string `gorm:"type:text" json:"notes"`

	Payment       *Payment       `gorm:"foreignKey:PaymentID" json:"payment,omitempty"`
	PaymentMethod *PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}
