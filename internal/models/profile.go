package models

// UserProfile holds supplementary attributes for an externally managed
// identity. At most one row per identity; the identity itself (credentials,
// sessions) lives in the identity provider.
type UserProfile struct {
	Base
	UserID           string `gorm:"size:64;uniqueIndex;not null" json:"user_id"`
	Phone            string `gorm:"size:20" json:"phone"`
	Company          string `gorm:"size:200" json:"company"`
	StripeCustomerID string `gorm:"size:100" json:"stripe_customer_id"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
