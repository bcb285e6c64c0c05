package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingPlan is a published plan. Price is nil for "contact us" tiers.
type PricingPlan struct {
	Base
	Name         string           `gorm:"size:200;not null" json:"name"`
	Slug         string           `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description  string           `gorm:"type:text" json:"description"`
	Price        *decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"` // monthly
	IsFeatured   bool             `gorm:"not null;default:false" json:"is_featured"`
	IsActive     bool             `gorm:"not null;default:true;index" json:"is_active"`
	DisplayOrder int              `gorm:"not null;default:0" json:"display_order"`

	Features []PricingFeature `gorm:"foreignKey:PlanID" json:"features,omitempty"`
}

func (PricingPlan) TableName() string {
	return "pricing_plans"
}

// PricingFeature is one bullet on a plan's feature list.
type PricingFeature struct {
	Base
	PlanID       uuid.UUID `gorm:"type:char(36);not null;index" json:"plan_id"`
	FeatureText  string    `gorm:"size:200;not null" json:"feature_text"`
	IsIncluded   bool      `gorm:"not null;default:true" json:"is_included"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
}

func (PricingFeature) TableName() string {
	return "pricing_features"
}
