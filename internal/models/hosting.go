package models

import "github.com/shopspring/decimal"

// HostingPlan describes a hosting tier and its specs.
type HostingPlan struct {
	Base
	Name         string           `gorm:"size:200;not null" json:"name"`
	Slug         string           `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description  string           `gorm:"type:text" json:"description"`
	CPU          string           `gorm:"size:100" json:"cpu"`
	RAM          string           `gorm:"size:100" json:"ram"`
	Storage      string           `gorm:"size:100" json:"storage"`
	Bandwidth    string           `gorm:"size:100" json:"bandwidth"`
	PriceMonthly *decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_monthly"`
	IsFeatured   bool             `gorm:"not null;default:false;index" json:"is_featured"`
	IsActive     bool             `gorm:"not null;default:true;index" json:"is_active"`
}

func (HostingPlan) TableName() string {
	return "hosting_plans"
}
