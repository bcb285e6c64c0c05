package models

import "time"

// PortfolioItem is a project or case study.
type PortfolioItem struct {
	Base
	Title            string     `gorm:"size:200;not null" json:"title"`
	Slug             string     `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description      string     `gorm:"type:text" json:"description"`
	ShortDescription string     `gorm:"size:300" json:"short_description"`
	ClientName       string     `gorm:"size:200" json:"client_name"`
	ProjectDate      *time.Time `json:"project_date"`
	TechnologiesUsed string     `gorm:"type:text" json:"technologies_used"` // comma-separated
	ProjectURL       string     `gorm:"size:512" json:"project_url"`
	ImageURL         string     `gorm:"size:512" json:"image_url"`
	IsFeatured       bool       `gorm:"not null;default:false;index" json:"is_featured"`
	IsPublished      bool       `gorm:"not null;default:true;index" json:"is_published"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}
