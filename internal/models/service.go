package models

// Service is an offered enterprise service.
type Service struct {
	Base
	Name             string `gorm:"size:200;not null" json:"name"`
	Slug             string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description      string `gorm:"type:text" json:"description"`
	ShortDescription string `gorm:"size:300" json:"short_description"`
	Icon             string `gorm:"size:50" json:"icon"`
	IsFeatured       bool   `gorm:"not null;default:false;index" json:"is_featured"`
	IsActive         bool   `gorm:"not null;default:true;index" json:"is_active"`
}

func (Service) TableName() string {
	return "services"
}
