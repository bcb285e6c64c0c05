package models

// Page is a static content page addressed by slug.
type Page struct {
	Base
	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Content     string `gorm:"type:text" json:"content"`
	IsPublished bool   `gorm:"not null;default:true;index" json:"is_published"`
}

func (Page) TableName() string {
	return "pages"
}
