package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is a note/article. AuthorName is a plain string since authors
// live in the external identity provider.
type BlogPost struct {
	Base
	Title           string     `gorm:"size:200;not null" json:"title"`
	Slug            string     `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Content         string     `gorm:"type:text" json:"content"`
	Excerpt         string     `gorm:"size:300" json:"excerpt"`
	AuthorName      string     `gorm:"size:200" json:"author_name"`
	PublishedDate   *time.Time `json:"published_date"`
	IsPublished     bool       `gorm:"not null;default:false;index" json:"is_published"`
	ReadTimeMinutes int        `gorm:"not null;default:5" json:"read_time_minutes"`
	Tags            string     `gorm:"size:200" json:"tags"` // comma-separated

	Comments []BlogComment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// BlogComment is a reader comment, hidden until approved.
type BlogComment struct {
	Base
	PostID      uuid.UUID `gorm:"type:char(36);not null;index" json:"post_id"`
	AuthorName  string    `gorm:"size:100;not null" json:"author_name"`
	AuthorEmail string    `gorm:"size:254;not null" json:"author_email"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	IsApproved  bool      `gorm:"not null;default:false;index" json:"is_approved"`
}

func (BlogComment) TableName() string {
	return "blog_comments"
}
