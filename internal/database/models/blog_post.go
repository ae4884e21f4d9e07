package models

import "time"

// BlogPost represents a published or draft article on the site
type BlogPost struct {
	BaseModel
	Slug        string     `json:"slug" gorm:"not null;size:200;uniqueIndex" validate:"required,min=3,slug"`
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,min=3"`
	Excerpt     string     `json:"excerpt" gorm:"size:500"`
	Content     string     `json:"content" gorm:"type:text" validate:"required,min=10"`
	IsPublished bool       `json:"is_published" gorm:"default:false"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// TableName returns the table name for BlogPost
func (BlogPost) TableName() string {
	return "blog_posts"
}
