package models

// Project represents a portfolio project with its gallery images
type Project struct {
	BaseModel
	Slug             string   `json:"slug" gorm:"not null;size:200;uniqueIndex" validate:"required,min=3,slug"`
	Title            string   `json:"title" gorm:"not null;size:200" validate:"required,min=3"`
	ShortDescription string   `json:"short_description" gorm:"size:500"`
	DetailedContent  string   `json:"detailed_content" gorm:"type:text" validate:"required,min=10"`
	LiveURL          string   `json:"live_url" gorm:"size:500" validate:"omitempty,url"`
	GithubURL        string   `json:"github_url" gorm:"size:500" validate:"omitempty,url"`
	Technologies     []string `json:"technologies" gorm:"type:jsonb;serializer:json"`
	Category         string   `json:"category" gorm:"size:100"`
	IsFeatured       bool     `json:"is_featured" gorm:"default:false"`

	// Relationships
	Images []ProjectImage `json:"images,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
