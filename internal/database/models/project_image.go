package models

import "github.com/google/uuid"

// ProjectImage represents a single gallery image owned by a project.
// URL always comes from the object store, never from the client.
// SortOrder values for a project form a contiguous ascending sequence
// starting at 0; new images appended on update continue the sequence.
type ProjectImage struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	URL       string    `json:"url" gorm:"type:text;not null" validate:"required,url"`
	AltText   string    `json:"alt_text" gorm:"size:500;not null" validate:"required"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0;index"`
}

// TableName returns the table name for ProjectImage
func (ProjectImage) TableName() string {
	return "project_images"
}
