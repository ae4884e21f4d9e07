package models

// ContactSubmission represents a message sent through the public contact form
type ContactSubmission struct {
	BaseModel
	Name    string `json:"name" gorm:"not null;size:100" validate:"required"`
	Email   string `json:"email" gorm:"not null;size:254" validate:"required,email"`
	Message string `json:"message" gorm:"type:text;not null" validate:"required,min=10"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}

// TableName returns the table name for ContactSubmission
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
