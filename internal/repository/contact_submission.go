package repository

import (
	"portfolio-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmissionRepository handles database operations for contact submissions
type ContactSubmissionRepository struct {
	db *gorm.DB
}

// NewContactSubmissionRepository creates a new contact submission repository
func NewContactSubmissionRepository(db *gorm.DB) *ContactSubmissionRepository {
	return &ContactSubmissionRepository{db: db}
}

// Create creates a new contact submission
func (r *ContactSubmissionRepository) Create(submission *models.ContactSubmission) error {
	return r.db.Create(submission).Error
}

// GetByID retrieves a contact submission by ID
func (r *ContactSubmissionRepository) GetByID(id uuid.UUID) (*models.ContactSubmission, error) {
	var submission models.ContactSubmission
	err := r.db.First(&submission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetAll retrieves contact submissions with pagination, newest first
func (r *ContactSubmissionRepository) GetAll(limit, offset int) ([]models.ContactSubmission, int64, error) {
	var submissions []models.ContactSubmission
	var total int64

	if err := r.db.Model(&models.ContactSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&submissions).Error
	if err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

// MarkRead marks a contact submission as read
func (r *ContactSubmissionRepository) MarkRead(id uuid.UUID) error {
	result := r.db.Model(&models.ContactSubmission{}).
		Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a contact submission
func (r *ContactSubmissionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContactSubmission{}, "id = ?", id).Error
}
