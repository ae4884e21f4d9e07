package repository

import (
	"portfolio-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	CreateWithImages(project *models.Project, images []models.ProjectImage) error
	UpdateWithNewImages(project *models.Project, newImages []models.ProjectImage) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetBySlug(slug string) (*models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
	GetFeatured(limit int) ([]models.Project, error)
	Delete(id uuid.UUID) error
}

// BlogPostRepositoryInterface defines the interface for blog post repository operations
type BlogPostRepositoryInterface interface {
	Create(post *models.BlogPost) error
	GetByID(id uuid.UUID) (*models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	GetAll(publishedOnly bool, limit, offset int) ([]models.BlogPost, int64, error)
	Update(post *models.BlogPost) error
	Delete(id uuid.UUID) error
}

// PricingPlanRepositoryInterface defines the interface for pricing plan repository operations
type PricingPlanRepositoryInterface interface {
	Create(plan *models.PricingPlan) error
	GetByID(id uuid.UUID) (*models.PricingPlan, error)
	GetAll() ([]models.PricingPlan, error)
	Update(plan *models.PricingPlan) error
	Delete(id uuid.UUID) error
}

// ContactSubmissionRepositoryInterface defines the interface for contact submission repository operations
type ContactSubmissionRepositoryInterface interface {
	Create(submission *models.ContactSubmission) error
	GetByID(id uuid.UUID) (*models.ContactSubmission, error)
	GetAll(limit, offset int) ([]models.ContactSubmission, int64, error)
	MarkRead(id uuid.UUID) error
	Delete(id uuid.UUID) error
}
