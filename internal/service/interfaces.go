package service

import (
	"context"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProjectServiceInterface defines the interface for project operations
type ProjectServiceInterface interface {
	Create(ctx context.Context, identity *auth.Identity, input ProjectInput) (*ProjectResponse, error)
	Update(ctx context.Context, identity *auth.Identity, id uuid.UUID, input ProjectInput) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	GetBySlug(slug string) (*ProjectResponse, error)
	List(page, pageSize int) (*ProjectListResponse, error)
	GetFeatured() ([]ProjectResponse, error)
	Delete(identity *auth.Identity, id uuid.UUID) error
}

// BlogPostServiceInterface defines the interface for blog post operations
type BlogPostServiceInterface interface {
	Create(identity *auth.Identity, input BlogPostInput) (*models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	List(publishedOnly bool, page, pageSize int) (*BlogPostListResponse, error)
	Update(identity *auth.Identity, id uuid.UUID, input BlogPostInput) (*models.BlogPost, error)
	Delete(identity *auth.Identity, id uuid.UUID) error
}

// PricingPlanServiceInterface defines the interface for pricing plan operations
type PricingPlanServiceInterface interface {
	Create(identity *auth.Identity, input PricingPlanInput) (*models.PricingPlan, error)
	GetAll() ([]models.PricingPlan, error)
	Update(identity *auth.Identity, id uuid.UUID, input PricingPlanInput) (*models.PricingPlan, error)
	Delete(identity *auth.Identity, id uuid.UUID) error
}

// ContactServiceInterface defines the interface for contact form operations
type ContactServiceInterface interface {
	Submit(input ContactInput) (*models.ContactSubmission, error)
	List(identity *auth.Identity, page, pageSize int) (*ContactListResponse, error)
	MarkRead(identity *auth.Identity, id uuid.UUID) error
	Delete(identity *auth.Identity, id uuid.UUID) error
}
