package repository

import (
	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPostRepository handles database operations for blog posts
type BlogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository creates a new blog post repository
func NewBlogPostRepository(db *gorm.DB) *BlogPostRepository {
	return &BlogPostRepository{db: db}
}

// Create creates a new blog post
func (r *BlogPostRepository) Create(post *models.BlogPost) error {
	err := r.db.Create(post).Error
	if isSlugConflict(err) {
		return apperrors.ErrBlogPostSlugTaken
	}
	return err
}

// GetByID retrieves a blog post by ID
func (r *BlogPostRepository) GetByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetBySlug retrieves a blog post by its slug
func (r *BlogPostRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetAll retrieves blog posts with pagination, newest first
func (r *BlogPostRepository) GetAll(publishedOnly bool, limit, offset int) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	query := r.db.Model(&models.BlogPost{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// Update updates a blog post
func (r *BlogPostRepository) Update(post *models.BlogPost) error {
	err := r.db.Save(post).Error
	if isSlugConflict(err) {
		return apperrors.ErrBlogPostSlugTaken
	}
	return err
}

// Delete deletes a blog post
func (r *BlogPostRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogPost{}, "id = ?", id).Error
}
