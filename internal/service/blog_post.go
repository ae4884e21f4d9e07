package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPostService handles blog post business logic
type BlogPostService struct {
	repo      repository.BlogPostRepositoryInterface
	validator *validator.Validate
}

// NewBlogPostService creates a new blog post service
func NewBlogPostService(repo repository.BlogPostRepositoryInterface, validator *validator.Validate) *BlogPostService {
	return &BlogPostService{repo: repo, validator: validator}
}

// BlogPostInput represents the request to create or update a blog post
type BlogPostInput struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	IsPublished bool   `json:"is_published"`
}

// BlogPostListResponse represents a paginated list of blog posts
type BlogPostListResponse struct {
	Posts    []models.BlogPost `json:"posts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

func (s *BlogPostService) validate(input BlogPostInput) error {
	post := models.BlogPost{
		Slug:    input.Slug,
		Title:   input.Title,
		Content: input.Content,
	}
	if err := s.validator.Struct(&post); err != nil {
		verrs := apperrors.NewValidationErrors()
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				name, ok := fieldName[fe.StructField()]
				if !ok {
					name = strings.ToLower(fe.StructField())
				}
				verrs.Add(name, fieldMessage(fe))
			}
		}
		return verrs
	}
	return nil
}

// Create creates a new blog post; admin only
func (s *BlogPostService) Create(identity *auth.Identity, input BlogPostInput) (*models.BlogPost, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrNotAdmin
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		Slug:        input.Slug,
		Title:       input.Title,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		IsPublished: input.IsPublished,
	}
	if input.IsPublished {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := s.repo.Create(post); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return post, nil
}

// GetBySlug retrieves a blog post by its slug
func (s *BlogPostService) GetBySlug(slug string) (*models.BlogPost, error) {
	post, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return post, nil
}

// List retrieves blog posts with pagination. Non-admin callers only see
// published posts.
func (s *BlogPostService) List(publishedOnly bool, page, pageSize int) (*BlogPostListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	posts, total, err := s.repo.GetAll(publishedOnly, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	return &BlogPostListResponse{
		Posts:    posts,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an existing blog post; admin only
func (s *BlogPostService) Update(identity *auth.Identity, id uuid.UUID, input BlogPostInput) (*models.BlogPost, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrNotAdmin
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	post.Slug = input.Slug
	post.Title = input.Title
	post.Excerpt = input.Excerpt
	post.Content = input.Content
	if input.IsPublished && !post.IsPublished {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}
	post.IsPublished = input.IsPublished

	if err := s.repo.Update(post); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}
	return post, nil
}

// Delete deletes a blog post; admin only
func (s *BlogPostService) Delete(identity *auth.Identity, id uuid.UUID) error {
	if !identity.IsAdmin() {
		return apperrors.ErrNotAdmin
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBlogPostNotFound
		}
		return fmt.Errorf("failed to get blog post: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	return nil
}
