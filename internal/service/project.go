package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProjectService runs the project creation/update pipeline: guard,
// validate, upload, persist. Any failure stops the pipeline at that stage;
// later stages are never invoked.
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	storage   storage.ObjectStorage
	validator *validator.Validate
	logger    *logrus.Entry
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, store storage.ObjectStorage, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		storage:   store,
		validator: validator,
		logger:    logrus.WithField("service", "project"),
	}
}

// ProjectImageResponse represents one gallery image in API responses
type ProjectImageResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	AltText   string    `json:"alt_text"`
	SortOrder int       `json:"sort_order"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID               uuid.UUID              `json:"id"`
	Slug             string                 `json:"slug"`
	Title            string                 `json:"title"`
	ShortDescription string                 `json:"short_description"`
	DetailedContent  string                 `json:"detailed_content"`
	LiveURL          string                 `json:"live_url"`
	GithubURL        string                 `json:"github_url"`
	Technologies     []string               `json:"technologies"`
	Category         string                 `json:"category"`
	IsFeatured       bool                   `json:"is_featured"`
	Images           []ProjectImageResponse `json:"images"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create runs the full pipeline for a new project. The identity is passed
// explicitly so the pipeline is testable without an HTTP request context.
// Uploads run sequentially and happen before the transaction; if the save
// fails afterwards the uploaded files are orphaned (logged, not retracted).
func (s *ProjectService) Create(ctx context.Context, identity *auth.Identity, input ProjectInput) (*ProjectResponse, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrNotAdmin
	}

	fields, verrs := s.validateInput(input)
	if verrs != nil {
		return nil, verrs
	}

	images, err := s.uploadImages(ctx, input)
	if err != nil {
		return nil, err
	}
	for i := range images {
		images[i].SortOrder = i
	}

	project := &models.Project{
		Slug:             fields.Slug,
		Title:            fields.Title,
		ShortDescription: fields.ShortDescription,
		DetailedContent:  fields.DetailedContent,
		LiveURL:          fields.LiveURL,
		GithubURL:        fields.GithubURL,
		Technologies:     fields.Technologies,
		Category:         fields.Category,
		IsFeatured:       fields.IsFeatured,
	}

	if err := s.repo.CreateWithImages(project, images); err != nil {
		s.logOrphanedUploads(images, err)
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	project.Images = images
	return s.toResponse(project), nil
}

// Update runs the pipeline against an existing project. Newly uploaded
// images are appended after the current ones; existing images are left
// untouched.
func (s *ProjectService) Update(ctx context.Context, identity *auth.Identity, id uuid.UUID, input ProjectInput) (*ProjectResponse, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrNotAdmin
	}

	fields, verrs := s.validateInput(input)
	if verrs != nil {
		return nil, verrs
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	newImages, err := s.uploadImages(ctx, input)
	if err != nil {
		return nil, err
	}

	project.Slug = fields.Slug
	project.Title = fields.Title
	project.ShortDescription = fields.ShortDescription
	project.DetailedContent = fields.DetailedContent
	project.LiveURL = fields.LiveURL
	project.GithubURL = fields.GithubURL
	project.Technologies = fields.Technologies
	project.Category = fields.Category
	project.IsFeatured = fields.IsFeatured
	project.Images = nil

	if err := s.repo.UpdateWithNewImages(project, newImages); err != nil {
		s.logOrphanedUploads(newImages, err)
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}
	return s.toResponse(updated), nil
}

// uploadImages pushes each file to the object store in submission order so
// the resulting URL index matches its alt text. The first failure aborts
// the rest; already-uploaded siblings are not retracted.
func (s *ProjectService) uploadImages(ctx context.Context, input ProjectInput) ([]models.ProjectImage, error) {
	images := make([]models.ProjectImage, 0, len(input.Files))
	for i, file := range input.Files {
		url, err := s.storage.Upload(ctx, file.Data, file.ContentType, imageFolder)
		if err != nil {
			s.logger.WithError(err).WithField("file", file.Name).Error("image upload failed")
			return nil, apperrors.NewUploadError(file.Name, err)
		}
		images = append(images, models.ProjectImage{
			URL:     url,
			AltText: strings.TrimSpace(input.AltTexts[i]),
		})
	}
	return images, nil
}

// logOrphanedUploads records files left behind in the object store when the
// save fails after the uploads succeeded. Nothing reconciles these; the log
// line is the only trace.
func (s *ProjectService) logOrphanedUploads(images []models.ProjectImage, cause error) {
	if len(images) == 0 {
		return
	}
	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.URL
	}
	s.logger.WithError(cause).WithField("urls", urls).Warn("uploaded files orphaned by failed save")
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return s.toResponse(project), nil
}

// GetBySlug retrieves a project by its slug
func (s *ProjectService) GetBySlug(slug string) (*ProjectResponse, error) {
	project, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return s.toResponse(project), nil
}

// List retrieves projects with pagination
func (s *ProjectService) List(page, pageSize int) (*ProjectListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	projects, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.toResponse(&projects[i])
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

const featuredLimit = 6

// GetFeatured retrieves the projects flagged for the landing page
func (s *ProjectService) GetFeatured() ([]ProjectResponse, error) {
	projects, err := s.repo.GetFeatured(featuredLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get featured projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.toResponse(&projects[i])
	}
	return responses, nil
}

// Delete deletes a project and its image rows
func (s *ProjectService) Delete(identity *auth.Identity, id uuid.UUID) error {
	if !identity.IsAdmin() {
		return apperrors.ErrNotAdmin
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// toResponse converts a project model to response
func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	images := make([]ProjectImageResponse, len(project.Images))
	for i, img := range project.Images {
		images[i] = ProjectImageResponse{
			ID:        img.ID,
			URL:       img.URL,
			AltText:   img.AltText,
			SortOrder: img.SortOrder,
		}
	}

	technologies := project.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	return &ProjectResponse{
		ID:               project.ID,
		Slug:             project.Slug,
		Title:            project.Title,
		ShortDescription: project.ShortDescription,
		DetailedContent:  project.DetailedContent,
		LiveURL:          project.LiveURL,
		GithubURL:        project.GithubURL,
		Technologies:     technologies,
		Category:         project.Category,
		IsFeatured:       project.IsFeatured,
		Images:           images,
		CreatedAt:        project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        project.UpdatedAt.Format(time.RFC3339),
	}
}
