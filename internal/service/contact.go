package service

import (
	"errors"
	"fmt"
	"strings"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactService handles contact form submissions. Submitting is public;
// reading and managing submissions is admin only.
type ContactService struct {
	repo      repository.ContactSubmissionRepositoryInterface
	validator *validator.Validate
}

// NewContactService creates a new contact service
func NewContactService(repo repository.ContactSubmissionRepositoryInterface, validator *validator.Validate) *ContactService {
	return &ContactService{repo: repo, validator: validator}
}

// ContactInput represents a contact form submission
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactListResponse represents a paginated list of submissions
type ContactListResponse struct {
	Submissions []models.ContactSubmission `json:"submissions"`
	Total       int64                      `json:"total"`
	Page        int                        `json:"page"`
	PageSize    int                        `json:"page_size"`
}

// Submit validates and stores a contact form submission
func (s *ContactService) Submit(input ContactInput) (*models.ContactSubmission, error) {
	submission := &models.ContactSubmission{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Message: strings.TrimSpace(input.Message),
	}

	if err := s.validator.Struct(submission); err != nil {
		verrs := apperrors.NewValidationErrors()
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				verrs.Add(strings.ToLower(fe.StructField()), contactFieldMessage(fe))
			}
		}
		return nil, verrs
	}

	if err := s.repo.Create(submission); err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}
	return submission, nil
}

func contactFieldMessage(fe validator.FieldError) string {
	if fe.Tag() == "email" {
		return "must be a valid email address"
	}
	return fieldMessage(fe)
}

// List retrieves submissions with pagination; admin only
func (s *ContactService) List(identity *auth.Identity, page, pageSize int) (*ContactListResponse, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrNotAdmin
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	submissions, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return &ContactListResponse{
		Submissions: submissions,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// MarkRead marks a submission as read; admin only
func (s *ContactService) MarkRead(identity *auth.Identity, id uuid.UUID) error {
	if !identity.IsAdmin() {
		return apperrors.ErrNotAdmin
	}

	if err := s.repo.MarkRead(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactSubmissionNotFound
		}
		return fmt.Errorf("failed to mark submission read: %w", err)
	}
	return nil
}

// Delete removes a submission; admin only
func (s *ContactService) Delete(identity *auth.Identity, id uuid.UUID) error {
	if !identity.IsAdmin() {
		return apperrors.ErrNotAdmin
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactSubmissionNotFound
		}
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	return nil
}
