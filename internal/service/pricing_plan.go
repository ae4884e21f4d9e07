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

// PricingPlanService handles pricing plan business logic
type PricingPlanService struct {
	repo      repository.PricingPlanRepositoryInterface
	validator *validator.Validate
}

// NewPricingPlanService creates a new pricing plan service
func NewPricingPlanService(repo repository.PricingPlanRepositoryInterface, validator *validator.Validate) *PricingPlanService {
	return &PricingPlanService{repo: repo, validator: validator}
}

// PricingPlanInput represents the request to create or update a pricing plan
type PricingPlanInput struct {
	Name          string   `json:"name"`
	PriceCents    int64    `json:"price_cents"`
	Currency      string   `json:"currency"`
	BillingPeriod string   `json:"billing_period"`
	Features      []string `json:"features"`
	IsHighlighted bool     `json:"is_highlighted"`
	SortOrder     int      `json:"sort_order"`
}

func (s *PricingPlanService) apply(plan *models.PricingPlan, input PricingPlanInput) error {
	plan.Name = strings.TrimSpace(input.Name)
	plan.PriceCents = input.PriceCents
	plan.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))
	plan.BillingPeriod = strings.TrimSpace(input.BillingPeriod)
	plan.Features = input.Features
	plan.IsHighlighted = input.IsHighlighted
	plan.SortOrder = input.SortOrder

	if err := s.validator.Struct(plan); err != nil {
		verrs := apperrors.NewValidationErrors()
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				verrs.Add(strings.ToLower(fe.StructField()), fieldMessage(fe))
			}
		}
		return verrs
	}
	return nil
}

// Create creates a new pricing plan; admin only
func (s *PricingPlanService) Create(identity *auth.Identity, input PricingPlanInput) (*models.PricingPlan, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrNotAdmin
	}

	plan := &models.PricingPlan{}
	if err := s.apply(plan, input); err != nil {
		return nil, err
	}

	if err := s.repo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create pricing plan: %w", err)
	}
	return plan, nil
}

// GetAll retrieves all pricing plans ordered for display
func (s *PricingPlanService) GetAll() ([]models.PricingPlan, error) {
	plans, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing plans: %w", err)
	}
	return plans, nil
}

// Update updates an existing pricing plan; admin only
func (s *PricingPlanService) Update(identity *auth.Identity, id uuid.UUID, input PricingPlanInput) (*models.PricingPlan, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrNotAdmin
	}

	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPricingPlanNotFound
		}
		return nil, fmt.Errorf("failed to get pricing plan: %w", err)
	}

	if err := s.apply(plan, input); err != nil {
		return nil, err
	}

	if err := s.repo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to update pricing plan: %w", err)
	}
	return plan, nil
}

// Delete deletes a pricing plan; admin only
func (s *PricingPlanService) Delete(identity *auth.Identity, id uuid.UUID) error {
	if !identity.IsAdmin() {
		return apperrors.ErrNotAdmin
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPricingPlanNotFound
		}
		return fmt.Errorf("failed to get pricing plan: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete pricing plan: %w", err)
	}
	return nil
}
