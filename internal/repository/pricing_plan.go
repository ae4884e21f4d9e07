package repository

import (
	"portfolio-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PricingPlanRepository handles database operations for pricing plans
type PricingPlanRepository struct {
	db *gorm.DB
}

// NewPricingPlanRepository creates a new pricing plan repository
func NewPricingPlanRepository(db *gorm.DB) *PricingPlanRepository {
	return &PricingPlanRepository{db: db}
}

// Create creates a new pricing plan
func (r *PricingPlanRepository) Create(plan *models.PricingPlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a pricing plan by ID
func (r *PricingPlanRepository) GetByID(id uuid.UUID) (*models.PricingPlan, error) {
	var plan models.PricingPlan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetAll retrieves all pricing plans in display order
func (r *PricingPlanRepository) GetAll() ([]models.PricingPlan, error) {
	var plans []models.PricingPlan
	err := r.db.Order("sort_order ASC, created_at ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Update updates a pricing plan
func (r *PricingPlanRepository) Update(plan *models.PricingPlan) error {
	return r.db.Save(plan).Error
}

// Delete deletes a pricing plan
func (r *PricingPlanRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PricingPlan{}, "id = ?", id).Error
}
