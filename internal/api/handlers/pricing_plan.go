package handlers

import (
	"net/http"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PricingPlanHandler handles HTTP requests for pricing plan operations
type PricingPlanHandler struct {
	pricingPlanService service.PricingPlanServiceInterface
}

// NewPricingPlanHandler creates a new pricing plan handler
func NewPricingPlanHandler(pricingPlanService service.PricingPlanServiceInterface) *PricingPlanHandler {
	return &PricingPlanHandler{
		pricingPlanService: pricingPlanService,
	}
}

// ListPricingPlans handles GET /pricing
// @Summary List pricing plans
// @Description List all pricing plans in display order
// @Tags pricing
// @Accept json
// @Produce json
// @Success 200 {array} models.PricingPlan "Successfully retrieved pricing plans"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /pricing [get]
func (h *PricingPlanHandler) ListPricingPlans(c *gin.Context) {
	plans, err := h.pricingPlanService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list pricing plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// CreatePricingPlan handles POST /admin/pricing
// @Summary Create a pricing plan
// @Tags pricing
// @Accept json
// @Produce json
// @Param plan body service.PricingPlanInput true "Pricing plan data"
// @Success 201 {object} models.PricingPlan "Successfully created pricing plan"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} service.FormResult "Validation errors"
// @Security BearerAuth
// @Router /admin/pricing [post]
func (h *PricingPlanHandler) CreatePricingPlan(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var input service.PricingPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	plan, err := h.pricingPlanService.Create(identity, input)
	if err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// UpdatePricingPlan handles PUT /admin/pricing/:id
// @Summary Update a pricing plan
// @Tags pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing plan ID (UUID)"
// @Param plan body service.PricingPlanInput true "Pricing plan data"
// @Success 200 {object} models.PricingPlan "Successfully updated pricing plan"
// @Failure 400 {object} ErrorResponse "Invalid pricing plan ID or request body"
// @Failure 404 {object} service.FormResult "Pricing plan not found"
// @Failure 422 {object} service.FormResult "Validation errors"
// @Security BearerAuth
// @Router /admin/pricing/{id} [put]
func (h *PricingPlanHandler) UpdatePricingPlan(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pricing plan ID"})
		return
	}

	var input service.PricingPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	plan, err := h.pricingPlanService.Update(identity, id, input)
	if err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePricingPlan handles DELETE /admin/pricing/:id
// @Summary Delete a pricing plan
// @Tags pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing plan ID (UUID)"
// @Success 204 "Successfully deleted pricing plan"
// @Failure 400 {object} ErrorResponse "Invalid pricing plan ID"
// @Failure 404 {object} service.FormResult "Pricing plan not found"
// @Security BearerAuth
// @Router /admin/pricing/{id} [delete]
func (h *PricingPlanHandler) DeletePricingPlan(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pricing plan ID"})
		return
	}

	if err := h.pricingPlanService.Delete(identity, id); err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.Status(http.StatusNoContent)
}
