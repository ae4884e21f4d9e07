package handlers

import (
	"net/http"
	"strconv"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler handles HTTP requests for the contact form
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// SubmitContact handles POST /contact
// @Summary Submit the contact form
// @Description Store a message from the public contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param submission body service.ContactInput true "Contact form data"
// @Success 201 {object} service.FormResult "Successfully submitted"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} service.FormResult "Validation errors"
// @Router /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var input service.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.contactService.Submit(input); err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.JSON(http.StatusCreated, service.SuccessResult("message received", ""))
}

// ListContactSubmissions handles GET /admin/contact
// @Summary List contact submissions
// @Tags contact
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ContactListResponse "Successfully retrieved submissions"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/contact [get]
func (h *ContactHandler) ListContactSubmissions(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	submissions, err := h.contactService.List(identity, page, pageSize)
	if err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// MarkContactSubmissionRead handles PATCH /admin/contact/:id/read
// @Summary Mark a contact submission as read
// @Tags contact
// @Accept json
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Success 204 "Successfully marked read"
// @Failure 400 {object} ErrorResponse "Invalid submission ID"
// @Failure 404 {object} service.FormResult "Submission not found"
// @Security BearerAuth
// @Router /admin/contact/{id}/read [patch]
func (h *ContactHandler) MarkContactSubmissionRead(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission ID"})
		return
	}

	if err := h.contactService.MarkRead(identity, id); err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteContactSubmission handles DELETE /admin/contact/:id
// @Summary Delete a contact submission
// @Tags contact
// @Accept json
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Success 204 "Successfully deleted submission"
// @Failure 400 {object} ErrorResponse "Invalid submission ID"
// @Failure 404 {object} service.FormResult "Submission not found"
// @Security BearerAuth
// @Router /admin/contact/{id} [delete]
func (h *ContactHandler) DeleteContactSubmission(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission ID"})
		return
	}

	if err := h.contactService.Delete(identity, id); err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.Status(http.StatusNoContent)
}
