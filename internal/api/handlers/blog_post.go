package handlers

import (
	"net/http"
	"strconv"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BlogPostHandler handles HTTP requests for blog post operations
type BlogPostHandler struct {
	blogPostService service.BlogPostServiceInterface
}

// NewBlogPostHandler creates a new blog post handler
func NewBlogPostHandler(blogPostService service.BlogPostServiceInterface) *BlogPostHandler {
	return &BlogPostHandler{
		blogPostService: blogPostService,
	}
}

// CreateBlogPost handles POST /admin/blog
// @Summary Create a new blog post
// @Description Create a new blog post, optionally publishing it immediately
// @Tags blog
// @Accept json
// @Produce json
// @Param post body service.BlogPostInput true "Blog post data"
// @Success 201 {object} models.BlogPost "Successfully created blog post"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} service.FormResult "Slug already taken"
// @Failure 422 {object} service.FormResult "Validation errors"
// @Security BearerAuth
// @Router /admin/blog [post]
func (h *BlogPostHandler) CreateBlogPost(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var input service.BlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	post, err := h.blogPostService.Create(identity, input)
	if err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetBlogPost handles GET /blog/:slug
// @Summary Get blog post by slug
// @Tags blog
// @Accept json
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} models.BlogPost "Successfully retrieved blog post"
// @Failure 404 {object} ErrorResponse "Blog post not found"
// @Router /blog/{slug} [get]
func (h *BlogPostHandler) GetBlogPost(c *gin.Context) {
	post, err := h.blogPostService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(service.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	// Drafts are only visible through the admin listing
	if !post.IsPublished {
		if identity, ok := auth.GetIdentity(c); !ok || !identity.IsAdmin() {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "blog post not found"})
			return
		}
	}

	c.JSON(http.StatusOK, post)
}

// ListBlogPosts handles GET /blog
// @Summary List published blog posts
// @Tags blog
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.BlogPostListResponse "Successfully retrieved blog posts"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /blog [get]
func (h *BlogPostHandler) ListBlogPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	publishedOnly := true
	if identity, ok := auth.GetIdentity(c); ok && identity.IsAdmin() {
		publishedOnly = false
	}

	posts, err := h.blogPostService.List(publishedOnly, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list blog posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UpdateBlogPost handles PUT /admin/blog/:id
// @Summary Update a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param id path string true "Blog post ID (UUID)"
// @Param post body service.BlogPostInput true "Blog post data"
// @Success 200 {object} models.BlogPost "Successfully updated blog post"
// @Failure 400 {object} ErrorResponse "Invalid blog post ID or request body"
// @Failure 404 {object} service.FormResult "Blog post not found"
// @Failure 422 {object} service.FormResult "Validation errors"
// @Security BearerAuth
// @Router /admin/blog/{id} [put]
func (h *BlogPostHandler) UpdateBlogPost(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid blog post ID"})
		return
	}

	var input service.BlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	post, err := h.blogPostService.Update(identity, id, input)
	if err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeleteBlogPost handles DELETE /admin/blog/:id
// @Summary Delete a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param id path string true "Blog post ID (UUID)"
// @Success 204 "Successfully deleted blog post"
// @Failure 400 {object} ErrorResponse "Invalid blog post ID"
// @Failure 404 {object} service.FormResult "Blog post not found"
// @Security BearerAuth
// @Router /admin/blog/{id} [delete]
func (h *BlogPostHandler) DeleteBlogPost(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid blog post ID"})
		return
	}

	if err := h.blogPostService.Delete(identity, id); err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.Status(http.StatusNoContent)
}
