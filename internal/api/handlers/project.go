package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxMultipartMemory bounds the in-memory portion of a multipart parse;
// larger file parts spill to temp files.
const maxMultipartMemory = 32 << 20

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject handles POST /admin/projects
// @Summary Create a new project
// @Description Create a new portfolio project from a multipart form with optional gallery images
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Project title"
// @Param slug formData string true "URL slug"
// @Param detailedContent formData string true "Detailed content"
// @Param projectImages formData file false "Gallery images"
// @Success 201 {object} service.FormResult "Successfully created project"
// @Failure 400 {object} ErrorResponse "Malformed multipart form"
// @Failure 401 {object} service.FormResult "Not authenticated"
// @Failure 403 {object} service.FormResult "Not an admin"
// @Failure 409 {object} service.FormResult "Slug already taken"
// @Failure 422 {object} service.FormResult "Validation errors"
// @Failure 502 {object} service.FormResult "Image upload failed"
// @Security BearerAuth
// @Router /admin/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	input, err := parseProjectForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), identity, *input)
	if err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.JSON(http.StatusCreated, service.SuccessResult("project created", project.ID.String()))
}

// UpdateProject handles PUT /admin/projects/:id
// @Summary Update a project
// @Description Update an existing project; newly uploaded images are appended to the gallery
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.FormResult "Successfully updated project"
// @Failure 400 {object} ErrorResponse "Invalid project ID or form"
// @Failure 404 {object} service.FormResult "Project not found"
// @Failure 409 {object} service.FormResult "Slug already taken"
// @Failure 422 {object} service.FormResult "Validation errors"
// @Security BearerAuth
// @Router /admin/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project ID"})
		return
	}

	input, err := parseProjectForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), identity, id, *input)
	if err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.JSON(http.StatusOK, service.SuccessResult("project updated", project.ID.String()))
}

// GetProjectByID handles GET /admin/projects/:id
// @Summary Get project by ID
// @Description Get a project by its identifier, e.g. to populate an edit form
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project ID"})
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		c.JSON(service.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetProject handles GET /projects/:slug
// @Summary Get project by slug
// @Description Get a specific project with its image gallery
// @Tags projects
// @Accept json
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{slug} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(service.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects handles GET /projects
// @Summary List projects
// @Description List projects with pagination, newest first
// @Tags projects
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ProjectListResponse "Successfully retrieved projects"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	projects, err := h.projectService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetFeaturedProjects handles GET /projects/featured
// @Summary Get featured projects
// @Description Get the projects flagged for the landing page
// @Tags projects
// @Accept json
// @Produce json
// @Success 200 {array} service.ProjectResponse "Successfully retrieved featured projects"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/featured [get]
func (h *ProjectHandler) GetFeaturedProjects(c *gin.Context) {
	projects, err := h.projectService.GetFeatured()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get featured projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// DeleteProject handles DELETE /admin/projects/:id
// @Summary Delete a project
// @Description Delete a project and its image records
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 204 "Successfully deleted project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} service.FormResult "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project ID"})
		return
	}

	if err := h.projectService.Delete(identity, id); err != nil {
		c.JSON(service.HTTPStatus(err), service.Report(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// parseProjectForm maps a multipart form onto a ProjectInput. File contents
// are read fully here so the service layer never touches the request.
func parseProjectForm(c *gin.Context) (*service.ProjectInput, error) {
	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, err
	}

	input := &service.ProjectInput{
		Title:            c.PostForm("title"),
		Slug:             c.PostForm("slug"),
		ShortDescription: c.PostForm("shortDescription"),
		DetailedContent:  c.PostForm("detailedContent"),
		LiveURL:          c.PostForm("liveUrl"),
		GithubURL:        c.PostForm("githubUrl"),
		Technologies:     c.PostForm("technologies"),
		Category:         c.PostForm("category"),
		IsFeatured:       c.PostForm("isFeatured"),
		AltTexts:         c.PostFormArray("altTexts"),
	}

	form := c.Request.MultipartForm
	for _, header := range form.File["projectImages"] {
		file, err := readFilePart(header)
		if err != nil {
			return nil, err
		}
		input.Files = append(input.Files, *file)
	}

	return input, nil
}

func readFilePart(header *multipart.FileHeader) (*service.FileUpload, error) {
	part, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return nil, err
	}

	return &service.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}
