package testutils

import (
	"fmt"
	"time"

	"portfolio-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenient test setup
type FactorySet struct {
	Project           *ProjectFactory
	ProjectImage      *ProjectImageFactory
	BlogPost          *BlogPostFactory
	PricingPlan       *PricingPlanFactory
	ContactSubmission *ContactSubmissionFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:           NewProjectFactory(),
		ProjectImage:      NewProjectImageFactory(),
		BlogPost:          NewBlogPostFactory(),
		PricingPlan:       NewPricingPlanFactory(),
		ContactSubmission: NewContactSubmissionFactory(),
	}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()

	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Slug derives from the UUID so parallel fixtures never collide
		Slug:             "test-project-" + id.String()[:8],
		Title:            "Test Project",
		ShortDescription: "A short description of the test project",
		DetailedContent:  "Detailed content describing the test project in depth.",
		LiveURL:          "https://example.com",
		GithubURL:        "https://github.com/example/test-project",
		Technologies:     []string{"Go", "PostgreSQL"},
		Category:         "web",
		IsFeatured:       false,
	}
}

// WithSlug sets a custom slug for the project
func (f *ProjectFactory) WithSlug(slug string) *models.Project {
	project := f.Create()
	project.Slug = slug
	return project
}

// Featured creates a featured project
func (f *ProjectFactory) Featured() *models.Project {
	project := f.Create()
	project.IsFeatured = true
	return project
}

// WithImages creates a project with n gallery images in order
func (f *ProjectFactory) WithImages(n int) *models.Project {
	project := f.Create()
	for i := 0; i < n; i++ {
		project.Images = append(project.Images, models.ProjectImage{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			ProjectID: project.ID,
			URL:       fmt.Sprintf("https://cdn.example.com/projects/image-%d.jpg", i),
			AltText:   fmt.Sprintf("Screenshot %d", i),
			SortOrder: i,
		})
	}
	return project
}

// ProjectImageFactory provides methods to create test ProjectImage data
type ProjectImageFactory struct{}

// NewProjectImageFactory creates a new ProjectImageFactory
func NewProjectImageFactory() *ProjectImageFactory {
	return &ProjectImageFactory{}
}

// Create creates a test ProjectImage with default values
func (f *ProjectImageFactory) Create(projectID uuid.UUID, sortOrder int) *models.ProjectImage {
	return &models.ProjectImage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: projectID,
		URL:       "https://cdn.example.com/projects/" + uuid.New().String() + ".jpg",
		AltText:   "A test image",
		SortOrder: sortOrder,
	}
}

// BlogPostFactory provides methods to create test BlogPost data
type BlogPostFactory struct{}

// NewBlogPostFactory creates a new BlogPostFactory
func NewBlogPostFactory() *BlogPostFactory {
	return &BlogPostFactory{}
}

// Create creates a test BlogPost with default values
func (f *BlogPostFactory) Create() *models.BlogPost {
	id := uuid.New()

	return &models.BlogPost{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Slug:        "test-post-" + id.String()[:8],
		Title:       "Test Blog Post",
		Excerpt:     "A short excerpt for the test post",
		Content:     "The full content of the test blog post, long enough to pass validation.",
		IsPublished: false,
	}
}

// Published creates a published blog post
func (f *BlogPostFactory) Published() *models.BlogPost {
	post := f.Create()
	now := time.Now()
	post.IsPublished = true
	post.PublishedAt = &now
	return post
}

// WithSlug sets a custom slug for the blog post
func (f *BlogPostFactory) WithSlug(slug string) *models.BlogPost {
	post := f.Create()
	post.Slug = slug
	return post
}

// PricingPlanFactory provides methods to create test PricingPlan data
type PricingPlanFactory struct{}

// NewPricingPlanFactory creates a new PricingPlanFactory
func NewPricingPlanFactory() *PricingPlanFactory {
	return &PricingPlanFactory{}
}

// Create creates a test PricingPlan with default values
func (f *PricingPlanFactory) Create() *models.PricingPlan {
	return &models.PricingPlan{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:          "Basic",
		PriceCents:    49900,
		Currency:      "USD",
		BillingPeriod: "project",
		Features:      []string{"Landing page", "Contact form"},
		IsHighlighted: false,
		SortOrder:     0,
	}
}

// WithSortOrder sets a custom sort order for the plan
func (f *PricingPlanFactory) WithSortOrder(order int) *models.PricingPlan {
	plan := f.Create()
	plan.SortOrder = order
	plan.Name = fmt.Sprintf("Plan %d", order)
	return plan
}

// ContactSubmissionFactory provides methods to create test ContactSubmission data
type ContactSubmissionFactory struct{}

// NewContactSubmissionFactory creates a new ContactSubmissionFactory
func NewContactSubmissionFactory() *ContactSubmissionFactory {
	return &ContactSubmissionFactory{}
}

// Create creates a test ContactSubmission with default values
func (f *ContactSubmissionFactory) Create() *models.ContactSubmission {
	return &models.ContactSubmission{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Jane Doe",
		Email:   "jane.doe@example.com",
		Message: "Hello, I would like to discuss a project with you.",
		IsRead:  false,
	}
}
