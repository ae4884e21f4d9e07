package routes

import (
	"portfolio-backend/internal/api/handlers"
	"portfolio-backend/internal/api/middleware"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/service"
	"portfolio-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, store storage.ObjectStorage, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()
	service.RegisterCustomValidations(validate)

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	blogPostRepo := repository.NewBlogPostRepository(db)
	pricingPlanRepo := repository.NewPricingPlanRepository(db)
	contactRepo := repository.NewContactSubmissionRepository(db)

	// Initialize services
	projectService := service.NewProjectService(projectRepo, store, validate)
	blogPostService := service.NewBlogPostService(blogPostRepo, validate)
	pricingPlanService := service.NewPricingPlanService(pricingPlanRepo, validate)
	contactService := service.NewContactService(contactRepo, validate)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService)
	blogPostHandler := handlers.NewBlogPostHandler(blogPostService)
	pricingPlanHandler := handlers.NewPricingPlanHandler(pricingPlanService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Public API routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/projects", projectHandler.ListProjects)
		v1.GET("/projects/featured", projectHandler.GetFeaturedProjects)
		v1.GET("/projects/:slug", projectHandler.GetProject)
		v1.GET("/blog", authMiddleware.OptionalIdentity(), blogPostHandler.ListBlogPosts)
		v1.GET("/blog/:slug", authMiddleware.OptionalIdentity(), blogPostHandler.GetBlogPost)
		v1.GET("/pricing", pricingPlanHandler.ListPricingPlans)
		v1.POST("/contact", contactHandler.SubmitContact)
	}

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.GET("/projects/:id", projectHandler.GetProjectByID)
		admin.POST("/projects", projectHandler.CreateProject)
		admin.PUT("/projects/:id", projectHandler.UpdateProject)
		admin.DELETE("/projects/:id", projectHandler.DeleteProject)

		admin.GET("/blog", blogPostHandler.ListBlogPosts)
		admin.POST("/blog", blogPostHandler.CreateBlogPost)
		admin.PUT("/blog/:id", blogPostHandler.UpdateBlogPost)
		admin.DELETE("/blog/:id", blogPostHandler.DeleteBlogPost)

		admin.POST("/pricing", pricingPlanHandler.CreatePricingPlan)
		admin.PUT("/pricing/:id", pricingPlanHandler.UpdatePricingPlan)
		admin.DELETE("/pricing/:id", pricingPlanHandler.DeletePricingPlan)

		admin.GET("/contact", contactHandler.ListContactSubmissions)
		admin.PATCH("/contact/:id/read", contactHandler.MarkContactSubmissionRead)
		admin.DELETE("/contact/:id", contactHandler.DeleteContactSubmission)
	}

	return router
}
