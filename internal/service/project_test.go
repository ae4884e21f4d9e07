package service_test

import (
	"context"
	"errors"
	"testing"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/mocks"
	"portfolio-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockProjectRepositoryInterface
	mockStorage    *mocks.MockObjectStorage
	projectService *service.ProjectService
	admin          *auth.Identity
	visitor        *auth.Identity
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockStorage = mocks.NewMockObjectStorage(suite.ctrl)

	validate := validator.New()
	service.RegisterCustomValidations(validate)
	suite.projectService = service.NewProjectService(suite.mockRepo, suite.mockStorage, validate)

	suite.admin = &auth.Identity{Subject: "admin@example.com", Role: auth.RoleAdmin}
	suite.visitor = &auth.Identity{Subject: "visitor@example.com", Role: "viewer"}
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validInput() service.ProjectInput {
	return service.ProjectInput{
		Title:           "Customer Portal",
		Slug:            "customer-portal",
		DetailedContent: "A long write-up about the customer portal build.",
		Technologies:    "Go, PostgreSQL",
		Category:        "web",
	}
}

func pngUpload(name string) service.FileUpload {
	return service.FileUpload{
		Name:        name,
		ContentType: "image/png",
		Size:        1024,
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	}
}

// TestCreateProject tests the create pipeline end to end
func (suite *ProjectServiceTestSuite) TestCreateProject() {
	suite.T().Run("Success without images", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			CreateWithImages(gomock.Any(), gomock.Len(0)).
			DoAndReturn(func(project *models.Project, images []models.ProjectImage) error {
				project.ID = uuid.New()
				assert.Equal(t, "customer-portal", project.Slug)
				assert.Equal(t, []string{"Go", "PostgreSQL"}, project.Technologies)
				return nil
			})

		resp, err := suite.projectService.Create(context.Background(), suite.admin, validInput())

		assert.NoError(t, err)
		assert.Equal(t, "customer-portal", resp.Slug)
		assert.Empty(t, resp.Images)
	})

	suite.T().Run("Images uploaded in submission order", func(t *testing.T) {
		input := validInput()
		input.Files = []service.FileUpload{pngUpload("a.png"), pngUpload("b.png"), pngUpload("c.png")}
		input.AltTexts = []string{"first", "second", "third"}

		gomock.InOrder(
			suite.mockStorage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", "projects").Return("https://cdn/a.png", nil),
			suite.mockStorage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", "projects").Return("https://cdn/b.png", nil),
			suite.mockStorage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", "projects").Return("https://cdn/c.png", nil),
		)
		suite.mockRepo.EXPECT().
			CreateWithImages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(project *models.Project, images []models.ProjectImage) error {
				project.ID = uuid.New()
				assert.Len(t, images, 3)
				for i, img := range images {
					assert.Equal(t, i, img.SortOrder)
				}
				assert.Equal(t, "https://cdn/a.png", images[0].URL)
				assert.Equal(t, "first", images[0].AltText)
				assert.Equal(t, "https://cdn/c.png", images[2].URL)
				return nil
			})

		_, err := suite.projectService.Create(context.Background(), suite.admin, input)
		assert.NoError(t, err)
	})

	suite.T().Run("Non-admin gets authorization error without side effects", func(t *testing.T) {
		// No EXPECTs registered: any storage or repo call fails the test
		input := validInput()
		input.Files = []service.FileUpload{pngUpload("a.png")}
		input.AltTexts = []string{"first"}

		_, err := suite.projectService.Create(context.Background(), suite.visitor, input)

		assert.True(t, apperrors.IsAuthorization(err))
	})

	suite.T().Run("Invalid slug stops pipeline before uploads", func(t *testing.T) {
		input := validInput()
		input.Slug = "Not A Slug!"
		input.Files = []service.FileUpload{pngUpload("a.png")}
		input.AltTexts = []string{"first"}

		_, err := suite.projectService.Create(context.Background(), suite.admin, input)

		var verrs *apperrors.ValidationErrors
		assert.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs.Fields, "slug")
	})

	suite.T().Run("Upload failure aborts remaining uploads and persist", func(t *testing.T) {
		input := validInput()
		input.Files = []service.FileUpload{pngUpload("good.png"), pngUpload("bad.png"), pngUpload("never.png")}
		input.AltTexts = []string{"one", "two", "three"}

		gomock.InOrder(
			suite.mockStorage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", "projects").Return("https://cdn/good.png", nil),
			suite.mockStorage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", "projects").Return("", errors.New("bucket unavailable")),
		)

		_, err := suite.projectService.Create(context.Background(), suite.admin, input)

		var uerr *apperrors.UploadError
		assert.True(t, errors.As(err, &uerr))
		assert.Equal(t, "bad.png", uerr.FileName)
	})

	suite.T().Run("Slug conflict surfaces as already-exists", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			CreateWithImages(gomock.Any(), gomock.Any()).
			Return(apperrors.ErrProjectSlugTaken)

		_, err := suite.projectService.Create(context.Background(), suite.admin, validInput())

		assert.True(t, apperrors.IsAlreadyExists(err))
	})
}

// TestCreateProjectValidation tests the validation stage in isolation
func (suite *ProjectServiceTestSuite) TestCreateProjectValidation() {
	testCases := []struct {
		name          string
		mutate        func(*service.ProjectInput)
		expectedField string
	}{
		{
			name:          "Missing title",
			mutate:        func(in *service.ProjectInput) { in.Title = "" },
			expectedField: "title",
		},
		{
			name:          "Title too short",
			mutate:        func(in *service.ProjectInput) { in.Title = "ab" },
			expectedField: "title",
		},
		{
			name:          "Uppercase slug",
			mutate:        func(in *service.ProjectInput) { in.Slug = "My-Project" },
			expectedField: "slug",
		},
		{
			name:          "Slug with leading hyphen",
			mutate:        func(in *service.ProjectInput) { in.Slug = "-project" },
			expectedField: "slug",
		},
		{
			name:          "Detailed content too short",
			mutate:        func(in *service.ProjectInput) { in.DetailedContent = "short" },
			expectedField: "detailedContent",
		},
		{
			name:          "Malformed live URL",
			mutate:        func(in *service.ProjectInput) { in.LiveURL = "not-a-url" },
			expectedField: "liveUrl",
		},
		{
			name: "Count mismatch between images and alt texts",
			mutate: func(in *service.ProjectInput) {
				in.Files = []service.FileUpload{pngUpload("a.png")}
				in.AltTexts = nil
			},
			expectedField: "images",
		},
		{
			name: "Oversized image",
			mutate: func(in *service.ProjectInput) {
				f := pngUpload("huge.png")
				f.Size = 6 << 20
				in.Files = []service.FileUpload{f}
				in.AltTexts = []string{"huge"}
			},
			expectedField: "images",
		},
		{
			name: "Disallowed content type",
			mutate: func(in *service.ProjectInput) {
				f := pngUpload("archive.zip")
				f.ContentType = "application/zip"
				in.Files = []service.FileUpload{f}
				in.AltTexts = []string{"archive"}
			},
			expectedField: "images",
		},
		{
			name: "Blank alt text",
			mutate: func(in *service.ProjectInput) {
				in.Files = []service.FileUpload{pngUpload("a.png")}
				in.AltTexts = []string{"   "}
			},
			expectedField: "altTexts",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, err := suite.projectService.Create(context.Background(), suite.admin, input)

			var verrs *apperrors.ValidationErrors
			assert.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
			assert.Contains(t, verrs.Fields, tc.expectedField)
		})
	}
}

// TestValidationAccumulatesAllErrors tests that every failure is reported at once
func (suite *ProjectServiceTestSuite) TestValidationAccumulatesAllErrors() {
	input := service.ProjectInput{
		Title:           "",
		Slug:            "BAD SLUG",
		DetailedContent: "",
		LiveURL:         "nope",
	}

	_, err := suite.projectService.Create(context.Background(), suite.admin, input)

	var verrs *apperrors.ValidationErrors
	suite.Require().True(errors.As(err, &verrs))
	suite.Contains(verrs.Fields, "title")
	suite.Contains(verrs.Fields, "slug")
	suite.Contains(verrs.Fields, "detailedContent")
	suite.Contains(verrs.Fields, "liveUrl")
}

// TestValidationIsIdempotent tests that identical input yields identical errors
func (suite *ProjectServiceTestSuite) TestValidationIsIdempotent() {
	input := validInput()
	input.Slug = "Invalid Slug"
	input.Files = []service.FileUpload{pngUpload("a.png")}
	input.AltTexts = []string{""}

	_, err1 := suite.projectService.Create(context.Background(), suite.admin, input)
	_, err2 := suite.projectService.Create(context.Background(), suite.admin, input)

	var verrs1, verrs2 *apperrors.ValidationErrors
	suite.Require().True(errors.As(err1, &verrs1))
	suite.Require().True(errors.As(err2, &verrs2))
	suite.Equal(verrs1.Fields, verrs2.Fields)
}

// TestUpdateProject tests the update pipeline
func (suite *ProjectServiceTestSuite) TestUpdateProject() {
	projectID := uuid.New()

	existing := func() *models.Project {
		return &models.Project{
			BaseModel:       models.BaseModel{ID: projectID},
			Slug:            "customer-portal",
			Title:           "Customer Portal",
			DetailedContent: "Original content for the project page.",
			Images: []models.ProjectImage{
				{ProjectID: projectID, URL: "https://cdn/old.png", AltText: "old", SortOrder: 0},
			},
		}
	}

	suite.T().Run("New images appended, existing untouched", func(t *testing.T) {
		input := validInput()
		input.Title = "Customer Portal v2"
		input.Files = []service.FileUpload{pngUpload("new.png")}
		input.AltTexts = []string{"new shot"}

		suite.mockRepo.EXPECT().GetByID(projectID).Return(existing(), nil)
		suite.mockStorage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", "projects").Return("https://cdn/new.png", nil)
		suite.mockRepo.EXPECT().
			UpdateWithNewImages(gomock.Any(), gomock.Len(1)).
			DoAndReturn(func(project *models.Project, newImages []models.ProjectImage) error {
				assert.Equal(t, "Customer Portal v2", project.Title)
				assert.Equal(t, "https://cdn/new.png", newImages[0].URL)
				return nil
			})
		suite.mockRepo.EXPECT().GetByID(projectID).Return(existing(), nil)

		_, err := suite.projectService.Update(context.Background(), suite.admin, projectID, input)
		assert.NoError(t, err)
	})

	suite.T().Run("Unknown project yields not-found before uploads", func(t *testing.T) {
		input := validInput()
		input.Files = []service.FileUpload{pngUpload("a.png")}
		input.AltTexts = []string{"alt"}

		suite.mockRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.projectService.Update(context.Background(), suite.admin, projectID, input)

		assert.True(t, apperrors.IsNotFound(err))
	})

	suite.T().Run("Non-admin rejected", func(t *testing.T) {
		_, err := suite.projectService.Update(context.Background(), suite.visitor, projectID, validInput())
		assert.True(t, apperrors.IsAuthorization(err))
	})
}

// TestGetBySlug tests slug lookup
func (suite *ProjectServiceTestSuite) TestGetBySlug() {
	suite.T().Run("Found", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetBySlug("customer-portal").Return(&models.Project{
			Slug:  "customer-portal",
			Title: "Customer Portal",
		}, nil)

		resp, err := suite.projectService.GetBySlug("customer-portal")

		assert.NoError(t, err)
		assert.Equal(t, "Customer Portal", resp.Title)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetBySlug("missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.projectService.GetBySlug("missing")

		assert.True(t, apperrors.IsNotFound(err))
	})
}

// TestListProjects tests pagination defaults
func (suite *ProjectServiceTestSuite) TestListProjects() {
	suite.T().Run("Defaults applied for out-of-range paging", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetAll(20, 0).Return([]models.Project{}, int64(0), nil)

		resp, err := suite.projectService.List(0, 500)

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PageSize)
	})

	suite.T().Run("Offset follows page", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetAll(10, 20).Return([]models.Project{{Title: "P"}}, int64(21), nil)

		resp, err := suite.projectService.List(3, 10)

		assert.NoError(t, err)
		assert.Equal(t, int64(21), resp.Total)
		assert.Len(t, resp.Projects, 1)
	})
}

// TestDeleteProject tests delete guards
func (suite *ProjectServiceTestSuite) TestDeleteProject() {
	projectID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
		suite.mockRepo.EXPECT().Delete(projectID).Return(nil)

		assert.NoError(t, suite.projectService.Delete(suite.admin, projectID))
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

		err := suite.projectService.Delete(suite.admin, projectID)
		assert.True(t, apperrors.IsNotFound(err))
	})

	suite.T().Run("Non-admin rejected", func(t *testing.T) {
		err := suite.projectService.Delete(suite.visitor, projectID)
		assert.True(t, apperrors.IsAuthorization(err))
	})
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
