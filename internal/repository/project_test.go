//go:build integration
// +build integration

package repository

import (
	"testing"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithImages tests creating a project together with its gallery
func (suite *ProjectRepositoryTestSuite) TestCreateWithImages() {
	project := suite.factories.Project.Create()
	images := []models.ProjectImage{
		{URL: "https://cdn.example.com/a.jpg", AltText: "first", SortOrder: 0},
		{URL: "https://cdn.example.com/b.jpg", AltText: "second", SortOrder: 1},
	}

	err := suite.repo.CreateWithImages(project, images)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, project.ID)

	stored, err := suite.repo.GetByID(project.ID)
	suite.NoError(err)
	suite.Len(stored.Images, 2)
	suite.Equal(0, stored.Images[0].SortOrder)
	suite.Equal("first", stored.Images[0].AltText)
	suite.Equal(1, stored.Images[1].SortOrder)
}

// TestCreateDuplicateSlug tests the unique slug constraint mapping
func (suite *ProjectRepositoryTestSuite) TestCreateDuplicateSlug() {
	first := suite.factories.Project.WithSlug("taken-slug")
	suite.NoError(suite.repo.CreateWithImages(first, nil))

	second := suite.factories.Project.WithSlug("taken-slug")
	err := suite.repo.CreateWithImages(second, nil)

	suite.ErrorIs(err, apperrors.ErrProjectSlugTaken)
}

// TestCreateRollsBackOnImageFailure tests that a failed image insert leaves no project row
func (suite *ProjectRepositoryTestSuite) TestCreateRollsBackOnImageFailure() {
	project := suite.factories.Project.Create()
	// Second image violates the not-null URL constraint
	images := []models.ProjectImage{
		{URL: "https://cdn.example.com/a.jpg", AltText: "ok", SortOrder: 0},
		{AltText: "broken", SortOrder: 1},
	}

	err := suite.repo.CreateWithImages(project, images)
	suite.Error(err)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Project{}).Where("slug = ?", project.Slug).Count(&count)
	suite.Equal(int64(0), count)
}

// TestUpdateWithNewImagesAppends tests sort order continuation on update
func (suite *ProjectRepositoryTestSuite) TestUpdateWithNewImagesAppends() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.CreateWithImages(project, []models.ProjectImage{
		{URL: "https://cdn.example.com/a.jpg", AltText: "a", SortOrder: 0},
		{URL: "https://cdn.example.com/b.jpg", AltText: "b", SortOrder: 1},
	}))

	project.Title = "Renamed Project"
	err := suite.repo.UpdateWithNewImages(project, []models.ProjectImage{
		{URL: "https://cdn.example.com/c.jpg", AltText: "c"},
	})
	suite.NoError(err)

	stored, err := suite.repo.GetByID(project.ID)
	suite.NoError(err)
	suite.Equal("Renamed Project", stored.Title)
	suite.Len(stored.Images, 3)
	for i, img := range stored.Images {
		suite.Equal(i, img.SortOrder)
	}
	suite.Equal("https://cdn.example.com/c.jpg", stored.Images[2].URL)
}

// TestUpdateDuplicateSlug tests slug conflicts on rename
func (suite *ProjectRepositoryTestSuite) TestUpdateDuplicateSlug() {
	existing := suite.factories.Project.WithSlug("first-slug")
	suite.NoError(suite.repo.CreateWithImages(existing, nil))

	other := suite.factories.Project.WithSlug("second-slug")
	suite.NoError(suite.repo.CreateWithImages(other, nil))

	other.Slug = "first-slug"
	err := suite.repo.UpdateWithNewImages(other, nil)

	suite.ErrorIs(err, apperrors.ErrProjectSlugTaken)
}

// TestGetBySlug tests slug lookup and image ordering
func (suite *ProjectRepositoryTestSuite) TestGetBySlug() {
	project := suite.factories.Project.WithSlug("lookup-slug")
	suite.NoError(suite.repo.CreateWithImages(project, []models.ProjectImage{
		{URL: "https://cdn.example.com/second.jpg", AltText: "second", SortOrder: 1},
		{URL: "https://cdn.example.com/first.jpg", AltText: "first", SortOrder: 0},
	}))

	stored, err := suite.repo.GetBySlug("lookup-slug")

	suite.NoError(err)
	suite.Equal("first", stored.Images[0].AltText)
	suite.Equal("second", stored.Images[1].AltText)

	_, err = suite.repo.GetBySlug("no-such-slug")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllPagination tests paging and total count
func (suite *ProjectRepositoryTestSuite) TestGetAllPagination() {
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.CreateWithImages(suite.factories.Project.Create(), nil))
	}

	page1, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(page1, 2)

	page3, total, err := suite.repo.GetAll(2, 4)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(page3, 1)
}

// TestGetFeatured tests the featured filter
func (suite *ProjectRepositoryTestSuite) TestGetFeatured() {
	suite.NoError(suite.repo.CreateWithImages(suite.factories.Project.Create(), nil))
	suite.NoError(suite.repo.CreateWithImages(suite.factories.Project.Featured(), nil))
	suite.NoError(suite.repo.CreateWithImages(suite.factories.Project.Featured(), nil))

	featured, err := suite.repo.GetFeatured(6)

	suite.NoError(err)
	suite.Len(featured, 2)
	for _, p := range featured {
		suite.True(p.IsFeatured)
	}
}

// TestDeleteCascadesImages tests the cascade from project to image rows
func (suite *ProjectRepositoryTestSuite) TestDeleteCascadesImages() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.CreateWithImages(project, []models.ProjectImage{
		{URL: "https://cdn.example.com/a.jpg", AltText: "a", SortOrder: 0},
	}))

	suite.NoError(suite.repo.Delete(project.ID))

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.ProjectImage{}).
		Where("project_id = ?", project.ID).Count(&count).Error)
	suite.Equal(int64(0), count)

	_, err := suite.repo.GetByID(project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
