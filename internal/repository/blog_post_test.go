//go:build integration
// +build integration

package repository

import (
	"testing"

	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BlogPostRepositoryTestSuite tests the BlogPostRepository
type BlogPostRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BlogPostRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BlogPostRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBlogPostRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BlogPostRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BlogPostRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BlogPostRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetBySlug tests basic persistence
func (suite *BlogPostRepositoryTestSuite) TestCreateAndGetBySlug() {
	post := suite.factories.BlogPost.WithSlug("hello-world")

	suite.NoError(suite.repo.Create(post))

	stored, err := suite.repo.GetBySlug("hello-world")
	suite.NoError(err)
	suite.Equal(post.Title, stored.Title)

	_, err = suite.repo.GetBySlug("missing")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCreateDuplicateSlug tests the unique slug constraint mapping
func (suite *BlogPostRepositoryTestSuite) TestCreateDuplicateSlug() {
	suite.NoError(suite.repo.Create(suite.factories.BlogPost.WithSlug("taken")))

	err := suite.repo.Create(suite.factories.BlogPost.WithSlug("taken"))

	suite.ErrorIs(err, apperrors.ErrBlogPostSlugTaken)
}

// TestGetAllPublishedFilter tests the published-only listing
func (suite *BlogPostRepositoryTestSuite) TestGetAllPublishedFilter() {
	suite.NoError(suite.repo.Create(suite.factories.BlogPost.Published()))
	suite.NoError(suite.repo.Create(suite.factories.BlogPost.Published()))
	suite.NoError(suite.repo.Create(suite.factories.BlogPost.Create())) // draft

	published, total, err := suite.repo.GetAll(true, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(published, 2)

	all, total, err := suite.repo.GetAll(false, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(all, 3)
}

// TestUpdate tests saving changes
func (suite *BlogPostRepositoryTestSuite) TestUpdate() {
	post := suite.factories.BlogPost.Create()
	suite.NoError(suite.repo.Create(post))

	post.Title = "Updated Title"
	suite.NoError(suite.repo.Update(post))

	stored, err := suite.repo.GetByID(post.ID)
	suite.NoError(err)
	suite.Equal("Updated Title", stored.Title)
}

// TestBlogPostRepositoryTestSuite runs the test suite
func TestBlogPostRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BlogPostRepositoryTestSuite))
}
