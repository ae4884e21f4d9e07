package handlers_test

import (
	"net/http"
	"testing"

	"portfolio-backend/internal/api/handlers"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/mocks"
	"portfolio-backend/internal/service"
	"portfolio-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BlogPostHandlerTestSuite defines the test suite for BlogPostHandler
type BlogPostHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockBlogSv *mocks.MockBlogPostServiceInterface
	handler    *handlers.BlogPostHandler
	api        *testutils.HTTPTestSuite
	identity   *auth.Identity
}

func (suite *BlogPostHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBlogSv = mocks.NewMockBlogPostServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBlogPostHandler(suite.mockBlogSv)
	suite.identity = testutils.AdminIdentity()

	suite.api = testutils.SetupHTTPTest()
	suite.api.Router.GET("/blog", suite.handler.ListBlogPosts)
	suite.api.Router.GET("/blog/:slug", suite.handler.GetBlogPost)

	admin := suite.api.Router.Group("/admin", testutils.InjectIdentity(suite.identity))
	admin.GET("/blog", suite.handler.ListBlogPosts)
	admin.GET("/blog/:slug", suite.handler.GetBlogPost)
	admin.POST("/blog", suite.handler.CreateBlogPost)
	admin.PUT("/blog/:id", suite.handler.UpdateBlogPost)
	admin.DELETE("/blog/:id", suite.handler.DeleteBlogPost)
}

func (suite *BlogPostHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BlogPostHandlerTestSuite) TestCreateBlogPost_Success() {
	input := service.BlogPostInput{
		Slug:        "first-post",
		Title:       "First Post",
		Content:     "Hello from the new site.",
		IsPublished: true,
	}
	suite.mockBlogSv.EXPECT().Create(suite.identity, input).Return(&models.BlogPost{
		Slug:        input.Slug,
		Title:       input.Title,
		IsPublished: true,
	}, nil)

	w := suite.api.MakeRequest(http.MethodPost, "/admin/blog", input)

	var got models.BlogPost
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), "first-post", got.Slug)
	assert.True(suite.T(), got.IsPublished)
}

func (suite *BlogPostHandlerTestSuite) TestCreateBlogPost_SlugConflict() {
	suite.mockBlogSv.EXPECT().
		Create(suite.identity, gomock.Any()).
		Return(nil, apperrors.ErrBlogPostSlugTaken)

	w := suite.api.MakeRequest(http.MethodPost, "/admin/blog", service.BlogPostInput{
		Slug:    "first-post",
		Title:   "First Post",
		Content: "hi",
	})

	testutils.AssertFormErrors(suite.T(), w, http.StatusConflict, "slug")
}

func (suite *BlogPostHandlerTestSuite) TestGetBlogPost_Published() {
	suite.mockBlogSv.EXPECT().GetBySlug("first-post").Return(&models.BlogPost{
		Slug:        "first-post",
		Title:       "First Post",
		IsPublished: true,
	}, nil)

	w := suite.api.MakeRequest(http.MethodGet, "/blog/first-post", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BlogPostHandlerTestSuite) TestGetBlogPost_DraftHiddenFromPublic() {
	suite.mockBlogSv.EXPECT().GetBySlug("draft-post").Return(&models.BlogPost{
		Slug:        "draft-post",
		Title:       "Draft",
		IsPublished: false,
	}, nil)

	w := suite.api.MakeRequest(http.MethodGet, "/blog/draft-post", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "blog post not found")
}

func (suite *BlogPostHandlerTestSuite) TestGetBlogPost_DraftVisibleToAdmin() {
	suite.mockBlogSv.EXPECT().GetBySlug("draft-post").Return(&models.BlogPost{
		Slug:        "draft-post",
		Title:       "Draft",
		IsPublished: false,
	}, nil)

	w := suite.api.MakeRequest(http.MethodGet, "/admin/blog/draft-post", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BlogPostHandlerTestSuite) TestListBlogPosts_PublicSeesPublishedOnly() {
	resp := &service.BlogPostListResponse{
		Posts:    []models.BlogPost{{Slug: "first-post", IsPublished: true}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}
	suite.mockBlogSv.EXPECT().List(true, 1, 20).Return(resp, nil)

	w := suite.api.MakeRequest(http.MethodGet, "/blog", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BlogPostHandlerTestSuite) TestListBlogPosts_AdminSeesDrafts() {
	resp := &service.BlogPostListResponse{
		Posts:    []models.BlogPost{{Slug: "draft-post"}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}
	suite.mockBlogSv.EXPECT().List(false, 1, 20).Return(resp, nil)

	w := suite.api.MakeRequest(http.MethodGet, "/admin/blog", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BlogPostHandlerTestSuite) TestUpdateBlogPost_NotFound() {
	postID := uuid.New()
	suite.mockBlogSv.EXPECT().
		Update(suite.identity, postID, gomock.Any()).
		Return(nil, apperrors.ErrBlogPostNotFound)

	w := suite.api.MakeRequest(http.MethodPut, "/admin/blog/"+postID.String(), service.BlogPostInput{
		Slug:    "ghost",
		Title:   "Ghost",
		Content: "x",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *BlogPostHandlerTestSuite) TestDeleteBlogPost_Success() {
	postID := uuid.New()
	suite.mockBlogSv.EXPECT().Delete(suite.identity, postID).Return(nil)

	w := suite.api.MakeRequest(http.MethodDelete, "/admin/blog/"+postID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestBlogPostHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BlogPostHandlerTestSuite))
}
