package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ImageBytes is the payload MultipartProjectForm writes for each image part
var ImageBytes = []byte("fake image bytes")

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	return &HTTPTestSuite{
		Router: router,
	}
}

// AdminIdentity returns an identity that passes the admin guard
func AdminIdentity() *auth.Identity {
	return &auth.Identity{Subject: "admin@example.com", Role: auth.RoleAdmin}
}

// InjectIdentity returns middleware that places the identity in the request
// context the way the auth middleware does after verifying a credential
func InjectIdentity(identity *auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", identity)
		c.Next()
	}
}

// MakeRequest creates and executes an HTTP request, marshalling a non-nil
// body as JSON
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody io.Reader

	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

// MakeRawRequest executes a request carrying a preassembled body, e.g. a
// multipart form or a deliberately malformed payload
func (suite *HTTPTestSuite) MakeRawRequest(method, url string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

// MultipartProjectForm assembles a project form body: text fields plus one
// "projectImages" part per image name, each filled with ImageBytes.
func MultipartProjectForm(t *testing.T, fields map[string]string, imageNames ...string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, name := range imageNames {
		part, err := writer.CreateFormFile("projectImages", name)
		require.NoError(t, err)
		_, err = part.Write(ImageBytes)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()

	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// AssertErrorResponse asserts an error response with specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &errorResponse)
	require.NoError(t, err)

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

// AssertFormErrors asserts a failed form submission reporting errors for
// every named field
func AssertFormErrors(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, fields ...string) {
	t.Helper()

	assert.Equal(t, expectedStatus, recorder.Code)

	var result struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	err := json.Unmarshal(recorder.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	for _, field := range fields {
		assert.Contains(t, result.Errors, field)
	}
}
