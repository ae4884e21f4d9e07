package service_test

import (
	"errors"
	"net/http"
	"testing"

	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	t.Run("Validation errors keyed by field", func(t *testing.T) {
		verrs := apperrors.NewValidationErrors()
		verrs.Add("slug", "may only contain lowercase letters, digits and hyphens")
		verrs.Add("title", "this field is required")

		result := service.Report(verrs)

		assert.False(t, result.Success)
		assert.Equal(t, "validation errors found", result.Message)
		assert.Len(t, result.Errors["slug"], 1)
		assert.Len(t, result.Errors["title"], 1)
	})

	t.Run("Upload failure names the file", func(t *testing.T) {
		err := apperrors.NewUploadError("screenshot.png", errors.New("bucket unavailable"))

		result := service.Report(err)

		assert.False(t, result.Success)
		assert.Contains(t, result.Errors["images"][0], "screenshot.png")
	})

	t.Run("Slug conflict lands on the slug field", func(t *testing.T) {
		result := service.Report(apperrors.ErrProjectSlugTaken)

		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Errors["slug"])
	})

	t.Run("Authorization failure carries a message only", func(t *testing.T) {
		result := service.Report(apperrors.ErrNotAdmin)

		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Message)
		assert.Empty(t, result.Errors)
	})

	t.Run("Not found reported under general", func(t *testing.T) {
		result := service.Report(apperrors.ErrProjectNotFound)

		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Errors["general"])
	})

	t.Run("Unexpected error never leaks detail", func(t *testing.T) {
		result := service.Report(errors.New("pq: connection refused at 10.0.0.3"))

		assert.False(t, result.Success)
		assert.NotContains(t, result.Message, "10.0.0.3")
		assert.Empty(t, result.Errors)
	})
}

func TestSuccessResult(t *testing.T) {
	result := service.SuccessResult("project created", "b2b3a130-0000-0000-0000-000000000000")

	assert.True(t, result.Success)
	assert.Equal(t, "project created", result.Message)
	assert.Equal(t, "b2b3a130-0000-0000-0000-000000000000", result.ProjectID)
	assert.Empty(t, result.Errors)
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Authentication", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"Authorization", apperrors.ErrNotAdmin, http.StatusForbidden},
		{"Validation", apperrors.NewValidationErrors(), http.StatusUnprocessableEntity},
		{"Conflict", apperrors.ErrProjectSlugTaken, http.StatusConflict},
		{"Not found", apperrors.ErrProjectNotFound, http.StatusNotFound},
		{"Upload", apperrors.NewUploadError("x.png", errors.New("boom")), http.StatusBadGateway},
		{"Unknown", errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.HTTPStatus(tc.err))
		})
	}
}
