package service

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "portfolio-backend/internal/errors"

	"github.com/sirupsen/logrus"
)

// FormResult is the uniform payload returned for admin form submissions.
// Errors is keyed by form field name; the "general" key carries failures
// not attributable to a single field.
type FormResult struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
	ProjectID string              `json:"projectId,omitempty"`
}

// SuccessResult builds the payload for a completed submission
func SuccessResult(message, projectID string) *FormResult {
	return &FormResult{
		Success:   true,
		Message:   message,
		ProjectID: projectID,
	}
}

// Report maps a pipeline error to the payload the form renders. Internal
// detail never leaks: unexpected errors are logged here and surfaced as a
// generic message.
func Report(err error) *FormResult {
	result := &FormResult{Success: false}

	switch {
	case apperrors.IsAuthentication(err) || apperrors.IsAuthorization(err):
		result.Message = err.Error()

	case apperrors.IsValidation(err):
		var verrs *apperrors.ValidationErrors
		errors.As(err, &verrs)
		result.Message = "validation errors found"
		result.Errors = verrs.Fields

	case apperrors.IsUpload(err):
		var uerr *apperrors.UploadError
		errors.As(err, &uerr)
		result.Errors = map[string][]string{
			"images": {fmt.Sprintf("failed to upload %s", uerr.FileName)},
		}

	case apperrors.IsAlreadyExists(err):
		var aerr *apperrors.AlreadyExistsError
		errors.As(err, &aerr)
		result.Errors = map[string][]string{
			aerr.Field: {err.Error()},
		}

	case apperrors.IsNotFound(err):
		result.Errors = map[string][]string{
			"general": {err.Error()},
		}

	default:
		logrus.WithError(err).Error("form submission failed")
		result.Message = "something went wrong, please try again"
	}

	return result
}

// HTTPStatus picks the response code for a pipeline error
func HTTPStatus(err error) int {
	switch {
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsValidation(err):
		return http.StatusUnprocessableEntity
	case apperrors.IsAlreadyExists(err):
		return http.StatusConflict
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsUpload(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
