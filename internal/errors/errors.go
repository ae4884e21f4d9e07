package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness conflict. Field names the
// form field the conflict maps back to ("slug" for project and blog slugs).
type AlreadyExistsError struct {
	Entity string
	Field  string
}

func (e *AlreadyExistsError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationErrors accumulates field-scoped validation failures. The map is
// keyed by the submitted form field name; file constraint violations are
// collected under the "images" key, one entry per offending file.
type ValidationErrors struct {
	Fields map[string][]string
}

// NewValidationErrors creates an empty ValidationErrors ready to accumulate
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{Fields: make(map[string][]string)}
}

// Add appends a message to the given field's error list
func (e *ValidationErrors) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field has accumulated an error
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationErrors) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// AuthenticationError represents a missing, malformed or expired credential
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents a valid credential lacking the required role
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// UploadError represents a failed transfer to the object store. FileName
// identifies the offending file so the caller can surface a per-file error.
type UploadError struct {
	FileName string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload %q", e.FileName)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrProjectNotFound           = &NotFoundError{Entity: "project"}
	ErrBlogPostNotFound          = &NotFoundError{Entity: "blog post"}
	ErrPricingPlanNotFound       = &NotFoundError{Entity: "pricing plan"}
	ErrContactSubmissionNotFound = &NotFoundError{Entity: "contact submission"}
)

// Uniqueness Conflict Errors
var (
	ErrProjectSlugTaken  = &AlreadyExistsError{Entity: "project", Field: "slug"}
	ErrBlogPostSlugTaken = &AlreadyExistsError{Entity: "blog post", Field: "slug"}
)

// Authentication and Authorization Errors
var (
	ErrTokenMissing   = &AuthenticationError{Message: "authorization credential is missing"}
	ErrTokenMalformed = &AuthenticationError{Message: "authorization credential is malformed"}
	ErrTokenExpired   = &AuthenticationError{Message: "authorization credential has expired"}
	ErrNotAdmin       = &AuthorizationError{Message: "administrative role required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationErrors
func IsValidation(err error) bool {
	var validationErr *ValidationErrors
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsUpload checks if an error is an UploadError
func IsUpload(err error) bool {
	var uploadErr *UploadError
	return errors.As(err, &uploadErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entity, field string) error {
	return &AlreadyExistsError{Entity: entity, Field: field}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewUploadError wraps a remote storage failure with the offending file name
func NewUploadError(fileName string, cause error) error {
	return &UploadError{FileName: fileName, Err: cause}
}
