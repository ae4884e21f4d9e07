package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "portfolio-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	// maxImageSize is the per-file upload limit
	maxImageSize = 5 << 20 // 5 MiB

	// imageFolder is the object store namespace for project images
	imageFolder = "projects"
)

// allowedImageTypes is the MIME allow-list for uploaded project images
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// FileUpload carries one uploaded file through validation and upload
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// ProjectInput is the raw multipart form payload for creating or updating a
// project. Text fields arrive as submitted; Files and AltTexts are paired
// positionally.
type ProjectInput struct {
	Title            string
	Slug             string
	ShortDescription string
	DetailedContent  string
	LiveURL          string
	GithubURL        string
	Technologies     string
	Category         string
	IsFeatured       string
	Files            []FileUpload
	AltTexts         []string
}

// projectFields holds the text fields in the shape the struct validator
// checks. The validate tags mirror the form rules; "slug" is the custom
// rule registered in RegisterCustomValidations.
type projectFields struct {
	Title           string `validate:"required,min=3"`
	Slug            string `validate:"required,min=3,slug"`
	DetailedContent string `validate:"required,min=10"`
	LiveURL         string `validate:"omitempty,url"`
	GithubURL       string `validate:"omitempty,url"`
}

// normalizedProject is the validated, normalized value set ready for
// persistence
type normalizedProject struct {
	Title            string
	Slug             string
	ShortDescription string
	DetailedContent  string
	LiveURL          string
	GithubURL        string
	Technologies     []string
	Category         string
	IsFeatured       bool
}

// fieldName maps struct field names back to the submitted form field names
var fieldName = map[string]string{
	"Title":           "title",
	"Slug":            "slug",
	"DetailedContent": "detailedContent",
	"LiveURL":         "liveUrl",
	"GithubURL":       "githubUrl",
}

// fieldMessage produces a curated, user-facing message for a failed rule.
// Raw validator output is never surfaced.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "url":
		return "must be a valid absolute URL"
	case "slug":
		return "may only contain lowercase letters, digits and hyphens"
	default:
		return "is invalid"
	}
}

// validateInput applies every rule and accumulates all failures so the
// caller sees every problem at once. It is pure: no uploads, no database
// access, and identical input yields identical error sets.
func (s *ProjectService) validateInput(input ProjectInput) (*normalizedProject, *apperrors.ValidationErrors) {
	verrs := apperrors.NewValidationErrors()

	fields := projectFields{
		Title:           strings.TrimSpace(input.Title),
		Slug:            strings.TrimSpace(input.Slug),
		DetailedContent: strings.TrimSpace(input.DetailedContent),
		LiveURL:         strings.TrimSpace(input.LiveURL),
		GithubURL:       strings.TrimSpace(input.GithubURL),
	}

	if err := s.validator.Struct(&fields); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			// Contract violation in the validator setup, not user input
			verrs.Add("general", "submitted form could not be validated")
		} else {
			for _, fe := range fieldErrs {
				name, ok := fieldName[fe.StructField()]
				if !ok {
					name = strings.ToLower(fe.StructField())
				}
				verrs.Add(name, fieldMessage(fe))
			}
		}
	}

	// File/alt-text pairing is an internal consistency check; a mismatch
	// means the client misassembled the form, surfaced as a general images
	// error rather than a per-field one.
	if len(input.Files) != len(input.AltTexts) {
		verrs.Add("images", "number of images and alt texts do not match")
	} else {
		for i, file := range input.Files {
			if file.Size > maxImageSize {
				verrs.Add("images", fmt.Sprintf("%s exceeds the 5 MiB size limit", file.Name))
			}
			if !allowedImageTypes[file.ContentType] {
				verrs.Add("images", fmt.Sprintf("%s has unsupported type %q (allowed: jpeg, png, webp, gif)", file.Name, file.ContentType))
			}
			if strings.TrimSpace(input.AltTexts[i]) == "" {
				verrs.Add("altTexts", fmt.Sprintf("alt text for %s must not be empty", file.Name))
			}
		}
	}

	if verrs.HasErrors() {
		return nil, verrs
	}

	return &normalizedProject{
		Title:            fields.Title,
		Slug:             fields.Slug,
		ShortDescription: strings.TrimSpace(input.ShortDescription),
		DetailedContent:  fields.DetailedContent,
		LiveURL:          fields.LiveURL,
		GithubURL:        fields.GithubURL,
		Technologies:     parseTechnologies(input.Technologies),
		Category:         strings.TrimSpace(input.Category),
		IsFeatured:       parseCheckbox(input.IsFeatured),
	}, nil
}

// parseTechnologies normalizes a comma-delimited tag string into a
// deduplicated, trimmed list; empty entries are discarded
func parseTechnologies(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]bool, len(parts))
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}

// parseCheckbox interprets checkbox-style truthy encodings; anything else
// defaults to false
func parseCheckbox(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}
