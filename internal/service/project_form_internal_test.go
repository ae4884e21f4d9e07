package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestParseTechnologies(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"Empty string", "", []string{}},
		{"Single tag", "Go", []string{"Go"}},
		{"Comma separated", "Go, PostgreSQL, Docker", []string{"Go", "PostgreSQL", "Docker"}},
		{"Duplicates removed", "Go, Go, PostgreSQL", []string{"Go", "PostgreSQL"}},
		{"Blank entries dropped", "Go, , ,PostgreSQL,", []string{"Go", "PostgreSQL"}},
		{"Whitespace trimmed", "  Go ,  React  ", []string{"Go", "React"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseTechnologies(tc.raw))
		})
	}
}

func TestParseCheckbox(t *testing.T) {
	testCases := []struct {
		raw      string
		expected bool
	}{
		{"on", true},
		{"true", true},
		{"1", true},
		{"TRUE", true},
		{" On ", true},
		{"", false},
		{"off", false},
		{"false", false},
		{"0", false},
		{"yes", false},
	}

	for _, tc := range testCases {
		t.Run("input "+tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseCheckbox(tc.raw))
		})
	}
}

func TestSlugValidationRule(t *testing.T) {
	validate := validator.New()
	RegisterCustomValidations(validate)

	type subject struct {
		Slug string `validate:"slug"`
	}

	valid := []string{"a", "my-project", "project-2024", "a1-b2-c3"}
	invalid := []string{"My-Project", "my_project", "-leading", "trailing-", "double--hyphen", "has space", "ümlaut"}

	for _, slug := range valid {
		assert.NoError(t, validate.Struct(subject{Slug: slug}), "expected %q to be a valid slug", slug)
	}
	for _, slug := range invalid {
		assert.Error(t, validate.Struct(subject{Slug: slug}), "expected %q to be rejected", slug)
	}
}
