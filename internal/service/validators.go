package service

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// slugPattern constrains slugs to lowercase alphanumerics separated by
// single hyphens, with no leading or trailing hyphen.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// RegisterCustomValidations adds the application-specific rules to a
// validator instance. Must be called once on the shared validator before
// any service uses it.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
}
