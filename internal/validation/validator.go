// Package validation holds the shared validator instance used for catalog
// files, content entries and CLI settings.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"

	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	// Lowercase letters, digits, dots and hyphens, starting with a letter.
	tagNamePattern = regexp.MustCompile(`^[a-z][a-z0-9._-]*$`)
	packagePattern = regexp.MustCompile(`^(@[a-z0-9][a-z0-9._~-]*/)?[a-z0-9][a-z0-9._~-]*(/[a-zA-Z0-9._~-]+)*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("tag_name", func(fl validator.FieldLevel) bool {
			return tagNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("npm_package", func(fl validator.FieldLevel) bool {
			return packagePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("semver_constraint", func(fl validator.FieldLevel) bool {
			_, err := semver.NewConstraint(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Get returns the shared validator instance.
func Get() *validator.Validate {
	return validatorInstance()
}

// Struct validates v and converts the first failure into a ValidationError
// whose field path uses yaml names.
func Struct(v any) error {
	if err := validatorInstance().Struct(v); err != nil {
		return convert(err)
	}
	return nil
}

// Var validates a single value against tag, reporting failures under field.
func Var(field string, value any, tag string) error {
	if err := validatorInstance().Var(value, tag); err != nil {
		return pserrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, tag), err)
	}
	return nil
}

func convert(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pserrors.NewValidationError(field, msg, err)
	}

	return pserrors.NewValidationError("", err.Error(), err)
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
