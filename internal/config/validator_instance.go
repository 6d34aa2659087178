package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tagkit/internal/ui/tokens"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	iconSpecPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("design_token", func(fl validator.FieldLevel) bool {
			return tokens.Known(tokens.Token(fl.Field().String()))
		})

		// Only the shape is checked here. Unregistered icon names are
		// reported by Lint and render with a fallback glyph.
		_ = v.RegisterValidation("icon_spec", func(fl validator.FieldLevel) bool {
			return iconSpecPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
