package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	tagkiterrors "github.com/alexisbeaulieu97/tagkit/pkg/errors"
)

// convertValidationError normalizes validator errors into tagkit validation errors.
// Only the first failure is reported.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := documentFieldName(ve)
		return tagkiterrors.NewValidationError(field, describeFailure(ve), err)
	}

	return tagkiterrors.NewValidationError("document", err.Error(), err)
}

// documentFieldName turns "Document.tags[0].max_width" into "tags[0].max_width".
func documentFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describeFailure(fe validator.FieldError) string {
	switch fe.Tag() {
	case "design_token":
		return fmt.Sprintf("unknown design token %q", fe.Value())
	case "icon_spec":
		return fmt.Sprintf("%q is not a valid icon name", fe.Value())
	case "hexcolor":
		return fmt.Sprintf("%q is not a hex color", fe.Value())
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func fieldForTag(index int, field string) string {
	return fmt.Sprintf("tags[%d].%s", index, field)
}
