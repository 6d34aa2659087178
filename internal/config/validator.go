package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/tagkit/internal/ui/icons"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/tag"
	tagkiterrors "github.com/alexisbeaulieu97/tagkit/pkg/errors"
)

// Warning is a non-fatal finding about a document. Documents with warnings
// still render; the affected values fall back to their defaults.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// ValidateDocument performs schema validation on the document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return tagkiterrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// Lint reports values that validate but will render with a fallback:
// unrecognized intents render as "none" and unregistered icon names render
// the fallback glyph.
func Lint(doc *Document) []Warning {
	if doc == nil {
		return nil
	}

	var warnings []Warning
	for i, spec := range doc.Tags {
		if spec.Intent != "" && !tag.ParseIntent(spec.Intent).Known() {
			warnings = append(warnings, Warning{
				Field:   fieldForTag(i, "intent"),
				Message: fmt.Sprintf("unrecognized intent %q renders as %q", spec.Intent, tag.IntentNone),
			})
		}
		warnings = append(warnings, lintIcon(i, "icon", spec.Icon)...)
		warnings = append(warnings, lintIcon(i, "right_icon", spec.RightIcon)...)
	}
	return warnings
}

func lintIcon(index int, field, value string) []Warning {
	named, ok := tag.ParseIconSpec(value).(tag.NamedIcon)
	if !ok {
		return nil
	}
	if _, registered := icons.Glyph(icons.Name(named)); registered {
		return nil
	}
	return []Warning{{
		Field:   fieldForTag(index, field),
		Message: fmt.Sprintf("unregistered icon %q renders as %q", value, icons.Fallback),
	}}
}
