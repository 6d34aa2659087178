package tag

import (
	"strings"

	"github.com/alexisbeaulieu97/tagkit/internal/ui/icons"
)

const (
	spinnerKeyword   = "spinner"
	automatorKeyword = "automator"
)

// IconSpec is the requested content of an icon slot. The set of
// implementations is closed: NamedIcon, SpinnerIcon and AutomatorIcon. A nil
// IconSpec means the slot is empty.
type IconSpec interface {
	isIconSpec()
	String() string
}

// NamedIcon shows a glyph from the icons registry.
type NamedIcon icons.Name

// SpinnerIcon shows a loading spinner.
type SpinnerIcon struct{}

// AutomatorIcon shows the animated automation indicator.
type AutomatorIcon struct{}

func (NamedIcon) isIconSpec()     {}
func (SpinnerIcon) isIconSpec()   {}
func (AutomatorIcon) isIconSpec() {}

func (n NamedIcon) String() string   { return string(n) }
func (SpinnerIcon) String() string   { return spinnerKeyword }
func (AutomatorIcon) String() string { return automatorKeyword }

// Convenience values.
var (
	Spinner   IconSpec = SpinnerIcon{}
	Automator IconSpec = AutomatorIcon{}
)

// Icon returns a spec for the named glyph.
func Icon(name icons.Name) IconSpec {
	return NamedIcon(name)
}

// ParseIconSpec builds a spec from text. The empty string yields nil; the
// keywords "spinner" and "automator" yield their markers; anything else is
// taken as an icon name.
func ParseIconSpec(s string) IconSpec {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return nil
	case spinnerKeyword:
		return SpinnerIcon{}
	case automatorKeyword:
		return AutomatorIcon{}
	default:
		return NamedIcon(s)
	}
}

// SpecString renders spec back to the text form ParseIconSpec accepts.
func SpecString(spec IconSpec) string {
	if spec == nil {
		return ""
	}
	return spec.String()
}
