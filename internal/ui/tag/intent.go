package tag

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tagkit/internal/ui/tokens"
)

// Intent is the semantic category that drives a tag's colors.
type Intent string

const (
	IntentNone    Intent = "none"
	IntentPrimary Intent = "primary"
	IntentDanger  Intent = "danger"
	IntentSuccess Intent = "success"
	IntentWarning Intent = "warning"
)

// Intents lists the closed set of intents in display order.
func Intents() []Intent {
	return []Intent{IntentNone, IntentPrimary, IntentSuccess, IntentWarning, IntentDanger}
}

// ParseIntent converts free text to an Intent. Matching is case-insensitive;
// anything unrecognized is returned as-is and renders like IntentNone.
func ParseIntent(s string) Intent {
	return Intent(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether i is one of the defined intents. The zero value is
// not known but still renders as IntentNone.
func (i Intent) Known() bool {
	switch i {
	case IntentNone, IntentPrimary, IntentDanger, IntentSuccess, IntentWarning:
		return true
	default:
		return false
	}
}

// Normalize maps unset and unrecognized values to IntentNone.
func (i Intent) Normalize() Intent {
	if i.Known() {
		return i
	}
	return IntentNone
}

// TokenTriple names the three tokens an intent resolves to.
type TokenTriple struct {
	Fill tokens.Token
	Text tokens.Token
	Icon tokens.Token
}

// ColorTriple holds the concrete colors an intent resolves to.
type ColorTriple struct {
	Fill lipgloss.AdaptiveColor
	Text lipgloss.AdaptiveColor
	Icon lipgloss.AdaptiveColor
}

// FillToken returns the background token for intent.
func FillToken(intent Intent) tokens.Token {
	switch intent {
	case IntentPrimary:
		return tokens.BackgroundBlue
	case IntentDanger:
		return tokens.BackgroundRed
	case IntentSuccess:
		return tokens.BackgroundGreen
	case IntentWarning:
		return tokens.BackgroundYellow
	default:
		return tokens.BackgroundGray
	}
}

// TextToken returns the label color token for intent.
func TextToken(intent Intent) tokens.Token {
	switch intent {
	case IntentPrimary:
		return tokens.TextBlue
	case IntentDanger:
		return tokens.TextRed
	case IntentSuccess:
		return tokens.TextGreen
	case IntentWarning:
		return tokens.TextYellow
	default:
		return tokens.TextDefault
	}
}

// IconToken returns the accent token used for icons and spinners.
func IconToken(intent Intent) tokens.Token {
	switch intent {
	case IntentPrimary:
		return tokens.AccentBlue
	case IntentDanger:
		return tokens.AccentRed
	case IntentSuccess:
		return tokens.AccentGreen
	case IntentWarning:
		return tokens.AccentYellow
	default:
		return tokens.AccentGray
	}
}

// Tokens resolves all three channels for intent.
func Tokens(intent Intent) TokenTriple {
	return TokenTriple{
		Fill: FillToken(intent),
		Text: TextToken(intent),
		Icon: IconToken(intent),
	}
}

// Resolve looks up the colors for intent in palette.
func Resolve(palette tokens.Palette, intent Intent) ColorTriple {
	t := Tokens(intent)
	return ColorTriple{
		Fill: palette.Color(t.Fill),
		Text: palette.Color(t.Text),
		Icon: palette.Color(t.Icon),
	}
}
