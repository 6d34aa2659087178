package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tagkit/internal/ui"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/tokens"
)

func TestStackJoins(t *testing.T) {
	t.Parallel()

	t.Run("horizontal with gap", func(t *testing.T) {
		t.Parallel()
		s := HStack(ui.Plain("a"), ui.Plain("b"), ui.Plain("c")).WithGap(2)
		require.Equal(t, "a  b  c", plain(s.View()))
	})

	t.Run("vertical with gap", func(t *testing.T) {
		t.Parallel()
		s := VStack(ui.Plain("a"), ui.Plain("b")).WithGap(1)
		// JoinVertical pads the blank gap line to the widest child.
		require.Equal(t, "a\n \nb", plain(s.View()))
	})

	t.Run("skips nil and empty children", func(t *testing.T) {
		t.Parallel()
		s := HStack(nil, ui.Plain(""), ui.Plain("x"))
		require.Equal(t, "x", plain(s.View()))
	})

	t.Run("empty stack", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", plain(VStack().View()))
	})

	t.Run("add appends", func(t *testing.T) {
		t.Parallel()
		s := VStack().Add(ui.Plain("one"), ui.Plain("two"))
		require.Len(t, s.Children(), 2)
	})
}

func TestHeader(t *testing.T) {
	t.Parallel()

	h := NewHeader("Tags").WithSubtitle("intent × slot")
	require.Equal(t, "Tags", h.Title())
	require.Equal(t, "intent × slot", h.Subtitle())
	require.Contains(t, plain(h.View()), "Tags")
	require.Contains(t, plain(h.View()), "intent × slot")
}

func TestThemeWithTokens(t *testing.T) {
	t.Parallel()

	custom := tokens.DefaultPalette().WithOverrides(map[tokens.Token]lipgloss.AdaptiveColor{
		tokens.TextDefault: {Light: "#000000", Dark: "#ffffff"},
	})
	theme := DefaultTheme().WithTokens(custom)

	require.Equal(t, "#ffffff", theme.Tokens.Color(tokens.TextDefault).Dark)
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}, theme.Typography.Base.GetForeground())
}

func TestThemeNormalizeFillsDefaults(t *testing.T) {
	t.Parallel()

	theme := Theme{}.Normalize()
	require.Equal(t, tokens.DefaultPalette().Len(), theme.Tokens.Len())
	require.Equal(t, 2, PaddingValue(theme, SpacingSizeSmall))
	require.Equal(t, 0, MarginValue(theme, SpacingSize(99)))
}

func TestAddAppliersWrapsCustomStrategy(t *testing.T) {
	t.Parallel()

	var order []string
	custom := strategyFunc(func(style lipgloss.Style, _ Theme) lipgloss.Style {
		order = append(order, "custom")
		return style
	})

	text := NewText("x")
	text.SetStrategy(custom)
	text.WithAppliers(func(style lipgloss.Style, _ Theme) lipgloss.Style {
		order = append(order, "applier")
		return style
	})
	_ = text.View()

	require.Equal(t, []string{"custom", "applier"}, order)
}

type strategyFunc func(lipgloss.Style, Theme) lipgloss.Style

func (f strategyFunc) Apply(style lipgloss.Style, theme Theme) lipgloss.Style {
	return f(style, theme)
}
