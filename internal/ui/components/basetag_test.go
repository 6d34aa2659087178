package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tagkit/internal/ui"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/icons"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestBaseTagLayout(t *testing.T) {
	t.Parallel()

	t.Run("label only", func(t *testing.T) {
		t.Parallel()
		tag := NewBaseTag(TagProps{Label: ui.Plain("Running")})
		require.Equal(t, " Running ", plain(tag.View()))
	})

	t.Run("both slots", func(t *testing.T) {
		t.Parallel()
		tag := NewBaseTag(TagProps{
			Icon:      NewIcon(icons.Tick, nil),
			RightIcon: NewIcon(icons.WarningSign, nil),
			Label:     ui.Plain("Done"),
		})
		require.Equal(t, " ✓ Done ⚠ ", plain(tag.View()))
	})

	t.Run("nil slots take no space", func(t *testing.T) {
		t.Parallel()
		tag := NewBaseTag(TagProps{Icon: nil, RightIcon: nil, Label: ui.Plain("x")})
		require.Equal(t, " x ", plain(tag.View()))
	})

	t.Run("icon without label", func(t *testing.T) {
		t.Parallel()
		tag := NewBaseTag(TagProps{Icon: NewIcon(icons.Dot, nil)})
		require.Equal(t, " ● ", plain(tag.View()))
	})

	t.Run("large doubles padding", func(t *testing.T) {
		t.Parallel()
		tag := NewBaseTag(TagProps{Label: ui.Plain("big"), Large: true})
		require.Equal(t, "  big  ", plain(tag.View()))
	})

	t.Run("round uses caps instead of padding", func(t *testing.T) {
		t.Parallel()
		tag := NewBaseTag(TagProps{Label: ui.Plain("pill"), Round: true})
		require.Equal(t, "◖pill◗", plain(tag.View()))
	})

	t.Run("removable appends cross", func(t *testing.T) {
		t.Parallel()
		tag := NewBaseTag(TagProps{Label: ui.Plain("asset_a"), Removable: true})
		require.Equal(t, " asset_a ✕ ", plain(tag.View()))
	})
}

func TestBaseTagLabelHandling(t *testing.T) {
	t.Parallel()

	t.Run("collapses newlines unless multiline", func(t *testing.T) {
		t.Parallel()
		tag := NewBaseTag(TagProps{Label: ui.Plain("a\nb")})
		require.Equal(t, " a b ", plain(tag.View()))

		multi := NewBaseTag(TagProps{Label: ui.Plain("a\nb"), Multiline: true})
		require.Contains(t, plain(multi.View()), "\n")
	})

	t.Run("truncates to max width", func(t *testing.T) {
		t.Parallel()
		tag := NewBaseTag(TagProps{Label: ui.Plain("materialization"), MaxWidth: 6})
		got := plain(tag.View())
		require.Equal(t, " mater… ", got)
	})

	t.Run("short labels are not truncated", func(t *testing.T) {
		t.Parallel()
		tag := NewBaseTag(TagProps{Label: ui.Plain("ok"), MaxWidth: 6})
		require.Equal(t, " ok ", plain(tag.View()))
	})

	t.Run("renders arbitrary renderable labels", func(t *testing.T) {
		t.Parallel()
		label := HStack(NewText("3"), NewText("partitions")).WithGap(1)
		tag := NewBaseTag(TagProps{Label: label})
		require.Equal(t, " 3 partitions ", plain(tag.View()))
	})
}

func TestBaseTagTooltipIsNotRenderedInline(t *testing.T) {
	t.Parallel()

	tag := NewBaseTag(TagProps{Label: ui.Plain("Running"), TooltipText: "Started 5m ago"})
	require.Equal(t, "Started 5m ago", tag.Tooltip())
	require.NotContains(t, plain(tag.View()), "Started")
}

func TestBaseTagPropsRoundTrip(t *testing.T) {
	t.Parallel()

	props := TagProps{
		FillColor:   lipgloss.Color("#ff0000"),
		TextColor:   lipgloss.Color("#00ff00"),
		Label:       ui.Plain("x"),
		Interactive: true,
		Active:      true,
		MaxWidth:    4,
	}
	require.Equal(t, props, NewBaseTag(props).Props())
}

func TestBaseTagForwardsFrameToSlots(t *testing.T) {
	t.Parallel()

	tag := NewBaseTag(TagProps{Icon: NewSpinner(nil, SpinnerPurposeBodyText, false), Label: ui.Plain("Loading")})
	frames := NewSpinner(nil, SpinnerPurposeBodyText, false).Frames().Frames

	first := plain(tag.ViewWithContext(DefaultContext().WithFrame(0)))
	second := plain(tag.ViewWithContext(DefaultContext().WithFrame(1)))

	require.True(t, strings.HasPrefix(first, " "+frames[0]))
	require.True(t, strings.HasPrefix(second, " "+frames[1]))
}
