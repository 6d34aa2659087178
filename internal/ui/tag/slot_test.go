package tag

import (
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tagkit/internal/ui/components"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/icons"
)

var testColor = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}

func TestSlotRendererResolution(t *testing.T) {
	t.Parallel()

	r := NewSlotRenderer(DefaultSlotCacheSize, nil)

	t.Run("absent spec renders nothing", func(t *testing.T) {
		require.Nil(t, r.Render(nil, testColor, false))
		require.Nil(t, r.Render(nil, testColor, true))
	})

	t.Run("spinner carries color, sizing and stopped flag", func(t *testing.T) {
		el, ok := r.Render(Spinner, testColor, true).(components.Spinner)
		require.True(t, ok)
		require.True(t, el.Stopped())
		require.Equal(t, testColor, el.FillColor())
		require.Equal(t, components.SpinnerPurposeBodyText, el.Purpose())

		running, ok := r.Render(Spinner, testColor, false).(components.Spinner)
		require.True(t, ok)
		require.False(t, running.Stopped())
	})

	t.Run("automator is the indicator type, not a spinner", func(t *testing.T) {
		el := r.Render(Automator, testColor, true)
		_, isSpinner := el.(components.Spinner)
		require.False(t, isSpinner)

		indicator, ok := el.(components.AutomatorIndicator)
		require.True(t, ok)
		require.True(t, indicator.Stopped())
		require.Equal(t, testColor, indicator.FillColor())
	})

	t.Run("named icon ignores stopped flag", func(t *testing.T) {
		el, ok := r.Render(Icon(icons.WarningSign), testColor, true).(components.Icon)
		require.True(t, ok)
		require.Equal(t, icons.WarningSign, el.Name())
		require.Equal(t, testColor, el.Color())
	})

	t.Run("unknown icon names still render", func(t *testing.T) {
		el := r.Render(NamedIcon("no-such-icon"), testColor, false)
		require.NotNil(t, el)
		require.NotPanics(t, func() { _ = el.View() })
	})
}

func TestSlotRendererMemoizes(t *testing.T) {
	t.Parallel()

	r := NewSlotRenderer(DefaultSlotCacheSize, nil)

	first := r.Render(Spinner, testColor, false)
	second := r.Render(Spinner, testColor, false)
	require.Equal(t, first, second)

	stats := r.Stats()
	require.Equal(t, uint64(1), stats.Hits)
	require.Equal(t, uint64(1), stats.Misses)
	require.Equal(t, 1, stats.Entries)

	r.Render(Spinner, testColor, true)
	r.Render(Spinner, lipgloss.AdaptiveColor{Light: "#000000"}, false)
	require.Equal(t, 3, r.Stats().Entries)
}

func TestSlotRendererAbsentSpecSkipsCache(t *testing.T) {
	t.Parallel()

	r := NewSlotRenderer(DefaultSlotCacheSize, nil)
	r.Render(nil, testColor, false)
	r.Render(Icon(""), testColor, true)
	require.Equal(t, SlotStats{}, r.Stats())
}

func TestSlotRendererEmptyIconNameIsAbsent(t *testing.T) {
	t.Parallel()

	for _, limit := range []int{DefaultSlotCacheSize, 0} {
		r := NewSlotRenderer(limit, nil)
		require.Nil(t, r.Render(NamedIcon(""), testColor, false))
		require.Nil(t, r.Render(Icon(""), testColor, true))
	}
	require.Nil(t, resolveSlot(NamedIcon(""), testColor, false))
}

func TestSlotRendererResetsWhenFull(t *testing.T) {
	t.Parallel()

	r := NewSlotRenderer(2, nil)
	r.Render(Icon(icons.Tick), testColor, false)
	r.Render(Icon(icons.Cross), testColor, false)
	require.Equal(t, 2, r.Stats().Entries)

	r.Render(Icon(icons.Dot), testColor, false)
	require.Equal(t, 1, r.Stats().Entries)
}

func TestSlotRendererWithoutCache(t *testing.T) {
	t.Parallel()

	r := NewSlotRenderer(0, nil)
	el, ok := r.Render(Automator, testColor, false).(components.AutomatorIndicator)
	require.True(t, ok)
	require.False(t, el.Stopped())
	require.Equal(t, SlotStats{}, r.Stats())
}

func TestSlotRendererConcurrentUse(t *testing.T) {
	t.Parallel()

	r := NewSlotRenderer(DefaultSlotCacheSize, nil)
	specs := []IconSpec{Spinner, Automator, Icon(icons.Tick), nil}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				spec := specs[(i+j)%len(specs)]
				el := r.Render(spec, testColor, j%2 == 0)
				if spec == nil && el != nil {
					t.Errorf("expected no element for absent spec, got %T", el)
				}
			}
		}(i)
	}
	wg.Wait()

	stats := r.Stats()
	require.Equal(t, 6, stats.Entries)
	require.Equal(t, uint64(16*75), stats.Hits+stats.Misses)
}
