package icons

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGlyph(t *testing.T) {
	t.Parallel()

	g, ok := Glyph(WarningSign)
	require.True(t, ok)
	require.Equal(t, "⚠", g)

	_, ok = Glyph(Name("not-an-icon"))
	require.False(t, ok)
}

func TestGlyphOrFallback(t *testing.T) {
	t.Parallel()

	require.Equal(t, "✓", GlyphOrFallback(Tick))
	require.Equal(t, Fallback, GlyphOrFallback(Name("")))
	require.Equal(t, Fallback, GlyphOrFallback(Name("mystery")))
}

func TestNamesSortedAndComplete(t *testing.T) {
	t.Parallel()

	names := Names()
	require.Len(t, names, len(glyphs))
	for i := 1; i < len(names); i++ {
		require.Less(t, string(names[i-1]), string(names[i]))
	}
	for _, name := range names {
		g, ok := Glyph(name)
		require.True(t, ok)
		require.NotEmpty(t, g)
	}
}
