// Package tag renders intent-colored tags.
//
// A tag's three colors (fill, label, icon) are a pure function of its Intent:
//
//	primary -> blue, danger -> red, success -> green, warning -> yellow,
//	anything else -> gray fill with the default text color.
//
// Each of the two icon slots takes an IconSpec: a named glyph, the Spinner
// marker, the Automator marker, or nil for an empty slot. Only the left slot
// honors Props.AnimatedIcon as its stopped flag.
//
//	t := tag.New(tag.Props{
//		Intent:   tag.IntentDanger,
//		Icon:     tag.Spinner,
//		Children: ui.Plain("Failed"),
//	})
//	fmt.Println(t.View())
package tag
