package gallery

import (
	"fmt"

	"github.com/alexisbeaulieu97/tagkit/internal/ui"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/components"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/icons"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/tag"
)

// Entry is one row of the gallery.
type Entry struct {
	Title string
	Props tag.Props
}

var slotKinds = []tag.IconSpec{nil, tag.Icon(icons.Tick), tag.Spinner, tag.Automator}

// DefaultEntries lists every intent combined with every slot kind.
func DefaultEntries() []Entry {
	entries := make([]Entry, 0, len(tag.Intents())*len(slotKinds))
	for _, intent := range tag.Intents() {
		for _, spec := range slotKinds {
			kind := tag.SpecString(spec)
			if kind == "" {
				kind = "no icon"
			}
			entries = append(entries, Entry{
				Title: fmt.Sprintf("%s · %s", intent, kind),
				Props: tag.Props{
					TagProps: components.TagProps{
						TooltipText: fmt.Sprintf("intent=%s icon=%s", intent, kind),
					},
					Intent:   intent,
					Icon:     spec,
					Children: ui.Plain(string(intent)),
				},
			})
		}
	}
	return entries
}
