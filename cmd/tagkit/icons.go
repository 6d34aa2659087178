package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tagkit/internal/ui/icons"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/tag"
)

func newIconsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "List icon names usable in --icon and --right-icon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tGLYPH")
			fmt.Fprintf(w, "%s\t%s\n", tag.SpecString(tag.Spinner), "(animated)")
			fmt.Fprintf(w, "%s\t%s\n", tag.SpecString(tag.Automator), "(animated)")
			for _, name := range icons.Names() {
				fmt.Fprintf(w, "%s\t%s\n", name, icons.GlyphOrFallback(name))
			}
			return w.Flush()
		},
	}

	return cmd
}
