package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tagkit/internal/ui/tokens"
)

type paletteEntry struct {
	Token string `json:"token"`
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

func newPaletteCmd(app *AppContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List design tokens and their colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.palette")
			entries := paletteEntries(app.Palette)
			logger.Debug(ctx, "listing palette", "tokens", len(entries), "json", asJSON)

			if asJSON {
				return writePaletteJSON(cmd.OutOrStdout(), entries)
			}
			return writePaletteTable(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func paletteEntries(palette tokens.Palette) []paletteEntry {
	list := palette.Tokens()
	entries := make([]paletteEntry, 0, len(list))
	for _, token := range list {
		color := palette.Color(token)
		entries = append(entries, paletteEntry{Token: string(token), Light: color.Light, Dark: color.Dark})
	}
	return entries
}

func writePaletteJSON(out io.Writer, entries []paletteEntry) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries); err != nil {
		return newCommandError("list palette", "json output", err, "Retry without --json")
	}
	return nil
}

func writePaletteTable(out io.Writer, entries []paletteEntry) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tLIGHT\tDARK\tSWATCH")
	for _, entry := range entries {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: entry.Light, Dark: entry.Dark}).
			Render("    ")
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.Token, entry.Light, entry.Dark, swatch)
	}
	return w.Flush()
}
