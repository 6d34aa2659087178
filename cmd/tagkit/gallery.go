package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tagkit/internal/config"
	"github.com/alexisbeaulieu97/tagkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tagkit/internal/ports"
	"github.com/alexisbeaulieu97/tagkit/internal/tui/gallery"
)

func newGalleryCmd(app *AppContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse tags interactively",
		Long: `Launch an interactive gallery of tags. Without --file every intent is
shown with every icon kind.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.gallery")
			logger.Info(ctx, "launching gallery")
			err := runGallery(ctx, cmd, app, logger, file)
			if err != nil {
				logger.Error(ctx, "gallery command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Document listing tags to browse")

	return cmd
}

func runGallery(ctx context.Context, cmd *cobra.Command, app *AppContext, logger ports.Logger, file string) error {
	entries := gallery.DefaultEntries()
	renderer := app.Renderer
	if file != "" {
		doc, err := config.NewLoader(logger).Load(ctx, file)
		if err != nil {
			return newCommandError("open gallery", file, err, "Check the document with 'tagkit render --file'")
		}
		entries = galleryEntries(doc)
		renderer = documentRenderer(app, doc, logger)
	}

	// The program owns the terminal; hold log output until it exits.
	buffer := logging.NewEventBuffer(0)
	m := gallery.NewModel(renderer, entries, logging.NewBufferedLogger(buffer))

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	buffer.Flush(logger)
	if err != nil {
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	logger.Info(ctx, "gallery closed")
	return nil
}

func galleryEntries(doc *config.Document) []gallery.Entry {
	entries := make([]gallery.Entry, 0, len(doc.Tags))
	for i, spec := range doc.Tags {
		title := spec.Label
		if title == "" {
			title = fmt.Sprintf("tag %d", i+1)
		}
		entries = append(entries, gallery.Entry{Title: title, Props: spec.Props()})
	}
	return entries
}
