package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tagkit/internal/config"
	"github.com/alexisbeaulieu97/tagkit/internal/ports"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/components"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/tag"
)

// tagFlagNames describe a single tag and cannot be combined with --file.
var tagFlagNames = []string{
	"label", "intent", "icon", "right-icon", "animated", "tooltip", "large",
	"minimal", "round", "interactive", "removable", "multiline", "max-width",
}

type renderOptions struct {
	file  string
	frame int
	spec  config.TagSpec
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render tags from flags or a document",
		Long: `Render a single tag described by flags, or every tag listed in a
YAML or TOML document passed with --file.`,
		Example: `  tagkit render --label Running --intent primary --icon automator
  tagkit render --label Failed --intent danger --right-icon warning-sign --removable
  tagkit render --file tags.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.render")
			err := runRender(ctx, app, logger, opts, cmd.OutOrStdout())
			if err != nil {
				logger.Error(ctx, "render command failed", "error", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "Document listing tags to render")
	flags.IntVar(&opts.frame, "frame", 0, "Animation frame for spinner and automator icons")
	flags.StringVar(&opts.spec.Label, "label", "", "Tag label")
	flags.StringVar(&opts.spec.Intent, "intent", "", "Intent: none, primary, success, warning or danger")
	flags.StringVar(&opts.spec.Icon, "icon", "", "Left icon: spinner, automator or an icon name")
	flags.StringVar(&opts.spec.RightIcon, "right-icon", "", "Right icon: spinner, automator or an icon name")
	flags.BoolVar(&opts.spec.AnimatedIcon, "animated", false, "Pass the animated flag to the left icon")
	flags.StringVar(&opts.spec.Tooltip, "tooltip", "", "Tooltip text printed after the tag")
	flags.BoolVar(&opts.spec.Large, "large", false, "Use large padding")
	flags.BoolVar(&opts.spec.Minimal, "minimal", false, "Render without a fill")
	flags.BoolVar(&opts.spec.Round, "round", false, "Render with rounded caps")
	flags.BoolVar(&opts.spec.Interactive, "interactive", false, "Render as interactive")
	flags.BoolVar(&opts.spec.Removable, "removable", false, "Append a remove affordance")
	flags.BoolVar(&opts.spec.Multiline, "multiline", false, "Keep newlines in the label")
	flags.IntVar(&opts.spec.MaxWidth, "max-width", 0, "Truncate labels wider than this many cells")
	for _, name := range tagFlagNames {
		cmd.MarkFlagsMutuallyExclusive("file", name)
	}

	return cmd
}

func runRender(ctx context.Context, app *AppContext, logger ports.Logger, opts *renderOptions, out io.Writer) error {
	doc, err := renderDocument(ctx, logger, opts)
	if err != nil {
		return err
	}

	renderer := documentRenderer(app, doc, logger)
	renderCtx := components.DefaultContext().WithFrame(opts.frame)
	for _, spec := range doc.Tags {
		line := renderer.Tag(spec.Props()).ViewWithContext(renderCtx)
		if spec.Tooltip != "" {
			line += " " + components.MutedText(spec.Tooltip).View()
		}
		fmt.Fprintln(out, line)
	}

	logger.Debug(ctx, "tags rendered", "count", len(doc.Tags), "frame", opts.frame)
	return nil
}

// documentRenderer layers the document's own palette overrides on top of the
// application palette. Documents without overrides share app.Renderer.
func documentRenderer(app *AppContext, doc *config.Document, logger ports.Logger) *tag.Renderer {
	if doc == nil || len(doc.Palette.Overrides) == 0 {
		return app.Renderer
	}
	return tag.NewRenderer(doc.ApplyPalette(app.Palette), tag.WithLogger(logger))
}

func renderDocument(ctx context.Context, logger ports.Logger, opts *renderOptions) (*config.Document, error) {
	if opts.file != "" {
		doc, err := config.NewLoader(logger).Load(ctx, opts.file)
		if err != nil {
			return nil, newCommandError("render tags", opts.file, err, "Run with --verbose to see lint warnings, and check the document against the tag schema")
		}
		return doc, nil
	}

	doc := &config.Document{Tags: []config.TagSpec{opts.spec}}
	if err := config.ValidateDocument(doc); err != nil {
		return nil, newCommandError("render tag", "flags", err, "Check --icon, --right-icon and --max-width values")
	}
	for _, warning := range config.Lint(doc) {
		logger.Warn(ctx, warning.Message, "field", warning.Field)
	}
	return doc, nil
}
