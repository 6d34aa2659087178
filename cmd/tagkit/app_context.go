package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tagkit/internal/config"
	"github.com/alexisbeaulieu97/tagkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tagkit/internal/logger"
	"github.com/alexisbeaulieu97/tagkit/internal/ports"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/tag"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/tokens"
)

// AppContext bundles long-lived services created before a command runs.
type AppContext struct {
	CorrelationID string
	Bootstrap     *logger.Logger
	Logger        ports.Logger
	Palette       tokens.Palette
	Renderer      *tag.Renderer
	Color         bool
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	baseCtx, correlationID := logging.EnsureCorrelationID(cmd.Context())

	level := "info"
	if flags.verbose {
		level = "debug"
	}

	boot, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError("start", "bootstrap logger", err, "Check the --verbose flag")
	}
	boot = boot.WithCorrelationID(correlationID)

	log, err := logging.New(logging.Options{
		Writer:    cmd.ErrOrStderr(),
		Level:     level,
		Format:    flags.logFormat,
		Layer:     "application",
		Component: "cli",
	})
	if err != nil {
		return nil, newCommandError("start", "command logger", err, "Use --log-format text, json or logfmt")
	}

	app := &AppContext{
		CorrelationID: correlationID,
		Bootstrap:     boot,
		Logger:        log,
		Palette:       tokens.DefaultPalette(),
		Color:         colorEnabled(cmd.OutOrStdout(), flags.noColor),
	}

	if app.Color {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if flags.palettePath != "" {
		doc, err := config.NewLoader(log).Load(baseCtx, flags.palettePath)
		if err != nil {
			return nil, newCommandError("load palette", flags.palettePath, err, "Palette overrides must use known design tokens and hex colors")
		}
		app.Palette = doc.ApplyPalette(app.Palette)
		boot.WithFields(map[string]any{"path": flags.palettePath, "overrides": len(doc.Palette.Overrides)}).Debug("palette overrides applied")
	}

	app.Renderer = tag.NewRenderer(app.Palette, tag.WithLogger(log))
	boot.WithFields(map[string]any{"color": app.Color, "tokens": app.Palette.Len()}).Debug("application context ready")

	return app, nil
}

// CommandContext returns a context carrying the correlation ID and a logger
// scoped to the named command.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	return logging.Scoped(cmd.Context(), a.CorrelationID, a.Logger, "command", name)
}

// colorEnabled reports whether ANSI styling should be emitted to out.
func colorEnabled(out io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
