package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose     bool
	noColor     bool
	palettePath string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "tagkit",
		Short:         "tagkit renders intent-colored status tags in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			*app = *built
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().StringVar(&flags.palettePath, "palette", "", "YAML or TOML document whose palette overrides design tokens")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "Log format: text, json or logfmt")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newPaletteCmd(app))
	cmd.AddCommand(newIconsCmd())
	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
