package main

import (
	"github.com/spf13/cobra"

	"github.com/kostrykin/repype/internal/config"
	"github.com/kostrykin/repype/internal/logger"
	"github.com/kostrykin/repype/internal/stage"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(settings config.RuntimeSettings, registry *stage.Registry, log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "repype",
		Short:         "repype runs multi-stage processing pipelines with a watchdog and live status",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRunCmd(flags, settings, registry, log))
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
