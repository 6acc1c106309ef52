package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kostrykin/repype/internal/config"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <pipeline.yaml> [pipeline.yaml...]",
		Short: "Validate pipeline definitions without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				pipeline, err := config.ParsePipeline(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d stages)\n", path, pipeline.Name, len(pipeline.Stages))
			}
			return nil
		},
	}

	return cmd
}
