package main

import (
	"github.com/spf13/cobra"

	"github.com/ofplab/ofpdgen/internal/app"
)

type listFlags struct {
	outputDir string
	plain     bool
}

func newListCmd() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the dispatch matrix without generating",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunList(app.ListOptions{
				OutputDir: flags.outputDir,
				Plain:     flags.plain,
			})
		},
	}

	cmd.Flags().StringVar(&flags.outputDir, "output-dir", app.DefaultOutputDir, "Base directory used when rendering paths")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "Disable styled output")

	return cmd
}
