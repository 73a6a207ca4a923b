package main

import (
	"github.com/spf13/cobra"

	"github.com/ofplab/ofpdgen/internal/app"
)

type generateFlags struct {
	outputDir    string
	pcapPath     string
	skipManifest bool
	verbose      bool
	logFile      string
}

func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the full fixture matrix",
		Long: `Generate one binary fixture per (protocol version, message kind)
pair under the output directory, plus a YAML manifest listing what was
written. The run is all-or-nothing: the first failure aborts it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(flags)
		},
	}

	cmd.Flags().StringVar(&flags.outputDir, "output-dir", app.DefaultOutputDir, "Base directory for generated fixtures")
	cmd.Flags().StringVar(&flags.pcapPath, "pcap", "", "Also write the matrix as a capture file at this path")
	cmd.Flags().BoolVar(&flags.skipManifest, "no-manifest", false, "Skip writing the manifest")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "Log each fixture as it is written")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Mirror diagnostics to a log file")

	return cmd
}

func runGenerate(flags *generateFlags) error {
	return app.RunGenerate(app.GenerateOptions{
		OutputDir:    flags.outputDir,
		PCAPPath:     flags.pcapPath,
		SkipManifest: flags.skipManifest,
		Verbose:      flags.verbose,
		LogFile:      flags.logFile,
	})
}
