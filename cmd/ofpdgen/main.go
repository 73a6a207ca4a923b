package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ofpdgen",
		Short: "OpenFlow golden fixture generator",
		Long: `ofpdgen builds canonical binary fixtures for OpenFlow message
encoding, one file per (protocol version, message kind) pair, for use
as golden files in conformance test suites.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// A bare invocation runs the full matrix generation with
		// defaults, so the tool stays usable as a zero-argument
		// one-shot builder.
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown command %q", args[0])
			}
			return runGenerate(&generateFlags{})
		},
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
