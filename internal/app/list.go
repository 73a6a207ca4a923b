package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ofplab/ofpdgen/internal/fixture"
)

type ListOptions struct {
	OutputDir string
	Plain     bool
	Out       io.Writer
}

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	listLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	listPathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

// RunList prints the dispatch matrix and the output path each pair
// would generate, without encoding or writing anything.
func RunList(opts ListOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	versions := fixture.DefaultVersions()
	messages := fixture.DefaultMessages()

	header := fmt.Sprintf("Dispatch matrix: %d version(s) x %d message(s)", len(versions), len(messages))
	if opts.Plain {
		fmt.Fprintln(out, header)
	} else {
		fmt.Fprintln(out, listHeaderStyle.Render(header))
	}

	for _, v := range versions {
		for _, m := range messages {
			pair := fmt.Sprintf("%-6s %-12s", v.Label, m.Name)
			path := fixture.FixturePath(outputDir, v, m)
			if opts.Plain {
				fmt.Fprintf(out, "  %s %s\n", pair, path)
			} else {
				fmt.Fprintf(out, "  %s %s\n", listLabelStyle.Render(pair), listPathStyle.Render(path))
			}
		}
	}
	return nil
}
