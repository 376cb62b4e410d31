// Package cli implements the mathbox command-line interface.
//
// # Commands
//
//   - render: lay out a sample formula and write it as PNG
//   - samples: list the built-in sample formulas
//
// # Logging
//
// Commands log through github.com/charmbracelet/log at info level, or debug
// with --verbose (-v). The same logger is installed as the mathbox package
// logger, so planner records appear in the CLI output.
package cli

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/mathbox"
)

// NewRootCommand builds the mathbox command tree. Regular output goes to
// stdout, logs go to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "mathbox",
		Short:         "mathbox lays out math notation and renders it to PNG",
		Version:       mathbox.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(stderr, level)
			mathbox.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newSamplesCmd())
	return root
}
