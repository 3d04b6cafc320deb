// Package commands provides CLI command implementations.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"TracePlot/pkg/config"
)

// NewRootCmd creates the root command with all subcommands. Run without a
// subcommand it renders the charts.
func NewRootCmd() *cobra.Command {
	cfg := config.New()

	root := &cobra.Command{
		Use:   "trplot",
		Short: "Render CPU simulator traces as SVG charts",
		Long: `TracePlot turns the TRACE lines printed by the CPU testbench into
static SVG charts: stacked waveforms, the accumulator trend and an opcode
timeline.

Running trplot without a command renders assets/cpu.log into assets/.

Commands:
  render     Render the charts (default)
  export     Write the parsed records to a data file
  profiles   List the available style profiles`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, cfg)
		},
	}

	cfg.AddInputFlags(root)
	cfg.AddOutputFlags(root)
	cfg.AddLogFlags(root)

	root.AddCommand(
		NewRenderCmd(cfg),
		NewExportCmd(cfg),
		NewProfilesCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
