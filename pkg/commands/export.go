package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"TracePlot/pkg/config"
)

// NewExportCmd creates the export subcommand.
func NewExportCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Aliases: []string{"x"},
		Use:     "export <output-file>",
		Short:   "Write parsed trace records to a data file",
		Long: `Parse the trace log and write its records to a data file.

The format is picked from the file extension.

Supported output formats: jsonl, csv, tsv, parquet

Example:
  trplot export assets/trace.parquet
  trplot export -i build/cpu.log trace.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, cfg, args[0])
		},
	}

	cfg.AddInputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, cfg *config.Config, output string) error {
	cfg.ApplyDefaults()

	lo, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	tr, err := loadTrace(cfg.InputPath(), lo)
	if err != nil {
		return err
	}

	exp, err := exportTrace(cfg.Resolve(output), tr)
	if err != nil {
		return fmt.Errorf("failed to export records: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s (%s)\n",
		tr.Len(), cfg.Relative(exp.Path()), exp.Format())
	return nil
}
