package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"TracePlot/pkg/config"
	"TracePlot/pkg/exporting"
	"TracePlot/pkg/graphing"
	"TracePlot/pkg/trace"
)

// NewRenderCmd creates the render subcommand.
func NewRenderCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Aliases: []string{"r"},
		Use:     "render",
		Short:   "Render trace charts",
		Long: `Render the waveform, accumulator and opcode timeline charts.

The input is a testbench log; lines without a TRACE fragment are ignored.
Previously exported data files (jsonl, csv, tsv, parquet) are accepted too.

Example:
  trplot render
  trplot render -i build/cpu.log -o docs/plots --profile compact
  trplot render --export assets/trace.parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, cfg)
		},
	}

	cfg.AddInputFlags(cmd)
	cfg.AddOutputFlags(cmd)

	return cmd
}

func runRender(cmd *cobra.Command, cfg *config.Config) error {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	lo, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	profile, err := graphing.LookupProfile(cfg.Profile)
	if err != nil {
		return err
	}

	tr, err := loadTrace(cfg.InputPath(), lo)
	if err != nil {
		return err
	}

	gen, err := graphing.NewGenerator(cfg.OutputPath(), profile, lo)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	// A failed export leaves no charts behind.
	if cfg.Export != "" {
		exp, err := exportTrace(cfg.Resolve(cfg.Export), tr)
		if err != nil {
			return fmt.Errorf("failed to export records: %w", err)
		}
		lo.Info("Exported records", "file", exp.Path(), "format", exp.Format(), "records", tr.Len())
	}

	paths, err := gen.Generate(tr)
	if err != nil {
		return fmt.Errorf("failed to generate charts: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Generated SVG plots:")
	for _, p := range paths {
		fmt.Fprintf(out, " - %s\n", cfg.Relative(p))
	}
	return nil
}

// loadTrace reads a testbench log, or a data file when path carries the
// extension of a registered format.
func loadTrace(path string, lo *slog.Logger) (*trace.Trace, error) {
	if _, ok := exporting.GetByPath(path); !ok {
		tr, err := trace.Load(path)
		if err != nil {
			return nil, err
		}
		lo.Debug("Parsed trace log", "file", path, "records", tr.Len(), "trace", tr.ID())
		return tr, nil
	}

	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return nil, fmt.Errorf("open %s: %w", path, trace.ErrSourceNotFound)
	}
	records, err := exporting.LoadRecords(path)
	if err != nil {
		return nil, err
	}
	lo.Debug("Loaded exported records", "file", path, "records", len(records))
	return trace.New(records)
}

func exportTrace(path string, tr *trace.Trace) (*exporting.Exporter, error) {
	exp, err := exporting.NewExporter(path, "")
	if err != nil {
		return nil, err
	}
	if err := exp.WriteTrace(tr); err != nil {
		return nil, err
	}
	return exp, nil
}
