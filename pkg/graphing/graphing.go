// Package graphing renders simulator traces into static SVG charts.
package graphing

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/common/promslog"

	"TracePlot/pkg/trace"
)

// Builder renders a complete SVG document for a trace.
type Builder func(tr *trace.Trace, p *Profile) []byte

// Chart pairs a builder with the artifact name it is written to.
type Chart struct {
	File  string
	Build Builder
}

// Charts are rendered in this order on every run.
var Charts = []Chart{
	{File: "sim_waveforms.svg", Build: BuildWaveform},
	{File: "accumulator.svg", Build: BuildAccumulator},
	{File: "opcode_timeline.svg", Build: BuildTimeline},
}

// Generator renders all charts of a trace into an output directory.
type Generator struct {
	outputDir string
	profile   *Profile
	lo        *slog.Logger
}

// NewGenerator creates a new chart generator.
func NewGenerator(outputDir string, profile *Profile, lo *slog.Logger) (*Generator, error) {
	if outputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if profile == nil {
		return nil, fmt.Errorf("profile is required")
	}
	if lo == nil {
		lo = promslog.NewNopLogger()
	}
	return &Generator{
		outputDir: outputDir,
		profile:   profile,
		lo:        lo,
	}, nil
}

// Generate builds every chart in memory and then writes them out. The output
// directory is only created once all documents exist. It returns the paths
// of the written files.
func (g *Generator) Generate(tr *trace.Trace) ([]string, error) {
	docs := make([][]byte, len(Charts))
	for i, ch := range Charts {
		docs[i] = ch.Build(tr, g.profile)
		g.lo.Debug("Rendered chart", "file", ch.File, "bytes", len(docs[i]))
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		paths    []string
		firstErr error
		failed   int
	)
	for i, ch := range Charts {
		path := filepath.Join(g.outputDir, ch.File)
		if err := os.WriteFile(path, docs[i], 0644); err != nil {
			g.lo.Warn("Failed to write chart", "file", path, "err", err)
			if firstErr == nil {
				firstErr = err
			}
			failed++
			continue
		}
		paths = append(paths, path)
	}
	if firstErr != nil {
		return paths, fmt.Errorf("failed to write %d of %d charts: %w", failed, len(Charts), firstErr)
	}

	g.lo.Info("Generated charts", "dir", g.outputDir, "profile", g.profile.Name,
		"records", tr.Len(), "trace", tr.ID())
	return paths, nil
}
