package exporting

import (
	"fmt"
	"os"
	"path/filepath"

	"TracePlot/pkg/trace"
)

// Exporter writes a trace to a data file in one of the registered formats.
type Exporter struct {
	path   string
	format Format
}

// NewExporter creates an exporter for path and its parent directory. The
// format is taken from the extension when format is empty.
func NewExporter(path, format string) (*Exporter, error) {
	var (
		f  Format
		ok bool
	)
	if format == "" {
		f, ok = GetByPath(path)
	} else {
		f, ok = Get(format)
	}
	if !ok {
		return nil, fmt.Errorf("unsupported format for %s (valid: %v)", path, Names())
	}

	// Ensure output directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	return &Exporter{path: path, format: f}, nil
}

// Path returns the output file path.
func (e *Exporter) Path() string {
	return e.path
}

// Format returns the output format name.
func (e *Exporter) Format() string {
	return e.format.Name()
}

// WriteTrace writes every record of tr, replacing any existing file.
func (e *Exporter) WriteTrace(tr *trace.Trace) error {
	return saveRecords(e.format, e.path, tr.Records())
}
