package exporting

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

func init() {
	Register(&CSVFormat{})
	Register(&TSVFormat{})
}

// CSVFormat handles CSV files.
type CSVFormat struct{}

func (f *CSVFormat) Name() string         { return "csv" }
func (f *CSVFormat) Extensions() []string { return []string{".csv"} }
func (f *CSVFormat) Reader() Reader       { return &DelimitedReader{delimiter: ','} }
func (f *CSVFormat) Writer() Writer       { return &DelimitedWriter{delimiter: ','} }

// TSVFormat handles TSV files.
type TSVFormat struct{}

func (f *TSVFormat) Name() string         { return "tsv" }
func (f *TSVFormat) Extensions() []string { return []string{".tsv"} }
func (f *TSVFormat) Reader() Reader       { return &DelimitedReader{delimiter: '\t'} }
func (f *TSVFormat) Writer() Writer       { return &DelimitedWriter{delimiter: '\t'} }

// DelimitedReader reads CSV/TSV files with a header row.
type DelimitedReader struct {
	file      *os.File
	reader    *csv.Reader
	index     map[string]int
	delimiter rune
}

// Open opens the file and reads the header row. Every column of Columns must
// be present; their order is free.
func (r *DelimitedReader) Open(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	r.file = file
	r.reader = csv.NewReader(file)
	r.reader.Comma = r.delimiter
	r.reader.FieldsPerRecord = -1

	header, err := r.reader.Read()
	if err != nil {
		_ = r.file.Close()
		return fmt.Errorf("failed to read header: %w", err)
	}
	r.index = make(map[string]int, len(header))
	for i, name := range header {
		r.index[name] = i
	}
	for _, col := range Columns {
		if _, ok := r.index[col]; !ok {
			_ = r.file.Close()
			return fmt.Errorf("missing column %q in header", col)
		}
	}
	return nil
}

// Read parses all rows of the file. Rows with unparsable values are skipped.
func (r *DelimitedReader) Read() ([]Row, error) {
	var rows []Row
	for {
		fields, err := r.reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		if row, ok := ParseFields(fields, r.index); ok {
			rows = append(rows, row)
		}
	}
}

// Close closes the underlying file handle.
func (r *DelimitedReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// DelimitedWriter writes CSV/TSV files. The header is written by Init so an
// export without records still names its columns.
type DelimitedWriter struct {
	file      *os.File
	writer    *csv.Writer
	delimiter rune
}

// Init creates the file and writes the header row.
func (w *DelimitedWriter) Init(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	w.file = file
	w.writer = csv.NewWriter(file)
	w.writer.Comma = w.delimiter

	if err := w.writer.Write(Columns); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// Write appends a single row.
func (w *DelimitedWriter) Write(row Row) error {
	return w.writer.Write(row.Fields())
}

// Flush writes any buffered data to the file.
func (w *DelimitedWriter) Flush() error {
	if w.writer == nil {
		return nil
	}
	w.writer.Flush()
	return w.writer.Error()
}

// Close flushes the buffer and closes the file.
func (w *DelimitedWriter) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.Flush()
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	w.file = nil
	return err
}
