package exporting

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

const (
	DefaultBufferSize = 64 * 1024
	MaxLineSize       = 10 * 1024 * 1024
)

func init() {
	Register(&JSONLFormat{})
}

// JSONLFormat handles JSON Lines files, one Row object per line.
type JSONLFormat struct{}

func (f *JSONLFormat) Name() string         { return "jsonl" }
func (f *JSONLFormat) Extensions() []string { return []string{".jsonl", ".json"} }
func (f *JSONLFormat) Reader() Reader       { return &JSONLReader{} }
func (f *JSONLFormat) Writer() Writer       { return &JSONLWriter{} }

// JSONLReader reads JSONL files. Blank and malformed lines are skipped.
type JSONLReader struct {
	file    *os.File
	scanner *bufio.Scanner
}

func (r *JSONLReader) Open(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	r.file = file
	r.scanner = bufio.NewScanner(file)
	r.scanner.Buffer(make([]byte, DefaultBufferSize), MaxLineSize)
	return nil
}

func (r *JSONLReader) Read() ([]Row, error) {
	var rows []Row
	for r.scanner.Scan() {
		var row Row
		if json.Unmarshal(r.scanner.Bytes(), &row) != nil {
			continue
		}
		rows = append(rows, row)
	}
	if err := r.scanner.Err(); err != nil {
		return rows, fmt.Errorf("scanner error: %w", err)
	}
	return rows, nil
}

func (r *JSONLReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// JSONLWriter writes JSONL files through a buffered encoder.
type JSONLWriter struct {
	file *os.File
	buf  *bufio.Writer
	enc  *json.Encoder
}

func (w *JSONLWriter) Init(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	w.file = file
	w.buf = bufio.NewWriterSize(file, DefaultBufferSize)
	w.enc = json.NewEncoder(w.buf)
	return nil
}

// Write encodes row followed by a newline.
func (w *JSONLWriter) Write(row Row) error {
	return w.enc.Encode(row)
}

func (w *JSONLWriter) Flush() error {
	if w.buf != nil {
		return w.buf.Flush()
	}
	return nil
}

func (w *JSONLWriter) Close() error {
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
