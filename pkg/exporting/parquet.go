package exporting

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

const ParquetBatchSize = 1000

func init() {
	Register(&ParquetFormat{})
}

// ParquetFormat handles Parquet files.
type ParquetFormat struct{}

func (f *ParquetFormat) Name() string         { return "parquet" }
func (f *ParquetFormat) Extensions() []string { return []string{".parquet"} }
func (f *ParquetFormat) Reader() Reader       { return &ParquetReader{} }
func (f *ParquetFormat) Writer() Writer       { return &ParquetWriter{} }

// ParquetReader reads Parquet files.
type ParquetReader struct {
	file  *os.File
	pfile *parquet.File
}

// Open validates the file footer before any rows are read.
func (r *ParquetReader) Open(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to open parquet file: %w", err)
	}
	r.file = file
	r.pfile = pf
	return nil
}

func (r *ParquetReader) Read() ([]Row, error) {
	if r.pfile == nil {
		return nil, fmt.Errorf("reader not initialized")
	}

	reader := parquet.NewGenericReader[Row](r.pfile)
	defer reader.Close()

	rows := make([]Row, 0, r.pfile.NumRows())
	buf := make([]Row, 100)
	for {
		n, err := reader.Read(buf)
		rows = append(rows, buf[:n]...)
		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rows: %w", err)
		}
	}
}

func (r *ParquetReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ParquetWriter writes Parquet files with the Row schema, in batches.
type ParquetWriter struct {
	file   *os.File
	writer *parquet.GenericWriter[Row]
	buffer []Row
}

func (w *ParquetWriter) Init(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	w.file = file
	w.writer = parquet.NewGenericWriter[Row](file, parquet.Compression(&parquet.Snappy))
	w.buffer = make([]Row, 0, ParquetBatchSize)
	return nil
}

func (w *ParquetWriter) Write(row Row) error {
	w.buffer = append(w.buffer, row)
	if len(w.buffer) >= ParquetBatchSize {
		return w.flushBuffer()
	}
	return nil
}

func (w *ParquetWriter) flushBuffer() error {
	if len(w.buffer) == 0 || w.writer == nil {
		return nil
	}
	if _, err := w.writer.Write(w.buffer); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	w.buffer = w.buffer[:0]
	return nil
}

func (w *ParquetWriter) Flush() error {
	if err := w.flushBuffer(); err != nil {
		return err
	}
	if w.writer != nil {
		return w.writer.Flush()
	}
	return nil
}

// Close writes the footer and closes the file.
func (w *ParquetWriter) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.Flush()
	if w.writer != nil {
		if cerr := w.writer.Close(); err == nil {
			err = cerr
		}
		w.writer = nil
	}
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	w.file = nil
	return err
}
