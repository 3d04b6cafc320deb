// Package exporting reads and writes parsed trace records as data files.
package exporting

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"TracePlot/pkg/trace"
)

// Row is the on-disk layout of a trace record shared by all formats.
type Row struct {
	Cycle  int64 `json:"cycle" parquet:"cycle"`
	PC     int64 `json:"pc" parquet:"pc"`
	Opcode int64 `json:"opcode" parquet:"opcode"`
	ALU    int64 `json:"alu" parquet:"alu"`
	Acc    int64 `json:"acc" parquet:"acc"`
	RS1    int64 `json:"rs1" parquet:"rs1"`
	RS2    int64 `json:"rs2" parquet:"rs2"`
}

// Columns lists the Row fields in file order.
var Columns = []string{"cycle", "pc", "opcode", "alu", "acc", "rs1", "rs2"}

// RowOf converts a record to its on-disk layout.
func RowOf(r trace.Record) Row {
	return Row{
		Cycle:  r.Cycle,
		PC:     r.PC,
		Opcode: int64(r.Opcode),
		ALU:    r.ALU,
		Acc:    r.Acc,
		RS1:    r.RS1,
		RS2:    r.RS2,
	}
}

// Record converts a row back to a trace record.
func (r Row) Record() (trace.Record, error) {
	if r.Opcode < 0 || r.Opcode > 0xFFFFFFFF {
		return trace.Record{}, fmt.Errorf("opcode out of range: %d", r.Opcode)
	}
	return trace.Record{
		Cycle:  r.Cycle,
		PC:     r.PC,
		Opcode: uint32(r.Opcode),
		ALU:    r.ALU,
		Acc:    r.Acc,
		RS1:    r.RS1,
		RS2:    r.RS2,
	}, nil
}

func (r *Row) values() []*int64 {
	return []*int64{&r.Cycle, &r.PC, &r.Opcode, &r.ALU, &r.Acc, &r.RS1, &r.RS2}
}

// Fields returns the row as decimal strings in Columns order.
func (r Row) Fields() []string {
	vals := r.values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.FormatInt(*v, 10)
	}
	return out
}

// ParseFields builds a row from decimal strings. index maps each column
// name to its position in fields.
func ParseFields(fields []string, index map[string]int) (Row, bool) {
	var row Row
	for i, v := range row.values() {
		j, ok := index[Columns[i]]
		if !ok || j >= len(fields) {
			return Row{}, false
		}
		n, err := strconv.ParseInt(strings.TrimSpace(fields[j]), 10, 64)
		if err != nil {
			return Row{}, false
		}
		*v = n
	}
	return row, true
}

// Format defines the interface for a data format.
type Format interface {
	Name() string
	Extensions() []string
	Reader() Reader
	Writer() Writer
}

// Reader reads rows from a file.
type Reader interface {
	Open(path string) error
	Read() ([]Row, error)
	Close() error
}

// Writer writes rows to a file.
type Writer interface {
	Init(path string) error
	Write(row Row) error
	Flush() error
	Close() error
}

// Registry management
var (
	registry    = make(map[string]Format)
	extRegistry = make(map[string]Format)
)

// Register adds a format to the registry.
func Register(f Format) {
	name := strings.ToLower(f.Name())
	registry[name] = f
	for _, ext := range f.Extensions() {
		extRegistry[strings.ToLower(ext)] = f
	}
}

// Get returns a format by name.
func Get(name string) (Format, bool) {
	f, ok := registry[strings.ToLower(name)]
	return f, ok
}

// GetByExtension returns a format by file extension.
func GetByExtension(ext string) (Format, bool) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	f, ok := extRegistry[ext]
	return f, ok
}

// GetByPath returns a format based on the file's extension.
func GetByPath(path string) (Format, bool) {
	return GetByExtension(filepath.Ext(path))
}

// Names returns the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadRecords loads all records from a file. Rows whose opcode does not fit
// are skipped; a file without usable rows yields trace.ErrEmptyTrace.
func LoadRecords(path string) ([]trace.Record, error) {
	f, ok := GetByPath(path)
	if !ok {
		return nil, fmt.Errorf("unsupported format for file: %s", path)
	}

	reader := f.Reader()
	if err := reader.Open(path); err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer reader.Close()

	rows, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	records := make([]trace.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.Record()
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, trace.ErrEmptyTrace)
	}

	return records, nil
}

// saveRecords writes records to path in format f.
func saveRecords(f Format, path string, records []trace.Record) error {
	writer := f.Writer()
	if err := writer.Init(path); err != nil {
		return fmt.Errorf("failed to initialize writer: %w", err)
	}

	for i, rec := range records {
		if err := writer.Write(RowOf(rec)); err != nil {
			writer.Close()
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	if err := writer.Flush(); err != nil {
		writer.Close()
		return fmt.Errorf("failed to flush: %w", err)
	}

	return writer.Close()
}
