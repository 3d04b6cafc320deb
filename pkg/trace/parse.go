package trace

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/grafana/regexp"
	"github.com/pkg/errors"
)

const (
	DefaultBufferSize = 64 * 1024
	MaxLineSize       = 10 * 1024 * 1024
)

var (
	// ErrSourceNotFound is returned when the trace log cannot be opened.
	ErrSourceNotFound = errors.New("trace log not found")

	// ErrEmptyTrace is returned when a log holds no TRACE lines.
	ErrEmptyTrace = errors.New("no TRACE lines found in log, re-run the simulation to populate it")
)

var traceRE = regexp.MustCompile(
	`TRACE cycle=(\d+) pc=(\d+) opcode=([0-9a-fA-F]+) ` +
		`alu=(-?\d+) acc=(-?\d+) rs1=(-?\d+) rs2=(-?\d+)`)

// Parse reads r line by line and returns a record for every line holding a
// TRACE fragment. Other lines are skipped.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, DefaultBufferSize), MaxLineSize)

	var records []Record
	for scanner.Scan() {
		if rec, ok := ParseLine(scanner.Text()); ok {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading trace log")
	}
	if len(records) == 0 {
		return nil, ErrEmptyTrace
	}
	return records, nil
}

// ParseLine extracts a record from a single log line. It reports false when
// the line has no TRACE fragment or a field does not fit its type.
func ParseLine(line string) (Record, bool) {
	m := traceRE.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}

	var (
		rec  Record
		errs int
	)
	parse := func(s string) int64 {
		v, e := strconv.ParseInt(s, 10, 64)
		if e != nil {
			errs++
		}
		return v
	}

	rec.Cycle = parse(m[1])
	rec.PC = parse(m[2])
	op, err := strconv.ParseUint(m[3], 16, 32)
	if err != nil {
		errs++
	}
	rec.Opcode = uint32(op)
	rec.ALU = parse(m[4])
	rec.Acc = parse(m[5])
	rec.RS1 = parse(m[6])
	rec.RS2 = parse(m[7])

	if errs > 0 {
		return Record{}, false
	}
	return rec, true
}

// Load opens the log at path and parses it into a Trace.
func Load(path string) (*Trace, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, errors.Wrapf(ErrSourceNotFound, "open %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceNotFound, "open %s", path)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return New(records)
}
