package trace

import (
	"bytes"

	"github.com/benbjohnson/immutable"
	"github.com/google/uuid"
)

// namespace scopes trace fingerprints so they never collide with other
// name-based UUIDs derived from the same bytes.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:traceplot:trace"))

// Trace is a non-empty, read-only sequence of records in log order.
type Trace struct {
	records *immutable.List[Record]
	id      uuid.UUID
}

// New wraps records into a Trace. The slice is copied so later changes to it
// are not observed.
func New(records []Record) (*Trace, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTrace
	}
	return &Trace{
		records: immutable.NewList(records...),
		id:      fingerprint(records),
	}, nil
}

// fingerprint derives a name-based UUID from the canonical text of records,
// so identical traces always map to the same ID.
func fingerprint(records []Record) uuid.UUID {
	var buf bytes.Buffer
	for _, r := range records {
		buf.WriteString(r.String())
		buf.WriteByte('\n')
	}
	return uuid.NewSHA1(namespace, buf.Bytes())
}

// ID returns the content fingerprint of the trace.
func (t *Trace) ID() uuid.UUID { return t.id }

// Len returns the number of records.
func (t *Trace) Len() int { return t.records.Len() }

// At returns the i-th record.
func (t *Trace) At(i int) Record { return t.records.Get(i) }

// First returns the earliest record.
func (t *Trace) First() Record { return t.records.Get(0) }

// Last returns the latest record.
func (t *Trace) Last() Record { return t.records.Get(t.records.Len() - 1) }

// Records returns a copy of all records.
func (t *Trace) Records() []Record {
	out := make([]Record, 0, t.records.Len())
	itr := t.records.Iterator()
	for !itr.Done() {
		_, r := itr.Next()
		out = append(out, r)
	}
	return out
}

// Cycles returns the cycle index of every record.
func (t *Trace) Cycles() []int64 {
	out := make([]int64, t.records.Len())
	for i := range out {
		out[i] = t.records.Get(i).Cycle
	}
	return out
}

// Samples returns the values of signal s for every record, aligned with
// Cycles.
func (t *Trace) Samples(s Signal) []int64 {
	out := make([]int64, t.records.Len())
	for i := range out {
		out[i] = t.records.Get(i).Value(s)
	}
	return out
}
