package exporting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TracePlot/pkg/trace"
)

func sampleRecords() []trace.Record {
	return []trace.Record{
		{Cycle: 0, PC: 0, Opcode: trace.OpLOADI, ALU: 3},
		{Cycle: 1, PC: 1, Opcode: trace.OpMAC4, ALU: -12, RS1: -3, RS2: 4},
		{Cycle: 2, PC: 2, Opcode: trace.OpACC, ALU: 9, Acc: 9, RS1: 9},
		{Cycle: 4, PC: 3, Opcode: 0x7},
	}
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"csv", "jsonl", "parquet", "tsv"}, Names())

	tests := []struct {
		path string
		want string
	}{
		{"trace.jsonl", "jsonl"},
		{"trace.json", "jsonl"},
		{"trace.CSV", "csv"},
		{"out/trace.tsv", "tsv"},
		{"trace.parquet", "parquet"},
	}
	for _, tt := range tests {
		f, ok := GetByPath(tt.path)
		require.True(t, ok, tt.path)
		assert.Equal(t, tt.want, f.Name(), tt.path)
	}

	_, ok := GetByPath("cpu.log")
	assert.False(t, ok)
	_, ok = GetByExtension("parquet")
	assert.True(t, ok)
}

func writeRecords(t *testing.T, path string, records []trace.Record) {
	t.Helper()
	f, ok := GetByPath(path)
	require.True(t, ok, path)
	require.NoError(t, saveRecords(f, path, records))
}

func TestRoundTrip(t *testing.T) {
	for _, ext := range []string{".jsonl", ".csv", ".tsv", ".parquet"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "trace"+ext)
			writeRecords(t, path, sampleRecords())

			got, err := LoadRecords(path)
			require.NoError(t, err)
			assert.Equal(t, sampleRecords(), got)
		})
	}
}

func TestExporter(t *testing.T) {
	tr, err := trace.New(sampleRecords())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "dir", "trace.parquet")
	exp, err := NewExporter(path, "")
	require.NoError(t, err)
	assert.Equal(t, "parquet", exp.Format())
	assert.Equal(t, path, exp.Path())
	require.NoError(t, exp.WriteTrace(tr))

	got, err := LoadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, tr.Records(), got)

	_, err = NewExporter(filepath.Join(t.TempDir(), "trace.xml"), "")
	require.Error(t, err)

	out := filepath.Join(t.TempDir(), "trace.out")
	exp, err = NewExporter(out, "csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", exp.Format())
	require.NoError(t, exp.WriteTrace(tr))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "cycle,pc,opcode,alu,acc,rs1,rs2\n0,0,5,3,0,0,0\n"))
}

func TestExportedCSVWithoutRecordsHasHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	writeRecords(t, path, nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cycle,pc,opcode,alu,acc,rs1,rs2\n", string(data))

	_, err = LoadRecords(path)
	require.ErrorIs(t, err, trace.ErrEmptyTrace)
}

func TestCorruptParquet(t *testing.T) {
	for name, content := range map[string]string{
		"garbage": "not parquet at all",
		"empty":   "",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "trace.parquet")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			var err error
			require.NotPanics(t, func() { _, err = LoadRecords(path) })
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to open parquet file")
		})
	}
}

func TestCSVHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	require.NoError(t, os.WriteFile(path, []byte("cycle,pc,opcode,alu,acc,rs1,rs2\n"), 0644))

	_, err := LoadRecords(path)
	require.ErrorIs(t, err, trace.ErrEmptyTrace)
}

func TestCSVColumnOrderAndBadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	data := "rs2,rs1,acc,alu,opcode,pc,cycle\n" +
		"0,7,7,0,15,10,3\n" +
		"x,0,0,0,0,0,4\n" +
		"0,0,0,0,-1,0,5\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	got, err := LoadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, []trace.Record{{Cycle: 3, PC: 10, Opcode: 15, Acc: 7, RS1: 7}}, got)
}

func TestCSVMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	require.NoError(t, os.WriteFile(path, []byte("cycle,pc,opcode\n1,2,3\n"), 0644))

	_, err := LoadRecords(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "alu"`)
}

func TestJSONLSkipsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl")
	data := `{"cycle":1,"pc":2,"opcode":8,"alu":3,"acc":0,"rs1":1,"rs2":2}` + "\n" +
		"not json\n\n" +
		`{"cycle":2,"pc":3,"opcode":-4}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	got, err := LoadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, []trace.Record{{Cycle: 1, PC: 2, Opcode: 8, ALU: 3, RS1: 1, RS2: 2}}, got)
}

func TestRowRecord(t *testing.T) {
	rec := trace.Record{Cycle: 3, PC: 10, Opcode: 0xF, Acc: 7, RS1: 7}
	back, err := RowOf(rec).Record()
	require.NoError(t, err)
	assert.Equal(t, rec, back)

	_, err = Row{Opcode: 1 << 33}.Record()
	require.Error(t, err)
}

func TestRowFields(t *testing.T) {
	row := Row{Cycle: 3, PC: 10, Opcode: 15, ALU: -2, Acc: 7, RS1: 7}
	assert.Equal(t, []string{"3", "10", "15", "-2", "7", "7", "0"}, row.Fields())

	index := map[string]int{}
	for i, col := range Columns {
		index[col] = i
	}
	back, ok := ParseFields(row.Fields(), index)
	require.True(t, ok)
	assert.Equal(t, row, back)

	_, ok = ParseFields([]string{"1", "2"}, index)
	assert.False(t, ok)
	delete(index, "rs2")
	_, ok = ParseFields(row.Fields(), index)
	assert.False(t, ok)
}
