package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TracePlot/pkg/exporting"
	"TracePlot/pkg/trace"
)

const testLog = `VCD info: dumpfile cpu.vcd opened for output.
TRACE cycle=0 pc=0 opcode=5 alu=3 acc=0 rs1=0 rs2=0
TRACE cycle=1 pc=1 opcode=5 alu=4 acc=0 rs1=0 rs2=0
TRACE cycle=2 pc=2 opcode=8 alu=12 acc=0 rs1=3 rs2=4
TRACE cycle=3 pc=10 opcode=f alu=0 acc=12 rs1=12 rs2=0
$finish
`

func writeLog(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, "assets")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cpu.log"), []byte(content), 0644))
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderDefault(t *testing.T) {
	root := t.TempDir()
	writeLog(t, root, testLog)

	out, _, err := run(t, "--root", root)
	require.NoError(t, err)

	want := "Generated SVG plots:\n" +
		" - " + filepath.Join("assets", "sim_waveforms.svg") + "\n" +
		" - " + filepath.Join("assets", "accumulator.svg") + "\n" +
		" - " + filepath.Join("assets", "opcode_timeline.svg") + "\n"
	assert.Equal(t, want, out)

	for _, name := range []string{"sim_waveforms.svg", "accumulator.svg", "opcode_timeline.svg"} {
		info, err := os.Stat(filepath.Join(root, "assets", name))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRenderSubcommand(t *testing.T) {
	root := t.TempDir()
	writeLog(t, root, testLog)

	_, stderr, err := run(t, "render", "--root", root, "-o", "plots", "--profile", "compact",
		"--export", "plots/trace.jsonl", "--log.level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Generated charts")

	_, err = os.Stat(filepath.Join(root, "plots", "opcode_timeline.svg"))
	require.NoError(t, err)

	records, err := exporting.LoadRecords(filepath.Join(root, "plots", "trace.jsonl"))
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestRenderMissingLog(t *testing.T) {
	root := t.TempDir()

	_, _, err := run(t, "--root", root)
	require.ErrorIs(t, err, trace.ErrSourceNotFound)

	_, statErr := os.Stat(filepath.Join(root, "assets"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderEmptyLog(t *testing.T) {
	root := t.TempDir()
	writeLog(t, root, "compiling...\n$finish\n")

	_, _, err := run(t, "--root", root, "-o", "out")
	require.ErrorIs(t, err, trace.ErrEmptyTrace)
	assert.Contains(t, err.Error(), "re-run the simulation")

	_, statErr := os.Stat(filepath.Join(root, "out"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderInvalidFlags(t *testing.T) {
	root := t.TempDir()
	writeLog(t, root, testLog)

	_, _, err := run(t, "--root", root, "--profile", "neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown profile")

	_, _, err = run(t, "--root", root, "--log.level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	_, _, err = run(t, "--root", root, "extra")
	require.Error(t, err)
}

func TestExportThenRenderFromData(t *testing.T) {
	root := t.TempDir()
	writeLog(t, root, testLog)

	out, _, err := run(t, "export", "--root", root, "trace.csv")
	require.NoError(t, err)
	assert.Equal(t, "Exported 4 records to trace.csv (csv)\n", out)

	out, _, err = run(t, "--root", root, "-i", "trace.csv", "-o", "fromcsv")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("fromcsv", "accumulator.svg"))

	fromData, err := os.ReadFile(filepath.Join(root, "fromcsv", "accumulator.svg"))
	require.NoError(t, err)
	_, _, err = run(t, "--root", root, "-o", "fromlog")
	require.NoError(t, err)
	again, err := os.ReadFile(filepath.Join(root, "fromlog", "accumulator.svg"))
	require.NoError(t, err)
	assert.Equal(t, fromData, again)
}

func TestExportErrors(t *testing.T) {
	root := t.TempDir()

	_, _, err := run(t, "export", "--root", root, "trace.csv")
	require.ErrorIs(t, err, trace.ErrSourceNotFound)

	writeLog(t, root, testLog)
	_, _, err = run(t, "export", "--root", root, "trace.xml")
	require.Error(t, err)

	_, _, err = run(t, "export", "--root", root)
	require.Error(t, err)
}

func TestRenderMissingDataFile(t *testing.T) {
	root := t.TempDir()

	_, _, err := run(t, "--root", root, "-i", "trace.parquet")
	require.ErrorIs(t, err, trace.ErrSourceNotFound)
}

func TestRenderCorruptParquet(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "trace.parquet"), []byte("not parquet at all"), 0644))

	var err error
	require.NotPanics(t, func() { _, _, err = run(t, "--root", root, "-i", "trace.parquet") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open parquet file")

	_, statErr := os.Stat(filepath.Join(root, "assets"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderExportFailureWritesNoCharts(t *testing.T) {
	root := t.TempDir()
	writeLog(t, root, testLog)
	// A regular file where the export directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(root, "blocker"), nil, 0644))

	_, _, err := run(t, "--root", root, "--export", "blocker/trace.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to export records")

	for _, name := range []string{"sim_waveforms.svg", "accumulator.svg", "opcode_timeline.svg"} {
		_, statErr := os.Stat(filepath.Join(root, "assets", name))
		assert.True(t, os.IsNotExist(statErr), name)
	}
}

func TestProfilesCommand(t *testing.T) {
	out, _, err := run(t, "profiles")
	require.NoError(t, err)

	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "annotated")
	assert.Contains(t, out, "compact")
	assert.Contains(t, out, "1100x660")
	assert.Contains(t, out, "900x540")
	assert.Contains(t, out, "900x220")
}
