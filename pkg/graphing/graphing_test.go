package graphing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorValidation(t *testing.T) {
	p := mustProfile(t, DefaultProfile)

	_, err := NewGenerator("", p, nil)
	require.Error(t, err)

	_, err = NewGenerator(t.TempDir(), nil, nil)
	require.Error(t, err)

	gen, err := NewGenerator(t.TempDir(), p, nil)
	require.NoError(t, err)
	assert.NotNil(t, gen.lo)
}

func TestGenerateWritesAllCharts(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plots", "nested")
	gen, err := NewGenerator(out, mustProfile(t, DefaultProfile), nil)
	require.NoError(t, err)

	paths, err := gen.Generate(testTrace(t))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(out, "sim_waveforms.svg"),
		filepath.Join(out, "accumulator.svg"),
		filepath.Join(out, "opcode_timeline.svg"),
	}, paths)

	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		requireWellFormed(t, data)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	p := mustProfile(t, DefaultProfile)
	tr := testTrace(t)

	first, err := NewGenerator(filepath.Join(t.TempDir(), "a"), p, nil)
	require.NoError(t, err)
	second, err := NewGenerator(filepath.Join(t.TempDir(), "b"), p, nil)
	require.NoError(t, err)

	a, err := first.Generate(tr)
	require.NoError(t, err)
	b, err := second.Generate(testTrace(t))
	require.NoError(t, err)

	for i := range a {
		da, err := os.ReadFile(a[i])
		require.NoError(t, err)
		db, err := os.ReadFile(b[i])
		require.NoError(t, err)
		assert.Equal(t, da, db, filepath.Base(a[i]))
	}
}

func TestGenerateOverwrites(t *testing.T) {
	out := t.TempDir()
	stale := filepath.Join(out, "accumulator.svg")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))

	gen, err := NewGenerator(out, mustProfile(t, ProfileCompact), nil)
	require.NoError(t, err)
	_, err = gen.Generate(testTrace(t))
	require.NoError(t, err)

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestGenerateReportsWriteFailures(t *testing.T) {
	out := t.TempDir()
	// A directory in place of a chart makes that single write fail.
	require.NoError(t, os.Mkdir(filepath.Join(out, "accumulator.svg"), 0755))

	gen, err := NewGenerator(out, mustProfile(t, DefaultProfile), nil)
	require.NoError(t, err)

	paths, err := gen.Generate(testTrace(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write 1 of 3 charts")
	assert.Len(t, paths, 2)
}
