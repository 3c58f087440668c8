package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortviz/sortviz/internal/adapters/file"
	"github.com/sortviz/sortviz/internal/config"
	"github.com/sortviz/sortviz/pkg/domain"
)

func TestParseInts(t *testing.T) {
	got, err := parseInts([]string{"3", "-1", "2"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, -1, 2}, got)
}

func TestParseInts_NonNumeric(t *testing.T) {
	_, err := parseInts([]string{"1", "banana"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotComparable)
}

func TestRunSort_PrintsDriverSummary(t *testing.T) {
	var buf bytes.Buffer
	opts := RunOptions{
		Args:     []string{"3", "1", "2"},
		Headless: true,
		Out:      &buf,
	}

	require.NoError(t, RunSort(context.Background(), opts))

	out := buf.String()
	assert.Contains(t, out, "Original array: [3 1 2]")
	assert.Contains(t, out, "Number of steps: 7")
}

func TestRunSort_JSONMode(t *testing.T) {
	var buf bytes.Buffer
	opts := RunOptions{
		Args: []string{"2", "1"},
		JSON: true,
		Out:  &buf,
	}

	require.NoError(t, RunSort(context.Background(), opts))

	// Pure NDJSON: no banner, no summary lines.
	out := buf.String()
	assert.NotContains(t, out, "Original array")
	assert.Contains(t, out, `"type":"compare"`)
	assert.Contains(t, out, `"type":"swap"`)
}

func TestRunSort_SavesTrace(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	opts := RunOptions{
		Args:     []string{"2", "1"},
		Headless: true,
		SaveDir:  dir,
		Out:      &buf,
	}

	require.NoError(t, RunSort(context.Background(), opts))

	store, err := file.New(dir)
	require.NoError(t, err)
	ids, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 1)

	trace, err := store.Load(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, trace.Final())
}

func TestRunSort_RejectsNonNumericArgs(t *testing.T) {
	var buf bytes.Buffer
	opts := RunOptions{
		Args:     []string{"1", "x"},
		Headless: true,
		Out:      &buf,
	}

	err := RunSort(context.Background(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotComparable)
	assert.NotContains(t, buf.String(), "Number of steps", "no partial output on bad input")
}

func TestReplayTrace_FromFile(t *testing.T) {
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)

	trace := domain.Trace{
		{Type: domain.StepCompare, Indices: []int{0, 1}, Array: []int{2, 1}, Message: "Comparing elements at indices 0 and 1"},
		{Type: domain.StepSwap, Indices: []int{0, 1}, Array: []int{1, 2}, Message: "Swapped elements at indices 0 and 1"},
	}
	require.NoError(t, store.Save(context.Background(), "t1", trace))

	var buf bytes.Buffer
	opts := ReplayOptions{
		Path:     filepath.Join(dir, "t1.ndjson"),
		Headless: true,
		Out:      &buf,
	}

	require.NoError(t, ReplayTrace(context.Background(), opts))
	assert.Contains(t, buf.String(), "Swapped elements at indices 0 and 1")
}

func TestReplayTrace_FromStoreID(t *testing.T) {
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), "t2", domain.Trace{
		{Type: domain.StepPassComplete, Indices: []int{0}, Array: []int{1}, Message: "Pass 1 complete. Element at index 0 is in final position"},
	}))

	cfg := config.Default()
	cfg.Traces.Dir = dir

	var buf bytes.Buffer
	opts := ReplayOptions{
		ID:       "t2",
		Config:   cfg,
		Headless: true,
		Out:      &buf,
	}

	require.NoError(t, ReplayTrace(context.Background(), opts))
	assert.Contains(t, buf.String(), "Pass 1 complete")
}

func TestReplayTrace_RequiresSource(t *testing.T) {
	err := ReplayTrace(context.Background(), ReplayOptions{Out: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestReport_WritesMarkdown(t *testing.T) {
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), "r1", domain.Trace{
		{Type: domain.StepCompare, Indices: []int{0, 1}, Array: []int{2, 1}, Message: "Comparing elements at indices 0 and 1"},
		{Type: domain.StepSwap, Indices: []int{0, 1}, Array: []int{1, 2}, Message: "Swapped elements at indices 0 and 1"},
		{Type: domain.StepPassComplete, Indices: []int{1}, Array: []int{1, 2}, Message: "Pass 1 complete. Element at index 1 is in final position"},
	}))

	cfg := config.Default()
	cfg.Traces.Dir = dir

	var buf bytes.Buffer
	opts := ReplayOptions{
		ID:     "r1",
		Config: cfg,
		Out:    &buf,
	}

	require.NoError(t, Report(context.Background(), opts))
	out := buf.String()
	assert.Contains(t, out, "Original array: `[2 1]`")
	assert.Contains(t, out, "Sorted array: `[1 2]`")
}
