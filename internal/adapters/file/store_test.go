package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortviz/sortviz/pkg/domain"
)

func sampleTrace() domain.Trace {
	return domain.Trace{
		{Type: domain.StepCompare, Indices: []int{0, 1}, Array: []int{2, 1}, Message: "Comparing elements at indices 0 and 1"},
		{Type: domain.StepSwap, Indices: []int{0, 1}, Array: []int{1, 2}, Message: "Swapped elements at indices 0 and 1"},
		{Type: domain.StepPassComplete, Indices: []int{1}, Array: []int{1, 2}, Message: "Pass 1 complete. Element at index 1 is in final position"},
	}
}

func TestStore_SaveLoad(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	trace := sampleTrace()
	require.NoError(t, store.Save(ctx, "t1", trace))

	loaded, err := store.Load(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, trace, loaded)
}

func TestStore_LoadMissing(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrTraceNotFound)
}

func TestStore_DeleteAndList(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", sampleTrace()))
	require.NoError(t, store.Save(ctx, "b", sampleTrace()))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)

	require.NoError(t, store.Delete(ctx, "a"))

	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)

	assert.ErrorIs(t, store.Delete(ctx, "a"), domain.ErrTraceNotFound)
}

func TestReadTrace_ToleratesBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.ndjson")
	content := `{"type":"compare","indices":[0,1],"array":[2,1],"message":"compare"}

{"type":"swap","indices":[0,1],"array":[1,2],"message":"swap"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	trace, err := ReadTrace(path)
	require.NoError(t, err)
	require.Len(t, trace, 2)
	assert.Equal(t, domain.StepCompare, trace[0].Type)
	assert.Equal(t, []int{1, 2}, trace[1].Array)
}

func TestReadTrace_RejectsFractionalElements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ndjson")
	content := `{"type":"compare","indices":[0,1],"array":[2.5,1],"message":"compare"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadTrace(path)
	require.Error(t, err)
	// mapstructure flattens hook errors to strings, so match on the text.
	assert.Contains(t, err.Error(), "not comparable")
}

func TestReadTrace_RejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ndjson")
	content := `{"type":"shuffle","indices":[0],"array":[1],"message":"?"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadTrace(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step type")
}

func TestReadTrace_RejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.ndjson")
	require.NoError(t, os.WriteFile(path, []byte("{oops\n"), 0o644))

	_, err := ReadTrace(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}
