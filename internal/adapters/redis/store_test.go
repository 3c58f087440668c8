package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortviz/sortviz/internal/adapters/redis"
	"github.com/sortviz/sortviz/pkg/domain"
)

func setupStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func sampleTrace() domain.Trace {
	return domain.Trace{
		{Type: domain.StepCompare, Indices: []int{0, 1}, Array: []int{2, 1}, Message: "Comparing elements at indices 0 and 1"},
		{Type: domain.StepSwap, Indices: []int{0, 1}, Array: []int{1, 2}, Message: "Swapped elements at indices 0 and 1"},
		{Type: domain.StepPassComplete, Indices: []int{1}, Array: []int{1, 2}, Message: "Pass 1 complete. Element at index 1 is in final position"},
	}
}

func TestStore_SaveLoad(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	trace := sampleTrace()
	require.NoError(t, store.Save(ctx, "t1", trace))

	assert.True(t, mr.Exists("sortviz:trace:t1"), "trace key should be set in Redis")

	loaded, err := store.Load(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, trace, loaded)
}

func TestStore_LoadMissing(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrTraceNotFound)
}

func TestStore_Delete(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "t1", sampleTrace()))
	require.NoError(t, store.Delete(ctx, "t1"))

	assert.False(t, mr.Exists("sortviz:trace:t1"))
	_, err := store.Load(ctx, "t1")
	assert.ErrorIs(t, err, domain.ErrTraceNotFound)
}

func TestStore_List(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", sampleTrace()))
	require.NoError(t, store.Save(ctx, "b", sampleTrace()))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestStore_TTLExpiry(t *testing.T) {
	store, mr := setupStore(t, redis.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "short", sampleTrace()))

	// Advance miniredis past the TTL; the payload key expires. The index
	// entry is pruned lazily by List once wall time passes its score, so
	// only the Load behavior is asserted here.
	mr.FastForward(2 * time.Second)

	_, err := store.Load(ctx, "short")
	assert.ErrorIs(t, err, domain.ErrTraceNotFound)
}

func TestStore_CustomPrefix(t *testing.T) {
	store, mr := setupStore(t, redis.WithPrefix("viz:test:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "t1", sampleTrace()))
	assert.True(t, mr.Exists("viz:test:t1"))
}
