package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Orders []string `json:"orders"`
	Total  float64  `json:"total"`
}

func testStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := New(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, time.Minute), mr
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	in := snapshot{Orders: []string{"ORD-202501-0001"}, Total: 5000}
	require.NoError(t, store.Set(ctx, "reports:bag:v1", in))

	var out snapshot
	hit, err := store.Get(ctx, "reports:bag:v1", &out)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, in, out)
}

func TestStoreMiss(t *testing.T) {
	store, _ := testStore(t)

	var out snapshot
	hit, err := store.Get(context.Background(), "missing", &out)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestStoreTTLExpiry(t *testing.T) {
	store, mr := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", snapshot{Total: 1}))
	mr.FastForward(2 * time.Minute)

	var out snapshot
	hit, err := store.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestStoreInvalidate(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", snapshot{Total: 1}))
	require.NoError(t, store.Invalidate(ctx, "k", "unknown"))

	var out snapshot
	hit, err := store.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestNilStoreIsNoop(t *testing.T) {
	var store *Store
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", snapshot{}))
	hit, err := store.Get(ctx, "k", &snapshot{})
	require.NoError(t, err)
	require.False(t, hit)
}
