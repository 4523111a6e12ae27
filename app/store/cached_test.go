package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps Store and counts reads hitting the backend.
type countingStore struct {
	*Store
	mu   sync.Mutex
	gets int
}

func (c *countingStore) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	c.gets++
	c.mu.Unlock()
	return c.Store.Get(ctx, key)
}

func (c *countingStore) getCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gets
}

func newTestCached(t *testing.T) (*Cached, *countingStore) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := New(dbPath)
	require.NoError(t, err)
	counting := &countingStore{Store: st}
	cached, err := NewCached(counting, 16)
	require.NoError(t, err)
	return cached, counting
}

func TestCached_GetSet(t *testing.T) {
	ctx := context.Background()
	cached, backend := newTestCached(t)
	defer cached.Close()

	require.NoError(t, cached.Set(ctx, "theme", "dark"))

	value, err := cached.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	// second read served from cache
	value, err = cached.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
	assert.Equal(t, 1, backend.getCount())
}

func TestCached_SetInvalidates(t *testing.T) {
	ctx := context.Background()
	cached, _ := newTestCached(t)
	defer cached.Close()

	require.NoError(t, cached.Set(ctx, "theme", "dark"))
	value, err := cached.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	require.NoError(t, cached.Set(ctx, "theme", "light"))
	value, err = cached.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value, "write invalidates the cached entry")
}

func TestCached_NotFoundPassesThrough(t *testing.T) {
	ctx := context.Background()
	cached, _ := newTestCached(t)
	defer cached.Close()

	_, err := cached.Get(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound), "ErrNotFound survives wrapping")
}

func TestCached_Stats(t *testing.T) {
	ctx := context.Background()
	cached, _ := newTestCached(t)
	defer cached.Close()

	require.NoError(t, cached.Set(ctx, "theme", "dark"))
	_, err := cached.Get(ctx, "theme")
	require.NoError(t, err)
	_, err = cached.Get(ctx, "theme")
	require.NoError(t, err)

	stats := cached.Stats()
	assert.EqualValues(t, 1, stats.Hits)
	assert.EqualValues(t, 1, stats.Misses)
}
