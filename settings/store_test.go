package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps a MemoryStore and counts reads.
type countingStore struct {
	*MemoryStore
	reads int
}

func (c *countingStore) Get(name string) (map[string]any, error) {
	c.reads++

	return c.MemoryStore.Get(name)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()

	record, err := m.Get("unknown")
	require.NoError(t, err)
	assert.Empty(t, record)

	require.NoError(t, m.Set("site", map[string]any{"title": "x"}))

	record, err = m.Get("site")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "x"}, record)

	// returned record is a copy
	record["title"] = "mutated"
	again, err := m.Get("site")
	require.NoError(t, err)
	assert.Equal(t, "x", again["title"])
}

func TestCachedStore_ReadsOnce(t *testing.T) {
	inner := &countingStore{MemoryStore: NewMemoryStore()}
	require.NoError(t, inner.Set("site", map[string]any{"title": "x"}))

	cached := NewCachedStore(inner)

	for range 5 {
		record, err := cached.Get("site")
		require.NoError(t, err)
		assert.Equal(t, "x", record["title"])
	}

	assert.Equal(t, 1, inner.reads)
}

func TestCachedStore_SetWritesThroughAndRefreshes(t *testing.T) {
	inner := &countingStore{MemoryStore: NewMemoryStore()}
	cached := NewCachedStore(inner)

	require.NoError(t, cached.Set("site", map[string]any{"title": "new"}))

	record, err := cached.Get("site")
	require.NoError(t, err)
	assert.Equal(t, "new", record["title"])
	assert.Equal(t, 0, inner.reads, "write refreshed the cache, no read needed")

	persisted, err := inner.MemoryStore.Get("site")
	require.NoError(t, err)
	assert.Equal(t, "new", persisted["title"])
}

type failingStore struct{}

func (failingStore) Get(string) (map[string]any, error) {
	return nil, errors.New("backend down")
}

func (failingStore) Set(string, map[string]any) error {
	return errors.New("backend down")
}

func TestCachedStore_PropagatesErrors(t *testing.T) {
	cached := NewCachedStore(failingStore{})

	_, err := cached.Get("site")
	require.Error(t, err)

	err = cached.Set("site", map[string]any{})
	require.Error(t, err)
}
