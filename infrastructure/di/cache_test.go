package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCache_SetGet(t *testing.T) {
	cache := NewInMemoryCache()
	ctx := context.Background()

	_, found := cache.Get(ctx, "missing")
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "k", "v", 60))
	value, found := cache.Get(ctx, "k")
	require.True(t, found)
	assert.Equal(t, "v", value)
}

func TestInMemoryCache_ExpiredEntryMisses(t *testing.T) {
	cache := NewInMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", 0))
	time.Sleep(5 * time.Millisecond)

	_, found := cache.Get(ctx, "k")
	assert.False(t, found)
}

func TestInMemoryCache_Flush(t *testing.T) {
	cache := NewInMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", 1, 60))
	require.NoError(t, cache.Set(ctx, "b", 2, 60))

	require.NoError(t, cache.Flush(ctx))

	_, found := cache.Get(ctx, "a")
	assert.False(t, found)
	_, found = cache.Get(ctx, "b")
	assert.False(t, found)
}
