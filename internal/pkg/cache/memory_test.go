package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache("cart")

	key := c.GenerateKey("snapshot", "abc")
	assert.Equal(t, "cart:snapshot:abc", key)

	v, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, c.Set(ctx, key, []byte(`{"id":"abc"}`), 0))
	v, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"abc"}`, v)

	require.NoError(t, c.Delete(ctx, key))
	v, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache("cart").(*memoryCache)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	now = now.Add(2 * time.Minute)

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, v)
}
