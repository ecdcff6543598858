package redis

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/cache"
)

func TestSnapshotRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache("cart")
	repo := NewSnapshotRepository(c, time.Hour)

	cart := domain.NewCart("c1", "cust")
	_, err := cart.AddItem(domain.CatalogItem{
		ID:        "1",
		UnitPrice: decimal.RequireFromString("24.99"),
		ListPrice: decimal.NewNullDecimal(decimal.RequireFromString("29.99")),
	}, 3)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, cart.Snapshot()))

	raw, err := c.Get(ctx, "cart:snapshot:c1")
	require.NoError(t, err)
	assert.Contains(t, raw, `"unit_price":"24.99"`)

	snap, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	restored, err := domain.Restore(snap)
	require.NoError(t, err)
	assert.Equal(t, 3, restored.Units())
	assert.True(t, restored.Items()[0].UnitPrice.Equal(decimal.RequireFromString("24.99")))

	require.NoError(t, repo.Delete(ctx, "c1"))
	_, err = repo.Load(ctx, "c1")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestSnapshotRepository_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache("cart")
	require.NoError(t, c.Set(ctx, "cart:snapshot:bad", "{not json", 0))

	_, err := NewSnapshotRepository(c, 0).Load(ctx, "bad")
	assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
}
