package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
)

func TestStorefrontCatalog(t *testing.T) {
	c := NewStorefrontCatalog()

	it, err := c.Lookup(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "The Midnight Library", it.Title)
	assert.Equal(t, "24.99", it.UnitPrice.StringFixed(2))
	assert.True(t, it.ListPrice.Valid)

	it, err = c.Lookup(context.Background(), "3")
	require.NoError(t, err)
	assert.False(t, it.Available)

	_, err = c.Lookup(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrCatalogItemNotFound)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, c.IDs())
}

func TestSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository()

	_, err := repo.Load(ctx, "c1")
	require.ErrorIs(t, err, domain.ErrCartNotFound)

	cart := domain.NewCart("c1", "cust")
	item, err := NewStorefrontCatalog().Lookup(ctx, "2")
	require.NoError(t, err)
	_, err = cart.AddItem(item, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, cart.Snapshot()))

	got, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	got.Items[0].Quantity = 50

	again, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity, "stored snapshot must not alias loaded copies")

	require.NoError(t, repo.Delete(ctx, "c1"))
	assert.Zero(t, repo.Len())
}
