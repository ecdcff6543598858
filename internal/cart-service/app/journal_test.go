package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/adapters/memory"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/cartlog"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/cartlog/sqlite"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/promo"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/interceptors/constants"
)

func TestCartService_JournalsToSQLite(t *testing.T) {
	journal, err := sqlite.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer journal.Close()

	svc, err := NewCartService(Deps{
		Catalog:   memory.NewStorefrontCatalog(),
		Promos:    promo.Default(),
		Pricing:   domain.DefaultPricingConfig(),
		Snapshots: memory.NewSnapshotRepository(),
		Journal:   journal,
	})
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), constants.ContextKeyRequestID, "req-42")
	v, err := svc.CreateCart(ctx, "cust")
	require.NoError(t, err)
	id := v.Cart.ID
	_, err = svc.AddItem(ctx, id, "4", 1)
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, id, "4", "2")
	require.NoError(t, err)
	_, err = svc.ApplyPromoCode(ctx, id, "free5")
	require.NoError(t, err)

	entries, err := journal.ListByCart(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	ops := make([]cartlog.Operation, len(entries))
	for i, e := range entries {
		ops[i] = e.Operation
		assert.Equal(t, "req-42", e.RequestID)
	}
	assert.Equal(t, []cartlog.Operation{cartlog.OpCreate, cartlog.OpAddItem, cartlog.OpSetQuantity, cartlog.OpApplyPromo}, ops)

	last := entries[3]
	assert.Equal(t, "FREE5", last.Detail)
	assert.Equal(t, int64(3), last.Version)
	// 33.98 - 5.00 discount, free shipping, 8% tax on 28.98.
	assert.Equal(t, "31.30", last.Total)
}
