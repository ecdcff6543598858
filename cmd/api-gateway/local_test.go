package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartv1 "github.com/jcmexdev/bookstore-cart/internal/genproto/cart/v1"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/config"
)

func TestLocalClient_UsesCartServiceSettings(t *testing.T) {
	promos := filepath.Join(t.TempDir(), "promos.yaml")
	require.NoError(t, os.WriteFile(promos, []byte("codes:\n  - {code: vip, kind: percentage, value: \"15\"}\n"), 0o600))
	t.Setenv("MAX_LINE_QUANTITY", "3")
	t.Setenv("FREE_SHIPPING_THRESHOLD", "50")
	t.Setenv("STANDARD_SHIPPING_FEE", "4.00")
	t.Setenv("TAX_RATE", "0.10")
	t.Setenv("PROMO_TABLE_PATH", promos)

	cfg, err := config.LoadCartService()
	require.NoError(t, err)
	client, err := localClient(cfg)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := client.CreateCart(ctx, &cartv1.CreateCartRequest{})
	require.NoError(t, err)
	id := created.GetCart().GetId()

	resp, err := client.AddItem(ctx, &cartv1.AddItemRequest{CartId: id, ItemId: "1", Quantity: 1})
	require.NoError(t, err)
	pricing := resp.GetCart().GetPricing()
	assert.Equal(t, "4", pricing.GetShipping(), "24.99 is under the configured 50.00 threshold")
	assert.Equal(t, "25.01", pricing.GetAmountToFreeShipping())
	assert.Equal(t, "2.499", pricing.GetTax())

	_, err = client.SetQuantity(ctx, &cartv1.SetQuantityRequest{CartId: id, ItemId: "1", Quantity: "4"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err), "the configured per-line limit is 3")

	resp, err = client.ApplyPromoCode(ctx, &cartv1.ApplyPromoCodeRequest{CartId: id, Code: "vip"})
	require.NoError(t, err)
	assert.Equal(t, "VIP", resp.GetCart().GetPromo().GetCode())
	_, err = client.ApplyPromoCode(ctx, &cartv1.ApplyPromoCodeRequest{CartId: id, Code: "SAVE10"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err), "the file replaces the built-in codes")
}

func TestLocalClient_BadPromoTable(t *testing.T) {
	cfg := config.CartService{PromoTablePath: filepath.Join(t.TempDir(), "missing.yaml")}

	_, err := localClient(cfg)
	assert.ErrorContains(t, err, "load promo table")
}
