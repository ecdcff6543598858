package mappers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
	cartv1 "github.com/jcmexdev/bookstore-cart/internal/genproto/cart/v1"
)

func TestCartToRPC(t *testing.T) {
	cart := domain.NewCart("c1", "cust")
	_, err := cart.AddItem(domain.CatalogItem{
		ID:        "2",
		Title:     "Atomic Habits",
		UnitPrice: decimal.RequireFromString("18.99"),
		ListPrice: decimal.NewNullDecimal(decimal.RequireFromString("24.99")),
		Available: true,
	}, 2)
	require.NoError(t, err)
	_, err = cart.ApplyPromoCode("save10", mapTable{})
	require.NoError(t, err)

	calc := domain.NewCalculator(domain.DefaultPricingConfig())
	info := CartToRPC(cart.Snapshot(), calc.Price(cart))

	assert.Equal(t, "c1", info.GetId())
	assert.Equal(t, "cust", info.GetCustomerId())
	require.Len(t, info.GetItems(), 1)
	assert.Equal(t, "18.99", info.GetItems()[0].GetUnitPrice())
	assert.Equal(t, "24.99", info.GetItems()[0].GetListPrice())
	assert.Equal(t, "37.98", info.GetItems()[0].GetLineTotal())
	assert.Equal(t, int64(2), info.GetItems()[0].GetQuantity())
	require.NotNil(t, info.GetPromo())
	assert.Equal(t, "SAVE10", info.GetPromo().GetCode())
	assert.Equal(t, "percentage", info.GetPromo().GetKind())
	assert.Equal(t, "37.98", info.GetPricing().GetSubtotal())
	assert.Equal(t, "3.798", info.GetPricing().GetDiscount())
	assert.Equal(t, "0", info.GetPricing().GetShipping())
	assert.Equal(t, "0", info.GetPricing().GetAmountToFreeShipping())
}

func TestBreakdownToRPC_AmountToFreeShipping(t *testing.T) {
	calc := domain.NewCalculator(domain.DefaultPricingConfig())
	items := []domain.LineItem{{ID: "1", UnitPrice: decimal.RequireFromString("24.99"), Quantity: 1}}

	p := BreakdownToRPC(calc.Calculate(items, nil))

	assert.Equal(t, "5.99", p.GetShipping())
	assert.Equal(t, "0.01", p.GetAmountToFreeShipping())
}

func TestCartToRPC_SurvivesTheWire(t *testing.T) {
	cart := domain.NewCart("c1", "cust")
	_, err := cart.AddItem(domain.CatalogItem{ID: "3", Title: "Dune", UnitPrice: decimal.RequireFromString("10.995"), Available: true}, 3)
	require.NoError(t, err)
	calc := domain.NewCalculator(domain.DefaultPricingConfig())
	sent := &cartv1.CartResponse{Cart: CartToRPC(cart.Snapshot(), calc.Price(cart)), Outcome: string(domain.OutcomeAdded)}

	raw, err := proto.Marshal(sent)
	require.NoError(t, err)
	got := &cartv1.CartResponse{}
	require.NoError(t, proto.Unmarshal(raw, got))

	assert.True(t, proto.Equal(sent, got), "got %v", got)
	assert.Equal(t, "32.985", got.GetCart().GetItems()[0].GetLineTotal(), "money stays exact on the wire")
}

func TestCartToRPC_NoListPriceNoPromo(t *testing.T) {
	cart := domain.NewCart("c1", "")
	_, err := cart.AddItem(domain.CatalogItem{ID: "5", UnitPrice: decimal.RequireFromString("21.99")}, 1)
	require.NoError(t, err)

	info := CartToRPC(cart.Snapshot(), domain.Breakdown{})

	assert.Empty(t, info.GetItems()[0].GetListPrice())
	assert.Nil(t, info.GetPromo())
}

type mapTable struct{}

func (mapTable) Lookup(code string) (domain.PromoCode, error) {
	if domain.NormalizeCode(code) != "SAVE10" {
		return domain.PromoCode{}, domain.ErrUnknownPromoCode
	}
	return domain.PromoCode{Code: "SAVE10", Kind: domain.PromoPercentage, Value: decimal.NewFromInt(10)}, nil
}
