package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_StorefrontCartWithoutPromo(t *testing.T) {
	calc := NewCalculator(DefaultPricingConfig())

	b := calc.Price(storefrontCart(t))

	assertMoney(t, "62.97", b.Subtotal)
	assertMoney(t, "17.00", b.Savings)
	assertMoney(t, "0", b.Discount)
	assertMoney(t, "0", b.Shipping)
	assertMoney(t, "5.0376", b.Tax)
	assertMoney(t, "68.0076", b.Total)
	assert.Equal(t, "68.01", b.Display().Total)
}

func TestCalculator_FixedPromoAboveSubtotalIsCapped(t *testing.T) {
	calc := NewCalculator(DefaultPricingConfig())
	c := storefrontCart(t)
	_, err := c.ApplyPromoCode("bigsale", testPromos)
	require.NoError(t, err)

	b := calc.Price(c)

	assertMoney(t, "62.97", b.Discount)
	assertMoney(t, "0", b.TaxableBase)
	assertMoney(t, "0", b.Tax)
	assertMoney(t, "0", b.Shipping)
	assertMoney(t, "0", b.Total)
	assert.Equal(t, "0.00", b.Display().Total)
}

func TestCalculator_SingleItemBelowThreshold(t *testing.T) {
	calc := NewCalculator(DefaultPricingConfig())
	c := NewCart("c", "u")
	_, err := c.AddItem(book("9", "10.00", ""), 1)
	require.NoError(t, err)

	b := calc.Price(c)

	assertMoney(t, "10.00", b.Subtotal)
	assertMoney(t, "5.99", b.Shipping)
	assertMoney(t, "15.00", b.AmountToFreeShipping)
	assertMoney(t, "0", b.Savings)
	assertMoney(t, "0.80", b.Tax)
	assertMoney(t, "16.79", b.Total)
	assert.Equal(t, "16.79", b.Display().Total)
}

func TestCalculator_PercentagePromo(t *testing.T) {
	calc := NewCalculator(DefaultPricingConfig())
	c := storefrontCart(t)
	_, err := c.ApplyPromoCode("  save10 ", testPromos)
	require.NoError(t, err)

	b := calc.Price(c)

	assertMoney(t, "6.297", b.Discount)
	assertMoney(t, "56.673", b.TaxableBase)
	assertMoney(t, "4.53384", b.Tax)
	assertMoney(t, "61.20684", b.Total)
	assert.Equal(t, DisplayBreakdown{
		Subtotal: "62.97",
		Savings:  "17.00",
		Discount: "6.30",
		Shipping: "0.00",
		Tax:      "4.53",
		Total:    "61.21",

		AmountToFreeShipping: "0.00",
	}, b.Display())
}

func TestCalculator_ThresholdUsesPreDiscountSubtotal(t *testing.T) {
	calc := NewCalculator(DefaultPricingConfig())
	c := NewCart("c", "u")
	_, err := c.AddItem(book("1", "25.00", ""), 1)
	require.NoError(t, err)
	_, err = c.ApplyPromoCode("FREE5", testPromos)
	require.NoError(t, err)

	b := calc.Price(c)

	assertMoney(t, "5", b.Discount)
	assertMoney(t, "0", b.Shipping, "25.00 meets the threshold even though 20.00 is taxed")
	assertMoney(t, "0", b.AmountToFreeShipping)
	assertMoney(t, "1.60", b.Tax)
	assertMoney(t, "21.60", b.Total)
}

func TestCalculator_ThresholdBoundary(t *testing.T) {
	calc := NewCalculator(DefaultPricingConfig())
	tests := []struct {
		price    string
		shipping string
		toFree   string
	}{
		{"24.99", "5.99", "0.01"},
		{"25.00", "0", "0"},
		{"25.01", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			b := calc.Calculate([]LineItem{{ID: "x", UnitPrice: money(tt.price), Quantity: 1}}, nil)
			assertMoney(t, tt.shipping, b.Shipping)
			assertMoney(t, tt.toFree, b.AmountToFreeShipping)
		})
	}
}

func TestCalculator_EmptyCart(t *testing.T) {
	b := NewCalculator(DefaultPricingConfig()).Calculate(nil, &PromoCode{Code: "FREE5", Kind: PromoFixedAmount, Value: money("5")})

	assertMoney(t, "0", b.Subtotal)
	assertMoney(t, "0", b.Discount)
	assertMoney(t, "5.99", b.Shipping)
	assertMoney(t, "5.99", b.Total)
	assertMoney(t, "25.00", b.AmountToFreeShipping)
}

func TestCalculator_ListPriceNotAboveUnitPriceSavesNothing(t *testing.T) {
	items := []LineItem{
		{ID: "a", UnitPrice: money("10"), ListPrice: listPrice("10"), Quantity: 3},
		{ID: "b", UnitPrice: money("10"), ListPrice: listPrice("8"), Quantity: 1},
		{ID: "c", UnitPrice: money("10"), ListPrice: listPrice("12.50"), Quantity: 2},
	}

	b := NewCalculator(DefaultPricingConfig()).Calculate(items, nil)

	assertMoney(t, "5.00", b.Savings)
}

func TestPricingConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultPricingConfig().Validate())

	cfg := DefaultPricingConfig()
	cfg.TaxRate = money("-0.01")
	assert.Error(t, cfg.Validate())
}

func TestCalculator_NoFreeShippingHintWhenShippingIsFree(t *testing.T) {
	cfg := DefaultPricingConfig()
	cfg.StandardShippingFee = money("0")

	b := NewCalculator(cfg).Calculate([]LineItem{{ID: "x", UnitPrice: money("3.50"), Quantity: 1}}, nil)

	assertMoney(t, "0", b.Shipping)
	assertMoney(t, "0", b.AmountToFreeShipping)
	assert.Equal(t, "0.00", b.Display().AmountToFreeShipping)
}
