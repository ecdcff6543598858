package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/bookstore-cart/internal/pkg/currency"
)

type PricingConfig struct {
	FreeShippingThreshold decimal.Decimal
	StandardShippingFee   decimal.Decimal
	TaxRate               decimal.Decimal
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		FreeShippingThreshold: decimal.RequireFromString("25.00"),
		StandardShippingFee:   decimal.RequireFromString("5.99"),
		TaxRate:               decimal.RequireFromString("0.08"),
	}
}

func (c PricingConfig) Validate() error {
	switch {
	case c.FreeShippingThreshold.IsNegative():
		return fmt.Errorf("pricing: negative free shipping threshold %s", c.FreeShippingThreshold)
	case c.StandardShippingFee.IsNegative():
		return fmt.Errorf("pricing: negative shipping fee %s", c.StandardShippingFee)
	case c.TaxRate.IsNegative():
		return fmt.Errorf("pricing: negative tax rate %s", c.TaxRate)
	}
	return nil
}

// Breakdown holds exact, unrounded amounts. Use Display for presentation.
type Breakdown struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Savings     decimal.Decimal `json:"savings"`
	Discount    decimal.Decimal `json:"discount"`
	Shipping    decimal.Decimal `json:"shipping"`
	TaxableBase decimal.Decimal `json:"taxable_base"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`

	// AmountToFreeShipping is how much more subtotal would waive shipping.
	// It is zero whenever shipping is already free.
	AmountToFreeShipping decimal.Decimal `json:"amount_to_free_shipping"`
}

// DisplayBreakdown is a Breakdown rounded half-up to cents.
type DisplayBreakdown struct {
	Subtotal string `json:"subtotal"`
	Savings  string `json:"savings"`
	Discount string `json:"discount"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`

	AmountToFreeShipping string `json:"amount_to_free_shipping"`
}

func (b Breakdown) Display() DisplayBreakdown {
	return DisplayBreakdown{
		Subtotal: currency.Format(b.Subtotal),
		Savings:  currency.Format(b.Savings),
		Discount: currency.Format(b.Discount),
		Shipping: currency.Format(b.Shipping),
		Tax:      currency.Format(b.Tax),
		Total:    currency.Format(b.Total),

		AmountToFreeShipping: currency.Format(b.AmountToFreeShipping),
	}
}

// Calculator derives a Breakdown from cart state. It holds no mutable state
// and never fails on already-valid input.
type Calculator struct {
	cfg PricingConfig
}

func NewCalculator(cfg PricingConfig) Calculator {
	return Calculator{cfg: cfg}
}

func (c Calculator) Config() PricingConfig { return c.cfg }

// Price is Calculate over the cart's current items and promo.
func (c Calculator) Price(cart *Cart) Breakdown {
	return c.Calculate(cart.items, cart.promo)
}

// Calculate sums in collection order; the free-shipping threshold is compared
// against the subtotal before any discount, and shipping is not taxed.
func (c Calculator) Calculate(items []LineItem, promo *PromoCode) Breakdown {
	subtotal := decimal.Zero
	savings := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal())
		savings = savings.Add(it.Savings())
	}

	discount := decimal.Zero
	if promo != nil {
		discount = promo.DiscountOn(subtotal)
	}

	shipping := c.cfg.StandardShippingFee
	if subtotal.GreaterThanOrEqual(c.cfg.FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	toFree := decimal.Zero
	if shipping.IsPositive() {
		toFree = c.cfg.FreeShippingThreshold.Sub(subtotal)
	}

	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(c.cfg.TaxRate)

	return Breakdown{
		Subtotal:    subtotal,
		Savings:     savings,
		Discount:    discount,
		Shipping:    shipping,
		TaxableBase: taxable,
		Tax:         tax,
		Total:       taxable.Add(shipping).Add(tax),

		AmountToFreeShipping: toFree,
	}
}
