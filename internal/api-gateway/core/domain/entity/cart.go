package entity

import "github.com/shopspring/decimal"

type LineItem struct {
	ItemID    string
	Title     string
	Author    string
	Format    string
	UnitPrice decimal.Decimal
	ListPrice decimal.NullDecimal
	Quantity  int
	Available bool
	LineTotal decimal.Decimal
}

type Promo struct {
	Code  string
	Kind  string
	Value decimal.Decimal
}

// Summary holds the exact amounts computed by the cart service.
type Summary struct {
	Subtotal    decimal.Decimal
	Savings     decimal.Decimal
	Discount    decimal.Decimal
	Shipping    decimal.Decimal
	TaxableBase decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal

	// AmountToFreeShipping is zero once shipping is free.
	AmountToFreeShipping decimal.Decimal
}

type Cart struct {
	ID         string
	CustomerID string
	Version    int64
	Items      []LineItem
	Promo      *Promo
	Summary    Summary

	// Outcome is what the last mutation did; empty for reads.
	Outcome string

	// Replayed is set when the cart service answered from its idempotency
	// cache.
	Replayed bool
}

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
