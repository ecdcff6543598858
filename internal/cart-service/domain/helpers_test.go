package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type mapTable map[string]PromoCode

func (m mapTable) Lookup(code string) (PromoCode, error) {
	p, ok := m[NormalizeCode(code)]
	if !ok {
		return PromoCode{}, ErrUnknownPromoCode
	}
	return p, nil
}

var testPromos = mapTable{
	"SAVE10":  {Code: "SAVE10", Kind: PromoPercentage, Value: decimal.NewFromInt(10)},
	"FREE5":   {Code: "FREE5", Kind: PromoFixedAmount, Value: decimal.NewFromInt(5)},
	"BIGSALE": {Code: "BIGSALE", Kind: PromoFixedAmount, Value: decimal.NewFromInt(100)},
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func listPrice(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(money(s))
}

func book(id, price, list string) CatalogItem {
	item := CatalogItem{ID: id, Title: "Book " + id, UnitPrice: money(price), Available: true}
	if list != "" {
		item.ListPrice = listPrice(list)
	}
	return item
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, money(want).Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

// storefrontCart is the cart shown on the storefront's cart page before any
// interaction.
func storefrontCart(t *testing.T) *Cart {
	t.Helper()
	c := NewCart("cart-1", "cust-1")
	_, err := c.AddItem(book("1", "24.99", "29.99"), 1)
	assert.NoError(t, err)
	_, err = c.AddItem(book("2", "18.99", "24.99"), 2)
	assert.NoError(t, err)
	return c
}
