package domain

import "github.com/shopspring/decimal"

// CatalogItem is what the external catalog reports for an item id. The cart
// trusts these values as given.
type CatalogItem struct {
	ID        string
	Title     string
	Author    string
	Format    string
	UnitPrice decimal.Decimal
	ListPrice decimal.NullDecimal
	Available bool
}

// LineItem is one catalog item's entry in a cart.
type LineItem struct {
	ID        string              `json:"id"`
	Title     string              `json:"title,omitempty"`
	Author    string              `json:"author,omitempty"`
	Format    string              `json:"format,omitempty"`
	UnitPrice decimal.Decimal     `json:"unit_price"`
	ListPrice decimal.NullDecimal `json:"list_price"`
	Quantity  int                 `json:"quantity"`
	Available bool                `json:"available"`
}

func newLineItem(item CatalogItem, quantity int) LineItem {
	return LineItem{
		ID:        item.ID,
		Title:     item.Title,
		Author:    item.Author,
		Format:    item.Format,
		UnitPrice: item.UnitPrice,
		ListPrice: item.ListPrice,
		Quantity:  quantity,
		Available: item.Available,
	}
}

func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(quantityDecimal(i.Quantity))
}

// Savings is (listPrice - unitPrice) * quantity when the list price is above
// the sale price, zero otherwise.
func (i LineItem) Savings() decimal.Decimal {
	if !i.ListPrice.Valid || !i.ListPrice.Decimal.GreaterThan(i.UnitPrice) {
		return decimal.Zero
	}
	return i.ListPrice.Decimal.Sub(i.UnitPrice).Mul(quantityDecimal(i.Quantity))
}
