// Package memory holds in-process adapters for the cart service ports.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
)

type Catalog struct {
	mu    sync.RWMutex
	items map[string]domain.CatalogItem
}

func NewCatalog(items ...domain.CatalogItem) *Catalog {
	c := &Catalog{items: make(map[string]domain.CatalogItem, len(items))}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

// NewStorefrontCatalog is seeded with the storefront's books. Item 3 is out
// of stock; it can still be carted and priced.
func NewStorefrontCatalog() *Catalog {
	return NewCatalog(
		book("1", "The Midnight Library", "Matt Haig", "Hardcover", "24.99", "29.99", true),
		book("2", "Atomic Habits", "James Clear", "Paperback", "18.99", "24.99", true),
		book("3", "Project Hail Mary", "Andy Weir", "Hardcover", "22.99", "27.99", false),
		book("4", "The Seven Husbands of Evelyn Hugo", "Taylor Jenkins Reid", "Paperback", "16.99", "", true),
		book("5", "Educated", "Tara Westover", "Paperback", "21.99", "", true),
		book("6", "The Silent Patient", "Alex Michaelides", "Paperback", "17.99", "", true),
	)
}

func (c *Catalog) Lookup(_ context.Context, itemID string) (domain.CatalogItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, ok := c.items[itemID]
	if !ok {
		return domain.CatalogItem{}, fmt.Errorf("%w: %s", domain.ErrCatalogItemNotFound, itemID)
	}
	return it, nil
}

// Put adds or replaces an item, e.g. to reprice it or flip its stock flag.
func (c *Catalog) Put(item domain.CatalogItem) {
	c.mu.Lock()
	c.items[item.ID] = item
	c.mu.Unlock()
}

func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func book(id, title, author, format, price, list string, available bool) domain.CatalogItem {
	it := domain.CatalogItem{
		ID:        id,
		Title:     title,
		Author:    author,
		Format:    format,
		UnitPrice: decimal.RequireFromString(price),
		Available: available,
	}
	if list != "" {
		it.ListPrice = decimal.NewNullDecimal(decimal.RequireFromString(list))
	}
	return it
}
