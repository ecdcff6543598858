package app

import (
	"context"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
)

// Catalog supplies the price, list price and availability of an item id.
// Lookup returns domain.ErrCatalogItemNotFound for unknown ids.
type Catalog interface {
	Lookup(ctx context.Context, itemID string) (domain.CatalogItem, error)
}

// Repository stores cart snapshots. Load returns domain.ErrCartNotFound when
// no snapshot exists for cartID.
type Repository interface {
	Load(ctx context.Context, cartID string) (domain.Snapshot, error)
	Save(ctx context.Context, snap domain.Snapshot) error
	Delete(ctx context.Context, cartID string) error
}
