package main

import (
	"fmt"

	"github.com/jcmexdev/bookstore-cart/internal/api-gateway/infra/adapters/service"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/adapters/memory"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/app"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/promo"
	cartv1 "github.com/jcmexdev/bookstore-cart/internal/genproto/cart/v1"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/cache"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/config"
)

// localClient builds an in-memory cart service that honours the same
// pricing, per-line limit and promo table settings as the standalone cart
// service. Snapshots and idempotent replies stay in process.
func localClient(cfg config.CartService) (cartv1.CartClient, error) {
	promos := promo.Default()
	if cfg.PromoTablePath != "" {
		var err error
		if promos, err = promo.LoadFile(cfg.PromoTablePath); err != nil {
			return nil, fmt.Errorf("load promo table %s: %w", cfg.PromoTablePath, err)
		}
	}

	svc, err := app.NewCartService(app.Deps{
		Catalog:     memory.NewStorefrontCatalog(),
		Promos:      promos,
		Pricing:     cfg.Pricing,
		Snapshots:   memory.NewSnapshotRepository(),
		Replays:     cache.NewMemoryCache("cart"),
		ReplayTTL:   cfg.ReplayTTL,
		MaxQuantity: cfg.MaxQuantity,
	})
	if err != nil {
		return nil, err
	}
	return service.NewLocalCartClient(app.NewCartServer(svc)), nil
}
