package ports

import (
	"context"
	"encoding/json"

	"github.com/jcmexdev/bookstore-cart/internal/api-gateway/core/domain/entity"
)

// CartService is the gateway's view of the cart service. Failures are
// reported with the errors in the entity package.
type CartService interface {
	CreateCart(ctx context.Context, customerID string) (*entity.Cart, error)
	GetCart(ctx context.Context, cartID string) (*entity.Cart, error)
	AddItem(ctx context.Context, cartID, itemID string, quantity int) (*entity.Cart, error)
	// SetQuantity forwards the quantity exactly as received so the cart
	// service can reject fractional values.
	SetQuantity(ctx context.Context, cartID, itemID string, quantity json.Number) (*entity.Cart, error)
	RemoveItem(ctx context.Context, cartID, itemID string) (*entity.Cart, error)
	ApplyPromoCode(ctx context.Context, cartID, code string) (*entity.Cart, error)
	ClearPromoCode(ctx context.Context, cartID string) (*entity.Cart, error)
}
