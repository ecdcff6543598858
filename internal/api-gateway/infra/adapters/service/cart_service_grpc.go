package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/jcmexdev/bookstore-cart/internal/api-gateway/core/domain/entity"
	"github.com/jcmexdev/bookstore-cart/internal/api-gateway/core/ports"
	cartv1 "github.com/jcmexdev/bookstore-cart/internal/genproto/cart/v1"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/interceptors"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/interceptors/constants"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/rpcreason"
)

// GRPCCartService adapts a cart RPC client to the gateway port.
type GRPCCartService struct {
	client cartv1.CartClient
}

func NewGRPCCartService(client cartv1.CartClient) ports.CartService {
	return &GRPCCartService{client: client}
}

var _ ports.CartService = (*GRPCCartService)(nil)

func (s *GRPCCartService) CreateCart(ctx context.Context, customerID string) (*entity.Cart, error) {
	return s.call(ctx, "CreateCart", func(ctx context.Context, opts ...grpc.CallOption) (*cartv1.CartResponse, error) {
		return s.client.CreateCart(ctx, &cartv1.CreateCartRequest{CustomerId: customerID}, opts...)
	})
}

func (s *GRPCCartService) GetCart(ctx context.Context, cartID string) (*entity.Cart, error) {
	return s.call(ctx, "GetCart", func(ctx context.Context, opts ...grpc.CallOption) (*cartv1.CartResponse, error) {
		return s.client.GetCart(ctx, &cartv1.GetCartRequest{CartId: cartID}, opts...)
	})
}

func (s *GRPCCartService) AddItem(ctx context.Context, cartID, itemID string, quantity int) (*entity.Cart, error) {
	return s.call(ctx, "AddItem", func(ctx context.Context, opts ...grpc.CallOption) (*cartv1.CartResponse, error) {
		return s.client.AddItem(ctx, &cartv1.AddItemRequest{CartId: cartID, ItemId: itemID, Quantity: int64(quantity)}, opts...)
	})
}

func (s *GRPCCartService) SetQuantity(ctx context.Context, cartID, itemID string, quantity json.Number) (*entity.Cart, error) {
	return s.call(ctx, "SetQuantity", func(ctx context.Context, opts ...grpc.CallOption) (*cartv1.CartResponse, error) {
		return s.client.SetQuantity(ctx, &cartv1.SetQuantityRequest{CartId: cartID, ItemId: itemID, Quantity: quantity.String()}, opts...)
	})
}

func (s *GRPCCartService) RemoveItem(ctx context.Context, cartID, itemID string) (*entity.Cart, error) {
	return s.call(ctx, "RemoveItem", func(ctx context.Context, opts ...grpc.CallOption) (*cartv1.CartResponse, error) {
		return s.client.RemoveItem(ctx, &cartv1.RemoveItemRequest{CartId: cartID, ItemId: itemID}, opts...)
	})
}

func (s *GRPCCartService) ApplyPromoCode(ctx context.Context, cartID, code string) (*entity.Cart, error) {
	return s.call(ctx, "ApplyPromoCode", func(ctx context.Context, opts ...grpc.CallOption) (*cartv1.CartResponse, error) {
		return s.client.ApplyPromoCode(ctx, &cartv1.ApplyPromoCodeRequest{CartId: cartID, Code: code}, opts...)
	})
}

func (s *GRPCCartService) ClearPromoCode(ctx context.Context, cartID string) (*entity.Cart, error) {
	return s.call(ctx, "ClearPromoCode", func(ctx context.Context, opts ...grpc.CallOption) (*cartv1.CartResponse, error) {
		return s.client.ClearPromoCode(ctx, &cartv1.ClearPromoCodeRequest{CartId: cartID}, opts...)
	})
}

type rpcCall func(ctx context.Context, opts ...grpc.CallOption) (*cartv1.CartResponse, error)

// call forwards the request id and idempotency key as metadata, and maps
// the reply (or its status) onto the port's types.
func (s *GRPCCartService) call(ctx context.Context, method string, fn rpcCall) (*entity.Cart, error) {
	var header metadata.MD
	res, err := fn(interceptors.WithOutgoingIDs(ctx), grpc.Header(&header))
	if err != nil {
		return nil, fmt.Errorf("grpc %s: %w", method, fromStatus(err))
	}
	if res.GetCart() == nil {
		return nil, fmt.Errorf("grpc %s: empty cart in response", method)
	}

	cart, err := mapCartToEntity(res.GetCart())
	if err != nil {
		return nil, fmt.Errorf("grpc %s: %w", method, err)
	}
	cart.Outcome = res.GetOutcome()
	cart.Replayed = len(header.Get(constants.HeaderXIdempotentReplay)) > 0
	return cart, nil
}

// fromStatus wraps the port error matching the status reason, keeping the
// status message for context.
func fromStatus(err error) error {
	st, _ := status.FromError(err)
	var sentinel error
	switch rpcreason.Of(err) {
	case rpcreason.InvalidQuantity:
		sentinel = entity.ErrInvalidQuantity
	case rpcreason.UnknownPromoCode:
		sentinel = entity.ErrUnknownPromoCode
	case rpcreason.CartNotFound:
		sentinel = entity.ErrCartNotFound
	case rpcreason.ItemNotFound:
		sentinel = entity.ErrItemNotFound
	case rpcreason.InvalidArgument:
		sentinel = entity.ErrInvalidRequest
	default:
		switch st.Code() {
		case codes.Unavailable, codes.DeadlineExceeded:
			sentinel = entity.ErrUnavailable
		default:
			return err
		}
	}
	return fmt.Errorf("%w: %s", sentinel, st.Message())
}

func mapCartToEntity(c *cartv1.CartInfo) (*entity.Cart, error) {
	cart := &entity.Cart{
		ID:         c.GetId(),
		CustomerID: c.GetCustomerId(),
		Version:    c.GetVersion(),
		Items:      make([]entity.LineItem, 0, len(c.GetItems())),
	}
	for _, it := range c.GetItems() {
		li, err := mapItemToEntity(it)
		if err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, li)
	}
	if p := c.GetPromo(); p != nil {
		v, err := decimal.NewFromString(p.GetValue())
		if err != nil {
			return nil, fmt.Errorf("promo value %q: %w", p.GetValue(), err)
		}
		cart.Promo = &entity.Promo{Code: p.GetCode(), Kind: p.GetKind(), Value: v}
	}
	if c.GetPricing() != nil {
		sum, err := mapPricingToEntity(c.GetPricing())
		if err != nil {
			return nil, err
		}
		cart.Summary = sum
	}
	return cart, nil
}

func mapItemToEntity(it *cartv1.LineItem) (entity.LineItem, error) {
	li := entity.LineItem{
		ItemID:    it.GetItemId(),
		Title:     it.GetTitle(),
		Author:    it.GetAuthor(),
		Format:    it.GetFormat(),
		Quantity:  int(it.GetQuantity()),
		Available: it.GetAvailable(),
	}
	var err error
	if li.UnitPrice, err = parseMoney("unit_price", it.GetUnitPrice()); err != nil {
		return entity.LineItem{}, err
	}
	if li.LineTotal, err = parseMoney("line_total", it.GetLineTotal()); err != nil {
		return entity.LineItem{}, err
	}
	if it.GetListPrice() != "" {
		lp, err := parseMoney("list_price", it.GetListPrice())
		if err != nil {
			return entity.LineItem{}, err
		}
		li.ListPrice = decimal.NewNullDecimal(lp)
	}
	return li, nil
}

func mapPricingToEntity(p *cartv1.Pricing) (entity.Summary, error) {
	var s entity.Summary
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"subtotal", p.GetSubtotal(), &s.Subtotal},
		{"savings", p.GetSavings(), &s.Savings},
		{"discount", p.GetDiscount(), &s.Discount},
		{"shipping", p.GetShipping(), &s.Shipping},
		{"taxable_base", p.GetTaxableBase(), &s.TaxableBase},
		{"tax", p.GetTax(), &s.Tax},
		{"total", p.GetTotal(), &s.Total},
		{"amount_to_free_shipping", p.GetAmountToFreeShipping(), &s.AmountToFreeShipping},
	}
	for _, f := range fields {
		d, err := parseMoney(f.name, f.raw)
		if err != nil {
			return entity.Summary{}, err
		}
		*f.dst = d
	}
	return s, nil
}

func parseMoney(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %w", field, raw, err)
	}
	return d, nil
}
