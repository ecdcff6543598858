package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/jcmexdev/bookstore-cart/internal/api-gateway/core/domain/entity"
	cartv1 "github.com/jcmexdev/bookstore-cart/internal/genproto/cart/v1"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/interceptors/constants"
)

// stubClient answers every call with res/err and can stamp a response header.
type stubClient struct {
	cartv1.CartClient
	res    *cartv1.CartResponse
	err    error
	header metadata.MD

	outgoing metadata.MD
	quantity string
}

func (s *stubClient) reply(ctx context.Context, opts []grpc.CallOption) (*cartv1.CartResponse, error) {
	s.outgoing, _ = metadata.FromOutgoingContext(ctx)
	for _, o := range opts {
		if h, ok := o.(grpc.HeaderCallOption); ok && s.header != nil {
			*h.HeaderAddr = s.header
		}
	}
	return s.res, s.err
}

func (s *stubClient) GetCart(ctx context.Context, _ *cartv1.GetCartRequest, opts ...grpc.CallOption) (*cartv1.CartResponse, error) {
	return s.reply(ctx, opts)
}

func (s *stubClient) AddItem(ctx context.Context, _ *cartv1.AddItemRequest, opts ...grpc.CallOption) (*cartv1.CartResponse, error) {
	return s.reply(ctx, opts)
}

func (s *stubClient) SetQuantity(ctx context.Context, in *cartv1.SetQuantityRequest, opts ...grpc.CallOption) (*cartv1.CartResponse, error) {
	s.quantity = in.GetQuantity()
	return s.reply(ctx, opts)
}

func TestGRPCCartService_MapsCart(t *testing.T) {
	client := &stubClient{res: &cartv1.CartResponse{
		Outcome: "ADDED",
		Cart: &cartv1.CartInfo{
			Id: "c1",
			Items: []*cartv1.LineItem{
				{ItemId: "1", UnitPrice: "24.99", ListPrice: "29.99", Quantity: 2, LineTotal: "49.98", Available: true},
			},
			Promo:   &cartv1.Promo{Code: "FREE5", Kind: "fixed_amount", Value: "5"},
			Pricing: &cartv1.Pricing{Subtotal: "49.98", Savings: "10", Discount: "5", Shipping: "0", TaxableBase: "44.98", Tax: "3.5984", Total: "48.5784", AmountToFreeShipping: "0"},
		},
	}}

	cart, err := NewGRPCCartService(client).AddItem(context.Background(), "c1", "1", 2)
	require.NoError(t, err)

	assert.Equal(t, "ADDED", cart.Outcome)
	assert.False(t, cart.Replayed)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "29.99", cart.Items[0].ListPrice.Decimal.StringFixed(2))
	assert.Equal(t, "48.5784", cart.Summary.Total.String())
	assert.True(t, cart.Summary.AmountToFreeShipping.IsZero())
	assert.Equal(t, "FREE5", cart.Promo.Code)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestGRPCCartService_ForwardsIDsAndReadsReplayHeader(t *testing.T) {
	client := &stubClient{
		res:    &cartv1.CartResponse{Cart: &cartv1.CartInfo{Id: "c1"}},
		header: metadata.Pairs(constants.HeaderXIdempotentReplay, "true"),
	}
	ctx := context.WithValue(context.Background(), constants.ContextKeyIdempotencyKey, "k-1")
	ctx = context.WithValue(ctx, constants.ContextKeyRequestID, "req-1")

	cart, err := NewGRPCCartService(client).GetCart(ctx, "c1")
	require.NoError(t, err)

	assert.True(t, cart.Replayed)
	assert.Equal(t, []string{"k-1"}, client.outgoing.Get(constants.HeaderXIdempotencyKey))
	assert.Equal(t, []string{"req-1"}, client.outgoing.Get(constants.HeaderXRequestId))
}

func TestGRPCCartService_ForwardsRawQuantityText(t *testing.T) {
	client := &stubClient{res: &cartv1.CartResponse{Cart: &cartv1.CartInfo{
		Id:      "c1",
		Pricing: &cartv1.Pricing{Subtotal: "24.99", Shipping: "5.99", AmountToFreeShipping: "0.01"},
	}}}

	cart, err := NewGRPCCartService(client).SetQuantity(context.Background(), "c1", "1", json.Number("2.0"))
	require.NoError(t, err)

	assert.Equal(t, "2.0", client.quantity)
	assert.Equal(t, "0.01", cart.Summary.AmountToFreeShipping.String())
}

func TestGRPCCartService_MapsStatusReasons(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{status.Error(codes.InvalidArgument, "invalid_quantity: 1.5"), entity.ErrInvalidQuantity},
		{status.Error(codes.InvalidArgument, "unknown_promo_code: NOPE"), entity.ErrUnknownPromoCode},
		{status.Error(codes.NotFound, "cart_not_found: c1"), entity.ErrCartNotFound},
		{status.Error(codes.NotFound, "item_not_found: 9"), entity.ErrItemNotFound},
		{status.Error(codes.InvalidArgument, "invalid_argument: cart_id is required"), entity.ErrInvalidRequest},
		{status.Error(codes.Unavailable, "connection refused"), entity.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.want.Error(), func(t *testing.T) {
			_, err := NewGRPCCartService(&stubClient{err: tt.err}).GetCart(context.Background(), "c1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGRPCCartService_RejectsMalformedMoney(t *testing.T) {
	client := &stubClient{res: &cartv1.CartResponse{Cart: &cartv1.CartInfo{
		Id:      "c1",
		Pricing: &cartv1.Pricing{Total: "lots"},
	}}}

	_, err := NewGRPCCartService(client).GetCart(context.Background(), "c1")
	assert.ErrorContains(t, err, "total")
}
