package service

import (
	"context"

	"google.golang.org/grpc"

	cartv1 "github.com/jcmexdev/bookstore-cart/internal/genproto/cart/v1"
)

var _ cartv1.CartClient = (*localCartClient)(nil)

// localCartClient calls a CartServer in the same process, skipping the
// network. Call options are ignored, so replay headers are not reported.
// It backs the gateway's standalone mode and its end-to-end tests.
type localCartClient struct {
	srv cartv1.CartServer
}

func NewLocalCartClient(srv cartv1.CartServer) cartv1.CartClient {
	return &localCartClient{srv: srv}
}

func (c *localCartClient) CreateCart(ctx context.Context, in *cartv1.CreateCartRequest, _ ...grpc.CallOption) (*cartv1.CartResponse, error) {
	return c.srv.CreateCart(ctx, in)
}

func (c *localCartClient) GetCart(ctx context.Context, in *cartv1.GetCartRequest, _ ...grpc.CallOption) (*cartv1.CartResponse, error) {
	return c.srv.GetCart(ctx, in)
}

func (c *localCartClient) AddItem(ctx context.Context, in *cartv1.AddItemRequest, _ ...grpc.CallOption) (*cartv1.CartResponse, error) {
	return c.srv.AddItem(ctx, in)
}

func (c *localCartClient) SetQuantity(ctx context.Context, in *cartv1.SetQuantityRequest, _ ...grpc.CallOption) (*cartv1.CartResponse, error) {
	return c.srv.SetQuantity(ctx, in)
}

func (c *localCartClient) RemoveItem(ctx context.Context, in *cartv1.RemoveItemRequest, _ ...grpc.CallOption) (*cartv1.CartResponse, error) {
	return c.srv.RemoveItem(ctx, in)
}

func (c *localCartClient) ApplyPromoCode(ctx context.Context, in *cartv1.ApplyPromoCodeRequest, _ ...grpc.CallOption) (*cartv1.CartResponse, error) {
	return c.srv.ApplyPromoCode(ctx, in)
}

func (c *localCartClient) ClearPromoCode(ctx context.Context, in *cartv1.ClearPromoCodeRequest, _ ...grpc.CallOption) (*cartv1.CartResponse, error) {
	return c.srv.ClearPromoCode(ctx, in)
}
