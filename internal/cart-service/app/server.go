package app

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/adapters/grpc/mappers"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
	cartv1 "github.com/jcmexdev/bookstore-cart/internal/genproto/cart/v1"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/interceptors/constants"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/rpcreason"
)

type cartServer struct {
	cartv1.UnimplementedCartServer
	svc *CartService
}

func NewCartServer(svc *CartService) cartv1.CartServer {
	return &cartServer{svc: svc}
}

func (s *cartServer) CreateCart(ctx context.Context, req *cartv1.CreateCartRequest) (*cartv1.CartResponse, error) {
	return s.respond(ctx)(s.svc.CreateCart(ctx, req.GetCustomerId()))
}

func (s *cartServer) GetCart(ctx context.Context, req *cartv1.GetCartRequest) (*cartv1.CartResponse, error) {
	if req.GetCartId() == "" {
		return nil, invalidArgument("cart_id is required")
	}
	return s.respond(ctx)(s.svc.GetCart(ctx, req.GetCartId()))
}

func (s *cartServer) AddItem(ctx context.Context, req *cartv1.AddItemRequest) (*cartv1.CartResponse, error) {
	if req.GetCartId() == "" || req.GetItemId() == "" {
		return nil, invalidArgument("cart_id and item_id are required")
	}
	qty := req.GetQuantity()
	if qty == 0 {
		qty = 1
	}
	return s.respond(ctx)(s.svc.AddItem(ctx, req.GetCartId(), req.GetItemId(), int(qty)))
}

func (s *cartServer) SetQuantity(ctx context.Context, req *cartv1.SetQuantityRequest) (*cartv1.CartResponse, error) {
	if req.GetCartId() == "" || req.GetItemId() == "" {
		return nil, invalidArgument("cart_id and item_id are required")
	}
	return s.respond(ctx)(s.svc.SetQuantity(ctx, req.GetCartId(), req.GetItemId(), req.GetQuantity()))
}

func (s *cartServer) RemoveItem(ctx context.Context, req *cartv1.RemoveItemRequest) (*cartv1.CartResponse, error) {
	if req.GetCartId() == "" || req.GetItemId() == "" {
		return nil, invalidArgument("cart_id and item_id are required")
	}
	return s.respond(ctx)(s.svc.RemoveItem(ctx, req.GetCartId(), req.GetItemId()))
}

func (s *cartServer) ApplyPromoCode(ctx context.Context, req *cartv1.ApplyPromoCodeRequest) (*cartv1.CartResponse, error) {
	if req.GetCartId() == "" {
		return nil, invalidArgument("cart_id is required")
	}
	return s.respond(ctx)(s.svc.ApplyPromoCode(ctx, req.GetCartId(), req.GetCode()))
}

func (s *cartServer) ClearPromoCode(ctx context.Context, req *cartv1.ClearPromoCodeRequest) (*cartv1.CartResponse, error) {
	if req.GetCartId() == "" {
		return nil, invalidArgument("cart_id is required")
	}
	return s.respond(ctx)(s.svc.ClearPromoCode(ctx, req.GetCartId()))
}

// respond converts a service result into the RPC response, flagging replayed
// views in the response header.
func (s *cartServer) respond(ctx context.Context) func(View, error) (*cartv1.CartResponse, error) {
	return func(v View, err error) (*cartv1.CartResponse, error) {
		if err != nil {
			return nil, toStatus(ctx, err)
		}
		if v.Replayed {
			if err := grpc.SetHeader(ctx, metadata.Pairs(constants.HeaderXIdempotentReplay, strconv.FormatBool(true))); err != nil {
				slog.WarnContext(ctx, "failed to set replay header", "error", err)
			}
		}
		return &cartv1.CartResponse{
			Cart:    mappers.CartToRPC(v.Cart, v.Breakdown),
			Outcome: string(v.Outcome),
		}, nil
	}
}

func invalidArgument(msg string) error {
	return rpcreason.Error(codes.InvalidArgument, rpcreason.InvalidArgument, msg)
}

// toStatus maps domain failures to gRPC statuses whose message starts with
// the machine-readable reason.
func toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return rpcreason.Error(codes.InvalidArgument, rpcreason.InvalidQuantity, err)
	case errors.Is(err, domain.ErrUnknownPromoCode):
		return rpcreason.Error(codes.InvalidArgument, rpcreason.UnknownPromoCode, err)
	case errors.Is(err, domain.ErrCartNotFound):
		return rpcreason.Error(codes.NotFound, rpcreason.CartNotFound, err)
	case errors.Is(err, domain.ErrCatalogItemNotFound):
		return rpcreason.Error(codes.NotFound, rpcreason.ItemNotFound, err)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	slog.ErrorContext(ctx, "cart service failure", "error", err)
	return rpcreason.Error(codes.Internal, rpcreason.Internal, "cart service failure")
}
