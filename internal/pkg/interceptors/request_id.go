package interceptors

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/jcmexdev/bookstore-cart/internal/pkg/interceptors/constants"
)

// RequestID returns the request id carried by ctx, or "" if none.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(constants.ContextKeyRequestID).(string); ok && id != "" {
		return id
	}
	return GetMetadataValue(ctx, constants.HeaderXRequestId)
}

// IdempotencyKey returns the idempotency key carried by ctx, or "" if none.
func IdempotencyKey(ctx context.Context) string {
	if key, ok := ctx.Value(constants.ContextKeyIdempotencyKey).(string); ok && key != "" {
		return key
	}
	return GetMetadataValue(ctx, constants.HeaderXIdempotencyKey)
}

// GetMetadataValue looks key up in incoming gRPC metadata first, then in
// outgoing metadata.
func GetMetadataValue(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(key); len(ids) > 0 {
			return ids[0]
		}
	}

	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		if ids := md.Get(key); len(ids) > 0 {
			return ids[0]
		}
	}
	return ""
}

// WithOutgoingIDs copies the request id and idempotency key found in ctx to
// outgoing gRPC metadata.
func WithOutgoingIDs(ctx context.Context) context.Context {
	var kv []string
	if id := RequestID(ctx); id != "" {
		kv = append(kv, constants.HeaderXRequestId, id)
	}
	if key := IdempotencyKey(ctx); key != "" {
		kv = append(kv, constants.HeaderXIdempotencyKey, key)
	}
	if len(kv) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, kv...)
}
