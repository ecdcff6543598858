// Package constants holds the metadata header names shared by the gateway
// and the cart service.
package constants

// contextKey keeps these values from colliding with other packages' keys.
type contextKey string

const (
	HeaderXRequestId      = "x-request-id"
	HeaderXIdempotencyKey = "x-idempotency-key"

	// HeaderXIdempotentReplay is set on responses served from the
	// idempotency cache instead of a fresh mutation.
	HeaderXIdempotentReplay = "x-idempotent-replay"

	ContextKeyRequestID      contextKey = HeaderXRequestId
	ContextKeyIdempotencyKey contextKey = HeaderXIdempotencyKey
)
