// Package rpcreason carries machine-readable failure reasons across the
// cart RPC boundary. A cart service error's status message starts with one
// of the reasons below followed by ": ".
package rpcreason

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	InvalidQuantity  = "invalid_quantity"
	UnknownPromoCode = "unknown_promo_code"
	CartNotFound     = "cart_not_found"
	ItemNotFound     = "item_not_found"
	InvalidArgument  = "invalid_argument"
	Internal         = "internal"
)

// Error builds a status error whose message is prefixed with reason.
func Error(code codes.Code, reason string, detail any) error {
	return status.Error(code, fmt.Sprintf("%s: %v", reason, detail))
}

// Of extracts the reason prefix of a cart service error. Errors that are not
// gRPC statuses, or carry no known prefix, report Internal.
func Of(err error) string {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return Internal
	}
	reason, _, _ := strings.Cut(st.Message(), ":")
	switch reason {
	case InvalidQuantity, UnknownPromoCode, CartNotFound, ItemNotFound, InvalidArgument:
		return reason
	}
	return Internal
}
