package entity

import "errors"

var (
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrUnknownPromoCode = errors.New("unknown promo code")
	ErrCartNotFound     = errors.New("cart not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrUnavailable      = errors.New("cart service unavailable")
)
