package domain

import "errors"

var (
	// ErrInvalidQuantity is returned when a quantity argument is not a whole
	// number or exceeds the per-line maximum. The cart is left untouched.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrUnknownPromoCode is returned when a code has no exact match in the
	// promo table after normalization.
	ErrUnknownPromoCode = errors.New("unknown promo code")

	ErrCartNotFound        = errors.New("cart not found")
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrInvalidPromoCode    = errors.New("invalid promo code definition")
	ErrCorruptSnapshot     = errors.New("corrupt cart snapshot")
)
