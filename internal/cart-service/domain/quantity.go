package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// maxQuantityText caps the raw text handed to the decimal parser.
	maxQuantityText = 32
	// maxQuantityExponent caps the positive scale of a parsed quantity.
	// Anything larger is far beyond any per-line limit.
	maxQuantityExponent = 9
)

// ParseQuantity validates a raw numeric quantity received at the service
// boundary. Non-numeric and fractional inputs, and whole numbers above the
// per-line limit max, are rejected with ErrInvalidQuantity. Whole numbers
// below 1 yield 0, which SetQuantity treats as removal.
//
// The text length and exponent are bounded before any decimal arithmetic,
// so inputs such as "1e1000000000" are rejected in constant time.
func ParseQuantity(raw string, max int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing", ErrInvalidQuantity)
	}
	if len(raw) > maxQuantityText {
		return 0, fmt.Errorf("%w: %d characters is too long for a quantity", ErrInvalidQuantity, len(raw))
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidQuantity, raw)
	}
	if d.IsZero() {
		return 0, nil
	}

	// IsInteger and Cmp rescale the coefficient by the exponent.
	switch exp := d.Exponent(); {
	case exp < -maxQuantityText:
		// At most maxQuantityText digits, so a nonzero value this small
		// has a fractional part.
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidQuantity, raw)
	case exp > maxQuantityExponent:
		if d.Sign() < 0 {
			return 0, nil
		}
		return 0, limitError(raw, max)
	}

	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidQuantity, raw)
	}
	if d.LessThan(decimal.NewFromInt(1)) {
		return 0, nil
	}
	if d.GreaterThan(decimal.NewFromInt(int64(max))) {
		return 0, limitError(raw, max)
	}
	return int(d.IntPart()), nil
}

func limitError(quantity string, max int) error {
	return fmt.Errorf("%w: %s exceeds the per-line limit of %d copies", ErrInvalidQuantity, quantity, max)
}
