package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type PromoKind string

const (
	PromoPercentage  PromoKind = "percentage"
	PromoFixedAmount PromoKind = "fixed_amount"
)

// ParsePromoKind accepts the canonical kind names plus the short "fixed"
// spelling used by the storefront.
func ParsePromoKind(s string) (PromoKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PromoPercentage), "percent":
		return PromoPercentage, nil
	case string(PromoFixedAmount), "fixed":
		return PromoFixedAmount, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidPromoCode, s)
	}
}

type PromoCode struct {
	Code  string          `json:"code" yaml:"code"`
	Kind  PromoKind       `json:"kind" yaml:"kind"`
	Value decimal.Decimal `json:"value" yaml:"value"`
}

// PromoTable resolves a submitted code to a PromoCode.
type PromoTable interface {
	Lookup(code string) (PromoCode, error)
}

// NormalizeCode trims surrounding whitespace and upper-cases the code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (p PromoCode) Validate() error {
	if NormalizeCode(p.Code) == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidPromoCode)
	}
	switch p.Kind {
	case PromoPercentage:
		if p.Value.IsNegative() || p.Value.GreaterThan(hundred) {
			return fmt.Errorf("%w: %s percentage %s outside 0-100", ErrInvalidPromoCode, p.Code, p.Value)
		}
	case PromoFixedAmount:
		if p.Value.IsNegative() {
			return fmt.Errorf("%w: %s fixed amount %s is negative", ErrInvalidPromoCode, p.Code, p.Value)
		}
	default:
		return fmt.Errorf("%w: %s has kind %q", ErrInvalidPromoCode, p.Code, p.Kind)
	}
	return nil
}

var hundred = decimal.NewFromInt(100)

func (p PromoCode) Equal(o PromoCode) bool {
	return p.Code == o.Code && p.Kind == o.Kind && p.Value.Equal(o.Value)
}

// DiscountOn returns the promo's contribution for the given subtotal, capped
// to [0, subtotal].
func (p PromoCode) DiscountOn(subtotal decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch p.Kind {
	case PromoPercentage:
		d = subtotal.Mul(p.Value.Shift(-2))
	case PromoFixedAmount:
		d = p.Value
	default:
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(d, subtotal)
}
