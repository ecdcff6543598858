// Package promo resolves submitted promo codes against a configured table.
//
// Matching is exact after normalization (surrounding whitespace trimmed,
// upper-cased); there is no prefix or fuzzy matching.
package promo

import (
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
)

var _ domain.PromoTable = (*Table)(nil)

type Table struct {
	codes map[string]domain.PromoCode
}

// NewTable validates every code and rejects duplicates after normalization.
func NewTable(codes ...domain.PromoCode) (*Table, error) {
	t := &Table{codes: make(map[string]domain.PromoCode, len(codes))}
	for _, c := range codes {
		c.Code = domain.NormalizeCode(c.Code)
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, dup := t.codes[c.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %s", domain.ErrInvalidPromoCode, c.Code)
		}
		t.codes[c.Code] = c
	}
	return t, nil
}

// Default is the storefront's built-in table: SAVE10 takes 10% off, FREE5
// takes 5.00 off.
func Default() *Table {
	t, err := NewTable(
		domain.PromoCode{Code: "SAVE10", Kind: domain.PromoPercentage, Value: decimal.NewFromInt(10)},
		domain.PromoCode{Code: "FREE5", Kind: domain.PromoFixedAmount, Value: decimal.NewFromInt(5)},
	)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Lookup(code string) (domain.PromoCode, error) {
	p, ok := t.codes[domain.NormalizeCode(code)]
	if !ok {
		return domain.PromoCode{}, fmt.Errorf("%w: %q", domain.ErrUnknownPromoCode, code)
	}
	return p, nil
}

func (t *Table) Len() int { return len(t.codes) }

// Codes lists the normalized codes in lexical order.
func (t *Table) Codes() []string {
	out := make([]string, 0, len(t.codes))
	for c := range t.codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

type fileEntry struct {
	Code  string `yaml:"code"`
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

type fileFormat struct {
	Codes []fileEntry `yaml:"codes"`
}

// Parse reads a YAML document of the form
//
//	codes:
//	  - code: SAVE10
//	    kind: percentage
//	    value: "10"
func Parse(data []byte) (*Table, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("promo: decode table: %w", err)
	}

	codes := make([]domain.PromoCode, 0, len(f.Codes))
	for i, e := range f.Codes {
		kind, err := domain.ParsePromoKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("promo: entry %d: %w", i, err)
		}
		value, err := decimal.NewFromString(e.Value)
		if err != nil {
			return nil, fmt.Errorf("promo: entry %d: %w: value %q", i, domain.ErrInvalidPromoCode, e.Value)
		}
		codes = append(codes, domain.PromoCode{Code: e.Code, Kind: kind, Value: value})
	}
	return NewTable(codes...)
}

func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("promo: read %s: %w", path, err)
	}
	return Parse(data)
}
