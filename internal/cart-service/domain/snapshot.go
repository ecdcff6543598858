package domain

import (
	"fmt"
	"time"
)

// Snapshot is the serialisable form of a Cart used for persistence and for
// handing state across process boundaries.
type Snapshot struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customer_id"`
	Items       []LineItem `json:"items"`
	Promo       *PromoCode `json:"promo,omitempty"`
	Version     int64      `json:"version"`
	MaxQuantity int        `json:"max_quantity"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (c *Cart) Snapshot() Snapshot {
	s := Snapshot{
		ID:          c.id,
		CustomerID:  c.customerID,
		Items:       c.Items(),
		Version:     c.version,
		MaxQuantity: c.maxQuantity,
		CreatedAt:   c.createdAt,
		UpdatedAt:   c.updatedAt,
	}
	if c.promo != nil {
		p := *c.promo
		s.Promo = &p
	}
	return s
}

// Restore rebuilds a Cart from a snapshot, refusing snapshots that break the
// cart invariants (duplicate ids, quantities outside 1..max).
func Restore(s Snapshot, opts ...Option) (*Cart, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrCorruptSnapshot)
	}
	c := &Cart{
		id:          s.ID,
		customerID:  s.CustomerID,
		version:     s.Version,
		maxQuantity: s.MaxQuantity,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		now:         time.Now,
	}
	if c.maxQuantity <= 0 {
		c.maxQuantity = DefaultMaxQuantity
	}
	for _, opt := range opts {
		opt(c)
	}

	seen := make(map[string]struct{}, len(s.Items))
	items := make([]LineItem, 0, len(s.Items))
	for _, it := range s.Items {
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate line %s", ErrCorruptSnapshot, it.ID)
		}
		if it.Quantity < 1 || it.Quantity > c.maxQuantity {
			return nil, fmt.Errorf("%w: line %s has quantity %d", ErrCorruptSnapshot, it.ID, it.Quantity)
		}
		seen[it.ID] = struct{}{}
		items = append(items, it)
	}
	c.items = items

	if s.Promo != nil {
		if err := s.Promo.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
		p := *s.Promo
		c.promo = &p
	}
	return c, nil
}
