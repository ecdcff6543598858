package domain

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultMaxQuantity is the default per-line limit on copies of one book.
// It is a store policy, configurable through MAX_LINE_QUANTITY.
const DefaultMaxQuantity = 99

// Outcome describes what a mutation did to the cart.
type Outcome string

const (
	OutcomeAdded     Outcome = "ADDED"
	OutcomeUpdated   Outcome = "UPDATED"
	OutcomeRemoved   Outcome = "REMOVED"
	OutcomeUnchanged Outcome = "UNCHANGED"
	OutcomeNotFound  Outcome = "NOT_FOUND"
)

// Changed reports whether the mutation produced a new cart state.
func (o Outcome) Changed() bool {
	return o == OutcomeAdded || o == OutcomeUpdated || o == OutcomeRemoved
}

// Cart is the authoritative owner of one shopper's line items and active
// promo code. It is not safe for concurrent use; callers serialise access
// per cart.
//
// Every state-changing operation installs a fresh items slice, so slices
// handed out earlier are never modified.
type Cart struct {
	id          string
	customerID  string
	items       []LineItem
	promo       *PromoCode
	version     int64
	maxQuantity int
	createdAt   time.Time
	updatedAt   time.Time
	now         func() time.Time
}

type Option func(*Cart)

func WithMaxQuantity(n int) Option {
	return func(c *Cart) {
		if n > 0 {
			c.maxQuantity = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Cart) {
		if now != nil {
			c.now = now
		}
	}
}

func NewCart(id, customerID string, opts ...Option) *Cart {
	c := &Cart{
		id:          id,
		customerID:  customerID,
		maxQuantity: DefaultMaxQuantity,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.createdAt = c.now().UTC()
	c.updatedAt = c.createdAt
	return c
}

func (c *Cart) ID() string         { return c.id }
func (c *Cart) CustomerID() string { return c.customerID }
func (c *Cart) Version() int64     { return c.version }
func (c *Cart) MaxQuantity() int   { return c.maxQuantity }

// Items returns a copy of the line items in cart order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of distinct line items.
func (c *Cart) Len() int { return len(c.items) }

// Units is the total quantity across all lines.
func (c *Cart) Units() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Item(id string) (LineItem, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return LineItem{}, false
}

// Promo returns the active promo code, if any.
func (c *Cart) Promo() (PromoCode, bool) {
	if c.promo == nil {
		return PromoCode{}, false
	}
	return *c.promo, true
}

// AddItem puts quantity units of item in the cart. A repeated add increments
// the existing line instead of creating a second one.
func (c *Cart) AddItem(item CatalogItem, quantity int) (Outcome, error) {
	if quantity < 1 || quantity > c.maxQuantity {
		return OutcomeUnchanged, fmt.Errorf("%w: cannot add %d of %s (per-line limit is 1-%d copies)", ErrInvalidQuantity, quantity, item.ID, c.maxQuantity)
	}

	idx := c.indexOf(item.ID)
	if idx < 0 {
		next := make([]LineItem, len(c.items), len(c.items)+1)
		copy(next, c.items)
		c.commit(append(next, newLineItem(item, quantity)))
		return OutcomeAdded, nil
	}

	total := c.items[idx].Quantity + quantity
	if total > c.maxQuantity {
		return OutcomeUnchanged, fmt.Errorf("%w: %s would reach %d, over the per-line limit of %d copies", ErrInvalidQuantity, item.ID, total, c.maxQuantity)
	}
	next := c.Items()
	next[idx].Quantity = total
	c.commit(next)
	return OutcomeUpdated, nil
}

// SetQuantity sets the quantity of an existing line. Quantities below 1
// remove the line. An absent id is a silent no-op.
func (c *Cart) SetQuantity(id string, quantity int) (Outcome, error) {
	if quantity > c.maxQuantity {
		return OutcomeUnchanged, limitError(strconv.Itoa(quantity), c.maxQuantity)
	}

	idx := c.indexOf(id)
	if idx < 0 {
		return OutcomeNotFound, nil
	}
	if quantity < 1 {
		return c.RemoveItem(id), nil
	}
	if c.items[idx].Quantity == quantity {
		return OutcomeUnchanged, nil
	}

	next := c.Items()
	next[idx].Quantity = quantity
	c.commit(next)
	return OutcomeUpdated, nil
}

// RemoveItem deletes the line with the given id. Removing an absent id is a
// no-op, so the operation is idempotent.
func (c *Cart) RemoveItem(id string) Outcome {
	idx := c.indexOf(id)
	if idx < 0 {
		return OutcomeNotFound
	}
	next := make([]LineItem, 0, len(c.items)-1)
	next = append(next, c.items[:idx]...)
	next = append(next, c.items[idx+1:]...)
	c.commit(next)
	return OutcomeRemoved
}

// ApplyPromoCode resolves code through table and replaces any active promo.
// On a miss the current promo is kept.
func (c *Cart) ApplyPromoCode(code string, table PromoTable) (Outcome, error) {
	p, err := table.Lookup(code)
	if err != nil {
		return OutcomeUnchanged, err
	}
	if c.promo != nil && c.promo.Equal(p) {
		return OutcomeUnchanged, nil
	}
	c.promo = &p
	c.touch()
	return OutcomeUpdated, nil
}

func (c *Cart) ClearPromoCode() Outcome {
	if c.promo == nil {
		return OutcomeUnchanged
	}
	c.promo = nil
	c.touch()
	return OutcomeRemoved
}

// Clone returns an independent copy sharing no mutable state.
func (c *Cart) Clone() *Cart {
	cp := *c
	cp.items = c.Items()
	if c.promo != nil {
		p := *c.promo
		cp.promo = &p
	}
	return &cp
}

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) commit(items []LineItem) {
	c.items = items
	c.touch()
}

func (c *Cart) touch() {
	c.version++
	c.updatedAt = c.now().UTC()
}
