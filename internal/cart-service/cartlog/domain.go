// Package cartlog defines the cart mutation journal: an append-only record
// of every committed cart change, correlated with the trace that made it.
package cartlog

import "time"

// Operation names the cart mutation that produced an entry.
type Operation string

const (
	OpCreate      Operation = "CREATE"
	OpAddItem     Operation = "ADD_ITEM"
	OpSetQuantity Operation = "SET_QUANTITY"
	OpRemoveItem  Operation = "REMOVE_ITEM"
	OpApplyPromo  Operation = "APPLY_PROMO"
	OpClearPromo  Operation = "CLEAR_PROMO"
)

// Entry is one row of the journal.
type Entry struct {
	CartID string

	Operation Operation

	// ItemID is the line the mutation targeted; empty for cart-level ops.
	ItemID string

	// Detail carries the operation argument, e.g. the new quantity or the
	// normalized promo code.
	Detail string

	// Outcome is the domain outcome (ADDED, UPDATED, REMOVED, ...).
	Outcome string

	// Version is the cart version after the mutation.
	Version int64

	// Total is the displayed order total after the mutation.
	Total string

	RequestID string

	// TraceID and SpanID let a journal row be joined with its trace.
	TraceID string
	SpanID  string

	RecordedAt time.Time
}
