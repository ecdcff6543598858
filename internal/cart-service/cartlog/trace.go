package cartlog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// TraceInfo holds the OTel identifiers extracted from a context.
type TraceInfo struct {
	TraceID string
	SpanID  string
}

// ExtractTraceInfo reads the active span from ctx. Both fields are empty
// when ctx carries no valid span (e.g. in unit tests).
func ExtractTraceInfo(ctx context.Context) TraceInfo {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return TraceInfo{}
	}
	return TraceInfo{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
	}
}

// NewEntry builds an Entry recorded at at and stamped with the trace info
// found in ctx. Callers pass the cart's own update time so journal rows and
// snapshots agree.
//
//	entry := cartlog.NewEntry(ctx, snap.UpdatedAt, cartID, cartlog.OpSetQuantity, itemID, "3")
func NewEntry(ctx context.Context, at time.Time, cartID string, op Operation, itemID, detail string) *Entry {
	ti := ExtractTraceInfo(ctx)
	return &Entry{
		CartID:     cartID,
		Operation:  op,
		ItemID:     itemID,
		Detail:     detail,
		TraceID:    ti.TraceID,
		SpanID:     ti.SpanID,
		RecordedAt: at.UTC(),
	}
}
