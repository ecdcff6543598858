package coordinator

import (
	"context"
	"fmt"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/cartlog"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
)

// SnapshotStore is the write side of the cart snapshot repository.
type SnapshotStore interface {
	Save(ctx context.Context, snap domain.Snapshot) error
	Delete(ctx context.Context, cartID string) error
}

// --- SnapshotStep ---

// SnapshotStep persists next; compensation restores previous, or deletes the
// snapshot when the cart did not exist before.
type SnapshotStep struct {
	store    SnapshotStore
	previous *domain.Snapshot
	next     domain.Snapshot
}

func NewSnapshotStep(store SnapshotStore, previous *domain.Snapshot, next domain.Snapshot) *SnapshotStep {
	return &SnapshotStep{store: store, previous: previous, next: next}
}

func (s *SnapshotStep) Name() string { return "Cart_Snapshot_Step" }

func (s *SnapshotStep) Execute(ctx context.Context) error {
	if err := s.store.Save(ctx, s.next); err != nil {
		return fmt.Errorf("save snapshot v%d: %w", s.next.Version, err)
	}
	return nil
}

func (s *SnapshotStep) Compensate(ctx context.Context) error {
	if s.previous == nil {
		return s.store.Delete(ctx, s.next.ID)
	}
	return s.store.Save(ctx, *s.previous)
}

// --- JournalStep ---

// JournalStep appends an entry to the mutation journal. The journal is
// append-only, so there is nothing to compensate.
type JournalStep struct {
	repo  cartlog.Repository
	entry *cartlog.Entry
}

func NewJournalStep(repo cartlog.Repository, entry *cartlog.Entry) *JournalStep {
	return &JournalStep{repo: repo, entry: entry}
}

func (s *JournalStep) Name() string { return "Cart_Journal_Step" }

func (s *JournalStep) Execute(ctx context.Context) error {
	return s.repo.Save(ctx, s.entry)
}

func (s *JournalStep) Compensate(context.Context) error { return nil }
