package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
)

// SnapshotRepository keeps cart snapshots in a map. Saved snapshots are
// copied so callers cannot alias stored state.
type SnapshotRepository struct {
	mu    sync.RWMutex
	carts map[string]domain.Snapshot
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{carts: make(map[string]domain.Snapshot)}
}

func (r *SnapshotRepository) Load(_ context.Context, cartID string) (domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.carts[cartID]
	if !ok {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", domain.ErrCartNotFound, cartID)
	}
	return clone(snap), nil
}

func (r *SnapshotRepository) Save(_ context.Context, snap domain.Snapshot) error {
	r.mu.Lock()
	r.carts[snap.ID] = clone(snap)
	r.mu.Unlock()
	return nil
}

func (r *SnapshotRepository) Delete(_ context.Context, cartID string) error {
	r.mu.Lock()
	delete(r.carts, cartID)
	r.mu.Unlock()
	return nil
}

func (r *SnapshotRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}

func clone(s domain.Snapshot) domain.Snapshot {
	s.Items = append([]domain.LineItem(nil), s.Items...)
	if s.Promo != nil {
		p := *s.Promo
		s.Promo = &p
	}
	return s
}
