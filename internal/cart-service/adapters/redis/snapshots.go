// Package redis stores cart snapshots as JSON documents in Redis through
// the shared cache client.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/cache"
)

const snapshotOp = "snapshot"

// SnapshotRepository keys carts as <service>:snapshot:<cart id>. A ttl of
// zero keeps snapshots until deleted; otherwise every save extends it.
type SnapshotRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewSnapshotRepository(c cache.Cache, ttl time.Duration) *SnapshotRepository {
	return &SnapshotRepository{cache: c, ttl: ttl}
}

func (r *SnapshotRepository) Load(ctx context.Context, cartID string) (domain.Snapshot, error) {
	raw, err := r.cache.Get(ctx, r.cache.GenerateKey(snapshotOp, cartID))
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load cart %s: %w", cartID, err)
	}
	if raw == "" {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", domain.ErrCartNotFound, cartID)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %s: %v", domain.ErrCorruptSnapshot, cartID, err)
	}
	return snap, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, snap domain.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", snap.ID, err)
	}
	if err := r.cache.Set(ctx, r.cache.GenerateKey(snapshotOp, snap.ID), raw, r.ttl); err != nil {
		return fmt.Errorf("save cart %s: %w", snap.ID, err)
	}
	return nil
}

func (r *SnapshotRepository) Delete(ctx context.Context, cartID string) error {
	return r.cache.Delete(ctx, r.cache.GenerateKey(snapshotOp, cartID))
}
