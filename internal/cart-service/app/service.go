// Package app hosts the cart service: it owns cart lifecycles, serialises
// mutations per cart and commits every change to the snapshot store and the
// mutation journal.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/cartlog"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
	"github.com/jcmexdev/bookstore-cart/internal/coordinator"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/cache"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/currency"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/interceptors"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/keymutex"
)

const (
	tracerName = "github.com/jcmexdev/bookstore-cart/internal/cart-service/app"

	// DefaultReplayTTL is how long a mutation response stays replayable
	// under its idempotency key.
	DefaultReplayTTL = 24 * time.Hour
)

// View is the cart state and price breakdown returned by every operation.
type View struct {
	Cart      domain.Snapshot  `json:"cart"`
	Breakdown domain.Breakdown `json:"breakdown"`
	Outcome   domain.Outcome   `json:"outcome,omitempty"`

	// Replayed is set when the view was served from the idempotency cache.
	Replayed bool `json:"-"`
}

type Deps struct {
	Catalog   Catalog
	Promos    domain.PromoTable
	Pricing   domain.PricingConfig
	Snapshots Repository

	// Journal defaults to cartlog.Discard.
	Journal cartlog.Repository

	// Replays enables idempotent replay of mutations. Nil disables it.
	Replays   cache.Cache
	ReplayTTL time.Duration

	MaxQuantity int
	Clock       func() time.Time
	NewID       func() string
}

type CartService struct {
	catalog     Catalog
	promos      domain.PromoTable
	calc        domain.Calculator
	snapshots   Repository
	journal     cartlog.Repository
	replays     cache.Cache
	replayTTL   time.Duration
	maxQuantity int
	now         func() time.Time
	newID       func() string
	locks       keymutex.KeyMutex
	tracer      trace.Tracer
}

func NewCartService(d Deps) (*CartService, error) {
	if d.Catalog == nil || d.Promos == nil || d.Snapshots == nil {
		return nil, errors.New("cart service: catalog, promos and snapshots are required")
	}
	if err := d.Pricing.Validate(); err != nil {
		return nil, err
	}

	s := &CartService{
		catalog:     d.Catalog,
		promos:      d.Promos,
		calc:        domain.NewCalculator(d.Pricing),
		snapshots:   d.Snapshots,
		journal:     d.Journal,
		replays:     d.Replays,
		replayTTL:   d.ReplayTTL,
		maxQuantity: d.MaxQuantity,
		now:         d.Clock,
		newID:       d.NewID,
		tracer:      otel.Tracer(tracerName),
	}
	if s.journal == nil {
		s.journal = cartlog.Discard{}
	}
	if s.replayTTL <= 0 {
		s.replayTTL = DefaultReplayTTL
	}
	if s.maxQuantity <= 0 {
		s.maxQuantity = domain.DefaultMaxQuantity
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s, nil
}

func (s *CartService) CreateCart(ctx context.Context, customerID string) (View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.CreateCart")
	defer span.End()

	key := interceptors.IdempotencyKey(ctx)
	if key != "" {
		unlock := s.locks.Lock("create:" + key)
		defer unlock()
	}
	if v, ok := s.replay(ctx, cartlog.OpCreate, key); ok {
		return v, nil
	}

	cart := domain.NewCart(s.newID(), customerID, domain.WithMaxQuantity(s.maxQuantity), domain.WithClock(s.now))
	span.SetAttributes(attribute.String("cart.id", cart.ID()))

	if err := s.commit(ctx, cartlog.OpCreate, nil, cart, "", customerID, domain.OutcomeAdded); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return View{}, err
	}

	view := s.view(cart, domain.OutcomeAdded)
	s.remember(ctx, cartlog.OpCreate, key, view)
	slog.InfoContext(ctx, "cart created", "cart_id", cart.ID(), "customer_id", customerID, "request_id", interceptors.RequestID(ctx))
	return view, nil
}

func (s *CartService) GetCart(ctx context.Context, cartID string) (View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.GetCart", trace.WithAttributes(attribute.String("cart.id", cartID)))
	defer span.End()

	cart, err := s.load(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		return View{}, err
	}
	return s.view(cart, ""), nil
}

// AddItem looks itemID up in the catalog and adds quantity units of it.
func (s *CartService) AddItem(ctx context.Context, cartID, itemID string, quantity int) (View, error) {
	return s.mutate(ctx, cartlog.OpAddItem, cartID, itemID, strconv.Itoa(quantity), func(ctx context.Context, c *domain.Cart) (domain.Outcome, error) {
		item, err := s.catalog.Lookup(ctx, itemID)
		if err != nil {
			return domain.OutcomeUnchanged, err
		}
		return c.AddItem(item, quantity)
	})
}

// SetQuantity takes the quantity as the raw numeric text the client sent.
// Whole numbers below 1 remove the line. The text is parsed before the cart
// lock is taken; the cart still enforces its own per-line limit.
func (s *CartService) SetQuantity(ctx context.Context, cartID, itemID, rawQuantity string) (View, error) {
	n, err := domain.ParseQuantity(rawQuantity, s.maxQuantity)
	if err != nil {
		slog.WarnContext(ctx, "cart mutation rejected", "op", cartlog.OpSetQuantity, "cart_id", cartID, "item_id", itemID, "error", err)
		return View{}, err
	}
	return s.mutate(ctx, cartlog.OpSetQuantity, cartID, itemID, strconv.Itoa(n), func(_ context.Context, c *domain.Cart) (domain.Outcome, error) {
		return c.SetQuantity(itemID, n)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID string) (View, error) {
	return s.mutate(ctx, cartlog.OpRemoveItem, cartID, itemID, "", func(_ context.Context, c *domain.Cart) (domain.Outcome, error) {
		return c.RemoveItem(itemID), nil
	})
}

func (s *CartService) ApplyPromoCode(ctx context.Context, cartID, code string) (View, error) {
	return s.mutate(ctx, cartlog.OpApplyPromo, cartID, "", domain.NormalizeCode(code), func(_ context.Context, c *domain.Cart) (domain.Outcome, error) {
		return c.ApplyPromoCode(code, s.promos)
	})
}

func (s *CartService) ClearPromoCode(ctx context.Context, cartID string) (View, error) {
	return s.mutate(ctx, cartlog.OpClearPromo, cartID, "", "", func(_ context.Context, c *domain.Cart) (domain.Outcome, error) {
		return c.ClearPromoCode(), nil
	})
}

type mutation func(ctx context.Context, c *domain.Cart) (domain.Outcome, error)

// mutate runs fn against a copy of the stored cart while holding the cart's
// lock. The copy replaces the stored cart only after the commit pipeline
// succeeds, so a failed mutation leaves the cart as it was.
func (s *CartService) mutate(ctx context.Context, op cartlog.Operation, cartID, itemID, detail string, fn mutation) (View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService."+string(op), trace.WithAttributes(
		attribute.String("cart.id", cartID),
		attribute.String("cart.item_id", itemID),
	))
	defer span.End()

	unlock := s.locks.Lock(cartID)
	defer unlock()

	var replayKey string
	if key := interceptors.IdempotencyKey(ctx); key != "" {
		replayKey = cartID + ":" + key
	}
	if v, ok := s.replay(ctx, op, replayKey); ok {
		return v, nil
	}

	current, err := s.load(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		return View{}, err
	}

	next := current.Clone()
	outcome, err := fn(ctx, next)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.WarnContext(ctx, "cart mutation rejected", "op", op, "cart_id", cartID, "item_id", itemID, "error", err)
		return View{}, err
	}
	span.SetAttributes(attribute.String("cart.outcome", string(outcome)))

	if outcome.Changed() {
		prev := current.Snapshot()
		if err := s.commit(ctx, op, &prev, next, itemID, detail, outcome); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return View{}, err
		}
	} else {
		next = current
	}

	view := s.view(next, outcome)
	s.remember(ctx, op, replayKey, view)
	slog.InfoContext(ctx, "cart mutated",
		"op", op,
		"cart_id", cartID,
		"item_id", itemID,
		"outcome", outcome,
		"version", next.Version(),
		"total", currency.Format(view.Breakdown.Total),
		"request_id", interceptors.RequestID(ctx),
	)
	return view, nil
}

func (s *CartService) commit(ctx context.Context, op cartlog.Operation, prev *domain.Snapshot, next *domain.Cart, itemID, detail string, outcome domain.Outcome) error {
	snap := next.Snapshot()
	entry := cartlog.NewEntry(ctx, snap.UpdatedAt, next.ID(), op, itemID, detail)
	entry.Outcome = string(outcome)
	entry.Version = next.Version()
	entry.Total = currency.Format(s.calc.Price(next).Total)
	entry.RequestID = interceptors.RequestID(ctx)

	pipeline := coordinator.NewOrchestrator("cart-commit",
		coordinator.NewSnapshotStep(s.snapshots, prev, snap),
		coordinator.NewJournalStep(s.journal, entry),
	)
	if err := pipeline.Start(ctx); err != nil {
		return fmt.Errorf("commit cart %s: %w", next.ID(), err)
	}
	return nil
}

func (s *CartService) load(ctx context.Context, cartID string) (*domain.Cart, error) {
	snap, err := s.snapshots.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return domain.Restore(snap, domain.WithClock(s.now))
}

func (s *CartService) view(c *domain.Cart, outcome domain.Outcome) View {
	return View{
		Cart:      c.Snapshot(),
		Breakdown: s.calc.Price(c),
		Outcome:   outcome,
	}
}

// replay returns the view cached under key for op. A cache failure is logged
// and treated as a miss.
func (s *CartService) replay(ctx context.Context, op cartlog.Operation, key string) (View, bool) {
	if s.replays == nil || key == "" {
		return View{}, false
	}
	raw, err := s.replays.Get(ctx, s.replays.GenerateKey(string(op), key))
	if err != nil {
		slog.WarnContext(ctx, "idempotency lookup failed", "op", op, "error", err)
		return View{}, false
	}
	if raw == "" {
		return View{}, false
	}
	var v View
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.WarnContext(ctx, "discarding unreadable idempotent response", "op", op, "error", err)
		return View{}, false
	}
	v.Replayed = true
	slog.InfoContext(ctx, "replaying idempotent response", "op", op, "cart_id", v.Cart.ID)
	return v, true
}

func (s *CartService) remember(ctx context.Context, op cartlog.Operation, key string, v View) {
	if s.replays == nil || key == "" {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode idempotent response", "op", op, "error", err)
		return
	}
	if err := s.replays.Set(ctx, s.replays.GenerateKey(string(op), key), raw, s.replayTTL); err != nil {
		slog.WarnContext(ctx, "failed to store idempotent response", "op", op, "error", err)
	}
}
