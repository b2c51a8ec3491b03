// Package cart holds the shopping cart state container.
//
// A Store owns the ordered line items of one client. Every mutation
// persists the full resulting collection through a port.SnapshotStore
// before it becomes visible in memory, and subscribers are notified with
// the new snapshot in mutation order.
package cart

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultName is the record name the cart is persisted under.
const DefaultName = "cart-storage"

// SnapshotName scopes the record name to an owner. An empty owner keeps the
// default name used by single-user local storage.
func SnapshotName(ownerID string) string {
	if ownerID == "" {
		return DefaultName
	}
	return DefaultName + ":" + ownerID
}

type Store struct {
	mu    sync.Mutex
	items []domain.CartItem

	// held while subscribers run so deliveries keep mutation order
	notifyMu sync.Mutex
	subs     map[int]func([]domain.CartItem)
	nextSub  int

	name      string
	snapshots port.SnapshotStore
	logger    *zap.Logger
}

type Option func(*Store)

func WithName(name string) Option {
	return func(s *Store) {
		s.name = name
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Open rehydrates a Store from snapshots. A missing record yields an empty
// cart, a corrupt one is returned as an error.
func Open(ctx context.Context, snapshots port.SnapshotStore, opts ...Option) (*Store, error) {
	if snapshots == nil {
		return nil, fmt.Errorf("snapshots is nil")
	}

	s := &Store{
		name:      DefaultName,
		snapshots: snapshots,
		logger:    zap.NewNop(),
		subs:      make(map[int]func([]domain.CartItem)),
	}
	for _, opt := range opts {
		opt(s)
	}

	items, err := snapshots.Load(ctx, s.name)
	switch {
	case errors.Is(err, port.ErrSnapshotNotFound):
		s.logger.Debug("no cart snapshot, starting empty", zap.String("name", s.name))
	case err != nil:
		return nil, fmt.Errorf("snapshots.Load: %w", err)
	default:
		s.items = normalize(items)
		s.logger.Debug("cart rehydrated",
			zap.String("name", s.name),
			zap.Int("items", len(s.items)))
	}

	return s, nil
}

// AddItem merges item into the entry with the same key, or appends it.
// A merged entry keeps its own snapshotted fields and only gains quantity.
func (s *Store) AddItem(ctx context.Context, item domain.CartItem) error {
	return s.mutate(ctx, "add", func(items []domain.CartItem) []domain.CartItem {
		return addItem(items, item)
	})
}

// RemoveItem deletes the entry for productID and variantValue, a nil
// variantValue addresses the entry without a variant.
func (s *Store) RemoveItem(ctx context.Context, productID string, variantValue *string) error {
	key := domain.KeyFor(productID, variantValue)

	return s.mutate(ctx, "remove", func(items []domain.CartItem) []domain.CartItem {
		return removeItem(items, key)
	})
}

// UpdateQuantity sets the absolute quantity of an entry. A quantity of zero
// or less removes it.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int, variantValue *string) error {
	key := domain.KeyFor(productID, variantValue)

	return s.mutate(ctx, "update", func(items []domain.CartItem) []domain.CartItem {
		if quantity <= 0 {
			return removeItem(items, key)
		}
		return setQuantity(items, key, quantity)
	})
}

func (s *Store) Clear(ctx context.Context) error {
	return s.mutate(ctx, "clear", func([]domain.CartItem) []domain.CartItem {
		return []domain.CartItem{}
	})
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

func (s *Store) Cart() domain.Cart {
	return domain.Cart{Items: s.Items()}
}

func (s *Store) TotalItems() int {
	return s.Cart().TotalItems()
}

// TotalPrice is the unrounded sum of effective price times quantity.
func (s *Store) TotalPrice() decimal.Decimal {
	return s.Cart().TotalPrice()
}

// Subscribe registers fn to run after every successful mutation. fn may read
// the store but must not mutate it.
func (s *Store) Subscribe(fn func(items []domain.CartItem)) (unsubscribe func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.notifyMu.Lock()
		defer s.notifyMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) mutate(ctx context.Context, op string, fn func([]domain.CartItem) []domain.CartItem) error {
	s.mu.Lock()

	next := fn(slices.Clone(s.items))

	if err := s.snapshots.Save(ctx, s.name, next); err != nil {
		s.mu.Unlock()
		s.logger.Warn("cart snapshot not saved",
			zap.String("op", op),
			zap.String("name", s.name),
			zap.Error(err))
		return fmt.Errorf("snapshots.Save: %w", err)
	}

	s.items = next

	// take the notify lock before releasing state so a later mutation
	// cannot deliver ahead of this one
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	s.logger.Debug("cart mutated",
		zap.String("op", op),
		zap.Int("entries", len(next)))

	for _, id := range sortedKeys(s.subs) {
		s.subs[id](slices.Clone(next))
	}

	return nil
}

func sortedKeys(m map[int]func([]domain.CartItem)) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
