// Package redis shares the cart snapshot between devices of one owner.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/nikolayk812/storefront-cart/internal/snapshot"
	"github.com/redis/go-redis/v9"
)

// SnapshotStore keeps each record under its name without expiry, carts are
// only ever cleared explicitly.
type SnapshotStore struct {
	client *redis.Client
}

func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

func (s *SnapshotStore) Load(ctx context.Context, name string) ([]domain.CartItem, error) {
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}

	data, err := s.client.Get(ctx, name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("client.Get: %w", err)
	}

	items, err := snapshot.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot.Unmarshal: %w", err)
	}

	return items, nil
}

func (s *SnapshotStore) Save(ctx context.Context, name string, items []domain.CartItem) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}

	data, err := snapshot.Marshal(items)
	if err != nil {
		return fmt.Errorf("snapshot.Marshal: %w", err)
	}

	if err := s.client.Set(ctx, name, data, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}
