// Package snapshot encodes the persisted cart record.
//
// The record keeps the envelope written by the storefront's browser client,
// {"state":{"items":[...]},"version":0}, prices included as JSON numbers, so
// records written here stay readable by that client.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront-cart/internal/domain"
)

const Version = 0

var ErrCorrupt = errors.New("cart snapshot is corrupt")

type envelope struct {
	State   state `json:"state"`
	Version int   `json:"version"`
}

type state struct {
	Items []item `json:"items"`
}

func Marshal(items []domain.CartItem) ([]byte, error) {
	data, err := json.Marshal(envelope{State: state{Items: fromDomain(items)}, Version: Version})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}

// Unmarshal decodes a record. Records of another version or that fail to
// decode are rejected with ErrCorrupt.
func Unmarshal(data []byte) ([]domain.CartItem, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	if env.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, env.Version)
	}

	for i, w := range env.State.Items {
		if w.ProductID == "" {
			return nil, fmt.Errorf("%w: item %d has no productId", ErrCorrupt, i)
		}
	}

	return toDomain(env.State.Items), nil
}
