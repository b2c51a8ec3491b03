package snapshot

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
)

// Memory keeps encoded records in process memory. It backs the ephemeral
// store backend and tests.
type Memory struct {
	mu      sync.Mutex
	records map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, name string) ([]domain.CartItem, error) {
	m.mu.Lock()
	data, ok := m.records[name]
	m.mu.Unlock()

	if !ok {
		return nil, port.ErrSnapshotNotFound
	}

	items, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("Unmarshal: %w", err)
	}

	return items, nil
}

func (m *Memory) Save(_ context.Context, name string, items []domain.CartItem) error {
	data, err := Marshal(items)
	if err != nil {
		return fmt.Errorf("Marshal: %w", err)
	}

	m.mu.Lock()
	m.records[name] = data
	m.mu.Unlock()

	return nil
}

// Raw returns the encoded record stored under name.
func (m *Memory) Raw(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.records[name]
	return data, ok
}

// Put stores an already encoded record.
func (m *Memory) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[name] = data
}
