// Package sqlite keeps the cart snapshot in a local SQLite file, the
// durable per-device storage used by default.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/nikolayk812/storefront-cart/internal/snapshot"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	name       TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type SnapshotStore struct {
	db *sql.DB
}

// Open creates the database file and its parent directory when missing.
func Open(ctx context.Context, path string) (*SnapshotStore, error) {
	if path == "" {
		return nil, fmt.Errorf("path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	// a single writer keeps read-modify-write of one record serialized
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, errors.Join(fmt.Errorf("db.ExecContext: %w", err), db.Close())
	}

	return &SnapshotStore{db: db}, nil
}

func (s *SnapshotStore) Load(ctx context.Context, name string) ([]domain.CartItem, error) {
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}

	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM snapshots WHERE name = ?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.QueryRowContext: %w", err)
	}

	items, err := snapshot.Unmarshal([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("snapshot.Unmarshal: %w", err)
	}

	return items, nil
}

func (s *SnapshotStore) Save(ctx context.Context, name string, items []domain.CartItem) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}

	body, err := snapshot.Marshal(items)
	if err != nil {
		return fmt.Errorf("snapshot.Marshal: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, string(body))
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
