package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/nikolayk812/storefront-cart/internal/repository/sqlite"
	"github.com/nikolayk812/storefront-cart/internal/snapshot"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, path string) *sqlite.SnapshotStore {
	t.Helper()

	store, err := sqlite.Open(t.Context(), path)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func TestSnapshotStore(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "nested", "cart.db")
	store := openStore(t, path)

	_, err := store.Load(ctx, "cart-storage")
	require.ErrorIs(t, err, port.ErrSnapshotNotFound)

	image := gofakeit.URL()
	items := []domain.CartItem{
		{
			ProductID:   gofakeit.UUID(),
			ProductName: gofakeit.ProductName(),
			Price:       decimal.RequireFromString("12.99"),
			Quantity:    2,
			ImageURL:    &image,
		},
		{
			ProductID:   gofakeit.UUID(),
			ProductName: gofakeit.ProductName(),
			Price:       decimal.NewFromInt(20),
			Quantity:    1,
			Variant:     &domain.Variant{Name: "Size", Value: "M", PriceAdjustment: decimal.RequireFromString("-0.5")},
		},
	}

	require.NoError(t, store.Save(ctx, "cart-storage", items))
	require.NoError(t, store.Save(ctx, "cart-storage", items[1:]))
	require.NoError(t, store.Save(ctx, "cart-storage:bob", items[:1]))

	got, err := store.Load(ctx, "cart-storage")
	require.NoError(t, err)
	assertItems(t, items[1:], got)

	got, err = store.Load(ctx, "cart-storage:bob")
	require.NoError(t, err)
	assertItems(t, items[:1], got)
}

func TestSnapshotStore_SurvivesReopen(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "cart.db")
	items := []domain.CartItem{{ProductID: "p1", ProductName: "Pen", Price: decimal.NewFromInt(1), Quantity: 3}}

	first, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "cart-storage", items))
	require.NoError(t, first.Close())

	second := openStore(t, path)
	got, err := second.Load(ctx, "cart-storage")
	require.NoError(t, err)
	assertItems(t, items, got)

	require.NoError(t, second.Save(ctx, "cart-storage", nil))
	got, err = second.Load(ctx, "cart-storage")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSnapshotStore_Validation(t *testing.T) {
	ctx := t.Context()
	store := openStore(t, filepath.Join(t.TempDir(), "cart.db"))

	_, err := store.Load(ctx, "")
	require.EqualError(t, err, "name is empty")

	err = store.Save(ctx, "", nil)
	require.EqualError(t, err, "name is empty")

	_, err = sqlite.Open(ctx, "")
	require.EqualError(t, err, "path is empty")
}

func TestSnapshotStore_CorruptRecord(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "cart.db")
	store := openStore(t, path)

	require.NoError(t, store.Save(ctx, "cart-storage", nil))
	require.NoError(t, store.Exec(ctx, `UPDATE snapshots SET body = '{"version":3}' WHERE name = 'cart-storage'`))

	_, err := store.Load(ctx, "cart-storage")
	require.ErrorIs(t, err, snapshot.ErrCorrupt)
}

func assertItems(t *testing.T, expected, actual []domain.CartItem) {
	t.Helper()

	diff := cmp.Diff(expected, actual, cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	}))
	assert.Empty(t, diff)
}
