package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/domain"
)

// SnapshotStore persists the whole ordered cart under a name. Load returns
// ErrSnapshotNotFound when nothing was saved yet.
type SnapshotStore interface {
	Load(ctx context.Context, name string) ([]domain.CartItem, error)
	Save(ctx context.Context, name string, items []domain.CartItem) error
}

type CartRepository interface {
	SnapshotStore

	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
}

type CatalogRepository interface {
	ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]domain.Product, error)
	ListFeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetSiteSettings(ctx context.Context) (domain.SiteSettings, error)
	UpdateSiteSettings(ctx context.Context, settings domain.SiteSettings) error
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	Stats(ctx context.Context) (domain.DashboardStats, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, filename string) (string, error)
}
