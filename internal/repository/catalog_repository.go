package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-cart/internal/db"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"golang.org/x/text/currency"
)

// DefaultFeaturedLimit is how many featured products the landing page shows.
const DefaultFeaturedLimit = 8

type catalogRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) (port.CatalogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &catalogRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

// ListProducts returns active products, newest first, optionally narrowed
// to one category.
func (r *catalogRepository) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapProductRowToDomain(db.GetProductRow(row)))
	}

	return products, nil
}

func (r *catalogRepository) ListFeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	rows, err := r.q.ListFeaturedProducts(ctx, int32(min(limit, 1000)))
	if err != nil {
		return nil, fmt.Errorf("q.ListFeaturedProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapProductRowToDomain(db.GetProductRow(row)))
	}

	return products, nil
}

// GetProduct loads a product together with its variants, inactive products
// included.
func (r *catalogRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if id == uuid.Nil {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	return withTx(ctx, r.pool, r.q, readTx, func(q *db.Queries) (domain.Product, error) {
		row, err := q.GetProduct(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("product[%s]: %w", id, port.ErrNotFound)
		}
		if err != nil {
			return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
		}

		variants, err := q.ListProductVariants(ctx, id)
		if err != nil {
			return domain.Product{}, fmt.Errorf("q.ListProductVariants: %w", err)
		}

		product := mapProductRowToDomain(row)
		for _, v := range variants {
			product.Variants = append(product.Variants, domain.ProductVariant{
				ID:              v.ID,
				ProductID:       v.ProductID,
				Name:            v.Name,
				Value:           v.Value,
				PriceAdjustment: v.PriceAdjustment,
			})
		}

		return product, nil
	})
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCategories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, domain.Category{
			ID:       row.ID,
			Name:     row.Name,
			ImageURL: row.ImageUrl,
		})
	}

	return categories, nil
}

func (r *catalogRepository) GetSiteSettings(ctx context.Context) (domain.SiteSettings, error) {
	row, err := r.q.GetSiteSettings(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SiteSettings{}, fmt.Errorf("site settings: %w", port.ErrNotFound)
	}
	if err != nil {
		return domain.SiteSettings{}, fmt.Errorf("q.GetSiteSettings: %w", err)
	}

	parsedCurrency, err := currency.ParseISO(row.Currency)
	if err != nil {
		return domain.SiteSettings{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	return domain.SiteSettings{
		StoreName:        row.StoreName,
		StoreDescription: row.StoreDescription,
		WhatsAppNumber:   row.WhatsappNumber,
		Currency:         parsedCurrency,
		CurrencySymbol:   row.CurrencySymbol,
	}, nil
}

func (r *catalogRepository) UpdateSiteSettings(ctx context.Context, settings domain.SiteSettings) error {
	if strings.TrimSpace(settings.StoreName) == "" {
		return fmt.Errorf("store name is empty")
	}

	rowsAffected, err := r.q.UpdateSiteSettings(ctx, db.UpdateSiteSettingsParams{
		StoreName:        settings.StoreName,
		StoreDescription: settings.StoreDescription,
		WhatsappNumber:   settings.WhatsAppNumber,
		Currency:         settings.Currency.String(),
		CurrencySymbol:   settings.CurrencySymbol,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateSiteSettings: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("site settings: %w", port.ErrNotFound)
	}

	return nil
}

func (r *catalogRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}

	isAdmin, err := r.q.IsAdmin(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("q.IsAdmin: %w", err)
	}

	return isAdmin, nil
}

func (r *catalogRepository) Stats(ctx context.Context) (domain.DashboardStats, error) {
	products, err := r.q.CountProducts(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("q.CountProducts: %w", err)
	}

	categories, err := r.q.CountCategories(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("q.CountCategories: %w", err)
	}

	return domain.DashboardStats{Products: products, Categories: categories}, nil
}

func mapProductRowToDomain(row db.GetProductRow) domain.Product {
	return domain.Product{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		Price:        row.Price,
		ImageURL:     row.ImageUrl,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Featured:     row.Featured,
		Active:       row.Active,
		CreatedAt:    row.CreatedAt,
	}
}
