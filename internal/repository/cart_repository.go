package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-cart/internal/db"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/shopspring/decimal"
)

// cartRepository stores one cart per owner as ordered rows. The snapshot
// name passed to Load and Save is the owner id.
type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) (port.CartRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	dbCartItems, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   mapGetCartRowsToDomain(dbCartItems),
	}, nil
}

// Load reports ErrSnapshotNotFound for an owner without rows. An emptied
// cart and a never saved one read the same.
func (r *cartRepository) Load(ctx context.Context, ownerID string) ([]domain.CartItem, error) {
	cart, err := r.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, port.ErrSnapshotNotFound
	}

	return cart.Items, nil
}

// Save replaces every row of the owner inside one transaction.
func (r *cartRepository) Save(ctx context.Context, ownerID string, items []domain.CartItem) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	params, err := mapDomainToInsertParams(ownerID, items)
	if err != nil {
		return fmt.Errorf("mapDomainToInsertParams: %w", err)
	}

	_, err = withTx(ctx, r.pool, r.q, writeTx, func(q *db.Queries) (struct{}, error) {
		if _, err := q.DeleteCart(ctx, ownerID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCart: %w", err)
		}

		for _, p := range params {
			if err := q.InsertCartItem(ctx, p); err != nil {
				return struct{}{}, fmt.Errorf("q.InsertCartItem[%s/%s]: %w", p.ProductID, p.VariantValue, err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func mapDomainToInsertParams(ownerID string, items []domain.CartItem) ([]db.InsertCartItemParams, error) {
	params := make([]db.InsertCartItemParams, 0, len(items))

	for i, item := range items {
		if item.Quantity <= 0 || item.Quantity > math.MaxInt32 {
			return nil, fmt.Errorf("quantity[%d] of %s is out of range", item.Quantity, item.ProductID)
		}

		key := item.Key()
		p := db.InsertCartItemParams{
			OwnerID:      ownerID,
			ProductID:    item.ProductID,
			VariantValue: key.VariantValue,
			Position:     int32(i),
			ProductName:  item.ProductName,
			PriceAmount:  item.Price,
			Quantity:     int32(item.Quantity),
			ImageUrl:     item.ImageURL,
		}
		if item.Variant != nil {
			p.VariantName = &item.Variant.Name
			p.VariantPriceAdjustment = decimal.NewNullDecimal(item.Variant.PriceAdjustment)
		}

		params = append(params, p)
	}

	return params, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) domain.CartItem {
	item := domain.CartItem{
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		Price:       row.PriceAmount,
		Quantity:    int(row.Quantity),
		ImageURL:    row.ImageUrl,
	}

	if row.VariantName != nil {
		item.Variant = &domain.Variant{
			Name:            *row.VariantName,
			Value:           row.VariantValue,
			PriceAdjustment: row.VariantPriceAdjustment.Decimal,
		}
	}

	return item
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) []domain.CartItem {
	var items []domain.CartItem

	for _, row := range rows {
		items = append(items, mapGetCartRowToDomain(row))
	}

	return items
}
