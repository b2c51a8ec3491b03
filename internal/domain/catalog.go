package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Product struct {
	ID           uuid.UUID
	Name         string
	Description  *string
	Price        decimal.Decimal
	ImageURL     *string
	CategoryID   *uuid.UUID
	CategoryName *string
	Featured     bool
	Active       bool
	Variants     []ProductVariant

	CreatedAt time.Time
}

type ProductVariant struct {
	ID              uuid.UUID
	ProductID       uuid.UUID
	Name            string
	Value           string
	PriceAdjustment decimal.Decimal
}

type Category struct {
	ID       uuid.UUID
	Name     string
	ImageURL *string
}

type SiteSettings struct {
	StoreName        string
	StoreDescription *string
	WhatsAppNumber   string
	Currency         currency.Unit
	CurrencySymbol   string
}

// DashboardStats are the counters shown on the admin landing page.
type DashboardStats struct {
	Products   int64
	Categories int64
}

// FindVariant looks a variant up by its value.
func (p Product) FindVariant(value string) (ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.Value == value {
			return v, true
		}
	}
	return ProductVariant{}, false
}

// PriceWith returns the unit price of p with the chosen variant applied.
func (p Product) PriceWith(variant *ProductVariant) decimal.Decimal {
	if variant == nil {
		return p.Price
	}
	return p.Price.Add(variant.PriceAdjustment)
}

// ToCartItem snapshots p into a cart line. The base price is kept apart
// from the variant adjustment.
func (p Product) ToCartItem(variant *ProductVariant, quantity int) CartItem {
	item := CartItem{
		ProductID:   p.ID.String(),
		ProductName: p.Name,
		Price:       p.Price,
		Quantity:    quantity,
		ImageURL:    p.ImageURL,
	}
	if variant != nil {
		item.Variant = &Variant{
			Name:            variant.Name,
			Value:           variant.Value,
			PriceAdjustment: variant.PriceAdjustment,
		}
	}
	return item
}

func (v ProductVariant) Selection() *Variant {
	return &Variant{Name: v.Name, Value: v.Value, PriceAdjustment: v.PriceAdjustment}
}

func (s SiteSettings) Money(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: s.Currency}
}

// Symbol is the configured currency symbol, $ when none is set.
func (s SiteSettings) Symbol() string {
	if s.CurrencySymbol == "" {
		return "$"
	}
	return s.CurrencySymbol
}
