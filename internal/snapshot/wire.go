package snapshot

import (
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/shopspring/decimal"
)

// number is written as a bare JSON number, the way the browser client
// writes prices. Quoted strings are accepted on read.
type number decimal.Decimal

func (n number) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).String()), nil
}

func (n *number) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = number(d)
	return nil
}

type item struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	Price       number   `json:"price"`
	Quantity    int      `json:"quantity"`
	ImageURL    *string  `json:"imageUrl"`
	Variant     *variant `json:"variant,omitempty"`
}

type variant struct {
	Name            string `json:"name"`
	Value           string `json:"value"`
	PriceAdjustment number `json:"priceAdjustment"`
}

func fromDomain(items []domain.CartItem) []item {
	out := make([]item, 0, len(items))
	for _, i := range items {
		w := item{
			ProductID:   i.ProductID,
			ProductName: i.ProductName,
			Price:       number(i.Price),
			Quantity:    i.Quantity,
			ImageURL:    i.ImageURL,
		}
		if i.Variant != nil {
			w.Variant = &variant{
				Name:            i.Variant.Name,
				Value:           i.Variant.Value,
				PriceAdjustment: number(i.Variant.PriceAdjustment),
			}
		}
		out = append(out, w)
	}
	return out
}

func toDomain(items []item) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(items))
	for _, w := range items {
		i := domain.CartItem{
			ProductID:   w.ProductID,
			ProductName: w.ProductName,
			Price:       decimal.Decimal(w.Price),
			Quantity:    w.Quantity,
			ImageURL:    w.ImageURL,
		}
		if w.Variant != nil {
			i.Variant = &domain.Variant{
				Name:            w.Variant.Name,
				Value:           w.Variant.Value,
				PriceAdjustment: decimal.Decimal(w.Variant.PriceAdjustment),
			}
		}
		out = append(out, i)
	}
	return out
}
