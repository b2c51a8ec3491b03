package domain

import (
	"github.com/shopspring/decimal"
)

// NoVariant stands in for the variant value of items added without a variant.
const NoVariant = "default"

// Cart is a read view of the line items. OwnerID is only filled by
// repositories that key carts by owner, a cart.Store leaves it empty.
type Cart struct {
	OwnerID string
	Items   []CartItem
}

type Variant struct {
	Name            string
	Value           string
	PriceAdjustment decimal.Decimal
}

// CartItem is one line of the cart. Name, price, image and variant are
// snapshotted when the item is first added and are never refreshed.
type CartItem struct {
	ProductID   string
	ProductName string
	Price       decimal.Decimal
	Quantity    int
	ImageURL    *string
	Variant     *Variant
}

// ItemKey identifies a cart entry. Only the variant value participates,
// the variant name is ignored.
type ItemKey struct {
	ProductID    string
	VariantValue string
}

func KeyOf(item CartItem) ItemKey {
	if item.Variant == nil {
		return ItemKey{ProductID: item.ProductID, VariantValue: NoVariant}
	}
	return ItemKey{ProductID: item.ProductID, VariantValue: item.Variant.Value}
}

// KeyFor builds the key used by remove and update. A nil variantValue
// addresses the item without a variant, an empty one addresses a variant
// whose value is "".
func KeyFor(productID string, variantValue *string) ItemKey {
	if variantValue == nil {
		return ItemKey{ProductID: productID, VariantValue: NoVariant}
	}
	return ItemKey{ProductID: productID, VariantValue: *variantValue}
}

func (i CartItem) Key() ItemKey {
	return KeyOf(i)
}

// EffectivePrice is the base price plus the variant adjustment. It is not
// clamped and may be zero or negative.
func (i CartItem) EffectivePrice() decimal.Decimal {
	if i.Variant == nil {
		return i.Price
	}
	return i.Price.Add(i.Variant.PriceAdjustment)
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.EffectivePrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (c Cart) TotalItems() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}
