package cart

import (
	"slices"

	"github.com/nikolayk812/storefront-cart/internal/domain"
)

// addItem merges by key. Quantities are summed as given, but an entry
// whose sum drops to zero or below is removed and a new entry with a
// non-positive quantity is never appended.
func addItem(items []domain.CartItem, item domain.CartItem) []domain.CartItem {
	key := item.Key()

	i := slices.IndexFunc(items, func(existing domain.CartItem) bool {
		return existing.Key() == key
	})
	if i < 0 {
		if item.Quantity <= 0 {
			return items
		}
		return append(items, item)
	}

	merged := items[i]
	merged.Quantity += item.Quantity
	if merged.Quantity <= 0 {
		return removeItem(items, key)
	}

	items[i] = merged
	return items
}

func removeItem(items []domain.CartItem, key domain.ItemKey) []domain.CartItem {
	return slices.DeleteFunc(items, func(item domain.CartItem) bool {
		return item.Key() == key
	})
}

func setQuantity(items []domain.CartItem, key domain.ItemKey, quantity int) []domain.CartItem {
	for i := range items {
		if items[i].Key() == key {
			items[i].Quantity = quantity
		}
	}
	return items
}

// normalize folds a loaded snapshot through addItem so duplicate keys are
// merged and non-positive quantities dropped.
func normalize(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		out = addItem(out, item)
	}
	return out
}
