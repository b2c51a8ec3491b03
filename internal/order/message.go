// Package order turns a product or a cart into a WhatsApp order message and
// hands the resulting deep link to the system browser.
package order

import (
	"strconv"
	"strings"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/shopspring/decimal"
)

// SingleItemMessage asks the shop about one product. price is the final
// unit price, with any variant adjustment already applied.
func SingleItemMessage(productName string, price decimal.Decimal, currencySymbol string, variant *domain.Variant) string {
	var b strings.Builder

	b.WriteString("Hi! I'm interested in *" + productName + "*")
	if variant != nil {
		b.WriteString(variantLabel(*variant))
	}
	b.WriteString(" — " + domain.FormatPrice(currencySymbol, price))
	b.WriteString("\n\nCould you please help me place an order?")

	return b.String()
}

// CartMessage lists items in the given order followed by totalPrice and
// the customer details. totalPrice is printed as given, it is not derived
// from items.
func CartMessage(items []domain.CartItem, currencySymbol string, totalPrice decimal.Decimal, customerName, customerAddress string) string {
	var b strings.Builder

	b.WriteString("🛒 *New Order*\n\n")

	for i, item := range items {
		b.WriteString(strconv.Itoa(i+1) + ". *" + item.ProductName + "*")
		if item.Variant != nil {
			b.WriteString(variantLabel(*item.Variant))
		}
		b.WriteString("\n   Qty: " + strconv.Itoa(item.Quantity) +
			" × " + domain.FormatPrice(currencySymbol, item.EffectivePrice()) +
			" = " + domain.FormatPrice(currencySymbol, item.LineTotal()) + "\n")
	}

	b.WriteString("\n*Total: " + domain.FormatPrice(currencySymbol, totalPrice) + "*\n")
	b.WriteString("\n📋 *Customer Details*\nName: " + customerName + "\nAddress: " + customerAddress)

	return b.String()
}

func variantLabel(v domain.Variant) string {
	return " (" + v.Name + ": " + v.Value + ")"
}
