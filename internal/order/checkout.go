package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/storefront-cart/internal/cart"
	"github.com/nikolayk812/storefront-cart/internal/domain"
)

var (
	ErrWhatsAppNotConfigured  = errors.New("WhatsApp not configured")
	ErrMissingCustomerDetails = errors.New("please fill in your details")
	ErrEmptyCart              = errors.New("cart is empty")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Customer is who the order ships to. Both fields are sent verbatim.
type Customer struct {
	Name    string `validate:"required"`
	Address string `validate:"required"`
}

func (c Customer) validate() error {
	trimmed := Customer{
		Name:    strings.TrimSpace(c.Name),
		Address: strings.TrimSpace(c.Address),
	}

	if err := validate.Struct(trimmed); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingCustomerDetails, err)
	}

	return nil
}

type CheckoutResult struct {
	Message string
	Link    string
}

type Checkout struct {
	store      *cart.Store
	dispatcher *Dispatcher
}

func NewCheckout(store *cart.Store, dispatcher *Dispatcher) *Checkout {
	return &Checkout{store: store, dispatcher: dispatcher}
}

// Place composes the cart message and dispatches it to the shop's WhatsApp
// number. When clear is set the cart is emptied after a successful dispatch.
func (c *Checkout) Place(ctx context.Context, settings domain.SiteSettings, customer Customer, clear bool) (CheckoutResult, error) {
	if strings.TrimSpace(settings.WhatsAppNumber) == "" {
		return CheckoutResult{}, ErrWhatsAppNotConfigured
	}

	if err := customer.validate(); err != nil {
		return CheckoutResult{}, err
	}

	snapshot := c.store.Cart()
	if len(snapshot.Items) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}

	message := CartMessage(snapshot.Items, settings.Symbol(), snapshot.TotalPrice(), customer.Name, customer.Address)

	link, err := c.dispatcher.Dispatch(ctx, settings.WhatsAppNumber, message)
	if err != nil {
		return CheckoutResult{Message: message, Link: link}, fmt.Errorf("dispatcher.Dispatch: %w", err)
	}

	if clear {
		if err := c.store.Clear(ctx); err != nil {
			return CheckoutResult{Message: message, Link: link}, fmt.Errorf("store.Clear: %w", err)
		}
	}

	return CheckoutResult{Message: message, Link: link}, nil
}

// Inquire dispatches a single product message, priced with the chosen
// variant applied.
func (d *Dispatcher) Inquire(ctx context.Context, settings domain.SiteSettings, product domain.Product, variant *domain.ProductVariant) (CheckoutResult, error) {
	if strings.TrimSpace(settings.WhatsAppNumber) == "" {
		return CheckoutResult{}, ErrWhatsAppNotConfigured
	}

	var selection *domain.Variant
	if variant != nil {
		selection = variant.Selection()
	}

	message := SingleItemMessage(product.Name, product.PriceWith(variant), settings.Symbol(), selection)

	link, err := d.Dispatch(ctx, settings.WhatsAppNumber, message)
	if err != nil {
		return CheckoutResult{Message: message, Link: link}, fmt.Errorf("d.Dispatch: %w", err)
	}

	return CheckoutResult{Message: message, Link: link}, nil
}
