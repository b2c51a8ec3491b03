package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/nikolayk812/storefront-cart/internal/order"
	"github.com/spf13/cobra"
)

var (
	customerName    string
	customerAddress string
	clearAfter      bool
	printOnly       bool
	inquireVariant  string
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Send the cart as an order over WhatsApp",
	Long: `Composes an order message from the cart and opens a WhatsApp chat with
the shop's number, pre-filled with the message. The cart is kept unless
--clear is given.`,
	Args: cobra.NoArgs,
	RunE: checkout,
}

var inquireCmd = &cobra.Command{
	Use:   "inquire [product-id]",
	Short: "Ask the shop about a single product over WhatsApp",
	Args:  cobra.ExactArgs(1),
	RunE:  inquire,
}

func init() {
	checkoutCmd.Flags().StringVar(&customerName, "name", "", "Your name")
	checkoutCmd.Flags().StringVar(&customerAddress, "address", "", "Delivery address")
	checkoutCmd.Flags().BoolVar(&clearAfter, "clear", false, "Empty the cart after the order is sent")

	inquireCmd.Flags().StringVar(&inquireVariant, "variant", "", "Variant value, e.g. M")

	for _, c := range []*cobra.Command{checkoutCmd, inquireCmd} {
		c.Flags().BoolVar(&printOnly, "print", false, "Print the WhatsApp link instead of opening it")
	}
}

func checkout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, err := catalogRepository(ctx)
	if err != nil {
		return err
	}

	settings, err := repo.GetSiteSettings(ctx)
	if err != nil {
		return fmt.Errorf("repo.GetSiteSettings: %w", err)
	}

	store, err := openCart(ctx)
	if err != nil {
		return err
	}

	customer := order.Customer{Name: customerName, Address: customerAddress}

	result, err := order.NewCheckout(store, dispatcher(printOnly)).Place(ctx, settings, customer, clearAfter)
	if result.Link != "" {
		printLink(cmd.OutOrStdout(), result.Link)
	}
	if err != nil {
		return checkoutError(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Order sent! Complete your order on WhatsApp.")
	return nil
}

func inquire(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	product, variant, err := resolveProduct(cmd, args[0], inquireVariant)
	if err != nil {
		return err
	}

	repo, err := catalogRepository(ctx)
	if err != nil {
		return err
	}

	settings, err := repo.GetSiteSettings(ctx)
	if err != nil {
		return fmt.Errorf("repo.GetSiteSettings: %w", err)
	}

	result, err := dispatcher(printOnly).Inquire(ctx, settings, product, variant)
	if result.Link != "" {
		printLink(cmd.OutOrStdout(), result.Link)
	}
	if err != nil {
		return checkoutError(err)
	}

	return nil
}

func printLink(out io.Writer, link string) {
	fmt.Fprintf(out, "WhatsApp: %s\n", link)
}

func checkoutError(err error) error {
	switch {
	case errors.Is(err, order.ErrWhatsAppNotConfigured):
		return fmt.Errorf("%w: ask the shop owner to set a WhatsApp number", err)
	case errors.Is(err, order.ErrMissingCustomerDetails):
		return fmt.Errorf("%w: --name and --address are required", order.ErrMissingCustomerDetails)
	default:
		return err
	}
}
