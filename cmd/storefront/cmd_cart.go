package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cartVariant  string
	cartQuantity int
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and edit the shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cart items and totals",
	Args:  cobra.NoArgs,
	RunE:  showCart,
}

var cartAddCmd = &cobra.Command{
	Use:   "add [product-id]",
	Short: "Add a product to the cart",
	Long: `Adds a product to the cart. Adding the same product and variant again
increases the quantity of the existing line.

Example:
  storefront cart add 3f1c... --variant M --qty 2`,
	Args: cobra.ExactArgs(1),
	RunE: addToCart,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [product-id]",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  removeFromCart,
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update [product-id] [quantity]",
	Short: "Set the quantity of a line, 0 removes it",
	Args:  cobra.ExactArgs(2),
	RunE:  updateCart,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE:  clearCart,
}

func init() {
	for _, c := range []*cobra.Command{cartAddCmd, cartRemoveCmd, cartUpdateCmd} {
		c.Flags().StringVar(&cartVariant, "variant", "", "Variant value, e.g. M")
	}
	cartAddCmd.Flags().IntVarP(&cartQuantity, "qty", "q", 1, "Quantity to add")

	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartRemoveCmd, cartUpdateCmd, cartClearCmd)
}

func showCart(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := openCart(ctx)
	if err != nil {
		return err
	}

	// the cart is readable without the catalog, prices then use the default symbol
	var settings domain.SiteSettings
	if repo, err := catalogRepository(ctx); err == nil {
		if settings, err = repo.GetSiteSettings(ctx); err != nil {
			logger.Debug("site settings unavailable", zap.Error(err))
		}
	} else {
		logger.Debug("catalog unavailable", zap.Error(err))
	}

	printCart(cmd.OutOrStdout(), store.Cart(), settings)
	return nil
}

func printCart(out io.Writer, c domain.Cart, settings domain.SiteSettings) {
	symbol := settings.Symbol()

	if len(c.Items) == 0 {
		fmt.Fprintln(out, "Your cart is empty.")
		return
	}

	for _, item := range c.Items {
		name := item.ProductName
		if item.Variant != nil {
			name += fmt.Sprintf(" (%s: %s)", item.Variant.Name, item.Variant.Value)
		}
		fmt.Fprintf(out, "%s  %d × %s = %s\n", name, item.Quantity,
			domain.FormatPrice(symbol, item.EffectivePrice()),
			domain.FormatPrice(symbol, item.LineTotal()))
	}

	fmt.Fprintf(out, "\nItems: %d\nTotal: %s\n", c.TotalItems(), settings.Money(c.TotalPrice()).Format(symbol))
}

// resolveProduct loads a product and the variant picked by value.
func resolveProduct(cmd *cobra.Command, rawID, variantValue string) (domain.Product, *domain.ProductVariant, error) {
	ctx := cmd.Context()

	id, err := uuid.Parse(rawID)
	if err != nil {
		return domain.Product{}, nil, fmt.Errorf("invalid product id[%s]: %w", rawID, err)
	}

	repo, err := catalogRepository(ctx)
	if err != nil {
		return domain.Product{}, nil, err
	}

	product, err := repo.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, nil, fmt.Errorf("repo.GetProduct: %w", err)
	}

	if variantValue == "" {
		return product, nil, nil
	}

	variant, ok := product.FindVariant(variantValue)
	if !ok {
		return domain.Product{}, nil, fmt.Errorf("variant[%s] not found for product[%s]", variantValue, product.Name)
	}

	return product, &variant, nil
}

func addToCart(cmd *cobra.Command, args []string) error {
	if cartQuantity < 1 {
		return fmt.Errorf("qty must be at least 1")
	}

	product, variant, err := resolveProduct(cmd, args[0], cartVariant)
	if err != nil {
		return err
	}

	store, err := openCart(cmd.Context())
	if err != nil {
		return err
	}

	if err := store.AddItem(cmd.Context(), product.ToCartItem(variant, cartQuantity)); err != nil {
		return fmt.Errorf("store.AddItem: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added to cart: %s × %d\n", product.Name, cartQuantity)
	return nil
}

// variantArg is nil when --variant was not given, so the line without a
// variant is addressed. An explicit --variant "" addresses a variant whose
// value is empty.
func variantArg(cmd *cobra.Command) *string {
	if cartVariant == "" && !cmd.Flags().Changed("variant") {
		return nil
	}
	value := cartVariant
	return &value
}

func removeFromCart(cmd *cobra.Command, args []string) error {
	store, err := openCart(cmd.Context())
	if err != nil {
		return err
	}

	if err := store.RemoveItem(cmd.Context(), args[0], variantArg(cmd)); err != nil {
		return fmt.Errorf("store.RemoveItem: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Items in cart: %d\n", store.TotalItems())
	return nil
}

func updateCart(cmd *cobra.Command, args []string) error {
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity[%s]: %w", args[1], err)
	}

	store, err := openCart(cmd.Context())
	if err != nil {
		return err
	}

	if err := store.UpdateQuantity(cmd.Context(), args[0], quantity, variantArg(cmd)); err != nil {
		return fmt.Errorf("store.UpdateQuantity: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Items in cart: %d\n", store.TotalItems())
	return nil
}

func clearCart(cmd *cobra.Command, args []string) error {
	store, err := openCart(cmd.Context())
	if err != nil {
		return err
	}

	if err := store.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("store.Clear: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared.")
	return nil
}
