package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/repository"
	"github.com/spf13/cobra"
)

var (
	productsCategory string
	productsFeatured bool
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List active products, newest first",
	Args:  cobra.NoArgs,
	RunE:  listProducts,
}

var productCmd = &cobra.Command{
	Use:   "product [product-id]",
	Short: "Show a product with its variants",
	Args:  cobra.ExactArgs(1),
	RunE:  showProduct,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE:  listCategories,
}

func init() {
	productsCmd.Flags().StringVar(&productsCategory, "category", "", "Only products of this category id")
	productsCmd.Flags().BoolVar(&productsFeatured, "featured", false, "Only featured products")
}

func listProducts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, err := catalogRepository(ctx)
	if err != nil {
		return err
	}

	settings, err := repo.GetSiteSettings(ctx)
	if err != nil {
		return fmt.Errorf("repo.GetSiteSettings: %w", err)
	}

	var products []domain.Product
	if productsFeatured {
		products, err = repo.ListFeaturedProducts(ctx, repository.DefaultFeaturedLimit)
		if err != nil {
			return fmt.Errorf("repo.ListFeaturedProducts: %w", err)
		}
	} else {
		var categoryID *uuid.UUID
		if productsCategory != "" {
			id, err := uuid.Parse(productsCategory)
			if err != nil {
				return fmt.Errorf("invalid category id[%s]: %w", productsCategory, err)
			}
			categoryID = &id
		}

		products, err = repo.ListProducts(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("repo.ListProducts: %w", err)
		}
	}

	if len(products) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No products found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, p := range products {
		category := ""
		if p.CategoryName != nil {
			category = *p.CategoryName
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, domain.FormatPrice(settings.Symbol(), p.Price), category)
	}
	return w.Flush()
}

func showProduct(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id[%s]: %w", args[0], err)
	}

	repo, err := catalogRepository(ctx)
	if err != nil {
		return err
	}

	settings, err := repo.GetSiteSettings(ctx)
	if err != nil {
		return fmt.Errorf("repo.GetSiteSettings: %w", err)
	}

	product, err := repo.GetProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("repo.GetProduct: %w", err)
	}

	printProduct(cmd.OutOrStdout(), product, settings.Symbol())
	return nil
}

func printProduct(out io.Writer, p domain.Product, symbol string) {
	fmt.Fprintf(out, "%s\n%s\n", p.Name, domain.FormatPrice(symbol, p.Price))
	if p.CategoryName != nil {
		fmt.Fprintf(out, "Category: %s\n", *p.CategoryName)
	}
	if p.Description != nil && *p.Description != "" {
		fmt.Fprintf(out, "\n%s\n", *p.Description)
	}

	if len(p.Variants) == 0 {
		return
	}

	fmt.Fprintln(out, "\nVariants:")
	for _, v := range p.Variants {
		line := fmt.Sprintf("  %s: %s", v.Name, v.Value)
		if adj := domain.FormatAdjustment(symbol, v.PriceAdjustment); adj != "" {
			line += " (" + adj + ")"
		}
		fmt.Fprintln(out, line)
	}
}

func listCategories(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, err := catalogRepository(ctx)
	if err != nil {
		return err
	}

	categories, err := repo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("repo.ListCategories: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Name)
	}
	return w.Flush()
}
