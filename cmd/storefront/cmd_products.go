// cmd/storefront/cmd_products.go
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/domain/product"
)

var (
	productsCategory string
	productsSearch   string
	productsFeatured bool
	productsPage     int
	productsPerPage  int
)

// productsCmd groups catalog browsing commands
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products with optional filters",
	RunE:  runProductsList,
}

var productsShowCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsShow,
}

var productsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	RunE:  runProductsCategories,
}

func init() {
	productsListCmd.Flags().StringVar(&productsCategory, "category", "", "Filter by category")
	productsListCmd.Flags().StringVar(&productsSearch, "search", "", "Search by name")
	productsListCmd.Flags().BoolVar(&productsFeatured, "featured", false, "Only featured products")
	productsListCmd.Flags().IntVar(&productsPage, "page", 1, "Page number")
	productsListCmd.Flags().IntVar(&productsPerPage, "per-page", 20, "Results per page")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsShowCmd)
	productsCmd.AddCommand(productsCategoriesCmd)
}

func runProductsList(cmd *cobra.Command, args []string) error {
	result, err := shop.client.ListProducts(cmd.Context(), product.ListQuery{
		Category: productsCategory,
		Search:   productsSearch,
		Featured: productsFeatured,
		Page:     productsPage,
		PerPage:  productsPerPage,
	})
	if err != nil {
		return err
	}

	for _, p := range result.Products {
		fmt.Printf("%4d  %-30s %-12s ₱%.2f\n", p.ID, p.Name, p.Category, p.Price)
	}
	fmt.Printf("\n%d products (page %d of %d)\n", result.Total, result.CurrentPage, result.Pages)
	return nil
}

func runProductsShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	p, err := shop.client.GetProduct(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (#%d)\n", p.Name, p.ID)
	fmt.Printf("Category: %s\n", p.Category)
	fmt.Printf("Price:    ₱%.2f\n", p.Price)
	fmt.Printf("Stock:    %d\n", p.Stock)
	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
	return nil
}

func runProductsCategories(cmd *cobra.Command, args []string) error {
	categories, err := shop.client.GetCategories(cmd.Context())
	if err != nil {
		return err
	}
	for _, c := range categories {
		fmt.Println(c.Name)
	}
	return nil
}

// parseID parses a numeric id argument
func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}
