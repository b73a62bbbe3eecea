// cmd/storefront/cmd_admin.go
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/product"
)

var (
	adminProductName        string
	adminProductCategory    string
	adminProductPrice       float64
	adminProductStock       int
	adminProductImage       string
	adminProductDescription string
	adminProductFeatured    bool
)

// adminCmd groups the admin dashboard commands. The server rejects these
// for non-admin accounts.
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin dashboard operations",
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	RunE:  runAdminStats,
}

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List all orders",
	RunE:  runAdminOrders,
}

var adminSetStatusCmd = &cobra.Command{
	Use:   "set-status <order-id> <status>",
	Short: "Update an order's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdminSetStatus,
}

var adminDeleteOrderCmd = &cobra.Command{
	Use:   "delete-order <order-id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminDeleteOrder,
}

var adminAddProductCmd = &cobra.Command{
	Use:   "add-product",
	Short: "Create a catalog product",
	RunE:  runAdminAddProduct,
}

var adminUpdateProductCmd = &cobra.Command{
	Use:   "update-product <product-id>",
	Short: "Update a catalog product",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUpdateProduct,
}

var adminDeleteProductCmd = &cobra.Command{
	Use:   "delete-product <product-id>",
	Short: "Delete a catalog product",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminDeleteProduct,
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List user accounts",
	RunE:  runAdminUsers,
}

func init() {
	for _, c := range []*cobra.Command{adminAddProductCmd, adminUpdateProductCmd} {
		c.Flags().StringVar(&adminProductName, "name", "", "Product name")
		c.Flags().StringVar(&adminProductCategory, "category", "", "Category")
		c.Flags().Float64Var(&adminProductPrice, "price", 0, "Unit price")
		c.Flags().IntVar(&adminProductStock, "stock", 0, "Stock quantity")
		c.Flags().StringVar(&adminProductImage, "image", "", "Image URL")
		c.Flags().StringVar(&adminProductDescription, "description", "", "Description")
		c.Flags().BoolVar(&adminProductFeatured, "featured", false, "Featured flag")
	}
	adminAddProductCmd.MarkFlagRequired("name")
	adminAddProductCmd.MarkFlagRequired("price")

	adminCmd.AddCommand(adminStatsCmd)
	adminCmd.AddCommand(adminOrdersCmd)
	adminCmd.AddCommand(adminSetStatusCmd)
	adminCmd.AddCommand(adminDeleteOrderCmd)
	adminCmd.AddCommand(adminAddProductCmd)
	adminCmd.AddCommand(adminUpdateProductCmd)
	adminCmd.AddCommand(adminDeleteProductCmd)
	adminCmd.AddCommand(adminUsersCmd)
}

func runAdminStats(cmd *cobra.Command, args []string) error {
	stats, err := shop.client.AdminStats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Orders:         %d (%d pending)\n", stats.TotalOrders, stats.PendingOrders)
	fmt.Printf("Products:       %d\n", stats.TotalProducts)
	fmt.Printf("Total revenue:  ₱%.2f\n", stats.TotalRevenue)
	return nil
}

func runAdminOrders(cmd *cobra.Command, args []string) error {
	orders, err := shop.client.AdminListOrders(cmd.Context())
	if err != nil {
		return err
	}

	for _, o := range orders {
		fmt.Printf("%4d  %-22s %-12s ₱%.2f\n", o.ID, o.OrderNumber, o.Status, o.Total)
	}
	return nil
}

func runAdminSetStatus(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	o, err := shop.client.AdminUpdateOrderStatus(cmd.Context(), id, order.OrderStatus(args[1]))
	if err != nil {
		return err
	}

	if o != nil {
		fmt.Printf("Order %s is now %s\n", o.OrderNumber, o.Status)
	} else {
		fmt.Println("Status updated")
	}
	return nil
}

func runAdminDeleteOrder(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := shop.client.AdminDeleteOrder(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Println("Order deleted")
	return nil
}

func runAdminAddProduct(cmd *cobra.Command, args []string) error {
	p, err := shop.client.AdminCreateProduct(cmd.Context(), &product.Product{
		Name:        adminProductName,
		Category:    adminProductCategory,
		Price:       adminProductPrice,
		Stock:       adminProductStock,
		Image:       adminProductImage,
		Description: adminProductDescription,
		Featured:    adminProductFeatured,
	})
	if err != nil {
		return err
	}

	if p != nil {
		fmt.Printf("Created product #%d %s\n", p.ID, p.Name)
	} else {
		fmt.Println("Product created")
	}
	return nil
}

func runAdminUpdateProduct(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	// Only send the flags the caller actually set
	fields := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("name") {
		fields["name"] = adminProductName
	}
	if flags.Changed("category") {
		fields["category"] = adminProductCategory
	}
	if flags.Changed("price") {
		fields["price"] = adminProductPrice
	}
	if flags.Changed("stock") {
		fields["stock"] = adminProductStock
	}
	if flags.Changed("image") {
		fields["image"] = adminProductImage
	}
	if flags.Changed("description") {
		fields["description"] = adminProductDescription
	}
	if flags.Changed("featured") {
		fields["featured"] = adminProductFeatured
	}
	if len(fields) == 0 {
		return fmt.Errorf("nothing to update")
	}

	p, err := shop.client.AdminUpdateProduct(cmd.Context(), id, fields)
	if err != nil {
		return err
	}

	if p != nil {
		fmt.Printf("Updated product #%d\n", p.ID)
	} else {
		fmt.Println("Product updated")
	}
	return nil
}

func runAdminDeleteProduct(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := shop.client.AdminDeleteProduct(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Println("Product deleted")
	return nil
}

func runAdminUsers(cmd *cobra.Command, args []string) error {
	users, err := shop.client.AdminListUsers(cmd.Context())
	if err != nil {
		return err
	}

	for _, u := range users {
		admin := ""
		if u.IsAdmin {
			admin = " [admin]"
		}
		fmt.Printf("%4s  %-20s %s%s\n", strconv.Itoa(int(u.ID)), u.Username, u.Email, admin)
	}
	return nil
}
