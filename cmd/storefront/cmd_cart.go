// cmd/storefront/cmd_cart.go
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// cartCmd groups shopping cart commands
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cart contents and totals",
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set a cart line's quantity (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCartSet,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE:  runCartClear,
}

func init() {
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartSetCmd)
	cartCmd.AddCommand(cartClearCmd)
}

func runCartShow(cmd *cobra.Command, args []string) error {
	lines := shop.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty")
		return nil
	}

	for _, line := range lines {
		fmt.Printf("%4d  %-30s %3d × ₱%.2f = ₱%.2f\n",
			line.ProductID, line.Name, line.Quantity, line.UnitPrice,
			line.UnitPrice*float64(line.Quantity))
	}

	totals := shop.cart.Totals()
	fmt.Printf("\nSubtotal: ₱%.2f\n", totals.Subtotal)
	fmt.Printf("Shipping: ₱%.2f\n", totals.Shipping)
	fmt.Printf("Total:    ₱%.2f\n", totals.Total)
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	p, err := shop.client.GetProduct(cmd.Context(), id)
	if err != nil {
		return err
	}

	if err := shop.cart.AddItem(cmd.Context(), *p); err != nil {
		return err
	}

	fmt.Printf("Added %s to cart (%d items)\n", p.Name, shop.cart.ItemCount())
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := shop.cart.RemoveItem(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Println("Removed")
	return nil
}

func runCartSet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}

	if err := shop.cart.SetQuantity(cmd.Context(), id, quantity); err != nil {
		return err
	}
	fmt.Println("Updated")
	return nil
}

func runCartClear(cmd *cobra.Command, args []string) error {
	if err := shop.cart.Clear(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("Cart cleared")
	return nil
}
