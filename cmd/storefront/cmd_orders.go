// cmd/storefront/cmd_orders.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	ordersPage    int
	ordersPerPage int
	ordersPDF     string
)

// ordersCmd groups order history commands
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "View and manage your orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	RunE:  runOrdersList,
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersShow,
}

var ordersCancelCmd = &cobra.Command{
	Use:   "cancel <order-id>",
	Short: "Cancel a pending order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersCancel,
}

var ordersReceiptCmd = &cobra.Command{
	Use:   "receipt <order-id>",
	Short: "Save an order receipt as PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersReceipt,
}

func init() {
	ordersListCmd.Flags().IntVar(&ordersPage, "page", 1, "Page number")
	ordersListCmd.Flags().IntVar(&ordersPerPage, "per-page", 10, "Results per page")
	ordersReceiptCmd.Flags().StringVar(&ordersPDF, "out", "receipt.pdf", "Output path")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersShowCmd)
	ordersCmd.AddCommand(ordersCancelCmd)
	ordersCmd.AddCommand(ordersReceiptCmd)
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	result, err := shop.client.ListOrders(cmd.Context(), ordersPage, ordersPerPage)
	if err != nil {
		return err
	}

	for _, o := range result.Orders {
		fmt.Printf("%4d  %-22s %-12s ₱%.2f\n", o.ID, o.OrderNumber, o.Status, o.Total)
	}
	fmt.Printf("\n%d orders (page %d of %d)\n", result.Total, result.CurrentPage, result.Pages)
	return nil
}

func runOrdersShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	o, err := shop.client.GetOrder(cmd.Context(), id)
	if err != nil {
		return err
	}

	printReceipt(o)
	return nil
}

func runOrdersCancel(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	o, err := shop.client.CancelOrder(cmd.Context(), id)
	if err != nil {
		return err
	}

	if o != nil {
		fmt.Printf("Order %s cancelled\n", o.OrderNumber)
	} else {
		fmt.Println("Order cancelled")
	}
	return nil
}

func runOrdersReceipt(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	o, err := shop.client.GetOrder(cmd.Context(), id)
	if err != nil {
		return err
	}

	if err := saveReceiptPDF(o, ordersPDF); err != nil {
		return err
	}
	fmt.Printf("Receipt saved to %s\n", ordersPDF)
	return nil
}
