// cmd/storefront/cmd_checkout.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/pkg/receipt"
)

var (
	checkoutStreet  string
	checkoutCity    string
	checkoutState   string
	checkoutZip     string
	checkoutCountry string
	checkoutPDF     string
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order for the current cart",
	RunE:  runCheckout,
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutStreet, "street", "", "Street address")
	checkoutCmd.Flags().StringVar(&checkoutCity, "city", "", "City")
	checkoutCmd.Flags().StringVar(&checkoutState, "state", "", "Province/state")
	checkoutCmd.Flags().StringVar(&checkoutZip, "zip", "", "Zip code")
	checkoutCmd.Flags().StringVar(&checkoutCountry, "country", "Philippines", "Country")
	checkoutCmd.Flags().StringVar(&checkoutPDF, "receipt-pdf", "", "Save the receipt as a PDF at this path")
}

func runCheckout(cmd *cobra.Command, args []string) error {
	rcpt, err := shop.submitter.Submit(cmd.Context(), order.ShippingAddress{
		Street:  checkoutStreet,
		City:    checkoutCity,
		State:   checkoutState,
		ZipCode: checkoutZip,
		Country: checkoutCountry,
	})
	if err != nil {
		return err
	}

	printReceipt(rcpt)

	if checkoutPDF != "" {
		if err := saveReceiptPDF(rcpt, checkoutPDF); err != nil {
			return err
		}
		fmt.Printf("\nReceipt saved to %s\n", checkoutPDF)
	}
	return nil
}

func printReceipt(rcpt *order.Receipt) {
	fmt.Printf("Order %s placed (%s)\n\n", rcpt.OrderNumber, rcpt.Status)
	for _, item := range rcpt.Items {
		fmt.Printf("  %-30s %3d  ₱%.2f\n", item.ProductName, item.Quantity, item.Subtotal)
	}
	fmt.Printf("\nSubtotal: ₱%.2f\n", rcpt.Subtotal)
	fmt.Printf("Shipping: ₱%.2f\n", rcpt.ShippingCost)
	fmt.Printf("Total:    ₱%.2f\n", rcpt.Total)
}

func saveReceiptPDF(rcpt *order.Receipt, path string) error {
	svc := receipt.NewService(shop.cfg)
	buf, err := svc.GeneratePDF(rcpt)
	if err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
