// cmd/storefront/cmd_status.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend, storage and session status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fmt.Printf("Backend:  %s\n", shop.cfg.API.BaseURL)

	fmt.Printf("Storage:  %s", shop.cfg.Storage.Provider)
	if err := shop.storage.Health(ctx); err != nil {
		fmt.Printf(" (unhealthy: %v)\n", err)
	} else {
		fmt.Println(" (ok)")
	}

	if shop.session.IsAuthenticated(ctx) {
		if user := shop.session.User(ctx); user != nil {
			fmt.Printf("Session:  logged in as %s\n", user.Email)
		} else {
			fmt.Println("Session:  logged in")
		}
	} else {
		fmt.Println("Session:  not logged in")
	}

	totals := shop.cart.Totals()
	fmt.Printf("Cart:     %d items, ₱%.2f\n", shop.cart.ItemCount(), totals.Total)
	return nil
}
