// cmd/storefront/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/checkout"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
	"github.com/your-org/storefront-client/internal/infrastructure/storage"
	"github.com/your-org/storefront-client/internal/pkg/logger"
	"github.com/your-org/storefront-client/internal/pkg/session"
)

// app holds the wired application components shared by all commands
type app struct {
	cfg       *config.Config
	logger    *logrus.Logger
	storage   storage.Store
	session   *session.Session
	client    *api.Client
	cart      *cart.Store
	submitter *checkout.Submitter
}

var shop = &app{}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront client for the e-commerce backend",
	Long: `Command-line storefront: browse products, manage a locally persisted
shopping cart and place orders against the REST backend.

The cart and session survive between invocations in the configured
storage (a local state file by default, Redis optionally).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return shop.init(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if shop.storage != nil {
			shop.storage.Close()
		}
	},
}

// init wires configuration, storage and clients for a command run
func (a *app) init(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg
	a.logger = logger.New(cfg)

	st, err := storage.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	a.storage = st

	a.session = session.New(st)
	a.client = api.NewClient(cfg, a.session, a.logger)
	a.cart = cart.NewStore(ctx, st, a.logger)
	a.submitter = checkout.NewSubmitter(a.cart, a.session, a.client, a.logger)

	return nil
}

func main() {
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(changePasswordCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
