// Command storefront browses the catalog, keeps a local shopping cart and
// sends orders to the shop's WhatsApp number.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/nikolayk812/storefront-cart/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront catalog, cart and WhatsApp checkout",
	Long: `storefront lists the shop's products, keeps a shopping cart between
runs and hands orders off to WhatsApp.

The cart is stored locally in SQLite by default. Set store.backend to redis
or postgres to share it between devices.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if cfg == nil {
			if cfg, err = loadConfig(); err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeDeps()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (YAML), defaults to $CONFIG_PATH")

	rootCmd.AddCommand(productsCmd, productCmd, categoriesCmd)
	rootCmd.AddCommand(cartCmd, checkoutCmd, inquireCmd)
	rootCmd.AddCommand(adminCmd)
}

func loadConfig() (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return c, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		closeDeps()
		os.Exit(1)
	}
}
