package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

var (
	adminToken string

	settingsStoreName   string
	settingsDescription string
	settingsWhatsApp    string
	settingsCurrency    string
	settingsSymbol      string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Shop administration, requires an admin session token",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		return requireAdmin(cmd)
	},
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show product and category counts",
	Args:  cobra.NoArgs,
	RunE:  showStats,
}

var adminUploadCmd = &cobra.Command{
	Use:   "upload-image [file]",
	Short: "Upload a product image and print its public URL",
	Args:  cobra.ExactArgs(1),
	RunE:  uploadImage,
}

var adminSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change site settings",
	Args:  cobra.NoArgs,
	RunE:  showSettings,
}

var adminSettingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change site settings, unset flags keep their value",
	Long: `Changes site settings. Only the flags given are changed.

Example:
  storefront admin settings set --whatsapp "+1 (555) 123-4567" --currency EUR --symbol €`,
	Args: cobra.NoArgs,
	RunE: setSettings,
}

func init() {
	adminCmd.PersistentFlags().StringVar(&adminToken, "token", "", "Admin session token (JWT)")

	f := adminSettingsSetCmd.Flags()
	f.StringVar(&settingsStoreName, "store-name", "", "Store name")
	f.StringVar(&settingsDescription, "description", "", "Store description")
	f.StringVar(&settingsWhatsApp, "whatsapp", "", "WhatsApp number orders are sent to")
	f.StringVar(&settingsCurrency, "currency", "", "ISO 4217 currency code")
	f.StringVar(&settingsSymbol, "symbol", "", "Currency symbol shown before prices")

	adminSettingsCmd.AddCommand(adminSettingsSetCmd)
	adminCmd.AddCommand(adminStatsCmd, adminUploadCmd, adminSettingsCmd)
}

func requireAdmin(cmd *cobra.Command) error {
	v, err := verifier(cmd.Context())
	if err != nil {
		return err
	}

	user, err := v.RequireAdmin(cmd.Context(), adminToken)
	if err != nil {
		return fmt.Errorf("v.RequireAdmin: %w", err)
	}

	logger.Debug("admin authenticated", zap.Stringer("user_id", user.ID))
	return nil
}

func showStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, err := catalogRepository(ctx)
	if err != nil {
		return err
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		return fmt.Errorf("repo.Stats: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Products: %d\nCategories: %d\n", stats.Products, stats.Categories)
	return nil
}

func uploadImage(cmd *cobra.Command, args []string) error {
	u, err := imageUploader()
	if err != nil {
		return err
	}

	url, err := u.Upload(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("u.Upload: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

func showSettings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, err := catalogRepository(ctx)
	if err != nil {
		return err
	}

	settings, err := repo.GetSiteSettings(ctx)
	if err != nil {
		return fmt.Errorf("repo.GetSiteSettings: %w", err)
	}

	printSettings(cmd, settings)
	return nil
}

type settingsInput struct {
	StoreName      string `validate:"required,max=100"`
	WhatsAppNumber string `validate:"omitempty,max=32"`
	Currency       string `validate:"required,len=3,alpha"`
	CurrencySymbol string `validate:"required,max=5"`
}

func setSettings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, err := catalogRepository(ctx)
	if err != nil {
		return err
	}

	settings, err := repo.GetSiteSettings(ctx)
	if err != nil {
		return fmt.Errorf("repo.GetSiteSettings: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("store-name") {
		settings.StoreName = strings.TrimSpace(settingsStoreName)
	}
	if flags.Changed("description") {
		description := strings.TrimSpace(settingsDescription)
		settings.StoreDescription = &description
		if description == "" {
			settings.StoreDescription = nil
		}
	}
	if flags.Changed("whatsapp") {
		settings.WhatsAppNumber = strings.TrimSpace(settingsWhatsApp)
	}
	if flags.Changed("symbol") {
		settings.CurrencySymbol = strings.TrimSpace(settingsSymbol)
	}

	code := settings.Currency.String()
	if flags.Changed("currency") {
		code = strings.ToUpper(strings.TrimSpace(settingsCurrency))
	}

	input := settingsInput{
		StoreName:      settings.StoreName,
		WhatsAppNumber: settings.WhatsAppNumber,
		Currency:       code,
		CurrencySymbol: settings.CurrencySymbol,
	}
	if err := validator.New().Struct(input); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	settings.Currency, err = currency.ParseISO(code)
	if err != nil {
		return fmt.Errorf("currency.ParseISO: %w", err)
	}

	if err := repo.UpdateSiteSettings(ctx, settings); err != nil {
		return fmt.Errorf("repo.UpdateSiteSettings: %w", err)
	}

	printSettings(cmd, settings)
	return nil
}

func printSettings(cmd *cobra.Command, s domain.SiteSettings) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Store: %s\n", s.StoreName)
	if s.StoreDescription != nil {
		fmt.Fprintf(out, "Description: %s\n", *s.StoreDescription)
	}
	whatsApp := s.WhatsAppNumber
	if whatsApp == "" {
		whatsApp = "(not set)"
	}
	fmt.Fprintf(out, "WhatsApp: %s\n", whatsApp)
	fmt.Fprintf(out, "Currency: %s (%s)\n", s.Currency, s.Symbol())
}
