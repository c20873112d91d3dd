package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mesa-billing/internal/config"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

// rootCmd loads configuration and the logger before any subcommand runs.
var rootCmd = &cobra.Command{
	Use:   "mesa-billing",
	Short: "Billing engine and ad performance API for Mesa advertisers",
	Long: `mesa-billing serves the billing and analytics API of the Mesa ad
campaign manager and provides operator commands for the schema, demo data,
access tokens and invoicing eligibility.

Configuration is read from the environment (see .env.example); a .env file
in the working directory is loaded first when present.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger = cfg.Log.New(os.Stdout)
		return nil
	},
}

func init() {
	billingCmd.AddCommand(grantInvoicingCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(billingCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
