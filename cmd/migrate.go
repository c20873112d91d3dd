package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"mesa-billing/db/migrations"
	"mesa-billing/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		logger.Info("migrations applied successfully", slog.Int("version", migrations.Version))
		return nil
	},
}
