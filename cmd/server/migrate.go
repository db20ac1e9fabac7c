package main

import (
	"github.com/spf13/cobra"

	"github.com/JustJay7/court-registry/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseTarget())
		if err != nil {
			log.Error("Failed to open database", "driver", cfg.DatabaseDriver, "error", err)
			return err
		}

		if err := database.Migrate(db); err != nil {
			log.Error("Failed to run migrations", "error", err)
			return err
		}

		log.Info("Database migrations completed successfully")
		return nil
	},
}
