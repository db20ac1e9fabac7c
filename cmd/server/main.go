package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JustJay7/court-registry/internal/auth"
	"github.com/JustJay7/court-registry/internal/cache"
	"github.com/JustJay7/court-registry/internal/casenumber"
	"github.com/JustJay7/court-registry/internal/config"
	"github.com/JustJay7/court-registry/internal/database"
	"github.com/JustJay7/court-registry/internal/registry"
	"github.com/JustJay7/court-registry/internal/server"
	"github.com/JustJay7/court-registry/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "court-registry",
	Short: "Case and hearing registry for a district court",
	Long:  "court-registry serves the case register and hearing schedule over HTTP,\nminting case numbers and keeping both records in one database.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration and logger shared by every subcommand.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	// Serving always starts from a migrated schema.
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseTarget())
	if err != nil {
		log.Error("Failed to initialize database", "driver", cfg.DatabaseDriver, "error", err)
		return err
	}

	caseCache := cache.NewCache(cfg.CacheSize, cfg.CacheTTL)
	cases := registry.NewCaseStore(db, casenumber.NewGenerator(), caseCache, log)
	hearings := registry.NewHearingStore(db, cases, log)
	authService := auth.NewService(db, cfg.JWTSecret, cfg.TokenTTL, log)

	if !cfg.RequireAuth {
		log.Warn("Authentication disabled for case and hearing routes")
	}

	srv := server.New(cfg, db, cases, hearings, authService, caseCache, log)

	log.Info("Starting Court Registry",
		"host", cfg.Host,
		"port", cfg.Port,
		"court", cfg.CourtName,
		"driver", cfg.DatabaseDriver,
	)

	return srv.Run()
}
