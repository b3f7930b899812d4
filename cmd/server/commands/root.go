package commands

import (
	"fmt"
	"os"

	"space-missions-api/internal/config"
	"space-missions-api/internal/database"
	"space-missions-api/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// rootCmd serves the API when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "missions-api",
	Short: "Space missions API",
	Long: `HTTP API for scientists, planets and the missions that link them.

Configuration comes from environment variables (optionally a .env file) and
config.yaml. Without a subcommand the server is started.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads .env and configuration, then configures logging
func bootstrap() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Setup(cfg.LogLevel)
	return cfg, nil
}

// openDatabase connects to the configured store; migrations run unless skipMigrate
func openDatabase(cfg *config.Config, skipMigrate bool) (*gorm.DB, error) {
	db, err := database.Initialize(cfg.DatabaseURI, &database.Options{
		LogLevel:    database.ParseLogLevel(cfg.DatabaseLogLevel),
		SkipMigrate: skipMigrate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}
}
