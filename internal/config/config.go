package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURI      string `mapstructure:"DB_URI"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseLogLevel string `mapstructure:"DB_LOG_LEVEL"`
	AutoMigrate      bool   `mapstructure:"DB_AUTO_MIGRATE"`

	// Seed data directory used by the seed command
	SeedDir string `mapstructure:"SEED_DIR"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// DATABASE_URL wins over the default DB_URI but not over an explicit one
	if config.DatabaseURL != "" && config.DatabaseURI == DefaultDatabaseURI {
		config.DatabaseURI = config.DatabaseURL
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// DefaultDatabaseURI is the file-backed SQLite store used when nothing else is configured
const DefaultDatabaseURI = "sqlite://app.db"

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "5555")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DB_URI", DefaultDatabaseURI)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_LOG_LEVEL", "error")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("SEED_DIR", "scripts/data")
	v.SetDefault("METRICS_ENABLED", true)
}

func validate(config *Config) error {
	if strings.TrimSpace(config.DatabaseURI) == "" {
		return fmt.Errorf("database URI is required")
	}
	if config.Port == "" {
		return fmt.Errorf("port is required")
	}
	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
