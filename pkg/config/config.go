package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	ImportRateLimit int64  // Import requests per minute per client IP
	CORSOrigin      string // Allowed origin of the web client
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("IMPORT_RATE_LIMIT", 30)
	viper.SetDefault("CORS_ORIGIN", "http://localhost:3000")

	// Environment variables override defaults (and .env values override the
	// defaults via godotenv above).
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.ImportRateLimit = viper.GetInt64("IMPORT_RATE_LIMIT")
	if cfg.ImportRateLimit <= 0 {
		cfg.ImportRateLimit = 30
		log.Printf("Warning: Invalid IMPORT_RATE_LIMIT. Defaulting to %d requests/minute.\n", cfg.ImportRateLimit)
	}

	cfg.CORSOrigin = viper.GetString("CORS_ORIGIN")

	return cfg, nil
}
