package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/commishhq/commission-tracker-backend/internal/dateutil"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Import   ImportConfig
	APIKey   string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ImportConfig holds CSV import configuration.
// FinancialYearRegion picks the financial-year convention applied to
// imported rows. Historically this was always the Australian July-June
// convention regardless of the operator's region, so that stays the
// default; it is surfaced here instead of being hardcoded.
type ImportConfig struct {
	FinancialYearRegion dateutil.Region
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/commission_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Import: ImportConfig{
			FinancialYearRegion: dateutil.Region(getEnv("IMPORT_FY_REGION", string(dateutil.Australia))),
		},
		APIKey: os.Getenv("INTERNAL_API_KEY"),
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
