// Package config provides configuration management for the practice
// tool. Runtime settings come from environment variables and .env
// files; the firm profile printed on documents comes from a yaml file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the runtime configuration.
type Config struct {
	// StateFile is the path of the practice state record.
	StateFile string
	// FirmFile is the path of the firm profile yaml.
	FirmFile string
	// SheetURL is the spreadsheet mirror endpoint; empty disables the mirror.
	SheetURL string
	// GeminiAPIKey authorizes the assistant; empty disables it.
	GeminiAPIKey string
}

// Load loads configuration from environment variables. It
// automatically loads a .env file from the current directory if
// available. You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	return &Config{
		StateFile:    getEnvOrDefault("HM_STATE_FILE", "hm.json"),
		FirmFile:     getEnvOrDefault("HM_FIRM_FILE", "firm.yaml"),
		SheetURL:     os.Getenv("HM_SHEET_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}, nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
