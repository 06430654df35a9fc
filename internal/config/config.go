package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the extraction tools read at startup. The GBD
// service location is always explicit; nothing is inferred from the host
// platform.
type Config struct {
	GBDAPIBaseURL string
	DBPath        string
	OutputDir     string
	Port          string
}

// Load reads configuration from a .env file (when present) and the
// environment. GBD_API_BASE_URL is required; everything else has defaults.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment still applies.
	godotenv.Load()

	baseURL := os.Getenv("GBD_API_BASE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("GBD_API_BASE_URL is required")
	}

	return &Config{
		GBDAPIBaseURL: baseURL,
		DBPath:        getEnvOrDefault("EXTRACT_DB_PATH", "extractions.db"),
		OutputDir:     getEnvOrDefault("EXTRACT_OUTPUT_DIR", "outputs"),
		Port:          getEnvOrDefault("PORT", "8080"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
