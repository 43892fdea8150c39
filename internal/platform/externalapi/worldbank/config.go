// Package worldbank provides a client for the World Bank indicator API.
package worldbank

import (
	"os"
	"time"
)

// DefaultBaseURL is used when WORLD_BANK_BASE_URL is not set.
// The World Bank API is public and needs no credential.
const DefaultBaseURL = "https://api.worldbank.org/v2"

// Config holds configuration for the World Bank API client.
type Config struct {
	BaseURL   string        // Base URL for the API
	PerPage   int           // Records requested per call
	YearsBack int           // Width of the fixed query window in years
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads World Bank configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("WORLD_BANK_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		BaseURL:   baseURL,
		PerPage:   50,
		YearsBack: 4,
		Timeout:   10 * time.Second,
	}
}
