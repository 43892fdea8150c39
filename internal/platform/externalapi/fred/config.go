// Package fred provides a client for the FRED economic data API.
package fred

import (
	"os"
	"time"
)

// DefaultBaseURL is used when FRED_BASE_URL is not set.
const DefaultBaseURL = "https://api.stlouisfed.org/fred"

// Config holds configuration for the FRED API client.
type Config struct {
	FredAPIKey string        // API key for authentication; empty is a normal, handled condition
	BaseURL    string        // Base URL for the API
	Timeout    time.Duration // HTTP request timeout
}

// LoadConfig loads FRED configuration from environment variables.
// A missing API key is not an error here: the client degrades to
// "no data" instead of failing at startup.
func LoadConfig() Config {
	baseURL := os.Getenv("FRED_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		FredAPIKey: os.Getenv("FRED_API_KEY"),
		BaseURL:    baseURL,
		Timeout:    10 * time.Second,
	}
}
