// Package alphavantage provides a client for the Alpha Vantage stock market API.
package alphavantage

import (
	"os"
	"time"
)

// defaultBaseURL is used when no base URL is configured.
const defaultBaseURL = "https://www.alphavantage.co"

// Config holds configuration for the Alpha Vantage API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://www.alphavantage.co")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Alpha Vantage configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("ALPHA_VANTAGE_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("ALPHA_VANTAGE_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
