package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Acelogic/Maginator/internal/roundhill"
	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port        string
	AVKey       string
	HoldingsURL string
	FetchMethod roundhill.FetchMethod

	BrowserTimeout time.Duration
	HTTPTimeout    time.Duration
	HoldingsTTL    time.Duration
	QuotesTTL      time.Duration

	LogLevel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over file values.
func Load() (*Config, error) {
	// Missing .env is fine; deployments set the environment directly.
	_ = godotenv.Load()

	avKey := os.Getenv("AV_KEY")
	if avKey == "" {
		return nil, fmt.Errorf("AV_KEY environment variable is required")
	}

	method, err := roundhill.ParseFetchMethod(envOr("FETCH_METHOD", string(roundhill.FetchBrowserFirst)))
	if err != nil {
		return nil, fmt.Errorf("FETCH_METHOD: %w", err)
	}

	browserTimeout, err := durationOr("BROWSER_TIMEOUT", 45*time.Second)
	if err != nil {
		return nil, err
	}
	httpTimeout, err := durationOr("HTTP_TIMEOUT", 12*time.Second)
	if err != nil {
		return nil, err
	}
	holdingsTTL, err := durationOr("HOLDINGS_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	quotesTTL, err := durationOr("QUOTES_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:           envOr("PORT", "8080"),
		AVKey:          avKey,
		HoldingsURL:    envOr("HOLDINGS_URL", roundhill.DefaultURL),
		FetchMethod:    method,
		BrowserTimeout: browserTimeout,
		HTTPTimeout:    httpTimeout,
		HoldingsTTL:    holdingsTTL,
		QuotesTTL:      quotesTTL,
		LogLevel:       envOr("LOG_LEVEL", "info"),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, v)
	}
	return d, nil
}
