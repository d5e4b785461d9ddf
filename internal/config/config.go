package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Config holds the runtime configuration for the broker service
type Config struct {
	Port         string
	DatabasePath string // empty selects the in-memory repository
	StripeAPIKey string
	Currency     string
	ServiceFee   decimal.Decimal
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	fee, err := getEnvDecimal("SERVICE_FEE", decimal.RequireFromString("215.00"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:         getEnvString("PORT", "8080"),
		DatabasePath: getEnvString("DATABASE_PATH", ""),
		StripeAPIKey: getEnvString("STRIPE_API_KEY", ""),
		Currency:     getEnvString("CURRENCY", "usd"),
		ServiceFee:   fee,
	}

	if cfg.StripeAPIKey == "" {
		return nil, fmt.Errorf("STRIPE_API_KEY is required")
	}
	if !cfg.ServiceFee.IsPositive() {
		return nil, fmt.Errorf("SERVICE_FEE must be positive, got %s", cfg.ServiceFee)
	}
	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal value for %s: %w", key, err)
	}
	return d, nil
}
