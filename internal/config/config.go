package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	AppPort string `envconfig:"APP_PORT" default:"8080"`
	AppEnv  string `envconfig:"APP_ENV" default:"development"`

	// Optional Redis-backed cart session; in-memory when unset
	RedisURL      string `envconfig:"REDIS_URL"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	CartSessionID string `envconfig:"CART_SESSION_ID" default:"storefront"`

	// Optional Postgres transaction archive; disabled when unset
	DBURL string `envconfig:"DB_URL"`

	// Simulated network behaviour
	SimMinDelayMs          int     `envconfig:"SIM_MIN_DELAY_MS" default:"300"`
	SimMaxDelayMs          int     `envconfig:"SIM_MAX_DELAY_MS" default:"700"`
	SimCheckoutFailureRate float64 `envconfig:"SIM_CHECKOUT_FAILURE_RATE" default:"0.1"`
}

var instance *Config

// Load initializes and returns the singleton Config instance
func Load() (*Config, error) {
	if instance != nil {
		return instance, nil
	}

	// Load .env file if it exists (for local development)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment variables: %w", err)
	}

	// Fall back to the platform-standard DATABASE_URL if DB_URL is not set
	if cfg.DBURL == "" {
		if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
			cfg.DBURL = databaseURL
		}
	}

	instance = cfg
	return instance, nil
}

// Get returns the singleton Config instance (must call Load first)
func Get() *Config {
	if instance == nil {
		panic("config not loaded: call config.Load() first")
	}
	return instance
}
