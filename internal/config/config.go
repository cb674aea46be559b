package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Metrics  MetricsConfig
	Session  SessionConfig
	Checkout CheckoutConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type MetricsConfig struct {
	Enabled bool
	Token   string
}

type SessionConfig struct {
	// Secret verifies the signed session cookie minted by the fronting
	// session layer. Empty means header-only session identity.
	Secret string
}

type CheckoutConfig struct {
	RateLimit  int
	RateWindow time.Duration
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() *Config {
	_ = godotenv.Load()

	metricsEnabled, _ := strconv.ParseBool(getEnv("METRICS_ENABLED", "false"))
	rateLimit, _ := strconv.Atoi(getEnv("CHECKOUT_RATE_LIMIT", "10"))
	rateWindow, _ := strconv.Atoi(getEnv("CHECKOUT_RATE_WINDOW_SECONDS", "60"))

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Metrics: MetricsConfig{
			Enabled: metricsEnabled,
			Token:   os.Getenv("METRICS_TOKEN"),
		},
		Session: SessionConfig{
			Secret: os.Getenv("SESSION_SECRET"),
		},
		Checkout: CheckoutConfig{
			RateLimit:  rateLimit,
			RateWindow: time.Duration(rateWindow) * time.Second,
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
