package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the demo application configuration.
type Config struct {
	Gateway GatewayConfig
	Logger  LoggerConfig
	Metrics MetricsConfig
}

// GatewayConfig holds the remote gateway credentials and endpoint.
type GatewayConfig struct {
	MerchantID string
	Account    string
	Secret     string        // Shared secret used to sign requests
	Endpoint   string        // Empty means the production endpoint
	Timeout    time.Duration // Zero means the 65s default
	AllowHTTP  bool          // Only for local test doubles
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// MetricsConfig holds the Prometheus endpoint configuration.
type MetricsConfig struct {
	Port int
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Gateway: GatewayConfig{
			MerchantID: getEnv("GATEWAY_MERCHANT_ID", ""),
			Account:    getEnv("GATEWAY_ACCOUNT", ""),
			Secret:     getEnv("GATEWAY_SECRET", ""),
			Endpoint:   getEnv("GATEWAY_ENDPOINT", ""),
			Timeout:    time.Duration(getEnvAsInt("GATEWAY_TIMEOUT_MS", 0)) * time.Millisecond,
			AllowHTTP:  getEnvAsBool("GATEWAY_ALLOW_HTTP", false),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
		Metrics: MetricsConfig{
			Port: getEnvAsInt("METRICS_PORT", 9090),
		},
	}

	if cfg.Gateway.MerchantID == "" {
		return nil, fmt.Errorf("GATEWAY_MERCHANT_ID is required")
	}
	if cfg.Gateway.Secret == "" {
		return nil, fmt.Errorf("GATEWAY_SECRET is required")
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
