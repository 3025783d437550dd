package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	App     AppConfig
	Finance FinanceConfig
	Notify  NotifyConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Environment string
	Port        string
	LogLevel    string
}

// FinanceConfig holds the simulated finance module configuration
type FinanceConfig struct {
	Budget decimal.Decimal
}

// NotifyConfig holds the notification timing configuration
type NotifyConfig struct {
	DismissAfter time.Duration
	ExitAfter    time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist in production
		fmt.Println("No .env file found")
	}

	budget, err := decimal.NewFromString(getEnv("FINANCE_BUDGET", "500000"))
	if err != nil {
		return nil, fmt.Errorf("invalid FINANCE_BUDGET: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Finance: FinanceConfig{
			Budget: budget,
		},
		Notify: NotifyConfig{
			DismissAfter: getEnvMillis("NOTIFY_DISMISS_MS", 3000),
			ExitAfter:    getEnvMillis("NOTIFY_EXIT_MS", 300),
		},
	}

	return config, nil
}

// IsDevelopment reports whether the app runs in development mode
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvMillis gets a millisecond duration from an environment variable
func getEnvMillis(key string, fallback int) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return time.Duration(fallback) * time.Millisecond
	}
	ms, err := strconv.Atoi(value)
	if err != nil || ms < 0 {
		return time.Duration(fallback) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
