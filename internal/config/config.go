package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/erp-pricing-service/internal/currency"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	GinMode         string
	AllowedOrigins  []string

	// Logging configuration
	LogFormat string
	LogLevel  string
	LogBodies bool

	// Pricing configuration
	DisplayCurrency  string
	USDToAEDRate     decimal.Decimal
	DefaultTaxRate   decimal.Decimal
	MaxExportWorkers int

	// Catalog fixtures
	FixtureSeed     uint64
	FixtureProducts int

	// Issuer printed on exported documents
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
}

// LoadConfig loads the application configuration from .env and environment variables
func LoadConfig() (*Config, error) {
	execPath, err := os.Executable()
	if err != nil {
		slog.Warn("could not determine executable path", "error", err)
	}

	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(execPath)))
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		if err := godotenv.Load(); err != nil {
			slog.Info("no .env file found, using environment variables")
		} else {
			slog.Info("loaded environment variables from current directory .env file")
		}
	} else {
		slog.Info("loaded environment variables", "path", envPath)
	}

	return fromEnv(), nil
}

func fromEnv() *Config {
	config := &Config{
		Port:            getEnvInt("PORT", 8080),
		ReadTimeout:     time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout:    time.Duration(getEnvInt("WRITE_TIMEOUT", 30)) * time.Second,
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 10)) * time.Second,
		GinMode:         getEnvString("GIN_MODE", "release"),
		AllowedOrigins:  getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		LogFormat: getEnvString("LOG_FORMAT", "json"),
		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogBodies: getEnvBool("LOG_BODIES", true),

		DisplayCurrency:  getEnvString("DISPLAY_CURRENCY", currency.USD),
		USDToAEDRate:     getEnvDecimal("USD_TO_AED_RATE", currency.DefaultUSDToAED),
		DefaultTaxRate:   getEnvDecimal("DEFAULT_TAX_RATE", decimal.RequireFromString("0.05")),
		MaxExportWorkers: getEnvInt("MAX_EXPORT_WORKERS", 4),

		FixtureSeed:     uint64(getEnvInt("FIXTURE_SEED", 42)),
		FixtureProducts: getEnvInt("FIXTURE_PRODUCTS", 0),

		CompanyName:    getEnvString("COMPANY_NAME", "ERP Back Office"),
		CompanyAddress: getEnvString("COMPANY_ADDRESS", ""),
		CompanyEmail:   getEnvString("COMPANY_EMAIL", ""),
	}

	validateConfig(config)
	return config
}

// validateConfig logs a warning for every invalid value and falls back to its default
func validateConfig(config *Config) {
	if config.Port < 1 || config.Port > 65535 {
		slog.Warn("invalid PORT, using default", "value", config.Port, "default", 8080)
		config.Port = 8080
	}

	switch config.GinMode {
	case "debug", "release", "test":
	default:
		slog.Warn("invalid GIN_MODE, using default", "value", config.GinMode, "default", "release")
		config.GinMode = "release"
	}

	if config.LogFormat != "json" && config.LogFormat != "pretty" {
		slog.Warn("invalid LOG_FORMAT, using default", "value", config.LogFormat, "default", "json")
		config.LogFormat = "json"
	}

	code, err := currency.NormalizeCode(config.DisplayCurrency)
	if err != nil || !isSupportedCurrency(code) {
		slog.Warn("unsupported DISPLAY_CURRENCY, using default", "value", config.DisplayCurrency, "default", currency.USD)
		code = currency.USD
	}
	config.DisplayCurrency = code

	if !config.USDToAEDRate.IsPositive() {
		slog.Warn("invalid USD_TO_AED_RATE, using default", "value", config.USDToAEDRate.String(), "default", currency.DefaultUSDToAED.String())
		config.USDToAEDRate = currency.DefaultUSDToAED
	}

	if config.DefaultTaxRate.IsNegative() || config.DefaultTaxRate.GreaterThan(decimal.NewFromInt(1)) {
		slog.Warn("DEFAULT_TAX_RATE must be between 0 and 1, using 0", "value", config.DefaultTaxRate.String())
		config.DefaultTaxRate = decimal.Zero
	}

	if config.MaxExportWorkers < 1 {
		slog.Warn("invalid MAX_EXPORT_WORKERS, using 1", "value", config.MaxExportWorkers)
		config.MaxExportWorkers = 1
	}

	if config.FixtureProducts < 0 {
		config.FixtureProducts = 0
	}
}

func isSupportedCurrency(code string) bool {
	return code == currency.USD || code == currency.AED
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer value, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}

	return value
}

// getEnvDecimal gets a decimal from an environment variable with a default value
func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := decimal.NewFromString(strings.TrimSpace(valueStr))
	if err != nil {
		slog.Warn("invalid decimal value, using default", "key", key, "value", valueStr, "default", defaultValue.String())
		return defaultValue
	}

	return value
}

// getEnvBool gets a boolean from an environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	valueStr = strings.ToLower(valueStr)
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvStringSlice gets a string slice from a comma-separated environment variable
func getEnvStringSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
