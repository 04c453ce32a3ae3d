package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ridwanfathin/erp-pricing-service/internal/currency"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "READ_TIMEOUT", "LOG_FORMAT", "DISPLAY_CURRENCY", "USD_TO_AED_RATE",
		"DEFAULT_TAX_RATE", "MAX_EXPORT_WORKERS", "CORS_ALLOWED_ORIGINS", "LOG_BODIES", "GIN_MODE",
	} {
		t.Setenv(key, "")
	}

	cfg := fromEnv()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, currency.USD, cfg.DisplayCurrency)
	assert.True(t, currency.DefaultUSDToAED.Equal(cfg.USDToAEDRate))
	assert.True(t, decimal.RequireFromString("0.05").Equal(cfg.DefaultTaxRate))
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.True(t, cfg.LogBodies)
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "pretty")
	t.Setenv("DISPLAY_CURRENCY", "aed")
	t.Setenv("DEFAULT_TAX_RATE", "0.09")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test,")
	t.Setenv("LOG_BODIES", "no")
	t.Setenv("FIXTURE_SEED", "7")

	cfg := fromEnv()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, currency.AED, cfg.DisplayCurrency)
	assert.True(t, decimal.RequireFromString("0.09").Equal(cfg.DefaultTaxRate))
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
	assert.False(t, cfg.LogBodies)
	assert.Equal(t, uint64(7), cfg.FixtureSeed)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "99999")
	t.Setenv("READ_TIMEOUT", "soon")
	t.Setenv("LOG_FORMAT", "xml")
	t.Setenv("DISPLAY_CURRENCY", "EUR")
	t.Setenv("USD_TO_AED_RATE", "-1")
	t.Setenv("DEFAULT_TAX_RATE", "1.5")
	t.Setenv("MAX_EXPORT_WORKERS", "0")
	t.Setenv("GIN_MODE", "verbose")

	cfg := fromEnv()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, currency.USD, cfg.DisplayCurrency)
	assert.True(t, currency.DefaultUSDToAED.Equal(cfg.USDToAEDRate))
	assert.True(t, cfg.DefaultTaxRate.IsZero())
	assert.Equal(t, 1, cfg.MaxExportWorkers)
	assert.Equal(t, "release", cfg.GinMode)
}
