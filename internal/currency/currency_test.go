package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T) *RateTable {
	t.Helper()
	table, err := NewRateTable(DefaultUSDToAED)
	require.NoError(t, err)
	return table
}

func TestNewRateTableRejectsNonPositive(t *testing.T) {
	_, err := NewRateTable(decimal.Zero)
	assert.Error(t, err)
	_, err = NewRateTable(decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	table := newTable(t)

	aed, err := table.Convert(decimal.NewFromInt(100), "USD", "AED")
	require.NoError(t, err)
	assert.Equal(t, "367.25", aed.StringFixed(2))

	usd, err := table.Convert(decimal.RequireFromString("367.25"), "aed", "usd")
	require.NoError(t, err)
	assert.Equal(t, "100.00", usd.Round(2).StringFixed(2))

	same, err := table.Convert(decimal.RequireFromString("12.345"), "USD", "USD")
	require.NoError(t, err)
	assert.Equal(t, "12.345", same.String())

	_, err = table.Convert(decimal.NewFromInt(1), "USD", "EUR")
	assert.Error(t, err)

	_, err = table.Convert(decimal.NewFromInt(1), "USD", "DOLLARS")
	assert.Error(t, err)
}

func TestRatesAndSupported(t *testing.T) {
	table := newTable(t)
	assert.Equal(t, []string{"AED", "USD"}, table.Supported())

	rates, err := table.Rates("usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", rates.Base)
	assert.True(t, DefaultUSDToAED.Equal(rates.Rates["AED"]))

	_, err = table.Rates("EUR")
	assert.Error(t, err)

	assert.True(t, table.IsSupported("aed"))
	assert.False(t, table.IsSupported("EUR"))
	assert.False(t, table.IsSupported("dollars"))
}

func TestFormat(t *testing.T) {
	f := NewFormatter(newTable(t))

	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{"usd grand total", "32700", "USD", "$32,700.00"},
		{"usd small", "0.5", "USD", "$0.50"},
		{"usd half up", "2.675", "USD", "$2.68"},
		{"usd millions", "1234567.891", "USD", "$1,234,567.89"},
		{"usd negative", "-1500.5", "USD", "-$1,500.50"},
		{"usd negative rounds to zero", "-0.001", "USD", "$0.00"},
		{"aed converted", "100", "AED", "AED 367.25"},
		{"aed grand total", "32700", "AED", "AED 120,090.75"},
		{"lower case code", "10", "usd", "$10.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(decimal.RequireFromString(tt.amount), tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatErrors(t *testing.T) {
	f := NewFormatter(newTable(t))

	_, err := f.Format(decimal.NewFromInt(1), "EUR")
	assert.Error(t, err, "no rate for EUR")

	_, err = f.Format(decimal.NewFromInt(1), "??")
	assert.Error(t, err)

	assert.Equal(t, "$1.00", f.FormatOrBase(decimal.NewFromInt(1), "EUR"))
}

func TestGroupThousands(t *testing.T) {
	cases := map[string]string{
		"0":          "0",
		"999":        "999",
		"1000":       "1,000",
		"12345":      "12,345",
		"123456":     "123,456",
		"1234567":    "1,234,567",
		"1234567890": "1,234,567,890",
	}
	for in, want := range cases {
		assert.Equal(t, want, groupThousands(in), in)
	}
}
