// Package currency converts canonical USD amounts into display currencies.
// Conversion only ever happens at display time; stored totals stay in USD.
package currency

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	USD = "USD"
	AED = "AED"

	// BaseCurrency is the currency every stored amount is expressed in
	BaseCurrency = USD
)

// DefaultUSDToAED is the pegged dirham rate
var DefaultUSDToAED = decimal.RequireFromString("3.6725")

// ExchangeRates lists the conversion factors from a base currency
type ExchangeRates struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// RateTable is a fixed two-way USD↔AED exchange-rate table
type RateTable struct {
	rates map[string]map[string]decimal.Decimal
}

// NewRateTable builds the table from the USD→AED rate; the reverse rate is its inverse
func NewRateTable(usdToAED decimal.Decimal) (*RateTable, error) {
	if !usdToAED.IsPositive() {
		return nil, fmt.Errorf("exchange rate must be positive, got %s", usdToAED)
	}
	return &RateTable{
		rates: map[string]map[string]decimal.Decimal{
			USD: {AED: usdToAED},
			AED: {USD: decimal.NewFromInt(1).DivRound(usdToAED, 16)},
		},
	}, nil
}

// NormalizeCode upper-cases an ISO 4217 code and checks that it is well formed
func NormalizeCode(code string) (string, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", fmt.Errorf("invalid currency code %q: %w", code, err)
	}
	return unit.String(), nil
}

// Supported returns the currencies the table can convert between, sorted
func (t *RateTable) Supported() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsSupported reports whether code is a currency in the table
func (t *RateTable) IsSupported(code string) bool {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return false
	}
	_, ok := t.rates[normalized]
	return ok
}

// Rates returns the conversion factors from base
func (t *RateTable) Rates(base string) (*ExchangeRates, error) {
	code, err := NormalizeCode(base)
	if err != nil {
		return nil, err
	}
	table, ok := t.rates[code]
	if !ok {
		return nil, fmt.Errorf("unsupported currency %s", code)
	}

	rates := make(map[string]decimal.Decimal, len(table))
	for to, r := range table {
		rates[to] = r
	}
	return &ExchangeRates{Base: code, Rates: rates}, nil
}

// Convert converts an amount from one currency to another
func (t *RateTable) Convert(amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	from, err := NormalizeCode(fromCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	to, err := NormalizeCode(toCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	if from == to {
		return amount, nil
	}

	rate, ok := t.rates[from][to]
	if !ok {
		return decimal.Zero, fmt.Errorf("exchange rate not found for %s to %s", from, to)
	}
	return amount.Mul(rate), nil
}
