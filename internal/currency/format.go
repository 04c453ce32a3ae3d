package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var symbols = map[string]string{
	USD: "$",
	AED: "AED ",
}

// Formatter renders canonical USD amounts in a display currency
type Formatter struct {
	rates *RateTable
}

// NewFormatter creates a formatter using the given rate table
func NewFormatter(rates *RateTable) *Formatter {
	return &Formatter{rates: rates}
}

// Format converts a USD amount into code and renders it with the currency
// symbol, thousands separators and the currency's standard number of decimals,
// rounding half-up.
func (f *Formatter) Format(amount decimal.Decimal, code string) (string, error) {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return "", err
	}
	converted, err := f.rates.Convert(amount, BaseCurrency, normalized)
	if err != nil {
		return "", err
	}
	return FormatAmount(converted, normalized), nil
}

// FormatOrBase is Format for callers that already validated the currency code.
// On error it renders the unconverted amount in the base currency.
func (f *Formatter) FormatOrBase(amount decimal.Decimal, code string) string {
	s, err := f.Format(amount, code)
	if err != nil {
		return FormatAmount(amount, BaseCurrency)
	}
	return s
}

// FormatAmount renders an amount already expressed in code; no conversion happens
func FormatAmount(amount decimal.Decimal, code string) string {
	scale := int32(2)
	if unit, err := currency.ParseISO(code); err == nil {
		s, _ := currency.Standard.Rounding(unit)
		scale = int32(s)
	}

	negative := amount.IsNegative()
	raw := amount.Abs().Round(scale).StringFixed(scale)

	intPart, decPart, _ := strings.Cut(raw, ".")
	formatted := groupThousands(intPart)
	if decPart != "" {
		formatted += "." + decPart
	}

	symbol, ok := symbols[code]
	if !ok {
		symbol = code + " "
	}

	result := symbol + formatted
	if negative && !amount.Round(scale).IsZero() {
		result = "-" + result
	}
	return result
}

// groupThousands inserts a comma between every group of three digits
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
