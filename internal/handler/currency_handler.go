package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/erp-pricing-service/internal/currency"
	"github.com/ridwanfathin/erp-pricing-service/internal/model"
)

// CurrencyHandler handles currency-related endpoints
type CurrencyHandler struct {
	rates *currency.RateTable
}

// NewCurrencyHandler creates a new currency handler
func NewCurrencyHandler(rates *currency.RateTable) *CurrencyHandler {
	return &CurrencyHandler{
		rates: rates,
	}
}

// RegisterRoutes mounts the currency endpoints on rg
func (h *CurrencyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/currency/rates", h.GetExchangeRates)
	rg.GET("/currency/convert", h.ConvertCurrency)
}

// GetExchangeRates returns exchange rates for a base currency
// @Summary Get exchange rates
// @Description Get the fixed display exchange rates for a base currency
// @Tags currency
// @Produce json
// @Param base query string false "Base currency (default: USD)"
// @Success 200 {object} currency.ExchangeRates "Exchange rates"
// @Failure 400 {object} model.ErrorResponse "Unsupported currency"
// @Router /v1/currency/rates [get]
func (h *CurrencyHandler) GetExchangeRates(c *gin.Context) {
	baseCurrency := c.DefaultQuery("base", currency.BaseCurrency)

	rates, err := h.rates.Rates(baseCurrency)
	if err != nil {
		respondBadRequest(c, msgBadQuery, fieldError("base", err.Error()))
		return
	}
	respondOK(c, rates)
}

// ConvertCurrency converts an amount from one currency to another
// @Summary Convert currency
// @Description Convert an amount between USD and AED at the fixed display rate
// @Tags currency
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Success 200 {object} model.ConversionResponse "Conversion result"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /v1/currency/convert [get]
func (h *CurrencyHandler) ConvertCurrency(c *gin.Context) {
	amountStr := c.Query("amount")
	fromCurrency := c.Query("from")
	toCurrency := c.Query("to")

	if amountStr == "" || fromCurrency == "" || toCurrency == "" {
		respondBadRequest(c, "amount, from, and to parameters are required")
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		respondBadRequest(c, msgBadQuery, fieldError("amount", "invalid amount"))
		return
	}
	for field, code := range map[string]string{"from": fromCurrency, "to": toCurrency} {
		if !h.rates.IsSupported(code) {
			respondBadRequest(c, msgBadQuery, fieldError(field, "unsupported currency "+code))
			return
		}
	}

	result, err := h.rates.Convert(amount, fromCurrency, toCurrency)
	if err != nil {
		respondBadRequest(c, msgBadQuery, fieldError("to", err.Error()))
		return
	}

	from, _ := currency.NormalizeCode(fromCurrency)
	to, _ := currency.NormalizeCode(toCurrency)
	respondOK(c, model.ConversionResponse{
		Amount:    amount.String(),
		From:      from,
		To:        to,
		Result:    result.Round(2).StringFixed(2),
		Formatted: currency.FormatAmount(result, to),
	})
}
