package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/erp-pricing-service/internal/currency"
	"github.com/ridwanfathin/erp-pricing-service/internal/model"
)

// getPathParam retrieves a path parameter and validates it's not empty
func getPathParam(c *gin.Context, paramName string) (string, error) {
	value := strings.TrimSpace(c.Param(paramName))
	if value == "" {
		return "", fmt.Errorf("%s is required", paramName)
	}
	return value, nil
}

// getPathInt retrieves an integer path parameter
func getPathInt(c *gin.Context, paramName string) (int, error) {
	value, err := strconv.Atoi(c.Param(paramName))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return value, nil
}

// getQueryDecimal retrieves an optional decimal query parameter
func getQueryDecimal(c *gin.Context, paramName string) (*decimal.Decimal, error) {
	valueStr := strings.TrimSpace(c.Query(paramName))
	if valueStr == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: must be a number", paramName)
	}
	return &value, nil
}

// bindJSON binds JSON request body to a struct
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("invalid JSON format: %v", err)
	}
	return nil
}

// displayFor resolves the ?currency= query parameter against the rate table,
// falling back to the configured display currency.
func displayFor(c *gin.Context, rates *currency.RateTable, formatter *currency.Formatter, fallback string) (model.Display, error) {
	code := c.DefaultQuery("currency", fallback)
	if !rates.IsSupported(code) {
		return model.Display{}, fmt.Errorf("unsupported currency %q: expected one of %s", code, strings.Join(rates.Supported(), ", "))
	}
	normalized, _ := currency.NormalizeCode(code)
	return model.Display{Formatter: formatter, Currency: normalized}, nil
}
