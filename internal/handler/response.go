package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/erp-pricing-service/internal/model"
)

// Messages returned in ErrorResponse.Message
const (
	msgBadBody     = "Invalid input format"
	msgBadQuery    = "Invalid query parameters"
	msgValidation  = "Validation failed"
	msgEmptyDoc    = "Document has no line items"
	msgConflict    = "Document was modified by another request"
	msgInternal    = "Internal server error"
	msgUnavailable = "Request cancelled or timed out"
)

func respondWithError(c *gin.Context, code int, message string, details ...model.ErrorDetail) {
	c.JSON(code, model.ErrorResponse{
		Status:  http.StatusText(code),
		Message: message,
		Details: details,
	})
}

func respondBadRequest(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, http.StatusBadRequest, message, details...)
}

func respondOK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

func respondCreated(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

func fieldError(field, message string) model.ErrorDetail {
	return model.ErrorDetail{Field: field, Message: message}
}
