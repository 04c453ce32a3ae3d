package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
)

// respondServiceError maps domain errors to HTTP responses:
// validation 400, not found and bad index 404, stale write 409, empty document 422,
// anything else 500.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		indexErr      *domain.IndexError
		emptyErr      *domain.EmptyDocumentError
		conflictErr   *domain.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		respondBadRequest(c, msgValidation, fieldError(validationErr.Field, validationErr.Message))
	case errors.As(err, &notFoundErr):
		respondWithError(c, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &indexErr):
		respondWithError(c, http.StatusNotFound, indexErr.Error())
	case errors.As(err, &emptyErr):
		respondWithError(c, http.StatusUnprocessableEntity, msgEmptyDoc, fieldError("items", emptyErr.Error()))
	case errors.As(err, &conflictErr):
		respondWithError(c, http.StatusConflict, msgConflict)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondWithError(c, http.StatusServiceUnavailable, msgUnavailable)
	default:
		slog.ErrorContext(c.Request.Context(), "unhandled service error",
			"path", c.Request.URL.Path,
			"error", err,
		)
		_ = c.Error(err)
		respondWithError(c, http.StatusInternalServerError, msgInternal)
	}
}
