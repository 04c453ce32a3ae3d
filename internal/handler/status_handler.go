package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
	"github.com/ridwanfathin/erp-pricing-service/internal/model"
)

// GetStatuses lists the lifecycle statuses and badge variants per document kind
// @Summary List document statuses
// @Tags documents
// @Produce json
// @Param kind query string false "Restrict to one document kind"
// @Success 200 {array} model.KindStatusesResponse "Statuses per kind"
// @Failure 400 {object} model.ErrorResponse "Unknown kind"
// @Router /v1/statuses [get]
func GetStatuses(c *gin.Context) {
	kinds := domain.Kinds
	if raw := strings.TrimSpace(c.Query("kind")); raw != "" {
		kind, err := domain.ParseKind(raw)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		kinds = []domain.DocumentKind{kind}
	}

	resp := make([]model.KindStatusesResponse, 0, len(kinds))
	for _, k := range kinds {
		resp = append(resp, model.NewKindStatusesResponse(k))
	}
	respondOK(c, resp)
}
