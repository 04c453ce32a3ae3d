package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/erp-pricing-service/internal/currency"
	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
	"github.com/ridwanfathin/erp-pricing-service/internal/export"
	"github.com/ridwanfathin/erp-pricing-service/internal/filter"
	"github.com/ridwanfathin/erp-pricing-service/internal/model"
	"github.com/ridwanfathin/erp-pricing-service/internal/service"
)

// DisplaySettings controls how USD amounts are rendered in responses
type DisplaySettings struct {
	Rates           *currency.RateTable
	Formatter       *currency.Formatter
	DefaultCurrency string
}

func (d DisplaySettings) resolve(c *gin.Context) (model.Display, error) {
	return displayFor(c, d.Rates, d.Formatter, d.DefaultCurrency)
}

// DocumentHandler handles quotation, invoice and purchase order endpoints
type DocumentHandler struct {
	documentService service.DocumentService
	display         DisplaySettings
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService service.DocumentService, display DisplaySettings) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		display:         display,
	}
}

// RegisterRoutes mounts the document endpoints on rg
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	documents := rg.Group("/documents")
	documents.POST("", h.CreateDocument)
	documents.GET("", h.ListDocuments)
	documents.GET("/summary", h.GetSummary)
	documents.GET("/:documentId", h.GetDocument)
	documents.POST("/:documentId/items", h.AddItem)
	documents.DELETE("/:documentId/items/:index", h.RemoveItem)
	documents.GET("/:documentId/totals", h.GetTotals)
	documents.PUT("/:documentId/tax-rate", h.UpdateTaxRate)
	documents.PUT("/:documentId/status", h.UpdateStatus)
	documents.POST("/:documentId/submit", h.SubmitDocument)
	documents.GET("/:documentId/export", h.ExportDocument)
}

// CreateDocument creates an empty draft document
// @Summary Create a document
// @Description Create an empty draft quotation, invoice or purchase order
// @Tags documents
// @Accept json
// @Produce json
// @Param document body model.CreateDocumentRequest true "Document header"
// @Param currency query string false "Display currency (USD or AED)"
// @Success 201 {object} model.DocumentDTO "Created document"
// @Failure 400 {object} model.ErrorResponse "Invalid input"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	display, err := h.display.resolve(c)
	if err != nil {
		respondBadRequest(c, msgBadQuery, fieldError("currency", err.Error()))
		return
	}

	var req model.CreateDocumentRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, msgBadBody, fieldError("body", err.Error()))
		return
	}

	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	issueDate, err := domain.ParseDateOnly(req.IssueDate)
	if err != nil {
		respondBadRequest(c, msgBadBody, fieldError("issue_date", "invalid date format: expected YYYY-MM-DD"))
		return
	}
	dueDate, err := domain.ParseDateOnly(req.DueDate)
	if err != nil {
		respondBadRequest(c, msgBadBody, fieldError("due_date", "invalid date format: expected YYYY-MM-DD"))
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), service.CreateDocumentInput{
		Kind:             kind,
		CounterpartyName: req.CounterpartyName,
		IssueDate:        issueDate,
		DueDate:          dueDate,
		TaxRate:          req.TaxRate,
		Notes:            req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Location", "/v1/documents/"+doc.ID)
	respondCreated(c, model.NewDocumentDTO(doc, display))
}

// ListDocuments lists documents matching the search filters
// @Summary List documents
// @Description Case-insensitive search over number, counterparty and notes, with kind and status facets
// @Tags documents
// @Produce json
// @Param search query string false "Free-text search"
// @Param kind query string false "Document kind (quotation, invoice, purchase_order)"
// @Param status query string false "Comma-separated statuses"
// @Param currency query string false "Display currency (USD or AED)"
// @Success 200 {object} model.DocumentListResponse "Matching documents"
// @Failure 400 {object} model.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	display, err := h.display.resolve(c)
	if err != nil {
		respondBadRequest(c, msgBadQuery, fieldError("currency", err.Error()))
		return
	}
	query, err := parseDocumentQuery(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	dtos := make([]model.DocumentDTO, 0, len(docs))
	for _, doc := range docs {
		dtos = append(dtos, model.NewDocumentDTO(doc, display))
	}
	respondOK(c, model.DocumentListResponse{Documents: dtos, Total: len(dtos)})
}

// GetSummary aggregates totals across matching documents
// @Summary Summarize documents
// @Description Count, subtotal, tax and total across matching documents, grouped by status, with optional budget utilization
// @Tags documents
// @Produce json
// @Param search query string false "Free-text search"
// @Param kind query string false "Document kind"
// @Param status query string false "Comma-separated statuses"
// @Param budget query number false "Allocated budget in USD"
// @Param currency query string false "Display currency (USD or AED)"
// @Success 200 {object} model.DocumentSummaryResponse "Summary"
// @Failure 400 {object} model.ErrorResponse "Invalid query parameters"
// @Router /v1/documents/summary [get]
func (h *DocumentHandler) GetSummary(c *gin.Context) {
	display, err := h.display.resolve(c)
	if err != nil {
		respondBadRequest(c, msgBadQuery, fieldError("currency", err.Error()))
		return
	}
	query, err := parseDocumentQuery(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	budget, err := getQueryDecimal(c, "budget")
	if err != nil {
		respondBadRequest(c, msgBadQuery, fieldError("budget", err.Error()))
		return
	}

	summary, err := h.documentService.Summarize(c.Request.Context(), query, budget)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, model.NewDocumentSummaryResponse(summary.Summary, summary.Budget, summary.Utilization, display))
}

// GetDocument returns a single document with recomputed totals
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param documentId path string true "Document ID"
// @Param currency query string false "Display currency (USD or AED)"
// @Success 200 {object} model.DocumentDTO "Document"
// @Failure 404 {object} model.ErrorResponse "Document not found"
// @Router /v1/documents/{documentId} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	documentID, display, ok := h.documentRequest(c)
	if !ok {
		return
	}

	doc, err := h.documentService.GetDocument(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, model.NewDocumentDTO(doc, display))
}

// AddItem prices a catalog product and appends it to a draft document
// @Summary Add a line item
// @Tags documents
// @Accept json
// @Produce json
// @Param documentId path string true "Document ID"
// @Param item body model.AddItemRequest true "Product, quantity and selected services"
// @Param currency query string false "Display currency (USD or AED)"
// @Success 201 {object} model.AddItemResponse "Created item and updated document"
// @Failure 400 {object} model.ErrorResponse "Invalid quantity, price or document not in draft"
// @Failure 404 {object} model.ErrorResponse "Document, product or service not found"
// @Router /v1/documents/{documentId}/items [post]
func (h *DocumentHandler) AddItem(c *gin.Context) {
	documentID, display, ok := h.documentRequest(c)
	if !ok {
		return
	}

	var req model.AddItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, msgBadBody, fieldError("body", err.Error()))
		return
	}

	doc, item, err := h.documentService.AddItem(c.Request.Context(), documentID, req.ProductID, req.Quantity, req.ServiceIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, model.AddItemResponse{
		Item:     model.NewLineItemDTO(*item, display),
		Document: model.NewDocumentDTO(doc, display),
	})
}

// RemoveItem removes a line item by position
// @Summary Remove a line item
// @Tags documents
// @Produce json
// @Param documentId path string true "Document ID"
// @Param index path int true "Zero-based line item position"
// @Param currency query string false "Display currency (USD or AED)"
// @Success 200 {object} model.DocumentDTO "Updated document"
// @Failure 400 {object} model.ErrorResponse "Invalid index or document not in draft"
// @Failure 404 {object} model.ErrorResponse "Document not found or index out of range"
// @Router /v1/documents/{documentId}/items/{index} [delete]
func (h *DocumentHandler) RemoveItem(c *gin.Context) {
	documentID, display, ok := h.documentRequest(c)
	if !ok {
		return
	}
	index, err := getPathInt(c, "index")
	if err != nil {
		respondBadRequest(c, msgBadBody, fieldError("index", err.Error()))
		return
	}

	doc, err := h.documentService.RemoveItem(c.Request.Context(), documentID, index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, model.NewDocumentDTO(doc, display))
}

// GetTotals recomputes subtotal, tax and total from the document's items
// @Summary Get document totals
// @Tags documents
// @Produce json
// @Param documentId path string true "Document ID"
// @Param currency query string false "Display currency (USD or AED)"
// @Success 200 {object} model.TotalsDTO "Totals"
// @Failure 404 {object} model.ErrorResponse "Document not found"
// @Router /v1/documents/{documentId}/totals [get]
func (h *DocumentHandler) GetTotals(c *gin.Context) {
	documentID, display, ok := h.documentRequest(c)
	if !ok {
		return
	}

	_, totals, err := h.documentService.GetTotals(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, model.NewTotalsDTO(totals, display))
}

// UpdateTaxRate changes the tax rate of a draft document
// @Summary Update the tax rate
// @Tags documents
// @Accept json
// @Produce json
// @Param documentId path string true "Document ID"
// @Param body body model.UpdateTaxRateRequest true "Tax rate between 0 and 1"
// @Success 200 {object} model.DocumentDTO "Updated document"
// @Failure 400 {object} model.ErrorResponse "Invalid tax rate"
// @Failure 404 {object} model.ErrorResponse "Document not found"
// @Router /v1/documents/{documentId}/tax-rate [put]
func (h *DocumentHandler) UpdateTaxRate(c *gin.Context) {
	documentID, display, ok := h.documentRequest(c)
	if !ok {
		return
	}

	var req model.UpdateTaxRateRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, msgBadBody, fieldError("tax_rate", err.Error()))
		return
	}

	doc, err := h.documentService.UpdateTaxRate(c.Request.Context(), documentID, *req.TaxRate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, model.NewDocumentDTO(doc, display))
}

// UpdateStatus moves a document to another status of its kind
// @Summary Update the status
// @Tags documents
// @Accept json
// @Produce json
// @Param documentId path string true "Document ID"
// @Param body body model.UpdateStatusRequest true "Target status"
// @Success 200 {object} model.DocumentDTO "Updated document"
// @Failure 400 {object} model.ErrorResponse "Status not valid for the document kind"
// @Failure 404 {object} model.ErrorResponse "Document not found"
// @Router /v1/documents/{documentId}/status [put]
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	documentID, display, ok := h.documentRequest(c)
	if !ok {
		return
	}

	var req model.UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, msgBadBody, fieldError("status", err.Error()))
		return
	}

	doc, err := h.documentService.SetStatus(c.Request.Context(), documentID, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, model.NewDocumentDTO(doc, display))
}

// SubmitDocument validates a draft and moves it to its submitted status
// @Summary Submit a document
// @Tags documents
// @Produce json
// @Param documentId path string true "Document ID"
// @Param currency query string false "Display currency (USD or AED)"
// @Success 200 {object} model.DocumentDTO "Submitted document"
// @Failure 400 {object} model.ErrorResponse "Invalid item or tax rate, or document not in draft"
// @Failure 404 {object} model.ErrorResponse "Document not found"
// @Failure 422 {object} model.ErrorResponse "Document has no line items"
// @Router /v1/documents/{documentId}/submit [post]
func (h *DocumentHandler) SubmitDocument(c *gin.Context) {
	documentID, display, ok := h.documentRequest(c)
	if !ok {
		return
	}

	doc, err := h.documentService.SubmitDocument(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, model.NewDocumentDTO(doc, display))
}

// ExportDocument downloads the document as PDF or XLSX
// @Summary Export a document
// @Tags documents
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param documentId path string true "Document ID"
// @Param format query string false "pdf (default) or xlsx"
// @Param currency query string false "Display currency (USD or AED)"
// @Success 200 {file} file "Rendered document"
// @Failure 400 {object} model.ErrorResponse "Unsupported format or currency"
// @Failure 404 {object} model.ErrorResponse "Document not found"
// @Router /v1/documents/{documentId}/export [get]
func (h *DocumentHandler) ExportDocument(c *gin.Context) {
	documentID, display, ok := h.documentRequest(c)
	if !ok {
		return
	}
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatPDF)))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	file, err := h.documentService.ExportDocument(c.Request.Context(), documentID, format, display.Currency)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// documentRequest extracts the document ID and display currency, responding on failure
func (h *DocumentHandler) documentRequest(c *gin.Context) (string, model.Display, bool) {
	documentID, err := getPathParam(c, "documentId")
	if err != nil {
		respondBadRequest(c, msgBadBody, fieldError("documentId", err.Error()))
		return "", model.Display{}, false
	}
	display, err := h.display.resolve(c)
	if err != nil {
		respondBadRequest(c, msgBadQuery, fieldError("currency", err.Error()))
		return "", model.Display{}, false
	}
	return documentID, display, true
}

// parseDocumentQuery reads the search, kind and status query parameters
func parseDocumentQuery(c *gin.Context) (filter.DocumentQuery, error) {
	query := filter.DocumentQuery{Text: c.Query("search")}

	if raw := strings.TrimSpace(c.Query("kind")); raw != "" {
		kind, err := domain.ParseKind(raw)
		if err != nil {
			return filter.DocumentQuery{}, err
		}
		query.Kind = kind
	}

	for _, raw := range strings.Split(c.Query("status"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		status, err := parseStatusFilter(query.Kind, raw)
		if err != nil {
			return filter.DocumentQuery{}, err
		}
		query.Statuses = append(query.Statuses, status)
	}
	return query, nil
}

// parseStatusFilter validates raw against kind, or against every kind when none is given
func parseStatusFilter(kind domain.DocumentKind, raw string) (domain.Status, error) {
	if kind != "" {
		return domain.ParseStatus(kind, raw)
	}
	var lastErr error
	for _, k := range domain.Kinds {
		status, err := domain.ParseStatus(k, raw)
		if err == nil {
			return status, nil
		}
		lastErr = err
	}
	return "", lastErr
}
