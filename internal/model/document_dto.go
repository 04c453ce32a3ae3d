package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/erp-pricing-service/internal/currency"
	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
	"github.com/ridwanfathin/erp-pricing-service/internal/pricing"
)

// CreateDocumentRequest is the body of POST /v1/documents
type CreateDocumentRequest struct {
	Kind             string           `json:"kind" binding:"required" example:"quotation"`
	CounterpartyName string           `json:"counterparty_name" binding:"required" example:"Globex Trading LLC"`
	IssueDate        string           `json:"issue_date,omitempty" example:"2025-03-10"` // Format: YYYY-MM-DD
	DueDate          string           `json:"due_date,omitempty" example:"2025-04-09"`   // Format: YYYY-MM-DD
	TaxRate          *decimal.Decimal `json:"tax_rate,omitempty" swaggertype:"number" example:"0.09"`
	Notes            string           `json:"notes,omitempty"`
}

// AddItemRequest is the body of POST /v1/documents/{documentId}/items
type AddItemRequest struct {
	ProductID  string   `json:"product_id" binding:"required" example:"PRD-001"`
	Quantity   int      `json:"quantity" example:"1"`
	ServiceIDs []string `json:"service_ids,omitempty"`
}

// UpdateTaxRateRequest is the body of PUT /v1/documents/{documentId}/tax-rate
type UpdateTaxRateRequest struct {
	TaxRate *decimal.Decimal `json:"tax_rate" binding:"required" swaggertype:"number" example:"0.05"`
}

// UpdateStatusRequest is the body of PUT /v1/documents/{documentId}/status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"accepted"`
}

// SelectedServiceDTO is an add-on service attached to a line item
type SelectedServiceDTO struct {
	ServiceID    string `json:"service_id"`
	ServiceName  string `json:"service_name"`
	ServicePrice string `json:"service_price"`
}

// LineItemDTO is a priced line item. Amounts are USD with two decimals;
// DisplayAmount is rendered in the requested display currency.
type LineItemDTO struct {
	ID               string               `json:"id"`
	ProductID        string               `json:"product_id"`
	ProductName      string               `json:"product_name"`
	Quantity         int                  `json:"quantity"`
	UnitPrice        string               `json:"unit_price"`
	SelectedServices []SelectedServiceDTO `json:"selected_services"`
	Amount           string               `json:"amount"`
	DisplayAmount    string               `json:"display_amount"`
}

// TotalsDTO holds rounded totals plus their display strings
type TotalsDTO struct {
	Subtotal        string `json:"subtotal"`
	TaxAmount       string `json:"tax_amount"`
	TotalAmount     string `json:"total_amount"`
	DisplayCurrency string `json:"display_currency"`
	Display         struct {
		Subtotal    string `json:"subtotal"`
		TaxAmount   string `json:"tax_amount"`
		TotalAmount string `json:"total_amount"`
	} `json:"display"`
}

// DocumentDTO is the API representation of a document
type DocumentDTO struct {
	ID               string               `json:"id"`
	Number           string               `json:"number"`
	Kind             string               `json:"kind"`
	CounterpartyName string               `json:"counterparty_name"`
	IssueDate        string               `json:"issue_date"`
	DueDate          string               `json:"due_date,omitempty"`
	Status           string               `json:"status"`
	StatusDisplay    domain.StatusDisplay `json:"status_display"`
	TaxRate          string               `json:"tax_rate"`
	Currency         string               `json:"currency"`
	Notes            string               `json:"notes,omitempty"`
	Items            []LineItemDTO        `json:"items"`
	Totals           TotalsDTO            `json:"totals"`
	SubmittedAt      *time.Time           `json:"submitted_at,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// AddItemResponse returns the created item with the updated document
type AddItemResponse struct {
	Item     LineItemDTO `json:"item"`
	Document DocumentDTO `json:"document"`
}

// DocumentListResponse wraps a list of documents
type DocumentListResponse struct {
	Documents []DocumentDTO `json:"documents"`
	Total     int           `json:"total"`
}

// StatusTotalDTO aggregates documents sharing a status
type StatusTotalDTO struct {
	Status      string `json:"status"`
	Label       string `json:"label"`
	Count       int    `json:"count"`
	TotalAmount string `json:"total_amount"`
}

// DocumentSummaryResponse aggregates the totals of the matched documents
type DocumentSummaryResponse struct {
	Count              int              `json:"count"`
	Subtotal           string           `json:"subtotal"`
	TaxAmount          string           `json:"tax_amount"`
	TotalAmount        string           `json:"total_amount"`
	DisplayTotal       string           `json:"display_total"`
	ByStatus           []StatusTotalDTO `json:"by_status"`
	Budget             string           `json:"budget,omitempty"`
	UtilizationPercent string           `json:"utilization_percent,omitempty"`
}

// Display renders USD amounts in a display currency
type Display struct {
	Formatter *currency.Formatter
	Currency  string
}

// Format renders amount, falling back to USD if the currency cannot be used
func (d Display) Format(amount decimal.Decimal) string {
	return d.Formatter.FormatOrBase(amount, d.Currency)
}

func money(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}

// NewLineItemDTO converts a domain line item
func NewLineItemDTO(item domain.LineItem, display Display) LineItemDTO {
	services := make([]SelectedServiceDTO, 0, len(item.SelectedServices))
	for _, s := range item.SelectedServices {
		services = append(services, SelectedServiceDTO{
			ServiceID:    s.ServiceID,
			ServiceName:  s.ServiceName,
			ServicePrice: money(s.ServicePrice),
		})
	}
	return LineItemDTO{
		ID:               item.ID,
		ProductID:        item.ProductID,
		ProductName:      item.ProductName,
		Quantity:         item.Quantity,
		UnitPrice:        money(item.UnitPrice),
		SelectedServices: services,
		Amount:           money(item.Amount()),
		DisplayAmount:    display.Format(item.Amount()),
	}
}

// NewTotalsDTO converts full-precision totals into rounded and display values
func NewTotalsDTO(totals domain.Totals, display Display) TotalsDTO {
	rounded := totals.Rounded()
	dto := TotalsDTO{
		Subtotal:        money(rounded.Subtotal),
		TaxAmount:       money(rounded.TaxAmount),
		TotalAmount:     money(rounded.TotalAmount),
		DisplayCurrency: display.Currency,
	}
	dto.Display.Subtotal = display.Format(totals.Subtotal)
	dto.Display.TaxAmount = display.Format(totals.TaxAmount)
	dto.Display.TotalAmount = display.Format(totals.TotalAmount)
	return dto
}

// NewDocumentDTO converts a domain document; totals are derived from its items
func NewDocumentDTO(doc *domain.Document, display Display) DocumentDTO {
	items := make([]LineItemDTO, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, NewLineItemDTO(item, display))
	}
	return DocumentDTO{
		ID:               doc.ID,
		Number:           doc.Number,
		Kind:             string(doc.Kind),
		CounterpartyName: doc.CounterpartyName,
		IssueDate:        doc.IssueDate.String(),
		DueDate:          doc.DueDate.String(),
		Status:           doc.Status.String(),
		StatusDisplay:    doc.Status.Display(),
		TaxRate:          doc.TaxRate.String(),
		Currency:         doc.Currency,
		Notes:            doc.Notes,
		Items:            items,
		Totals:           NewTotalsDTO(pricing.ComputeTotals(doc), display),
		SubmittedAt:      doc.SubmittedAt,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}
}

// NewDocumentSummaryResponse converts an aggregate summary
func NewDocumentSummaryResponse(summary pricing.Summary, budget, utilization *decimal.Decimal, display Display) DocumentSummaryResponse {
	byStatus := make([]StatusTotalDTO, 0, len(summary.ByStatus))
	for _, st := range summary.ByStatus {
		byStatus = append(byStatus, StatusTotalDTO{
			Status:      st.Status.String(),
			Label:       st.Status.Display().Label,
			Count:       st.Count,
			TotalAmount: money(st.TotalAmount),
		})
	}
	resp := DocumentSummaryResponse{
		Count:        summary.Count,
		Subtotal:     money(summary.Subtotal),
		TaxAmount:    money(summary.TaxAmount),
		TotalAmount:  money(summary.TotalAmount),
		DisplayTotal: display.Format(summary.TotalAmount),
		ByStatus:     byStatus,
	}
	if budget != nil {
		resp.Budget = money(*budget)
	}
	if utilization != nil {
		resp.UtilizationPercent = money(*utilization)
	}
	return resp
}
