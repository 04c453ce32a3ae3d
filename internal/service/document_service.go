package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/erp-pricing-service/internal/catalog"
	"github.com/ridwanfathin/erp-pricing-service/internal/currency"
	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
	"github.com/ridwanfathin/erp-pricing-service/internal/export"
	"github.com/ridwanfathin/erp-pricing-service/internal/filter"
	"github.com/ridwanfathin/erp-pricing-service/internal/pricing"
	"github.com/ridwanfathin/erp-pricing-service/internal/repository"
)

// ServiceError represents an error in the document service
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap exposes the underlying error to errors.Is and errors.As
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// CreateDocumentInput carries the fields a caller may set on a new document
type CreateDocumentInput struct {
	Kind             domain.DocumentKind
	CounterpartyName string
	IssueDate        domain.DateOnly
	DueDate          domain.DateOnly
	// TaxRate falls back to the configured default when nil
	TaxRate *decimal.Decimal
	Notes   string
}

// ExportedFile is a rendered document ready to be served
type ExportedFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// DocumentSummary aggregates the documents matched by a query
type DocumentSummary struct {
	pricing.Summary
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	Utilization *decimal.Decimal `json:"utilization_percent,omitempty"`
}

// DocumentService defines the business operations on quotations, invoices and purchase orders
type DocumentService interface {
	CreateDocument(ctx context.Context, input CreateDocumentInput) (*domain.Document, error)
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)
	ListDocuments(ctx context.Context, query filter.DocumentQuery) ([]*domain.Document, error)

	// Line item operations
	AddItem(ctx context.Context, documentID, productID string, quantity int, serviceIDs []string) (*domain.Document, *domain.LineItem, error)
	RemoveItem(ctx context.Context, documentID string, index int) (*domain.Document, error)
	GetTotals(ctx context.Context, documentID string) (*domain.Document, domain.Totals, error)
	UpdateTaxRate(ctx context.Context, documentID string, rate decimal.Decimal) (*domain.Document, error)

	// Lifecycle operations
	SetStatus(ctx context.Context, documentID, status string) (*domain.Document, error)
	SubmitDocument(ctx context.Context, documentID string) (*domain.Document, error)

	// Reporting
	ExportDocument(ctx context.Context, documentID string, format export.Format, displayCurrency string) (*ExportedFile, error)
	Summarize(ctx context.Context, query filter.DocumentQuery, budget *decimal.Decimal) (*DocumentSummary, error)
}

// Options configures a DocumentServiceImpl
type Options struct {
	DefaultTaxRate   decimal.Decimal
	Company          export.Company
	MaxExportWorkers int
	Logger           *slog.Logger
}

// DocumentServiceImpl implements the DocumentService interface
type DocumentServiceImpl struct {
	repository     repository.DocumentRepository
	catalog        catalog.Catalog
	engine         *pricing.Engine
	formatter      *currency.Formatter
	defaultTaxRate decimal.Decimal
	company        export.Company
	exportPool     chan struct{}
	logger         *slog.Logger
	now            func() time.Time
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(repo repository.DocumentRepository, products catalog.Catalog, formatter *currency.Formatter, opts Options) DocumentService {
	return newDocumentService(repo, products, formatter, opts)
}

func newDocumentService(repo repository.DocumentRepository, products catalog.Catalog, formatter *currency.Formatter, opts Options) *DocumentServiceImpl {
	workers := opts.MaxExportWorkers
	if workers < 1 {
		workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentServiceImpl{
		repository:     repo,
		catalog:        products,
		engine:         pricing.NewEngine(products),
		formatter:      formatter,
		defaultTaxRate: opts.DefaultTaxRate,
		company:        opts.Company,
		exportPool:     make(chan struct{}, workers),
		logger:         logger.With("component", "document_service"),
		now:            time.Now,
	}
}

// CreateDocument validates the input and stores a new empty draft
func (s *DocumentServiceImpl) CreateDocument(ctx context.Context, input CreateDocumentInput) (*domain.Document, error) {
	if !input.Kind.IsValid() {
		return nil, &ServiceError{Op: "create_document", Err: domain.NewValidationError("kind", fmt.Sprintf("unknown document kind %q", input.Kind))}
	}
	counterparty := strings.TrimSpace(input.CounterpartyName)
	if counterparty == "" {
		return nil, &ServiceError{Op: "create_document", Err: domain.NewValidationError("counterparty_name", "counterparty name is required")}
	}

	taxRate := s.defaultTaxRate
	if input.TaxRate != nil {
		taxRate = *input.TaxRate
	}
	if err := pricing.ValidateTaxRate(taxRate); err != nil {
		return nil, &ServiceError{Op: "create_document", Err: err}
	}
	if !input.IssueDate.IsZero() && !input.DueDate.IsZero() && input.DueDate.Before(input.IssueDate.Time) {
		return nil, &ServiceError{Op: "create_document", Err: domain.NewValidationError("due_date", "due date cannot be before the issue date")}
	}

	doc := domain.NewDocument(input.Kind, counterparty, taxRate)
	doc.IssueDate = input.IssueDate
	doc.DueDate = input.DueDate
	doc.Notes = strings.TrimSpace(input.Notes)

	created, err := s.repository.Create(ctx, doc)
	if err != nil {
		return nil, &ServiceError{Op: "create_document", Err: err}
	}

	s.logger.InfoContext(ctx, "document created",
		"document_id", created.ID,
		"number", created.Number,
		"kind", created.Kind,
	)
	return created, nil
}

// GetDocument retrieves a document by its ID
func (s *DocumentServiceImpl) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.repository.GetByID(ctx, documentID)
	if err != nil {
		return nil, &ServiceError{Op: "get_document", Err: err}
	}
	return doc, nil
}

// ListDocuments returns the documents matching query
func (s *DocumentServiceImpl) ListDocuments(ctx context.Context, query filter.DocumentQuery) ([]*domain.Document, error) {
	docs, err := s.repository.List(ctx, query)
	if err != nil {
		return nil, &ServiceError{Op: "list_documents", Err: err}
	}
	return docs, nil
}

// AddItem prices a catalog product and appends it to a draft document
func (s *DocumentServiceImpl) AddItem(ctx context.Context, documentID, productID string, quantity int, serviceIDs []string) (*domain.Document, *domain.LineItem, error) {
	var added domain.LineItem
	doc, err := s.mutateDraft(ctx, "add_item", documentID, func(doc *domain.Document) error {
		item, err := s.engine.AddItem(doc, productID, quantity, serviceIDs)
		added = item
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.InfoContext(ctx, "line item added",
		"document_id", doc.ID,
		"product_id", added.ProductID,
		"quantity", added.Quantity,
		"services", len(added.SelectedServices),
	)
	return doc, &added, nil
}

// RemoveItem deletes the line item at index from a draft document
func (s *DocumentServiceImpl) RemoveItem(ctx context.Context, documentID string, index int) (*domain.Document, error) {
	doc, err := s.mutateDraft(ctx, "remove_item", documentID, func(doc *domain.Document) error {
		return s.engine.RemoveItem(doc, index)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "line item removed", "document_id", doc.ID, "index", index)
	return doc, nil
}

// GetTotals recomputes the totals of a document from its items
func (s *DocumentServiceImpl) GetTotals(ctx context.Context, documentID string) (*domain.Document, domain.Totals, error) {
	doc, err := s.repository.GetByID(ctx, documentID)
	if err != nil {
		return nil, domain.Totals{}, &ServiceError{Op: "get_totals", Err: err}
	}
	return doc, s.engine.ComputeTotals(doc), nil
}

// UpdateTaxRate changes the tax rate of a draft document
func (s *DocumentServiceImpl) UpdateTaxRate(ctx context.Context, documentID string, rate decimal.Decimal) (*domain.Document, error) {
	return s.mutateDraft(ctx, "update_tax_rate", documentID, func(doc *domain.Document) error {
		if err := pricing.ValidateTaxRate(rate); err != nil {
			return err
		}
		doc.TaxRate = rate
		return nil
	})
}

// SetStatus moves a document to any status of its kind. Leaving a terminal
// status is allowed but logged.
func (s *DocumentServiceImpl) SetStatus(ctx context.Context, documentID, status string) (*domain.Document, error) {
	doc, err := s.repository.GetByID(ctx, documentID)
	if err != nil {
		return nil, &ServiceError{Op: "set_status", Err: err}
	}

	next, err := domain.ParseStatus(doc.Kind, status)
	if err != nil {
		return nil, &ServiceError{Op: "set_status", Err: err}
	}

	previous := doc.Status
	if previous.IsTerminal() && next != previous {
		s.logger.WarnContext(ctx, "document leaving terminal status",
			"document_id", doc.ID,
			"from", previous,
			"to", next,
		)
	}
	doc.Status = next

	updated, err := s.repository.Update(ctx, doc)
	if err != nil {
		return nil, &ServiceError{Op: "set_status", Err: err}
	}

	s.logger.InfoContext(ctx, "document status changed",
		"document_id", updated.ID,
		"from", previous,
		"to", next,
	)
	return updated, nil
}

// SubmitDocument validates a draft and moves it to its kind's submitted status
func (s *DocumentServiceImpl) SubmitDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.mutateDraft(ctx, "submit_document", documentID, func(doc *domain.Document) error {
		if err := s.engine.Submit(doc); err != nil {
			return err
		}
		submittedAt := s.now().UTC()
		doc.Status = doc.Kind.SubmittedStatus()
		doc.SubmittedAt = &submittedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	totals := s.engine.ComputeTotals(doc).Rounded()
	s.logger.InfoContext(ctx, "document submitted",
		"document_id", doc.ID,
		"number", doc.Number,
		"status", doc.Status,
		"total_amount", totals.TotalAmount.StringFixed(2),
	)
	return doc, nil
}

// ExportDocument renders a document as PDF or XLSX in the display currency
func (s *DocumentServiceImpl) ExportDocument(ctx context.Context, documentID string, format export.Format, displayCurrency string) (*ExportedFile, error) {
	select {
	case s.exportPool <- struct{}{}:
		defer func() {
			<-s.exportPool
		}()
	case <-ctx.Done():
		return nil, &ServiceError{Op: "acquire_export_worker", Err: ctx.Err()}
	}

	doc, err := s.repository.GetByID(ctx, documentID)
	if err != nil {
		return nil, &ServiceError{Op: "export_document", Err: err}
	}

	data, err := export.BuildExportData(doc, s.engine.ComputeTotals(doc), s.formatter, displayCurrency, s.company)
	if err != nil {
		return nil, &ServiceError{Op: "build_export_data", Err: err}
	}

	start := s.now()
	content, err := export.Generate(format, data)
	if err != nil {
		return nil, &ServiceError{Op: "generate_export", Err: err}
	}

	s.logger.InfoContext(ctx, "document exported",
		"document_id", doc.ID,
		"format", format,
		"currency", data.Currency,
		"bytes", len(content),
		"duration", s.now().Sub(start).String(),
	)
	return &ExportedFile{
		Filename:    fmt.Sprintf("%s.%s", doc.Number, format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

// Summarize aggregates the totals of the matched documents. When budget is
// given, utilization is the matched grand total as a percentage of it.
func (s *DocumentServiceImpl) Summarize(ctx context.Context, query filter.DocumentQuery, budget *decimal.Decimal) (*DocumentSummary, error) {
	if budget != nil && budget.IsNegative() {
		return nil, &ServiceError{Op: "summarize_documents", Err: domain.NewValidationError("budget", "budget cannot be negative")}
	}

	docs, err := s.repository.List(ctx, query)
	if err != nil {
		return nil, &ServiceError{Op: "summarize_documents", Err: err}
	}

	summary := &DocumentSummary{Summary: pricing.Summarize(docs)}
	if budget != nil {
		utilization := pricing.Utilization(summary.TotalAmount, *budget)
		summary.Budget = budget
		summary.Utilization = &utilization
	}
	return summary, nil
}

// mutateDraft loads a document, applies fn while it is still a draft and stores the result
func (s *DocumentServiceImpl) mutateDraft(ctx context.Context, op, documentID string, fn func(doc *domain.Document) error) (*domain.Document, error) {
	doc, err := s.repository.GetByID(ctx, documentID)
	if err != nil {
		return nil, &ServiceError{Op: op, Err: err}
	}
	if doc.Status != domain.StatusDraft {
		return nil, &ServiceError{
			Op:  op,
			Err: domain.NewValidationError("status", fmt.Sprintf("document %s is %s; only drafts can be changed", doc.Number, doc.Status)),
		}
	}

	if err := fn(doc); err != nil {
		return nil, &ServiceError{Op: op, Err: err}
	}

	updated, err := s.repository.Update(ctx, doc)
	if err != nil {
		return nil, &ServiceError{Op: op, Err: err}
	}
	return updated, nil
}
