// Package pricing computes line item amounts and document totals.
//
// Totals are recomputed from the items on every call and kept at full
// precision; rounding to two decimals happens only when values are displayed.
package pricing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/erp-pricing-service/internal/catalog"
	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
)

var one = decimal.NewFromInt(1)

// Engine prices documents against a product catalog
type Engine struct {
	catalog catalog.Catalog
	newID   func() string
}

// NewEngine creates a pricing engine backed by the given catalog
func NewEngine(c catalog.Catalog) *Engine {
	return &Engine{
		catalog: c,
		newID:   uuid.NewString,
	}
}

// AddItem prices a product with its selected services and appends it to the document
func (e *Engine) AddItem(doc *domain.Document, productID string, quantity int, serviceIDs []string) (domain.LineItem, error) {
	if quantity < 1 {
		return domain.LineItem{}, domain.NewValidationError("quantity", "quantity must be at least 1")
	}

	product, err := e.catalog.GetProduct(productID)
	if err != nil {
		return domain.LineItem{}, err
	}
	if product.SellingPrice.IsNegative() {
		return domain.LineItem{}, domain.NewValidationError("unit_price", fmt.Sprintf("product %s has a negative selling price", productID))
	}

	services := make([]domain.SelectedService, 0, len(serviceIDs))
	seen := make(map[string]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		if seen[id] {
			return domain.LineItem{}, domain.NewValidationError("service_ids", fmt.Sprintf("service %s selected more than once", id))
		}
		seen[id] = true

		svc, ok := product.Service(id)
		if !ok {
			return domain.LineItem{}, &domain.NotFoundError{Resource: "service", ID: id}
		}
		if svc.Price.IsNegative() {
			return domain.LineItem{}, domain.NewValidationError("service_price", fmt.Sprintf("service %s has a negative price", id))
		}
		services = append(services, domain.SelectedService{
			ServiceID:    svc.ID,
			ServiceName:  svc.Name,
			ServicePrice: svc.Price,
		})
	}

	item := domain.LineItem{
		ID:               e.newID(),
		ProductID:        product.ID,
		ProductName:      product.Name,
		Quantity:         quantity,
		UnitPrice:        product.SellingPrice,
		SelectedServices: services,
	}
	doc.Items = append(doc.Items, item)
	return item, nil
}

// RemoveItem deletes the line item at index, keeping the order of the rest
func (e *Engine) RemoveItem(doc *domain.Document, index int) error {
	if index < 0 || index >= len(doc.Items) {
		return &domain.IndexError{Index: index, Length: len(doc.Items)}
	}
	doc.Items = append(doc.Items[:index:index], doc.Items[index+1:]...)
	return nil
}

// ComputeTotals derives subtotal, tax and total from the document's items
func ComputeTotals(doc *domain.Document) domain.Totals {
	subtotal := decimal.Zero
	for _, item := range doc.Items {
		subtotal = subtotal.Add(item.Amount())
	}
	tax := subtotal.Mul(doc.TaxRate)
	return domain.Totals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: subtotal.Add(tax),
	}
}

// ComputeTotals is a convenience wrapper around the package-level ComputeTotals
func (e *Engine) ComputeTotals(doc *domain.Document) domain.Totals {
	return ComputeTotals(doc)
}

// ValidateTaxRate checks that rate is a fraction between 0 and 1 inclusive
func ValidateTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(one) {
		return domain.NewValidationError("tax_rate", "tax rate must be between 0 and 1")
	}
	return nil
}

func validateItem(item domain.LineItem) *domain.ValidationError {
	if item.Quantity < 1 {
		return domain.NewValidationError("quantity", "quantity must be at least 1")
	}
	if item.UnitPrice.IsNegative() {
		return domain.NewValidationError("unit_price", "unit price cannot be negative")
	}
	for _, s := range item.SelectedServices {
		if s.ServicePrice.IsNegative() {
			return domain.NewValidationError("service_price", fmt.Sprintf("service %s has a negative price", s.ServiceID))
		}
	}
	return nil
}

// Submit validates a document before it is handed to any downstream consumer
func (e *Engine) Submit(doc *domain.Document) error {
	if len(doc.Items) == 0 {
		return &domain.EmptyDocumentError{DocumentID: doc.ID}
	}
	if err := ValidateTaxRate(doc.TaxRate); err != nil {
		return err
	}
	for i, item := range doc.Items {
		if vErr := validateItem(item); vErr != nil {
			vErr.Field = fmt.Sprintf("items[%d].%s", i, vErr.Field)
			return vErr
		}
	}
	return nil
}
