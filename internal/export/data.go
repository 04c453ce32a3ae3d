// Package export renders priced documents as PDF and XLSX files.
package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/erp-pricing-service/internal/currency"
	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
)

// Format is an export file format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat converts a query value into a Format
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	}
	return "", domain.NewValidationError("format", fmt.Sprintf("unsupported export format %q", s))
}

// ContentType returns the MIME type served for the format
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// Company identifies the issuer printed on exported documents
type Company struct {
	Name    string
	Address string
	Email   string
}

// Line is a single rendered line item
type Line struct {
	Index       int
	Description string
	Services    string
	Quantity    int
	UnitPrice   string
	Amount      string
}

// Data holds everything needed to render one document.
// Money fields are already formatted in the display currency.
type Data struct {
	Company          Company
	Title            string
	Number           string
	Status           string
	CounterpartyName string
	CounterpartyRole string
	IssueDate        string
	DueDateLabel     string
	DueDate          string
	Currency         string
	Lines            []Line
	Subtotal         string
	TaxLabel         string
	TaxAmount        string
	Total            string
	Notes            string
}

var titles = map[domain.DocumentKind]string{
	domain.KindQuotation:     "QUOTATION",
	domain.KindInvoice:       "INVOICE",
	domain.KindPurchaseOrder: "PURCHASE ORDER",
}

// BuildExportData assembles the view model for doc in the given display currency
func BuildExportData(doc *domain.Document, totals domain.Totals, formatter *currency.Formatter, displayCurrency string, company Company) (*Data, error) {
	code, err := currency.NormalizeCode(displayCurrency)
	if err != nil {
		return nil, err
	}
	format := func(amount decimal.Decimal) (string, error) {
		return formatter.Format(amount, code)
	}

	data := &Data{
		Company:          company,
		Title:            titles[doc.Kind],
		Number:           doc.Number,
		Status:           doc.Status.Display().Label,
		CounterpartyName: doc.CounterpartyName,
		CounterpartyRole: "Bill To",
		IssueDate:        doc.IssueDate.String(),
		DueDateLabel:     "Due Date",
		DueDate:          doc.DueDate.String(),
		Currency:         code,
		Lines:            make([]Line, 0, len(doc.Items)),
		TaxLabel:         fmt.Sprintf("Tax (%s%%)", doc.TaxRate.Mul(decimal.NewFromInt(100)).String()),
		Notes:            doc.Notes,
	}
	switch doc.Kind {
	case domain.KindQuotation:
		data.DueDateLabel = "Valid Until"
		data.CounterpartyRole = "Prepared For"
	case domain.KindPurchaseOrder:
		data.DueDateLabel = "Delivery Date"
		data.CounterpartyRole = "Vendor"
	}

	for i, item := range doc.Items {
		unitPrice, err := format(item.UnitPrice)
		if err != nil {
			return nil, err
		}
		amount, err := format(item.Amount())
		if err != nil {
			return nil, err
		}

		services := make([]string, 0, len(item.SelectedServices))
		for _, svc := range item.SelectedServices {
			price, err := format(svc.ServicePrice)
			if err != nil {
				return nil, err
			}
			services = append(services, fmt.Sprintf("%s (%s)", svc.ServiceName, price))
		}

		data.Lines = append(data.Lines, Line{
			Index:       i + 1,
			Description: item.ProductName,
			Services:    strings.Join(services, ", "),
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
			Amount:      amount,
		})
	}

	if data.Subtotal, err = format(totals.Subtotal); err != nil {
		return nil, err
	}
	if data.TaxAmount, err = format(totals.TaxAmount); err != nil {
		return nil, err
	}
	if data.Total, err = format(totals.TotalAmount); err != nil {
		return nil, err
	}
	return data, nil
}

// Generate renders data in the requested format
func Generate(format Format, data *Data) ([]byte, error) {
	switch format {
	case FormatPDF:
		return GeneratePDF(data)
	case FormatXLSX:
		return GenerateExcel(data)
	}
	return nil, domain.NewValidationError("format", fmt.Sprintf("unsupported export format %q", format))
}
