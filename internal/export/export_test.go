package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ridwanfathin/erp-pricing-service/internal/currency"
	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
)

func testFormatter(t *testing.T) *currency.Formatter {
	t.Helper()
	rates, err := currency.NewRateTable(currency.DefaultUSDToAED)
	require.NoError(t, err)
	return currency.NewFormatter(rates)
}

func sampleDocument(t *testing.T) (*domain.Document, domain.Totals) {
	t.Helper()
	doc := domain.NewDocument(domain.KindQuotation, "Globex Trading LLC", decimal.RequireFromString("0.09"))
	doc.Number = "QUO-2025-001"
	issue, err := domain.ParseDateOnly("2025-03-10")
	require.NoError(t, err)
	valid, err := domain.ParseDateOnly("2025-04-09")
	require.NoError(t, err)
	doc.IssueDate, doc.DueDate = issue, valid
	doc.Notes = "=HYPERLINK(\"http://evil\")"
	doc.Items = []domain.LineItem{
		{
			ProductID:   "PRD-001",
			ProductName: "Enterprise ERP License",
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(25000),
		},
		{
			ProductID:   "PRD-002",
			ProductName: "Implementation Package",
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(5000),
			SelectedServices: []domain.SelectedService{
				{ServiceID: "SRV-MIGRATION", ServiceName: "Data Migration", ServicePrice: decimal.NewFromInt(1200)},
			},
		},
	}
	totals := domain.Totals{
		Subtotal:    decimal.NewFromInt(31200),
		TaxAmount:   decimal.NewFromInt(2808),
		TotalAmount: decimal.NewFromInt(34008),
	}
	return doc, totals
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("excel")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)
	assert.Contains(t, f.ContentType(), "spreadsheetml")

	_, err = ParseFormat("docx")
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "format", vErr.Field)
}

func TestBuildExportData(t *testing.T) {
	doc, totals := sampleDocument(t)

	data, err := BuildExportData(doc, totals, testFormatter(t), "usd", Company{Name: "Acme ERP"})
	require.NoError(t, err)

	assert.Equal(t, "QUOTATION", data.Title)
	assert.Equal(t, "Valid Until", data.DueDateLabel)
	assert.Equal(t, "2025-04-09", data.DueDate)
	assert.Equal(t, "Draft", data.Status)
	assert.Equal(t, "USD", data.Currency)
	assert.Equal(t, "Tax (9%)", data.TaxLabel)
	require.Len(t, data.Lines, 2)
	assert.Equal(t, "$25,000.00", data.Lines[0].Amount)
	assert.Equal(t, "$6,200.00", data.Lines[1].Amount)
	assert.Equal(t, "Data Migration ($1,200.00)", data.Lines[1].Services)
	assert.Equal(t, "$31,200.00", data.Subtotal)
	assert.Equal(t, "$2,808.00", data.TaxAmount)
	assert.Equal(t, "$34,008.00", data.Total)
}

func TestBuildExportDataConvertsCurrency(t *testing.T) {
	doc, totals := sampleDocument(t)

	data, err := BuildExportData(doc, totals, testFormatter(t), "AED", Company{})
	require.NoError(t, err)
	assert.Equal(t, "AED 91,812.50", data.Lines[0].Amount)

	_, err = BuildExportData(doc, totals, testFormatter(t), "XYZ", Company{})
	assert.Error(t, err)
}

func TestGeneratePDF(t *testing.T) {
	doc, totals := sampleDocument(t)
	data, err := BuildExportData(doc, totals, testFormatter(t), "USD", Company{Name: "Acme ERP", Address: "Dubai", Email: "billing@acme.test"})
	require.NoError(t, err)

	out, err := Generate(FormatPDF, data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestGeneratePDFEmptyDocument(t *testing.T) {
	doc := domain.NewDocument(domain.KindInvoice, "Initech", decimal.Zero)
	doc.Number = "INV-2025-001"
	data, err := BuildExportData(doc, domain.Totals{}, testFormatter(t), "USD", Company{})
	require.NoError(t, err)

	out, err := GeneratePDF(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestGenerateExcel(t *testing.T) {
	doc, totals := sampleDocument(t)
	data, err := BuildExportData(doc, totals, testFormatter(t), "USD", Company{Name: "Acme ERP"})
	require.NoError(t, err)

	out, err := Generate(FormatXLSX, data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.Equal(t, "QUO-2025-001", sheets[0])

	title, err := f.GetCellValue(sheets[0], "A1")
	require.NoError(t, err)
	assert.Equal(t, "QUOTATION QUO-2025-001", title)

	// header row follows the six metadata rows and a blank row
	header, err := f.GetCellValue(sheets[0], "B9")
	require.NoError(t, err)
	assert.Equal(t, "Description", header)

	first, err := f.GetCellValue(sheets[0], "F10")
	require.NoError(t, err)
	assert.Equal(t, "$25,000.00", first)

	total, err := f.GetCellValue(sheets[0], "F15")
	require.NoError(t, err)
	assert.Equal(t, "$34,008.00", total)

	notes, err := f.GetCellValue(sheets[0], "B17")
	require.NoError(t, err)
	assert.Equal(t, "'=HYPERLINK(\"http://evil\")", notes)
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"=1+1", "'=1+1"},
		{"+971", "'+971"},
		{"-5", "'-5"},
		{"@SUM(A1)", "'@SUM(A1)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeExcelCell(tt.in), tt.in)
	}
}
