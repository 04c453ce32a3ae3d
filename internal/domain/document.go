package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DateOnly is a date without time of day, encoded as YYYY-MM-DD in JSON
type DateOnly struct {
	time.Time
}

// NewDateOnly truncates t to midnight UTC
func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDateOnly parses a YYYY-MM-DD string; the empty string yields the zero date
func ParseDateOnly(s string) (DateOnly, error) {
	if s == "" {
		return DateOnly{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{Time: t}, nil
}

// UnmarshalJSON implements custom unmarshaling for date-only strings
func (d *DateOnly) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseDateOnly(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements custom marshaling for date-only strings
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format("2006-01-02"))
}

// String returns the YYYY-MM-DD form, or an empty string for the zero date
func (d DateOnly) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// SelectedService is an optional add-on attached to a line item
type SelectedService struct {
	ServiceID    string          `json:"service_id"`
	ServiceName  string          `json:"service_name"`
	ServicePrice decimal.Decimal `json:"service_price"`
}

// LineItem is a single product entry within a document
type LineItem struct {
	ID               string            `json:"id"`
	ProductID        string            `json:"product_id"`
	ProductName      string            `json:"product_name"`
	Quantity         int               `json:"quantity"`
	UnitPrice        decimal.Decimal   `json:"unit_price"`
	SelectedServices []SelectedService `json:"selected_services"`
}

// ServicesTotal returns the sum of the selected service prices
func (li LineItem) ServicesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range li.SelectedServices {
		total = total.Add(s.ServicePrice)
	}
	return total
}

// Amount returns quantity × unit price plus the selected service prices
func (li LineItem) Amount() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))).Add(li.ServicesTotal())
}

// Document is a quotation, invoice or purchase order.
// Totals are not stored; they are always derived from Items.
type Document struct {
	ID               string          `json:"id"`
	Number           string          `json:"number"`
	Kind             DocumentKind    `json:"kind"`
	CounterpartyName string          `json:"counterparty_name"`
	IssueDate        DateOnly        `json:"issue_date"`
	DueDate          DateOnly        `json:"due_date"`
	Items            []LineItem      `json:"items"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	Status           Status          `json:"status"`
	Currency         string          `json:"currency"`
	Notes            string          `json:"notes"`
	SubmittedAt      *time.Time      `json:"submitted_at,omitempty"`
	Version          int64           `json:"version"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// NewDocument creates an empty draft document of the given kind
func NewDocument(kind DocumentKind, counterparty string, taxRate decimal.Decimal) *Document {
	return &Document{
		Kind:             kind,
		CounterpartyName: counterparty,
		Items:            make([]LineItem, 0),
		TaxRate:          taxRate,
		Status:           StatusDraft,
		Currency:         "USD",
	}
}

// Clone returns a deep copy of the document
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	cp := *d
	cp.Items = make([]LineItem, len(d.Items))
	for i, item := range d.Items {
		item.SelectedServices = append([]SelectedService(nil), item.SelectedServices...)
		cp.Items[i] = item
	}
	if d.SubmittedAt != nil {
		at := *d.SubmittedAt
		cp.SubmittedAt = &at
	}
	return &cp
}

// Totals are the derived amounts of a document at full precision
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Rounded returns the totals rounded half-up to two decimal places for display
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal:    t.Subtotal.Round(2),
		TaxAmount:   t.TaxAmount.Round(2),
		TotalAmount: t.TotalAmount.Round(2),
	}
}
