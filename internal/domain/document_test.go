package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItemAmount(t *testing.T) {
	item := LineItem{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("19.99"),
		SelectedServices: []SelectedService{
			{ServiceID: "install", ServicePrice: decimal.NewFromInt(50)},
			{ServiceID: "warranty", ServicePrice: decimal.RequireFromString("12.50")},
		},
	}

	assert.True(t, decimal.RequireFromString("62.50").Equal(item.ServicesTotal()))
	assert.True(t, decimal.RequireFromString("122.47").Equal(item.Amount()), item.Amount().String())
}

func TestLineItemAmountWithoutServices(t *testing.T) {
	item := LineItem{Quantity: 1, UnitPrice: decimal.NewFromInt(25000)}
	assert.True(t, decimal.NewFromInt(25000).Equal(item.Amount()))
}

func TestTotalsRounded(t *testing.T) {
	totals := Totals{
		Subtotal:    decimal.RequireFromString("10.005"),
		TaxAmount:   decimal.RequireFromString("0.8004"),
		TotalAmount: decimal.RequireFromString("10.8054"),
	}
	r := totals.Rounded()
	assert.Equal(t, "10.01", r.Subtotal.StringFixed(2))
	assert.Equal(t, "0.80", r.TaxAmount.StringFixed(2))
	assert.Equal(t, "10.81", r.TotalAmount.StringFixed(2))
}

func TestDocumentCloneIsDeep(t *testing.T) {
	now := time.Now()
	doc := NewDocument(KindInvoice, "Acme", decimal.RequireFromString("0.05"))
	doc.SubmittedAt = &now
	doc.Items = append(doc.Items, LineItem{
		ProductID:        "p1",
		Quantity:         1,
		UnitPrice:        decimal.NewFromInt(10),
		SelectedServices: []SelectedService{{ServiceID: "s1", ServicePrice: decimal.NewFromInt(1)}},
	})

	cp := doc.Clone()
	cp.Items[0].Quantity = 5
	cp.Items[0].SelectedServices[0].ServiceID = "changed"
	cp.Items = append(cp.Items, LineItem{ProductID: "p2"})

	assert.Equal(t, 1, doc.Items[0].Quantity)
	assert.Equal(t, "s1", doc.Items[0].SelectedServices[0].ServiceID)
	assert.Len(t, doc.Items, 1)
	assert.NotSame(t, doc.SubmittedAt, cp.SubmittedAt)
}

func TestDateOnlyJSON(t *testing.T) {
	var payload struct {
		Issue DateOnly `json:"issue"`
		Due   DateOnly `json:"due"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"issue":"2025-01-15","due":null}`), &payload))
	assert.Equal(t, "2025-01-15", payload.Issue.String())
	assert.True(t, payload.Due.IsZero())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"issue":"2025-01-15","due":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"issue":"15/01/2025"}`), &payload))
}

func TestNewDocumentDefaults(t *testing.T) {
	doc := NewDocument(KindQuotation, "Globex", decimal.RequireFromString("0.09"))
	assert.Equal(t, StatusDraft, doc.Status)
	assert.Equal(t, "USD", doc.Currency)
	assert.NotNil(t, doc.Items)
	assert.Empty(t, doc.Items)
}
