package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
)

func TestSummarize(t *testing.T) {
	e := newTestEngine()

	paid := domain.NewDocument(domain.KindInvoice, "A", dec("0.1"))
	paid.Status = domain.StatusPaid
	_, err := e.AddItem(paid, "PRD-002", 2, nil) // 10000
	require.NoError(t, err)

	sent := domain.NewDocument(domain.KindInvoice, "B", dec("0"))
	sent.Status = domain.StatusSent
	_, err = e.AddItem(sent, "PRD-005", 1, []string{"SRV-BACKUP"}) // 510
	require.NoError(t, err)

	paid2 := domain.NewDocument(domain.KindInvoice, "C", dec("0.05"))
	paid2.Status = domain.StatusPaid
	_, err = e.AddItem(paid2, "PRD-002", 1, nil) // 5000
	require.NoError(t, err)

	s := Summarize([]*domain.Document{paid, sent, paid2})
	assert.Equal(t, 3, s.Count)
	assert.True(t, dec("15510").Equal(s.Subtotal), s.Subtotal.String())
	assert.True(t, dec("1250").Equal(s.TaxAmount), s.TaxAmount.String())
	assert.True(t, dec("16760").Equal(s.TotalAmount), s.TotalAmount.String())

	require.Len(t, s.ByStatus, 2)
	assert.Equal(t, domain.StatusPaid, s.ByStatus[0].Status)
	assert.Equal(t, 2, s.ByStatus[0].Count)
	assert.True(t, dec("16250").Equal(s.ByStatus[0].TotalAmount))
	assert.Equal(t, domain.StatusSent, s.ByStatus[1].Status)
	assert.True(t, dec("510").Equal(s.ByStatus[1].TotalAmount))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.TotalAmount.IsZero())
	assert.Empty(t, s.ByStatus)
}

func TestUtilization(t *testing.T) {
	tests := []struct {
		name      string
		spent     string
		allocated string
		want      string
	}{
		{"half", "50000", "100000", "50"},
		{"over budget", "120", "100", "120"},
		{"nothing spent", "0", "100", "0"},
		{"zero allocation", "10", "0", "0"},
		{"negative allocation", "10", "-5", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Utilization(dec(tt.spent), dec(tt.allocated))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
	assert.True(t, decimal.NewFromInt(25).Equal(Utilization(dec("1"), dec("4"))))
}
