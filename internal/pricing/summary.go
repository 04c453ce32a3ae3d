package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// StatusTotal aggregates the documents sharing a status
type StatusTotal struct {
	Status      domain.Status   `json:"status"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Summary aggregates the totals of a set of documents
type Summary struct {
	Count       int             `json:"count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ByStatus    []StatusTotal   `json:"by_status"`
}

// Summarize totals every document and groups the grand totals by status.
// ByStatus keeps the order in which statuses are first seen.
func Summarize(docs []*domain.Document) Summary {
	summary := Summary{
		Subtotal:    decimal.Zero,
		TaxAmount:   decimal.Zero,
		TotalAmount: decimal.Zero,
		ByStatus:    make([]StatusTotal, 0),
	}
	index := make(map[domain.Status]int)

	for _, doc := range docs {
		totals := ComputeTotals(doc)
		summary.Count++
		summary.Subtotal = summary.Subtotal.Add(totals.Subtotal)
		summary.TaxAmount = summary.TaxAmount.Add(totals.TaxAmount)
		summary.TotalAmount = summary.TotalAmount.Add(totals.TotalAmount)

		i, ok := index[doc.Status]
		if !ok {
			i = len(summary.ByStatus)
			index[doc.Status] = i
			summary.ByStatus = append(summary.ByStatus, StatusTotal{Status: doc.Status, TotalAmount: decimal.Zero})
		}
		summary.ByStatus[i].Count++
		summary.ByStatus[i].TotalAmount = summary.ByStatus[i].TotalAmount.Add(totals.TotalAmount)
	}
	return summary
}

// Utilization returns spent as a percentage of allocated. A zero or negative
// allocation yields zero.
func Utilization(spent, allocated decimal.Decimal) decimal.Decimal {
	if !allocated.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(allocated).Mul(hundred)
}
