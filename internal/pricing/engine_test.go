package pricing

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/erp-pricing-service/internal/catalog"
	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
)

func newTestEngine(products ...catalog.Product) *Engine {
	if len(products) == 0 {
		products = catalog.StandardProducts()
	}
	e := NewEngine(catalog.NewMemoryCatalog(products...))
	seq := 0
	e.newID = func() string {
		seq++
		return fmt.Sprintf("item-%d", seq)
	}
	return e
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestQuotationExampleTotals(t *testing.T) {
	e := newTestEngine()
	doc := domain.NewDocument(domain.KindQuotation, "Al Noor Trading", dec("0.09"))

	_, err := e.AddItem(doc, "PRD-001", 1, nil)
	require.NoError(t, err)
	_, err = e.AddItem(doc, "PRD-002", 1, nil)
	require.NoError(t, err)

	totals := e.ComputeTotals(doc)
	assert.True(t, dec("30000").Equal(totals.Subtotal), totals.Subtotal.String())
	assert.True(t, dec("2700").Equal(totals.TaxAmount), totals.TaxAmount.String())
	assert.True(t, dec("32700").Equal(totals.TotalAmount), totals.TotalAmount.String())
}

func TestEmptyDocumentTotals(t *testing.T) {
	doc := domain.NewDocument(domain.KindInvoice, "Acme", dec("0.1"))
	totals := ComputeTotals(doc)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.TotalAmount.IsZero())
}

func TestAddItemWithServices(t *testing.T) {
	e := newTestEngine()
	doc := domain.NewDocument(domain.KindQuotation, "Acme", dec("0.05"))

	item, err := e.AddItem(doc, "PRD-003", 3, []string{"SRV-INSTALL", "SRV-WARRANTY"})
	require.NoError(t, err)

	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "POS Terminal", item.ProductName)
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, dec("849.99").Equal(item.UnitPrice))
	require.Len(t, item.SelectedServices, 2)
	assert.Equal(t, "SRV-INSTALL", item.SelectedServices[0].ServiceID)
	assert.Equal(t, "Extended Warranty", item.SelectedServices[1].ServiceName)

	// 3 × 849.99 + 150 + 99.50
	assert.True(t, dec("2799.47").Equal(item.Amount()), item.Amount().String())
	require.Len(t, doc.Items, 1)
	assert.Equal(t, item, doc.Items[0])

	_, err = e.AddItem(doc, "PRD-001", 1, []string{"SRV-INSTALL", "SRV-INSTALL", "SRV-INSTALL"})
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr), "repeated service: %v", err)
	assert.Equal(t, "service_ids", vErr.Field)
	assert.Len(t, doc.Items, 1, "rejected item is not appended")
}

func TestAddItemRejectsBadQuantity(t *testing.T) {
	e := newTestEngine()
	doc := domain.NewDocument(domain.KindQuotation, "Acme", dec("0.05"))

	for _, qty := range []int{0, -1, -100} {
		_, err := e.AddItem(doc, "PRD-001", qty, nil)
		var vErr *domain.ValidationError
		require.True(t, errors.As(err, &vErr), "qty %d: %v", qty, err)
		assert.Equal(t, "quantity", vErr.Field)
	}
	assert.Empty(t, doc.Items)
}

func TestAddItemUnknownReferences(t *testing.T) {
	e := newTestEngine()
	doc := domain.NewDocument(domain.KindQuotation, "Acme", dec("0.05"))

	_, err := e.AddItem(doc, "PRD-404", 1, nil)
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "product", nf.Resource)

	// SRV-MIGRATION belongs to PRD-002, not PRD-001
	_, err = e.AddItem(doc, "PRD-001", 1, []string{"SRV-MIGRATION"})
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "service", nf.Resource)
	assert.Equal(t, "SRV-MIGRATION", nf.ID)

	assert.Empty(t, doc.Items)
}

func TestAddItemRejectsNegativePrices(t *testing.T) {
	e := newTestEngine(
		catalog.Product{ID: "neg", Name: "Broken", SellingPrice: dec("-1")},
		catalog.Product{ID: "negsvc", Name: "Broken service", SellingPrice: dec("1"),
			Services: []catalog.Service{{ID: "s", Price: dec("-5")}}},
		catalog.Product{ID: "free", Name: "Freebie", SellingPrice: decimal.Zero},
	)
	doc := domain.NewDocument(domain.KindInvoice, "Acme", decimal.Zero)

	var vErr *domain.ValidationError
	_, err := e.AddItem(doc, "neg", 1, nil)
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "unit_price", vErr.Field)

	_, err = e.AddItem(doc, "negsvc", 1, []string{"s"})
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "service_price", vErr.Field)

	_, err = e.AddItem(doc, "free", 2, nil)
	require.NoError(t, err, "zero unit price is allowed")
}

func TestRemoveItem(t *testing.T) {
	e := newTestEngine()
	doc := domain.NewDocument(domain.KindInvoice, "Acme", dec("0.1"))
	for _, id := range []string{"PRD-001", "PRD-002", "PRD-003"} {
		_, err := e.AddItem(doc, id, 1, nil)
		require.NoError(t, err)
	}

	require.NoError(t, e.RemoveItem(doc, 1))
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "PRD-001", doc.Items[0].ProductID)
	assert.Equal(t, "PRD-003", doc.Items[1].ProductID)

	for _, idx := range []int{-1, 2, 10} {
		err := e.RemoveItem(doc, idx)
		var iErr *domain.IndexError
		require.True(t, errors.As(err, &iErr), "index %d", idx)
		assert.Equal(t, idx, iErr.Index)
		assert.Equal(t, 2, iErr.Length)
	}
	assert.Len(t, doc.Items, 2)
}

func TestRemoveItemDoesNotAliasRemovedSlot(t *testing.T) {
	e := newTestEngine()
	doc := domain.NewDocument(domain.KindInvoice, "Acme", dec("0.1"))
	for _, id := range []string{"PRD-001", "PRD-002", "PRD-003"} {
		_, err := e.AddItem(doc, id, 1, nil)
		require.NoError(t, err)
	}
	before := doc.Items

	require.NoError(t, e.RemoveItem(doc, 0))
	assert.Equal(t, "PRD-001", before[0].ProductID, "caller's view of the old slice must not change")
	assert.Equal(t, "PRD-002", doc.Items[0].ProductID)
}

func TestRemovingEveryItemResetsSubtotal(t *testing.T) {
	e := newTestEngine()
	doc := domain.NewDocument(domain.KindInvoice, "Acme", dec("0.2"))
	for i := 0; i < 5; i++ {
		_, err := e.AddItem(doc, "PRD-003", i+1, []string{"SRV-WARRANTY"})
		require.NoError(t, err)
	}
	require.True(t, ComputeTotals(doc).Subtotal.IsPositive())

	for len(doc.Items) > 0 {
		require.NoError(t, e.RemoveItem(doc, len(doc.Items)-1))
	}
	totals := ComputeTotals(doc)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TotalAmount.IsZero())
}

func TestComputeTotalsIdempotent(t *testing.T) {
	e := newTestEngine()
	doc := domain.NewDocument(domain.KindInvoice, "Acme", dec("0.075"))
	_, err := e.AddItem(doc, "PRD-003", 7, []string{"SRV-INSTALL"})
	require.NoError(t, err)
	_, err = e.AddItem(doc, "PRD-004", 3, nil)
	require.NoError(t, err)

	first := ComputeTotals(doc)
	second := ComputeTotals(doc)
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
}

func TestTotalsKeepFullPrecision(t *testing.T) {
	e := newTestEngine(catalog.Product{ID: "cent", Name: "Penny item", SellingPrice: dec("0.01")})
	doc := domain.NewDocument(domain.KindInvoice, "Acme", dec("0.125"))
	for i := 0; i < 3; i++ {
		_, err := e.AddItem(doc, "cent", 1, nil)
		require.NoError(t, err)
	}

	totals := ComputeTotals(doc)
	assert.Equal(t, "0.00375", totals.TaxAmount.String())
	assert.Equal(t, "0.03375", totals.TotalAmount.String())

	rounded := totals.Rounded()
	assert.Equal(t, "0.00", rounded.TaxAmount.StringFixed(2))
	assert.Equal(t, "0.03", rounded.TotalAmount.StringFixed(2))
}

func TestPricingProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	products := catalog.NewFixtureBuilder(99).Products(40)
	e := newTestEngine(products...)

	for round := 0; round < 50; round++ {
		rate := decimal.New(int64(rng.IntN(101)), -2)
		forward := domain.NewDocument(domain.KindInvoice, "Acme", rate)
		backward := domain.NewDocument(domain.KindInvoice, "Acme", rate)

		type pick struct {
			id       string
			qty      int
			services []string
		}
		picks := make([]pick, 1+rng.IntN(8))
		for i := range picks {
			p := products[rng.IntN(len(products))]
			pk := pick{id: p.ID, qty: 1 + rng.IntN(20)}
			for _, s := range p.Services {
				if rng.IntN(2) == 0 {
					pk.services = append(pk.services, s.ID)
				}
			}
			picks[i] = pk
		}

		for _, pk := range picks {
			item, err := e.AddItem(forward, pk.id, pk.qty, pk.services)
			require.NoError(t, err)

			// itemAmount = quantity × unitPrice + Σ service prices
			want := item.UnitPrice.Mul(decimal.NewFromInt(int64(pk.qty)))
			for _, s := range item.SelectedServices {
				want = want.Add(s.ServicePrice)
			}
			assert.True(t, want.Equal(item.Amount()))
		}
		for i := len(picks) - 1; i >= 0; i-- {
			_, err := e.AddItem(backward, picks[i].id, picks[i].qty, picks[i].services)
			require.NoError(t, err)
		}

		ft := ComputeTotals(forward)
		bt := ComputeTotals(backward)
		assert.True(t, ft.Subtotal.Equal(bt.Subtotal), "order must not change the subtotal")
		assert.True(t, ft.TotalAmount.GreaterThanOrEqual(ft.Subtotal), "total below subtotal at rate %s", rate)
		assert.True(t, ft.TotalAmount.Equal(ft.Subtotal.Add(ft.TaxAmount)))
	}
}

func TestValidateTaxRate(t *testing.T) {
	for _, ok := range []string{"0", "0.05", "0.09", "1"} {
		assert.NoError(t, ValidateTaxRate(dec(ok)), ok)
	}
	for _, bad := range []string{"-0.01", "1.01", "9"} {
		var vErr *domain.ValidationError
		assert.True(t, errors.As(ValidateTaxRate(dec(bad)), &vErr), bad)
	}
}

func TestSubmit(t *testing.T) {
	e := newTestEngine()

	empty := domain.NewDocument(domain.KindInvoice, "Acme", dec("0.1"))
	empty.ID = "doc-1"
	err := e.Submit(empty)
	var emptyErr *domain.EmptyDocumentError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "doc-1", emptyErr.DocumentID)

	doc := domain.NewDocument(domain.KindInvoice, "Acme", dec("0.1"))
	_, err = e.AddItem(doc, "PRD-001", 2, nil)
	require.NoError(t, err)
	assert.NoError(t, e.Submit(doc))

	doc.TaxRate = dec("1.5")
	var vErr *domain.ValidationError
	require.True(t, errors.As(e.Submit(doc), &vErr))
	assert.Equal(t, "tax_rate", vErr.Field)

	doc.TaxRate = dec("0.1")
	doc.Items = append(doc.Items, domain.LineItem{ProductID: "manual", Quantity: 0, UnitPrice: dec("1")})
	require.True(t, errors.As(e.Submit(doc), &vErr))
	assert.Equal(t, "items[1].quantity", vErr.Field)
}

func TestValidateItem(t *testing.T) {
	assert.Nil(t, validateItem(domain.LineItem{Quantity: 1, UnitPrice: decimal.Zero}))
	assert.NotNil(t, validateItem(domain.LineItem{Quantity: 1, UnitPrice: dec("-0.01")}))
	assert.NotNil(t, validateItem(domain.LineItem{
		Quantity:         1,
		UnitPrice:        dec("1"),
		SelectedServices: []domain.SelectedService{{ServiceID: "x", ServicePrice: dec("-1")}},
	}))
}
