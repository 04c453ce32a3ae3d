package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
)

func TestMemoryCatalogGetProduct(t *testing.T) {
	c := NewMemoryCatalog(StandardProducts()...)

	p, err := c.GetProduct("PRD-001")
	require.NoError(t, err)
	assert.Equal(t, "Enterprise ERP License", p.Name)
	assert.True(t, decimal.NewFromInt(25000).Equal(p.SellingPrice))

	svc, ok := p.Service("SRV-TRAINING")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(2000).Equal(svc.Price))

	_, ok = p.Service("SRV-MISSING")
	assert.False(t, ok)
}

func TestMemoryCatalogUnknownProduct(t *testing.T) {
	c := NewMemoryCatalog()
	_, err := c.GetProduct("nope")

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "product", nf.Resource)
	assert.Equal(t, "nope", nf.ID)
}

func TestMemoryCatalogReturnsCopies(t *testing.T) {
	c := NewMemoryCatalog(StandardProducts()...)

	p, err := c.GetProduct("PRD-001")
	require.NoError(t, err)
	p.Services[0].Price = decimal.Zero

	again, err := c.GetProduct("PRD-001")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(again.Services[0].Price))
}

func TestListProductsSorted(t *testing.T) {
	c := NewMemoryCatalog()
	c.Add(Product{ID: "B"})
	c.Add(Product{ID: "A"})
	c.Add(Product{ID: "C"})

	ids := []string{}
	for _, p := range c.ListProducts() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, ids)
}

func TestFilterProducts(t *testing.T) {
	products := StandardProducts()

	assert.Len(t, FilterProducts(products, "", ""), len(products))
	assert.Len(t, FilterProducts(products, "", "all"), len(products))
	assert.Len(t, FilterProducts(products, "", "hardware"), 2)

	byName := FilterProducts(products, "erp", "")
	require.Len(t, byName, 2)
	assert.Equal(t, "PRD-001", byName[0].ID)

	bySKU := FilterProducts(products, "hw-pos", "")
	require.Len(t, bySKU, 1)
	assert.Equal(t, "PRD-003", bySKU[0].ID)

	assert.Empty(t, FilterProducts(products, "erp", "Hardware"))
}

func TestStockStatus(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		level int
		want  StockLevel
	}{
		{"out of stock", 0, 5, StockOutOfStock},
		{"negative stock", -2, 5, StockOutOfStock},
		{"at reorder level", 5, 5, StockLow},
		{"below reorder level", 3, 5, StockLow},
		{"above reorder level", 6, 5, StockInStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StockStatus(Product{Stock: tt.stock, ReorderLevel: tt.level}))
		})
	}
}

func TestFixtureBuilderDeterministic(t *testing.T) {
	a := NewFixtureBuilder(42).Products(25)
	b := NewFixtureBuilder(42).Products(25)
	require.Len(t, a, 25)
	assert.Equal(t, a, b)

	c := NewFixtureBuilder(7).Products(25)
	assert.NotEqual(t, a, c)

	for _, p := range a {
		assert.False(t, p.SellingPrice.IsNegative(), p.ID)
		assert.True(t, p.SellingPrice.GreaterThanOrEqual(p.CostPrice), p.ID)
		for _, s := range p.Services {
			assert.True(t, s.Price.IsPositive(), p.ID)
		}
	}
	assert.Equal(t, "GEN-001", a[0].ID)
	assert.Equal(t, "GEN-025", a[24].ID)
}
