// Package catalog holds the product catalog the pricing engine prices against.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
)

// Service is an optional add-on that can be sold together with a product
type Service struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Product is a sellable catalog entry
type Product struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Stock        int             `json:"stock"`
	ReorderLevel int             `json:"reorder_level"`
	Services     []Service       `json:"services"`
}

// Service looks up one of the product's add-on services by ID
func (p *Product) Service(id string) (Service, bool) {
	for _, s := range p.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// Catalog resolves product references for pricing
type Catalog interface {
	GetProduct(productID string) (*Product, error)
	ListProducts() []Product
}

// MemoryCatalog is a Catalog backed by an in-memory map
type MemoryCatalog struct {
	mu       sync.RWMutex
	products map[string]Product
}

// NewMemoryCatalog creates a catalog preloaded with the given products
func NewMemoryCatalog(products ...Product) *MemoryCatalog {
	c := &MemoryCatalog{products: make(map[string]Product, len(products))}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

// Add inserts or replaces a product
func (c *MemoryCatalog) Add(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.ID] = p
}

// GetProduct returns a copy of the product with the given ID
func (c *MemoryCatalog) GetProduct(productID string) (*Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[productID]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "product", ID: productID}
	}
	p.Services = append([]Service(nil), p.Services...)
	return &p, nil
}

// ListProducts returns all products ordered by ID
func (c *MemoryCatalog) ListProducts() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

// FilterProducts keeps the products whose name or SKU contains text and whose
// category matches. Empty criteria match everything.
func FilterProducts(products []Product, text, category string) []Product {
	text = strings.ToLower(strings.TrimSpace(text))
	category = strings.TrimSpace(category)

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != "all" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(p.Name), text) &&
			!strings.Contains(strings.ToLower(p.SKU), text) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
