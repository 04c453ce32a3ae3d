package catalog

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// StandardProducts returns the fixed demo catalog. PRD-001 and PRD-002 are the
// two products quoted on QUO-2025-001.
func StandardProducts() []Product {
	return []Product{
		{
			ID:           "PRD-001",
			SKU:          "ERP-ENT-LIC",
			Name:         "Enterprise ERP License",
			Category:     "Software",
			SellingPrice: decimal.NewFromInt(25000),
			CostPrice:    decimal.NewFromInt(18000),
			Stock:        50,
			ReorderLevel: 5,
			Services: []Service{
				{ID: "SRV-INSTALL", Name: "On-site Installation", Price: decimal.NewFromInt(1500)},
				{ID: "SRV-TRAINING", Name: "User Training (2 days)", Price: decimal.NewFromInt(2000)},
				{ID: "SRV-SUPPORT", Name: "Premium Support (1 year)", Price: decimal.NewFromInt(3500)},
			},
		},
		{
			ID:           "PRD-002",
			SKU:          "ERP-IMPL",
			Name:         "Implementation Package",
			Category:     "Services",
			SellingPrice: decimal.NewFromInt(5000),
			CostPrice:    decimal.NewFromInt(3200),
			Stock:        20,
			ReorderLevel: 3,
			Services: []Service{
				{ID: "SRV-MIGRATION", Name: "Data Migration", Price: decimal.NewFromInt(1200)},
			},
		},
		{
			ID:           "PRD-003",
			SKU:          "HW-POS-TERM",
			Name:         "POS Terminal",
			Category:     "Hardware",
			SellingPrice: decimal.RequireFromString("849.99"),
			CostPrice:    decimal.RequireFromString("610.00"),
			Stock:        4,
			ReorderLevel: 10,
			Services: []Service{
				{ID: "SRV-INSTALL", Name: "On-site Installation", Price: decimal.NewFromInt(150)},
				{ID: "SRV-WARRANTY", Name: "Extended Warranty", Price: decimal.RequireFromString("99.50")},
			},
		},
		{
			ID:           "PRD-004",
			SKU:          "HW-BARCODE",
			Name:         "Barcode Scanner",
			Category:     "Hardware",
			SellingPrice: decimal.RequireFromString("129.90"),
			CostPrice:    decimal.RequireFromString("80.00"),
			Stock:        0,
			ReorderLevel: 15,
		},
		{
			ID:           "PRD-005",
			SKU:          "SUB-CLOUD-M",
			Name:         "Cloud Hosting (monthly)",
			Category:     "Subscriptions",
			SellingPrice: decimal.NewFromInt(450),
			CostPrice:    decimal.NewFromInt(210),
			Stock:        1000,
			ReorderLevel: 0,
			Services: []Service{
				{ID: "SRV-BACKUP", Name: "Daily Backups", Price: decimal.NewFromInt(60)},
			},
		},
	}
}

var (
	fixtureCategories = []string{"Hardware", "Software", "Services", "Subscriptions", "Office Supplies"}
	fixtureAdjectives = []string{"Standard", "Premium", "Compact", "Industrial", "Wireless", "Modular"}
	fixtureNouns      = []string{"Printer", "Router", "Workstation", "License", "Rack", "Sensor", "Desk"}
	fixtureServices   = []Service{
		{ID: "SRV-INSTALL", Name: "On-site Installation"},
		{ID: "SRV-WARRANTY", Name: "Extended Warranty"},
		{ID: "SRV-TRAINING", Name: "User Training"},
	}
)

// FixtureBuilder generates reproducible demo products from an explicit seed
type FixtureBuilder struct {
	rng *rand.Rand
}

// NewFixtureBuilder creates a builder; equal seeds produce equal fixtures
func NewFixtureBuilder(seed uint64) *FixtureBuilder {
	return &FixtureBuilder{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Products generates n products with IDs GEN-001..GEN-n
func (b *FixtureBuilder) Products(n int) []Product {
	products := make([]Product, 0, n)
	for i := 1; i <= n; i++ {
		category := fixtureCategories[b.rng.IntN(len(fixtureCategories))]
		name := fmt.Sprintf("%s %s",
			fixtureAdjectives[b.rng.IntN(len(fixtureAdjectives))],
			fixtureNouns[b.rng.IntN(len(fixtureNouns))])

		// prices in cents keep every generated amount exact
		cost := decimal.New(int64(1000+b.rng.IntN(500000)), -2)
		markup := decimal.New(int64(110+b.rng.IntN(60)), -2)

		p := Product{
			ID:           fmt.Sprintf("GEN-%03d", i),
			SKU:          fmt.Sprintf("SKU-%05d", b.rng.IntN(100000)),
			Name:         name,
			Category:     category,
			CostPrice:    cost,
			SellingPrice: cost.Mul(markup).Round(2),
			Stock:        b.rng.IntN(200),
			ReorderLevel: 5 + b.rng.IntN(20),
		}
		for _, s := range fixtureServices {
			if b.rng.IntN(3) == 0 {
				s.Price = decimal.New(int64(2500+b.rng.IntN(30000)), -2)
				p.Services = append(p.Services, s)
			}
		}
		products = append(products, p)
	}
	return products
}
