package model

import "github.com/ridwanfathin/erp-pricing-service/internal/catalog"

// ServiceDTO is an optional add-on offered with a product
type ServiceDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ProductDTO is the API representation of a catalog product
type ProductDTO struct {
	ID           string       `json:"id"`
	SKU          string       `json:"sku"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	SellingPrice string       `json:"selling_price"`
	CostPrice    string       `json:"cost_price"`
	DisplayPrice string       `json:"display_price"`
	Stock        int          `json:"stock"`
	ReorderLevel int          `json:"reorder_level"`
	StockStatus  string       `json:"stock_status"`
	Services     []ServiceDTO `json:"services"`
}

// ProductListResponse wraps a list of products
type ProductListResponse struct {
	Products []ProductDTO `json:"products"`
	Total    int          `json:"total"`
}

// NewProductDTO converts a catalog product
func NewProductDTO(p catalog.Product, display Display) ProductDTO {
	services := make([]ServiceDTO, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, ServiceDTO{ID: s.ID, Name: s.Name, Price: money(s.Price)})
	}
	return ProductDTO{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Category:     p.Category,
		SellingPrice: money(p.SellingPrice),
		CostPrice:    money(p.CostPrice),
		DisplayPrice: display.Format(p.SellingPrice),
		Stock:        p.Stock,
		ReorderLevel: p.ReorderLevel,
		StockStatus:  string(catalog.StockStatus(p)),
		Services:     services,
	}
}
