package catalog

// StockLevel classifies a product's on-hand quantity
type StockLevel string

const (
	StockInStock    StockLevel = "in_stock"
	StockLow        StockLevel = "low_stock"
	StockOutOfStock StockLevel = "out_of_stock"
)

// StockStatus applies the reorder threshold to the product's stock
func StockStatus(p Product) StockLevel {
	switch {
	case p.Stock <= 0:
		return StockOutOfStock
	case p.Stock <= p.ReorderLevel:
		return StockLow
	default:
		return StockInStock
	}
}
