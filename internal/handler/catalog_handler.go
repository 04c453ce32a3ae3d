package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/erp-pricing-service/internal/catalog"
	"github.com/ridwanfathin/erp-pricing-service/internal/model"
)

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	catalog catalog.Catalog
	display DisplaySettings
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(products catalog.Catalog, display DisplaySettings) *CatalogHandler {
	return &CatalogHandler{
		catalog: products,
		display: display,
	}
}

// RegisterRoutes mounts the catalog endpoints on rg
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:productId", h.GetProduct)
}

// ListProducts lists catalog products
// @Summary List products
// @Description Search products by name or SKU and filter by category
// @Tags catalog
// @Produce json
// @Param search query string false "Name or SKU contains"
// @Param category query string false "Category, or all"
// @Param currency query string false "Display currency (USD or AED)"
// @Success 200 {object} model.ProductListResponse "Products"
// @Failure 400 {object} model.ErrorResponse "Invalid query parameters"
// @Router /v1/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	display, err := h.display.resolve(c)
	if err != nil {
		respondBadRequest(c, msgBadQuery, fieldError("currency", err.Error()))
		return
	}

	products := catalog.FilterProducts(h.catalog.ListProducts(), c.Query("search"), c.Query("category"))
	dtos := make([]model.ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, model.NewProductDTO(p, display))
	}
	respondOK(c, model.ProductListResponse{Products: dtos, Total: len(dtos)})
}

// GetProduct returns a single product with its services
// @Summary Get a product
// @Tags catalog
// @Produce json
// @Param productId path string true "Product ID"
// @Param currency query string false "Display currency (USD or AED)"
// @Success 200 {object} model.ProductDTO "Product"
// @Failure 404 {object} model.ErrorResponse "Product not found"
// @Router /v1/products/{productId} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := getPathParam(c, "productId")
	if err != nil {
		respondBadRequest(c, msgBadBody, fieldError("productId", err.Error()))
		return
	}
	display, err := h.display.resolve(c)
	if err != nil {
		respondBadRequest(c, msgBadQuery, fieldError("currency", err.Error()))
		return
	}

	product, err := h.catalog.GetProduct(productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, model.NewProductDTO(*product, display))
}
