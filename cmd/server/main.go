package main

import (
	"log/slog"
	"os"

	_ "github.com/ridwanfathin/erp-pricing-service/docs"
	"github.com/ridwanfathin/erp-pricing-service/internal/catalog"
	"github.com/ridwanfathin/erp-pricing-service/internal/config"
	"github.com/ridwanfathin/erp-pricing-service/internal/currency"
	"github.com/ridwanfathin/erp-pricing-service/internal/export"
	"github.com/ridwanfathin/erp-pricing-service/internal/handler"
	"github.com/ridwanfathin/erp-pricing-service/internal/logging"
	"github.com/ridwanfathin/erp-pricing-service/internal/repository"
	"github.com/ridwanfathin/erp-pricing-service/internal/server"
	"github.com/ridwanfathin/erp-pricing-service/internal/service"
)

// @title ERP Pricing Service API
// @version 1.0
// @description Line-item pricing for quotations, invoices and purchase orders
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Init(os.Stdout, cfg.LogFormat, cfg.LogLevel)

	rates, err := currency.NewRateTable(cfg.USDToAEDRate)
	if err != nil {
		logger.Error("invalid exchange rate", "error", err)
		os.Exit(1)
	}
	formatter := currency.NewFormatter(rates)

	products := catalog.NewMemoryCatalog(catalog.StandardProducts()...)
	if cfg.FixtureProducts > 0 {
		for _, p := range catalog.NewFixtureBuilder(cfg.FixtureSeed).Products(cfg.FixtureProducts) {
			products.Add(p)
		}
	}
	logger.Info("catalog loaded",
		"products", len(products.ListProducts()),
		"fixture_seed", cfg.FixtureSeed,
	)

	documentService := service.NewDocumentService(
		repository.NewMemoryDocumentRepository(),
		products,
		formatter,
		service.Options{
			DefaultTaxRate: cfg.DefaultTaxRate,
			Company: export.Company{
				Name:    cfg.CompanyName,
				Address: cfg.CompanyAddress,
				Email:   cfg.CompanyEmail,
			},
			MaxExportWorkers: cfg.MaxExportWorkers,
			Logger:           logger,
		},
	)

	display := handler.DisplaySettings{
		Rates:           rates,
		Formatter:       formatter,
		DefaultCurrency: cfg.DisplayCurrency,
	}
	appServer := server.NewServer(cfg, logger, server.Handlers{
		Documents: handler.NewDocumentHandler(documentService, display),
		Catalog:   handler.NewCatalogHandler(products, display),
		Currency:  handler.NewCurrencyHandler(rates),
	})

	if err := appServer.Start(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server shutdown complete")
}
