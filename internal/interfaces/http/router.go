// Package http expone las operaciones de stock sobre Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-console/internal/application/inventory"
	"github.com/jhoicas/inventario-console/internal/application/report"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ReportUC         *report.ReportUseCase
	Gatherer         prometheus.Gatherer // nil = sin /metrics
	ServiceName      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ReportUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:code", productHandler.GetByCode)

	// Inventory movements
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	invGroup.Post("/entries", inventoryHandler.Entry)
	invGroup.Post("/exits", inventoryHandler.Exit)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/movements", reportHandler.Movements)
	reports.Get("/stock.pdf", reportHandler.StockPDF)
}
