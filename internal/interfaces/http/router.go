package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/estoque-dashboard/internal/application/analytics"
	"github.com/jhoicas/estoque-dashboard/internal/application/report"
	"github.com/jhoicas/estoque-dashboard/pkg/logger"
)

// RouterDeps dependencias para el router. Metrics y MetricsHandler son opcionales.
type RouterDeps struct {
	ServiceName    string
	Dashboard      *appanalytics.DashboardUseCase
	Exports        *report.ExportUseCase
	Cache          SnapshotCache
	Log            *logger.Logger
	Metrics        RequestObserver
	MetricsHandler http.Handler
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(AccessLog(deps.Log.Component("http")))
	}
	if deps.Metrics != nil {
		app.Use(RequestMetrics(deps.Metrics))
	}

	app.Get("/health", HealthHandler(deps.ServiceName, deps.Cache))
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	validator := NewQueryValidator()
	api := app.Group("/api")

	dashboard := NewDashboardHandler(deps.Dashboard, validator)
	exports := NewExportHandler(deps.Exports, validator)

	// Inventario
	inv := api.Group("/inventory")
	inv.Get("/dashboard", dashboard.GetInventoryDashboard)
	inv.Get("/facets", dashboard.GetInventoryFacets)
	inv.Get("/report.pdf", exports.InventoryPDF)

	// Ventas
	sales := api.Group("/sales")
	sales.Get("/dashboard", dashboard.GetSalesDashboard)
	sales.Get("/facets", dashboard.GetSalesFacets)
	sales.Get("/export.xlsx", exports.SalesXLSX)

	// Caché
	cache := NewCacheHandler(deps.Cache)
	api.Post("/cache/invalidate", cache.Invalidate)
}
