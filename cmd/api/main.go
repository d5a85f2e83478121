package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/estoque-dashboard/internal/application/analytics"
	"github.com/jhoicas/estoque-dashboard/internal/application/loader"
	"github.com/jhoicas/estoque-dashboard/internal/application/report"
	"github.com/jhoicas/estoque-dashboard/internal/domain/repository"
	"github.com/jhoicas/estoque-dashboard/internal/infrastructure/csvfile"
	"github.com/jhoicas/estoque-dashboard/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/estoque-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/estoque-dashboard/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/estoque-dashboard/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/estoque-dashboard/internal/interfaces/http"
	"github.com/jhoicas/estoque-dashboard/pkg/config"
	"github.com/jhoicas/estoque-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("source", cfg.Data.Source).
		Int("top_n", cfg.Dashboard.TopN).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var src repository.RecordSource
	switch cfg.Data.Source {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		src = postgres.NewRecordSource(pool, postgres.DefaultTables(), cfg.Data.LocationPlaceholder)
	default:
		src = csvfile.NewSource(csvfile.Paths{
			Inventory: cfg.Data.Path(cfg.Data.InventoryFile),
			Products:  cfg.Data.Path(cfg.Data.ProductsFile),
			Sales:     cfg.Data.Path(cfg.Data.SalesFile),
			Customers: cfg.Data.Path(cfg.Data.CustomersFile),
		}, csvfile.Options{
			Delimiter: cfg.Data.Delimiter(),
			Encoding:  cfg.Data.CSVEncoding,
		}, cfg.Data.LocationPlaceholder)
	}

	// Sin métricas los campos quedan en nil de interfaz, no un *Collector nil.
	var (
		loadMetrics loader.Metrics
		deps        = httpRouter.RouterDeps{ServiceName: cfg.App.Name, Log: log}
	)
	if cfg.Metrics.Enabled {
		collector := metrics.New(true)
		loadMetrics = collector
		deps.Metrics = collector
		deps.MetricsHandler = collector.Handler()
	}

	ldr := loader.NewLoader(src, loader.Options{StoreLabelPrefix: cfg.Data.StoreLabelPrefix}, log, loadMetrics)
	cache := loader.NewCache(ldr, cfg.Dashboard.CacheTTL)

	dashboardUC := appanalytics.NewDashboardUseCase(cache, cfg.Dashboard.TopN)
	exportUC := report.NewExportUseCase(dashboardUC, infrapdf.NewMarotoPDFGenerator(), infraxlsx.NewSalesWorkbookGenerator())

	deps.Dashboard = dashboardUC
	deps.Exports = exportUC
	deps.Cache = cache

	if cfg.Dashboard.Preload {
		snap, err := cache.Snapshot(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("carga inicial de datos")
		}
		log.Info().
			Str("fingerprint", snap.Fingerprint).
			Int("inventory_rows", len(snap.Inventory)).
			Int("sales_rows", len(snap.Sales)).
			Bool("customers", snap.CustomersAvailable).
			Msg("datos precargados")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Estoque Dashboard API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger no disponible")
	}

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
