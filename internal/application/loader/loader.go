// Package loader lee las cuatro tablas de la fuente, arma inventario y ventas
// y publica el resultado como un Snapshot inmutable.
package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-dashboard/internal/application/inventory"
	"github.com/jhoicas/estoque-dashboard/internal/application/sales"
	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
	"github.com/jhoicas/estoque-dashboard/internal/domain/repository"
	"github.com/jhoicas/estoque-dashboard/pkg/logger"
)

// Códigos de aviso que viajan con el snapshot hasta la capa de presentación.
const (
	WarningLocationColumnMissing = "LOCATION_COLUMN_MISSING"
)

// Warning aviso no bloqueante producido durante la carga.
type Warning struct {
	Code    string
	Message string
}

// Snapshot resultado de una carga. No se modifica después de publicado; filtros y
// agregaciones siempre generan slices nuevos.
type Snapshot struct {
	ID          uuid.UUID
	Source      string
	Fingerprint string
	LoadedAt    time.Time

	Inventory          []entity.AssembledInventoryRow
	Sales              []entity.AssembledSaleRow
	CustomersAvailable bool
	UndatedSales       int // ventas con fecha no interpretable (se conservan en la tabla)

	Warnings []Warning
}

// Options parámetros de armado aplicados en cada carga.
type Options struct {
	StoreLabelPrefix string
}

// Loader lee la fuente y arma las tablas. No cachea: ver Cache.
type Loader struct {
	src     repository.RecordSource
	opts    Options
	log     *logger.Logger
	metrics Metrics
}

// NewLoader construye el cargador. log y metrics pueden ser nil.
func NewLoader(src repository.RecordSource, opts Options, log *logger.Logger, metrics Metrics) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Loader{src: src, opts: opts, log: log.Component("loader"), metrics: metrics}
}

// Load lee inventario, productos, ventas y clientes y arma el snapshot.
// Inventario, productos y ventas son obligatorios; clientes cae a tabla vacía ante cualquier fallo.
func (l *Loader) Load(ctx context.Context, fingerprint string) (snap *Snapshot, err error) {
	started := time.Now()
	defer func() { l.metrics.ObserveLoad(l.src.Name(), time.Since(started), err) }()

	inv, err := l.src.LoadInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar inventario: %w", err)
	}
	products, err := l.src.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	rawSales, err := l.src.LoadSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar ventas: %w", err)
	}

	var warnings []Warning
	customers, cerr := l.src.LoadCustomers(ctx)
	if cerr != nil {
		l.log.Warn().Err(cerr).Str("source", l.src.Name()).Msg("clientes no disponibles, se continúa sin enriquecimiento")
		customers = nil
	}
	customersAvailable := len(customers) > 0

	if inv.LocationInjected {
		l.log.Warn().Str("source", l.src.Name()).Msg("inventario sin columna de localización, se usa el valor por defecto")
		warnings = append(warnings, Warning{
			Code:    WarningLocationColumnMissing,
			Message: "A coluna 'localizacao' não foi encontrada no estoque.",
		})
	}

	snap = &Snapshot{
		ID:                 uuid.New(),
		Source:             l.src.Name(),
		Fingerprint:        fingerprint,
		LoadedAt:           time.Now().UTC(),
		Inventory:          inventory.Assemble(inv.Records, products),
		Sales:              sales.Assemble(rawSales, products, customers, sales.Options{StoreLabelPrefix: l.opts.StoreLabelPrefix}),
		CustomersAvailable: customersAvailable,
		Warnings:           warnings,
	}
	for _, s := range snap.Sales {
		if !s.HasDate() {
			snap.UndatedSales++
		}
	}
	if snap.UndatedSales > 0 {
		l.log.Debug().Int("undated_sales", snap.UndatedSales).Msg("ventas con fecha no interpretable")
	}

	l.metrics.SetRows("inventory", len(snap.Inventory))
	l.metrics.SetRows("sales", len(snap.Sales))
	l.metrics.SetRows("products", len(products))
	l.metrics.SetRows("customers", len(customers))

	l.log.Info().
		Str("snapshot_id", snap.ID.String()).
		Str("source", snap.Source).
		Int("inventory_rows", len(snap.Inventory)).
		Int("inventory_raw", len(inv.Records)).
		Int("products", len(products)).
		Int("sales", len(snap.Sales)).
		Int("customers", len(customers)).
		Dur("duration", time.Since(started)).
		Msg("datos cargados")

	return snap, nil
}
