// Package analytics contiene los agregados del tablero (KPIs, rankings, series)
// y los casos de uso que los exponen como DTOs.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/estoque-dashboard/internal/application/dto"
	"github.com/jhoicas/estoque-dashboard/internal/application/filter"
	"github.com/jhoicas/estoque-dashboard/internal/application/inventory"
	"github.com/jhoicas/estoque-dashboard/internal/application/loader"
	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
)

// NoticeEmptyResult nota informativa cuando el filtro no deja filas.
const NoticeEmptyResult = "EMPTY_RESULT"

// SnapshotProvider entrega el snapshot vigente (implementado por loader.Cache).
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*loader.Snapshot, error)
}

// DashboardUseCase arma los tableros de inventario y ventas.
//
// Cada llamada: snapshot (cacheado) → filtro → agregados → DTO.
// El snapshot nunca se modifica; todo lo derivado es un slice nuevo.
type DashboardUseCase struct {
	snapshots SnapshotProvider
	topN      int
}

// NewDashboardUseCase construye el caso de uso. topN <= 0 usa DefaultTopN.
func NewDashboardUseCase(snapshots SnapshotProvider, topN int) *DashboardUseCase {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &DashboardUseCase{snapshots: snapshots, topN: topN}
}

// InventoryView filas filtradas de inventario junto al snapshot de origen.
type InventoryView struct {
	Snapshot *loader.Snapshot
	Rows     []entity.AssembledInventoryRow
}

// SalesView ventas filtradas junto al snapshot de origen.
type SalesView struct {
	Snapshot *loader.Snapshot
	Rows     []entity.AssembledSaleRow
}

// FilterInventory aplica las facetas de inventario sobre el snapshot vigente.
func (uc *DashboardUseCase) FilterInventory(ctx context.Context, f filter.InventoryFilter) (*InventoryView, error) {
	snap, err := uc.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard inventario: %w", err)
	}
	return &InventoryView{Snapshot: snap, Rows: filter.ApplyInventory(snap.Inventory, f)}, nil
}

// FilterSales aplica las facetas de ventas. Sin tabla de clientes la faceta de cliente se ignora.
func (uc *DashboardUseCase) FilterSales(ctx context.Context, f filter.SalesFilter) (*SalesView, error) {
	snap, err := uc.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard ventas: %w", err)
	}
	if !snap.CustomersAvailable {
		f.Customer = filter.All()
	}
	return &SalesView{Snapshot: snap, Rows: filter.ApplySales(snap.Sales, f)}, nil
}

// GetInventoryDashboard KPIs, gráficos y tabla de detalle del inventario filtrado.
func (uc *DashboardUseCase) GetInventoryDashboard(
	ctx context.Context,
	f filter.InventoryFilter,
	topN int,
) (*dto.InventoryDashboardDTO, error) {
	view, err := uc.FilterInventory(ctx, f)
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = uc.topN
	}

	metrics := ComputeInventoryMetrics(view.Rows)

	comparison := StockVsMinimum(view.Rows, topN)
	cmpDTO := make([]dto.StockComparisonDTO, 0, len(comparison))
	for _, c := range comparison {
		cmpDTO = append(cmpDTO, dto.StockComparisonDTO{
			ProductName: c.ProductName,
			OnHand:      c.OnHand,
			MeanMinimum: c.MeanMinimum,
		})
	}

	shares := CategoryDistribution(view.Rows)
	sharesDTO := make([]dto.CategoryShareDTO, 0, len(shares))
	for _, s := range shares {
		sharesDTO = append(sharesDTO, dto.CategoryShareDTO{Category: s.Category, Rows: s.Rows, Percent: s.Percent})
	}

	return &dto.InventoryDashboardDTO{
		Snapshot:             SnapshotInfo(view.Snapshot),
		Metrics:              InventoryMetricsDTO(metrics),
		StockVsMinimum:       cmpDTO,
		CategoryDistribution: sharesDTO,
		Rows:                 InventoryRowsDTO(inventory.DetailOrder(view.Rows)),
		Warnings:             WarningsDTO(view.Snapshot),
		Notices:              notices(len(view.Rows)),
	}, nil
}

// GetSalesDashboard KPIs, serie mensual, Top-N y tabla de las ventas filtradas.
func (uc *DashboardUseCase) GetSalesDashboard(
	ctx context.Context,
	f filter.SalesFilter,
	topN int,
) (*dto.SalesDashboardDTO, error) {
	view, err := uc.FilterSales(ctx, f)
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = uc.topN
	}

	m := ComputeSalesMetrics(view.Rows)

	top := TopProductsSold(view.Rows, topN)
	topDTO := make([]dto.RankedDTO, 0, len(top))
	for _, r := range top {
		topDTO = append(topDTO, dto.RankedDTO{Name: r.Key, Quantity: r.Value})
	}

	return &dto.SalesDashboardDTO{
		Snapshot:      SnapshotInfo(view.Snapshot),
		Metrics:       SalesMetricsDTO(m),
		MonthlySeries: MonthlySeriesDTO(MonthlySeries(view.Rows)),
		TopProducts:   topDTO,
		Rows:          SaleRowsDTO(view.Rows, view.Snapshot.CustomersAvailable),
		Warnings:      WarningsDTO(view.Snapshot),
		Notices:       notices(len(view.Rows)),
	}, nil
}

// GetInventoryFacets opciones de cada faceta, siempre sobre la tabla sin filtrar.
func (uc *DashboardUseCase) GetInventoryFacets(ctx context.Context) (*dto.InventoryFacetsDTO, error) {
	snap, err := uc.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("facetas inventario: %w", err)
	}
	opts := filter.InventoryFacetOptions(snap.Inventory)
	statuses := make([]dto.StatusOptionDTO, 0, len(opts.Statuses))
	for _, s := range opts.Statuses {
		statuses = append(statuses, dto.StatusOptionDTO{Code: string(s), Label: s.Label()})
	}
	return &dto.InventoryFacetsDTO{
		Categories: opts.Categories,
		Brands:     opts.Brands,
		Locations:  opts.Locations,
		Statuses:   statuses,
	}, nil
}

// GetSalesFacets opciones de las facetas de ventas y el rango de fechas disponible.
func (uc *DashboardUseCase) GetSalesFacets(ctx context.Context) (*dto.SalesFacetsDTO, error) {
	snap, err := uc.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("facetas ventas: %w", err)
	}
	opts := filter.SalesFacetOptions(snap.Sales, snap.CustomersAvailable)
	out := &dto.SalesFacetsDTO{
		Stores:             opts.Stores,
		Products:           opts.Products,
		CustomersAvailable: snap.CustomersAvailable,
		PaymentMethods:     opts.PaymentMethods,
		Channels:           opts.Channels,
		MinDate:            isoDate(opts.MinDate),
		MaxDate:            isoDate(opts.MaxDate),
	}
	if snap.CustomersAvailable {
		out.Customers = opts.Customers
	}
	return out, nil
}

func notices(rows int) []dto.SignalDTO {
	if rows > 0 {
		return []dto.SignalDTO{}
	}
	return []dto.SignalDTO{{Code: NoticeEmptyResult, Message: "Nenhum dado disponível."}}
}
