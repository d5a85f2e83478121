// Package report genera los archivos descargables del tablero (PDF de inventario, XLSX de ventas).
// El render concreto vive en infrastructure/pdf e infrastructure/xlsx.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-dashboard/internal/application/analytics"
	"github.com/jhoicas/estoque-dashboard/internal/application/dto"
	"github.com/jhoicas/estoque-dashboard/internal/application/filter"
	"github.com/jhoicas/estoque-dashboard/internal/application/inventory"
)

// InventoryReport datos del PDF de inventario.
type InventoryReport struct {
	Title       string
	GeneratedAt time.Time
	SnapshotID  string
	Metrics     dto.InventoryMetricsDTO
	Rows        []dto.InventoryRowDTO
	Warnings    []dto.SignalDTO
}

// SalesWorkbook datos del XLSX de ventas.
type SalesWorkbook struct {
	GeneratedAt        time.Time
	SnapshotID         string
	CustomersAvailable bool
	Metrics            dto.SalesMetricsDTO
	Rows               []dto.SaleRowDTO
	Series             []dto.MonthPointDTO
}

// InventoryPDFRenderer puerto de render del PDF de inventario.
type InventoryPDFRenderer interface {
	RenderInventoryReport(ctx context.Context, r InventoryReport) ([]byte, error)
}

// SalesWorkbookRenderer puerto de render del libro de ventas.
type SalesWorkbookRenderer interface {
	RenderSalesWorkbook(ctx context.Context, w SalesWorkbook) ([]byte, error)
}

// ExportUseCase aplica los mismos filtros del tablero y entrega el archivo renderizado.
type ExportUseCase struct {
	dashboards *analytics.DashboardUseCase
	pdf        InventoryPDFRenderer
	xlsx       SalesWorkbookRenderer
	now        func() time.Time
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(
	dashboards *analytics.DashboardUseCase,
	pdf InventoryPDFRenderer,
	xlsx SalesWorkbookRenderer,
) *ExportUseCase {
	return &ExportUseCase{dashboards: dashboards, pdf: pdf, xlsx: xlsx, now: time.Now}
}

// InventoryPDF devuelve el PDF y el nombre sugerido del archivo.
func (uc *ExportUseCase) InventoryPDF(ctx context.Context, f filter.InventoryFilter) ([]byte, string, error) {
	view, err := uc.dashboards.FilterInventory(ctx, f)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()

	doc, err := uc.pdf.RenderInventoryReport(ctx, InventoryReport{
		Title:       "Controle de Estoque",
		GeneratedAt: now,
		SnapshotID:  view.Snapshot.ID.String(),
		Metrics:     analytics.InventoryMetricsDTO(analytics.ComputeInventoryMetrics(view.Rows)),
		Rows:        analytics.InventoryRowsDTO(inventory.DetailOrder(view.Rows)),
		Warnings:    analytics.WarningsDTO(view.Snapshot),
	})
	if err != nil {
		return nil, "", fmt.Errorf("exportar pdf de inventario: %w", err)
	}
	return doc, "estoque_" + now.Format("20060102_1504") + ".pdf", nil
}

// SalesXLSX devuelve el libro de ventas y el nombre sugerido del archivo.
func (uc *ExportUseCase) SalesXLSX(ctx context.Context, f filter.SalesFilter) ([]byte, string, error) {
	view, err := uc.dashboards.FilterSales(ctx, f)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()

	doc, err := uc.xlsx.RenderSalesWorkbook(ctx, SalesWorkbook{
		GeneratedAt:        now,
		SnapshotID:         view.Snapshot.ID.String(),
		CustomersAvailable: view.Snapshot.CustomersAvailable,
		Metrics:            analytics.SalesMetricsDTO(analytics.ComputeSalesMetrics(view.Rows)),
		Rows:               analytics.SaleRowsDTO(view.Rows, view.Snapshot.CustomersAvailable),
		Series:             analytics.MonthlySeriesDTO(analytics.MonthlySeries(view.Rows)),
	})
	if err != nil {
		return nil, "", fmt.Errorf("exportar xlsx de ventas: %w", err)
	}
	return doc, "vendas_" + now.Format("20060102_1504") + ".xlsx", nil
}
