package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-dashboard/internal/application/analytics"
	"github.com/jhoicas/estoque-dashboard/internal/application/filter"
	"github.com/jhoicas/estoque-dashboard/internal/application/loader"
	"github.com/jhoicas/estoque-dashboard/internal/application/report"
	"github.com/jhoicas/estoque-dashboard/internal/domain"
	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type staticSnapshots struct {
	snap *loader.Snapshot
	err  error
}

func (s staticSnapshots) Snapshot(context.Context) (*loader.Snapshot, error) { return s.snap, s.err }

type capturePDF struct {
	got report.InventoryReport
	err error
}

func (c *capturePDF) RenderInventoryReport(_ context.Context, r report.InventoryReport) ([]byte, error) {
	c.got = r
	return []byte("%PDF-fake"), c.err
}

type captureXLSX struct{ got report.SalesWorkbook }

func (c *captureXLSX) RenderSalesWorkbook(_ context.Context, w report.SalesWorkbook) ([]byte, error) {
	c.got = w
	return []byte("PK"), nil
}

func snapshot() *loader.Snapshot {
	qty := decimal.NewNullDecimal(decimal.NewFromInt(4))
	jan := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	return &loader.Snapshot{
		ID: uuid.New(),
		Inventory: []entity.AssembledInventoryRow{
			{InventoryRecord: entity.InventoryRecord{ProductID: "2", Location: "B", QuantityOnHand: qty}, ProductName: "Feijão", Category: "Grãos", Status: entity.StockStatusUnknown},
			{InventoryRecord: entity.InventoryRecord{ProductID: "1", Location: "A", QuantityOnHand: qty}, ProductName: "Café", Category: "Bebidas", Status: entity.StockStatusOK},
		},
		Sales: []entity.AssembledSaleRow{
			{Sale: entity.Sale{SaleID: "1", SaleDate: &jan, QuantitySold: decimal.NewFromInt(3), TotalValue: decimal.NewFromInt(30)}, ProductName: "Café", StoreLabel: "Loja 1"},
			{Sale: entity.Sale{SaleID: "2", QuantitySold: decimal.NewFromInt(1), TotalValue: decimal.NewFromInt(5)}, ProductName: "Feijão", StoreLabel: "Loja 2"},
		},
	}
}

func newUseCase(snaps analytics.SnapshotProvider, pdf *capturePDF, x *captureXLSX) *report.ExportUseCase {
	uc := report.NewExportUseCase(analytics.NewDashboardUseCase(snaps, 0), pdf, x)
	report.SetClock(uc, func() time.Time { return time.Date(2025, 3, 9, 14, 5, 0, 0, time.UTC) })
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF de inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryPDF(t *testing.T) {
	pdf := &capturePDF{}
	uc := newUseCase(staticSnapshots{snap: snapshot()}, pdf, &captureXLSX{})

	out, name, err := uc.InventoryPDF(context.Background(), filter.InventoryFilter{})
	require.NoError(t, err)

	assert.Equal(t, "%PDF-fake", string(out))
	assert.Equal(t, "estoque_20250309_1405.pdf", name)
	assert.Equal(t, "Controle de Estoque", pdf.got.Title)
	require.Len(t, pdf.got.Rows, 2)
	assert.Equal(t, "Café", pdf.got.Rows[0].ProductName, "orden del detalle por categoría")
	assert.Equal(t, 2, pdf.got.Metrics.TotalProducts)
}

func TestInventoryPDF_AplicaFiltro(t *testing.T) {
	pdf := &capturePDF{}
	uc := newUseCase(staticSnapshots{snap: snapshot()}, pdf, &captureXLSX{})

	_, _, err := uc.InventoryPDF(context.Background(), filter.InventoryFilter{Category: filter.Only("Grãos")})
	require.NoError(t, err)

	require.Len(t, pdf.got.Rows, 1)
	assert.Equal(t, "Feijão", pdf.got.Rows[0].ProductName)
}

func TestInventoryPDF_ErrorDeRender(t *testing.T) {
	boom := errors.New("boom")
	uc := newUseCase(staticSnapshots{snap: snapshot()}, &capturePDF{err: boom}, &captureXLSX{})

	_, _, err := uc.InventoryPDF(context.Background(), filter.InventoryFilter{})
	assert.ErrorIs(t, err, boom)
}

// ──────────────────────────────────────────────────────────────────────────────
// XLSX de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesXLSX(t *testing.T) {
	x := &captureXLSX{}
	uc := newUseCase(staticSnapshots{snap: snapshot()}, &capturePDF{}, x)

	_, name, err := uc.SalesXLSX(context.Background(), filter.SalesFilter{})
	require.NoError(t, err)

	assert.Equal(t, "vendas_20250309_1405.xlsx", name)
	require.Len(t, x.got.Rows, 2)
	assert.Equal(t, "05/01/2025", x.got.Rows[0].SaleDateLabel)
	require.Len(t, x.got.Series, 1, "la venta sin fecha no entra en la serie")
	assert.Equal(t, 2, x.got.Metrics.Transactions)
	assert.False(t, x.got.CustomersAvailable)
}

func TestSalesXLSX_FuenteNoDisponible(t *testing.T) {
	uc := newUseCase(staticSnapshots{err: domain.ErrSourceUnavailable}, &capturePDF{}, &captureXLSX{})

	_, _, err := uc.SalesXLSX(context.Background(), filter.SalesFilter{})
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
