package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-dashboard/internal/application/analytics"
	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
)

func d(s string) decimal.Decimal      { return decimal.RequireFromString(s) }
func nd(s string) decimal.NullDecimal { return decimal.NewNullDecimal(d(s)) }

func day(y int, m time.Month, dd int) *time.Time {
	t := time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	return &t
}

func inv(id, name, cat, qty, min string, st entity.StockStatus, value string) entity.AssembledInventoryRow {
	r := entity.AssembledInventoryRow{
		InventoryRecord: entity.InventoryRecord{ProductID: id, Location: "A"},
		ProductName:     name, Category: cat, Status: st,
	}
	if qty != "" {
		r.QuantityOnHand = nd(qty)
	}
	if min != "" {
		r.MinimumQuantity = nd(min)
	}
	if value != "" {
		r.TotalValue = nd(value)
	}
	return r
}

func sale(name string, date *time.Time, qty, total string) entity.AssembledSaleRow {
	return entity.AssembledSaleRow{
		Sale:        entity.Sale{SaleDate: date, QuantitySold: d(qty), TotalValue: d(total)},
		ProductName: name,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablas vacías
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregados_TablaVacia(t *testing.T) {
	im := analytics.ComputeInventoryMetrics(nil)
	assert.Zero(t, im.DistinctProducts)
	assert.Zero(t, im.TotalQuantity)
	assert.True(t, im.TotalValue.IsZero())
	assert.Zero(t, im.BelowMinimumProducts)

	sm := analytics.ComputeSalesMetrics(nil)
	assert.Zero(t, sm.Transactions)
	assert.True(t, sm.Revenue.IsZero())
	assert.True(t, sm.MeanTransaction.IsZero(), "sin división por cero")

	assert.Empty(t, analytics.TopProductsSold(nil, 10))
	assert.Empty(t, analytics.StockVsMinimum(nil, 10))
	assert.Empty(t, analytics.CategoryDistribution(nil))
	assert.Empty(t, analytics.MonthlySeries(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeInventoryMetrics(t *testing.T) {
	rows := []entity.AssembledInventoryRow{
		inv("1", "Arroz", "Grãos", "5", "10", entity.StockStatusBelowMinimum, "10"),
		inv("1", "Arroz", "Grãos", "2.5", "1", entity.StockStatusOK, "5"),
		inv("2", "Café", "Bebidas", "", "3", entity.StockStatusUnknown, ""),
		inv("3", "Chá", "Bebidas", "1", "4", entity.StockStatusBelowMinimum, ""),
	}

	m := analytics.ComputeInventoryMetrics(rows)

	assert.Equal(t, 3, m.DistinctProducts)
	assert.EqualValues(t, 8, m.TotalQuantity, "8.5 → parte entera")
	assert.True(t, m.TotalValue.Equal(d("15")))
	assert.Equal(t, 2, m.BelowMinimumProducts, "distintos por producto")
	assert.Equal(t, 1, m.UnknownStatusRows)
}

func TestComputeSalesMetrics(t *testing.T) {
	rows := []entity.AssembledSaleRow{
		sale("A", nil, "3", "13.5"),
		sale("B", nil, "1", "6.5"),
	}

	m := analytics.ComputeSalesMetrics(rows)

	assert.EqualValues(t, 4, m.ItemsSold)
	assert.True(t, m.Revenue.Equal(d("20")))
	assert.Equal(t, 2, m.Transactions)
	assert.True(t, m.MeanTransaction.Equal(d("10")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rankings
// ──────────────────────────────────────────────────────────────────────────────

func TestTopN_LimiteYOrden(t *testing.T) {
	var rows []entity.AssembledSaleRow
	for i := 0; i < 15; i++ {
		rows = append(rows, sale(fmt.Sprintf("P%02d", i), nil, fmt.Sprint(i+1), "0"))
	}

	top := analytics.TopProductsSold(rows, 0)

	require.Len(t, top, analytics.DefaultTopN)
	assert.Equal(t, "P14", top[0].Key)
	for i := 1; i < len(top); i++ {
		assert.True(t, top[i-1].Value.GreaterThanOrEqual(top[i].Value), "orden descendente")
	}
}

func TestTopN_EmpatesEstables(t *testing.T) {
	rows := []entity.AssembledSaleRow{
		sale("B", nil, "2", "0"),
		sale("A", nil, "2", "0"),
		sale("C", nil, "5", "0"),
		sale("", nil, "100", "0"),
		sale("B", nil, "0", "0"),
	}

	top := analytics.TopProductsSold(rows, 10)

	keys := []string{}
	for _, g := range top {
		keys = append(keys, g.Key)
	}
	assert.Equal(t, []string{"C", "B", "A"}, keys, "empate B/A respeta primera aparición; clave vacía descartada")
}

func TestStockVsMinimum(t *testing.T) {
	rows := []entity.AssembledInventoryRow{
		inv("1", "Arroz", "Grãos", "5", "10", entity.StockStatusBelowMinimum, ""),
		inv("1", "Arroz", "Grãos", "7", "", entity.StockStatusUnknown, ""),
		inv("2", "Café", "Bebidas", "20", "2", entity.StockStatusOK, ""),
		inv("3", "Chá", "Bebidas", "1", "", entity.StockStatusUnknown, ""),
	}

	got := analytics.StockVsMinimum(rows, 10)

	require.Len(t, got, 3)
	assert.Equal(t, "Café", got[0].ProductName)
	assert.Equal(t, "Arroz", got[1].ProductName)
	assert.True(t, got[1].OnHand.Equal(d("12")))
	assert.True(t, got[1].MeanMinimum.Decimal.Equal(d("10")), "promedio solo sobre mínimos presentes")
	assert.False(t, got[2].MeanMinimum.Valid)
}

func TestCategoryDistribution(t *testing.T) {
	rows := []entity.AssembledInventoryRow{
		inv("1", "", "Grãos", "", "", entity.StockStatusUnknown, ""),
		inv("2", "", "Bebidas", "", "", entity.StockStatusUnknown, ""),
		inv("3", "", "Bebidas", "", "", entity.StockStatusUnknown, ""),
		inv("4", "", "", "", "", entity.StockStatusUnknown, ""),
	}

	got := analytics.CategoryDistribution(rows)

	require.Len(t, got, 2)
	assert.Equal(t, "Bebidas", got[0].Category)
	assert.Equal(t, 2, got[0].Rows)
	assert.True(t, got[0].Percent.Equal(d("66.67")))
	assert.True(t, got[1].Percent.Equal(d("33.33")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Serie mensual
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlySeries_SinRellenoYAscendente(t *testing.T) {
	rows := []entity.AssembledSaleRow{
		sale("A", day(2025, 3, 10), "2", "0"),
		sale("A", day(2025, 1, 31), "1", "0"),
		sale("A", day(2025, 3, 1), "4", "0"),
		sale("A", nil, "50", "0"),
	}

	got := analytics.MonthlySeries(rows)

	require.Len(t, got, 2, "febrero no aparece; la venta sin fecha no cuenta")
	assert.Equal(t, *day(2025, 1, 1), got[0].Month)
	assert.True(t, got[0].Value.Equal(d("1")))
	assert.Equal(t, *day(2025, 3, 1), got[1].Month)
	assert.True(t, got[1].Value.Equal(d("6")))
}
