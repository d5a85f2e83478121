package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-dashboard/internal/application/filter"
	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func invRows() []entity.AssembledInventoryRow {
	mk := func(id, loc, cat, brand string, st entity.StockStatus) entity.AssembledInventoryRow {
		return entity.AssembledInventoryRow{
			InventoryRecord: entity.InventoryRecord{ProductID: id, Location: loc},
			Category:        cat, Brand: brand, Status: st,
		}
	}
	return []entity.AssembledInventoryRow{
		mk("1", "A", "Bebidas", "X", entity.StockStatusOK),
		mk("2", "A", "Grãos", "Y", entity.StockStatusBelowMinimum),
		mk("3", "B", "Bebidas", "Y", entity.StockStatusUnknown),
		mk("4", "B", "", "X", entity.StockStatusOK),
	}
}

func saleRows() []entity.AssembledSaleRow {
	mk := func(id string, date *time.Time, store, product, customer string) entity.AssembledSaleRow {
		return entity.AssembledSaleRow{
			Sale:       entity.Sale{SaleID: id, SaleDate: date, PaymentMethod: "Pix", SalesChannel: "Online"},
			StoreLabel: store, ProductName: product, CustomerName: customer,
		}
	}
	return []entity.AssembledSaleRow{
		mk("1", day(2025, 1, 1), "Loja 2", "Arroz", "Ana"),
		mk("2", day(2025, 1, 15), "Loja 10", "Feijão", "Bruno"),
		mk("3", nil, "Loja 2", "Arroz", ""),
		mk("4", day(2025, 2, 1), "Loja 1", "Café", "Ana"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Selection
// ──────────────────────────────────────────────────────────────────────────────

func TestSelection_TriEstado(t *testing.T) {
	var zero filter.Selection
	assert.True(t, zero.IsAll(), "el valor cero no restringe")
	assert.True(t, filter.All().Matches("cualquiera"))

	empty := filter.Only()
	assert.False(t, empty.IsAll())
	assert.False(t, empty.Matches(""), "subconjunto vacío explícito no deja pasar nada")

	some := filter.Only("b", "a")
	assert.True(t, some.Matches("a"))
	assert.False(t, some.Matches("c"))
	assert.Equal(t, []string{"a", "b"}, some.Values())
	assert.Nil(t, filter.All().Values())
}

func TestDateRange_Contains(t *testing.T) {
	noon := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
	r := filter.DateRange{Start: day(2025, 1, 1), End: day(2025, 1, 31)}

	assert.True(t, r.Contains(day(2025, 1, 1)), "inicio inclusivo")
	assert.True(t, r.Contains(&noon), "fin inclusivo por día calendario")
	assert.False(t, r.Contains(day(2025, 2, 1)))
	assert.False(t, r.Contains(nil), "fecha nula excluida con rango activo")

	assert.True(t, filter.DateRange{}.Contains(nil), "sin rango todo pasa")
	assert.True(t, filter.DateRange{Start: day(2025, 1, 1)}.Contains(day(2030, 1, 1)), "fin abierto")

	inverted := filter.DateRange{Start: day(2025, 2, 1), End: day(2025, 1, 1)}
	assert.False(t, inverted.Contains(day(2025, 1, 15)), "inicio > fin no coincide con nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyInventory_SinRestriccionDevuelveTodo(t *testing.T) {
	rows := invRows()
	assert.Equal(t, rows, filter.ApplyInventory(rows, filter.InventoryFilter{}))
}

func TestApplyInventory_AND(t *testing.T) {
	got := filter.ApplyInventory(invRows(), filter.InventoryFilter{
		Category: filter.Only("Bebidas"),
		Brand:    filter.Only("Y"),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ProductID)

	got = filter.ApplyInventory(invRows(), filter.InventoryFilter{Status: filter.Only(string(entity.StockStatusOK))})
	assert.Len(t, got, 2)

	got = filter.ApplyInventory(invRows(), filter.InventoryFilter{Category: filter.Only("Grãos"), Location: filter.Only("B")})
	assert.Empty(t, got, "combinación imposible → cero filas, sin error")

	got = filter.ApplyInventory(invRows(), filter.InventoryFilter{Location: filter.Only()})
	assert.Empty(t, got)
}

func TestInventoryFacetOptions(t *testing.T) {
	opts := filter.InventoryFacetOptions(invRows())

	assert.Equal(t, []string{"Bebidas", "Grãos"}, opts.Categories, "sin vacíos, ordenado")
	assert.Equal(t, []string{"X", "Y"}, opts.Brands)
	assert.Equal(t, []string{"A", "B"}, opts.Locations)
	assert.Equal(t, []entity.StockStatus{
		entity.StockStatusOK, entity.StockStatusBelowMinimum, entity.StockStatusUnknown,
	}, opts.Statuses)

	empty := filter.InventoryFacetOptions(nil)
	assert.Empty(t, empty.Categories)
	assert.Empty(t, empty.Statuses)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestApplySales_RangoDeFechas(t *testing.T) {
	got := filter.ApplySales(saleRows(), filter.SalesFilter{
		Dates: filter.DateRange{Start: day(2025, 1, 1), End: day(2025, 1, 31)},
	})

	ids := []string{}
	for _, r := range got {
		ids = append(ids, r.SaleID)
	}
	assert.Equal(t, []string{"1", "2"}, ids, "la venta sin fecha queda fuera")

	all := filter.ApplySales(saleRows(), filter.SalesFilter{})
	assert.Len(t, all, 4, "sin filtro se conserva la venta sin fecha")
}

func TestApplySales_Facetas(t *testing.T) {
	got := filter.ApplySales(saleRows(), filter.SalesFilter{
		Store:    filter.Only("Loja 2"),
		Customer: filter.Only("Ana"),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].SaleID)

	got = filter.ApplySales(saleRows(), filter.SalesFilter{Channel: filter.Only("Loja física")})
	assert.Empty(t, got)
}

func TestSalesFacetOptions_EstablesYNumericas(t *testing.T) {
	rows := saleRows()
	opts := filter.SalesFacetOptions(rows, true)

	assert.Equal(t, []string{"Loja 1", "Loja 2", "Loja 10"}, opts.Stores, "orden numérico")
	assert.Equal(t, []string{"Arroz", "Café", "Feijão"}, opts.Products)
	assert.Equal(t, []string{"Ana", "Bruno"}, opts.Customers)
	assert.Equal(t, []string{"Pix"}, opts.PaymentMethods)
	require.NotNil(t, opts.MinDate)
	require.NotNil(t, opts.MaxDate)
	assert.Equal(t, *day(2025, 1, 1), *opts.MinDate)
	assert.Equal(t, *day(2025, 2, 1), *opts.MaxDate)

	// Las opciones salen de la tabla sin filtrar: filtrar por tienda no cambia las demás facetas.
	filtered := filter.ApplySales(rows, filter.SalesFilter{Store: filter.Only("Loja 1")})
	require.Len(t, filtered, 1)
	assert.Equal(t, opts, filter.SalesFacetOptions(rows, true))

	noCustomers := filter.SalesFacetOptions(rows, false)
	assert.Empty(t, noCustomers.Customers)
}
