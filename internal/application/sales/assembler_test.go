package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-dashboard/internal/application/sales"
	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

var catalog = []entity.Product{
	{ProductID: "1", Name: "Arroz", Category: "Grãos", Brand: "Tio", UnitPrice: decimal.NewNullDecimal(decimal.NewFromInt(4))},
}

func TestAssemble_JoinProductoYCliente(t *testing.T) {
	in := []entity.Sale{
		{SaleID: "10", SaleDate: day(2025, 1, 5), StoreID: "3", ProductID: "1", CustomerID: "100"},
		{SaleID: "11", StoreID: "", ProductID: "404", CustomerID: "999"},
	}
	customers := []entity.Customer{{CustomerID: "100", Name: "Ana"}}

	rows := sales.Assemble(in, catalog, customers, sales.Options{})

	require.Len(t, rows, 2)
	assert.True(t, rows[0].ProductMatched)
	assert.Equal(t, "Arroz", rows[0].ProductName)
	assert.True(t, rows[0].ListPrice.Decimal.Equal(decimal.NewFromInt(4)))
	assert.True(t, rows[0].CustomerMatched)
	assert.Equal(t, "Ana", rows[0].CustomerName)
	assert.Equal(t, "Loja 3", rows[0].StoreLabel)

	assert.False(t, rows[1].ProductMatched, "left join conserva la venta")
	assert.False(t, rows[1].CustomerMatched)
	assert.Empty(t, rows[1].StoreLabel, "tienda vacía → etiqueta vacía")
	assert.Nil(t, rows[1].SaleDate, "la venta sin fecha se conserva")
}

func TestAssemble_SinClientes(t *testing.T) {
	in := []entity.Sale{
		{SaleID: "1", ProductID: "1", CustomerID: "100"},
		{SaleID: "2", ProductID: "1", CustomerID: "101"},
	}

	rows := sales.Assemble(in, catalog, nil, sales.Options{StoreLabelPrefix: "Store"})

	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.False(t, r.CustomerMatched)
		assert.Empty(t, r.CustomerName)
	}
}

func TestAssemble_ConservaTotales(t *testing.T) {
	in := []entity.Sale{{SaleID: "1", ProductID: "1", QuantitySold: decimal.NewFromInt(3),
		UnitValue: decimal.RequireFromString("4.5"), TotalValue: decimal.RequireFromString("13.5")}}

	rows := sales.Assemble(in, nil, nil, sales.Options{})

	require.Len(t, rows, 1)
	assert.True(t, rows[0].TotalValue.Equal(decimal.RequireFromString("13.5")))
}

func TestStoreLabel(t *testing.T) {
	assert.Equal(t, "Loja 7", sales.StoreLabel("", "7"))
	assert.Equal(t, "Store 7", sales.StoreLabel("Store", " 7 "))
	assert.Equal(t, "", sales.StoreLabel("Loja", "  "))
}
