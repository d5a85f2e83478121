package entity

import "github.com/shopspring/decimal"

// AssembledInventoryRow fila de inventario enriquecida con el producto (left join)
// y los campos derivados TotalValue y Status.
type AssembledInventoryRow struct {
	InventoryRecord

	ProductMatched bool // false si el producto no existe en el catálogo
	ProductName    string
	Category       string
	Brand          string
	UnitPrice      decimal.NullDecimal

	TotalValue decimal.NullDecimal // QuantityOnHand × UnitPrice; nulo si alguno es nulo
	Status     StockStatus
}

// AssembledSaleRow venta enriquecida con producto, cliente (opcional) y etiqueta de tienda.
type AssembledSaleRow struct {
	Sale

	ProductMatched bool
	ProductName    string
	Category       string
	Brand          string
	ListPrice      decimal.NullDecimal // preco_unitario del catálogo

	CustomerMatched bool
	CustomerName    string

	StoreLabel string
}
