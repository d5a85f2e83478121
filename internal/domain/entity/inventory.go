package entity

import "github.com/shopspring/decimal"

// DefaultLocationPlaceholder se inyecta cuando la fuente de inventario no trae la columna de localización.
const DefaultLocationPlaceholder = "Não especificado"

// InventoryRecord representa el stock de un producto en una localización.
// Clave natural: (ProductID, Location). Las cantidades son nulas si la fuente no trae un número válido.
type InventoryRecord struct {
	ProductID       string
	Location        string
	QuantityOnHand  decimal.NullDecimal
	MinimumQuantity decimal.NullDecimal
}

// InventoryKey clave natural de un InventoryRecord.
type InventoryKey struct {
	ProductID string
	Location  string
}

// Key devuelve la clave natural del registro.
func (r InventoryRecord) Key() InventoryKey {
	return InventoryKey{ProductID: r.ProductID, Location: r.Location}
}
