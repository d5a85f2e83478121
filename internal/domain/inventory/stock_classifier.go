package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
)

// ClassifyStock implementa la regla de estado de stock (servicio de dominio, sin tabla de por medio).
//
//	cantidad < mínimo  → BELOW_MINIMUM
//	cantidad >= mínimo → OK
//	cualquiera nulo    → UNKNOWN
func ClassifyStock(quantity, minimum decimal.NullDecimal) entity.StockStatus {
	if !quantity.Valid || !minimum.Valid {
		return entity.StockStatusUnknown
	}
	if quantity.Decimal.LessThan(minimum.Decimal) {
		return entity.StockStatusBelowMinimum
	}
	return entity.StockStatusOK
}

// RowValue calcula cantidad × precio unitario; nulo si alguno de los dos es nulo.
func RowValue(quantity, unitPrice decimal.NullDecimal) decimal.NullDecimal {
	if !quantity.Valid || !unitPrice.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(quantity.Decimal.Mul(unitPrice.Decimal))
}
