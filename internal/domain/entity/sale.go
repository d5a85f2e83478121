package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una transacción de venta (FCD_vendas).
//
// SaleDate es nil cuando la fecha de la fuente no se pudo interpretar (día primero).
// QuantitySold y UnitValue valen 0 si faltan o no son numéricos; TotalValue se recalcula
// como QuantitySold × UnitValue en ese mismo caso.
type Sale struct {
	SaleID        string
	SaleDate      *time.Time
	StoreID       string
	ProductID     string
	CustomerID    string
	QuantitySold  decimal.Decimal
	UnitValue     decimal.Decimal
	TotalValue    decimal.Decimal
	PaymentMethod string
	SalesChannel  string
}

// HasDate indica si la venta tiene una fecha válida.
func (s Sale) HasDate() bool { return s.SaleDate != nil }
