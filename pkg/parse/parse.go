// Package parse convierte los valores de texto de las fuentes (CSV o columnas text de
// PostgreSQL) en fechas, decimales e identificadores. Ninguna función devuelve error:
// un valor no interpretable queda nulo o en cero según la regla de cada campo.
package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dayFirstLayouts formatos aceptados para fechas, siempre día antes que mes.
// ISO (año primero) también se acepta porque no es ambiguo; la variante con zona cubre
// timestamptz convertido a texto por PostgreSQL.
var dayFirstLayouts = []string{
	"2/1/2006",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2-1-2006",
	"2-1-2006 15:04",
	"2-1-2006 15:04:05",
	"2.1.2006",
	"2/1/06",
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07",
	time.RFC3339,
}

// DayFirst interpreta una fecha con el día primero. Devuelve nil si no es válida.
func DayFirst(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t
		}
	}
	return nil
}

// ptBRGrouped "1.234,56": miles con punto en grupos de tres y coma decimal.
var ptBRGrouped = regexp.MustCompile(`^[+-]?\d{1,3}(\.\d{3})+,\d+$`)

// Decimal interpreta un número con punto decimal ("2.5") o en formato pt-BR ("1.234,56", "2,5").
// ok=false para vacío, texto no numérico o cualquier otra combinación de separadores
// ("1,234.56" no se reinterpreta).
func Decimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	hasComma := strings.Contains(s, ",")
	switch {
	case hasComma && strings.Contains(s, "."):
		if !ptBRGrouped.MatchString(s) {
			return decimal.Zero, false
		}
		s = strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1)
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// NullDecimal versión nullable de Decimal.
func NullDecimal(s string) decimal.NullDecimal {
	d, ok := Decimal(s)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// DecimalOrZero aplica la regla "no numérico → 0".
func DecimalOrZero(s string) decimal.Decimal {
	d, _ := Decimal(s)
	return d
}

// TotalOrProduct devuelve el total informado o, si no es numérico, cantidad × valor unitario.
func TotalOrProduct(total string, qty, unit decimal.Decimal) decimal.Decimal {
	if d, ok := Decimal(total); ok {
		return d
	}
	return qty.Mul(unit)
}

// ID recorta el identificador y canoniza enteros escritos como flotantes ("7.0" → "7"),
// para que los joins entre fuentes exportadas con tipos distintos coincidan.
func ID(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1e15 {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}
