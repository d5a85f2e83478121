// Package format convierte números y fechas a las cadenas que muestra el tablero (pt-BR).
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
)

var monthAbbr = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// Thousands separa miles con punto: 1234567 → "1.234.567".
func Thousands(n int64) string {
	return ptBR.Sprintf("%d", n)
}

// Decimal formatea con places decimales, miles con '.' y coma decimal: 1234.5 → "1.234,50".
// Agrupa sobre el string exacto de decimal, sin pasar por float64.
func Decimal(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	out := groupThousands(intPart)
	if frac != "" {
		out += "," + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Currency "R$ 1.234,56".
func Currency(d decimal.Decimal) string {
	return "R$ " + Decimal(d, 2)
}

// CompactCurrency abrevia montos grandes: "R$ 3.4 Bi", "R$ 1.2 Mi", "R$ 12 Mil";
// por debajo de mil usa Currency.
func CompactCurrency(d decimal.Decimal) string {
	switch {
	case d.GreaterThanOrEqual(billion):
		return "R$ " + d.Div(billion).StringFixed(1) + " Bi"
	case d.GreaterThanOrEqual(million):
		return "R$ " + d.Div(million).StringFixed(1) + " Mi"
	case d.GreaterThanOrEqual(thousand):
		return "R$ " + d.Div(thousand).StringFixed(0) + " Mil"
	default:
		return Currency(d)
	}
}

// MonthLabel "jan/25".
func MonthLabel(t time.Time) string {
	return monthAbbr[t.Month()-1] + "/" + t.Format("06")
}

// Date "02/01/2006"; cadena vacía para fecha nula.
func Date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

// groupThousands inserta puntos de miles en un string de dígitos.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
