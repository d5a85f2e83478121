package parse_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-dashboard/pkg/parse"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fechas
// ──────────────────────────────────────────────────────────────────────────────

func TestDayFirst(t *testing.T) {
	want := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"01/02/2025", "1/2/2025", "01-02-2025", "01.02.2025", "2025-02-01", " 01/02/25 "} {
		got := parse.DayFirst(in)
		require.NotNil(t, got, in)
		assert.Equal(t, want, *got, in)
	}

	withTime := parse.DayFirst("01/02/2025 14:30")
	require.NotNil(t, withTime)
	assert.Equal(t, 14, withTime.Hour())

	for _, in := range []string{"", "31/02/2025", "amanhã", "13/13/2025"} {
		assert.Nil(t, parse.DayFirst(in), in)
	}
}

func TestDayFirst_TextoDePostgres(t *testing.T) {
	tz := parse.DayFirst("2025-01-31 14:30:00+00")
	require.NotNil(t, tz, "timestamptz::text")
	assert.Equal(t, 31, tz.Day())

	frac := parse.DayFirst("2025-01-31 14:30:00.123")
	require.NotNil(t, frac, "segundos fraccionarios")
	assert.Equal(t, time.January, frac.Month())

	dm := parse.DayFirst("31/01/2025")
	require.NotNil(t, dm)
	assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), *dm)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decimales
// ──────────────────────────────────────────────────────────────────────────────

func TestDecimal(t *testing.T) {
	cases := map[string]string{
		"2.5":          "2.5",
		"2,5":          "2.5",
		"1.234,56":     "1234.56",
		"-1.234.567,8": "-1234567.8",
		"-3":           "-3",
		" 10 ":         "10",
	}
	for in, want := range cases {
		got, ok := parse.Decimal(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got.String(), in)
	}

	for _, in := range []string{"", "abc", "1,2,3", "1,234.56", "1,000.50", "12,345.6", "1.23,4", "12.34,5"} {
		_, ok := parse.Decimal(in)
		assert.False(t, ok, in)
	}
}

func TestNullDecimalYDecimalOrZero(t *testing.T) {
	assert.False(t, parse.NullDecimal("1,000.50").Valid, "separadores mezclados en orden inglés → nulo")
	assert.True(t, parse.NullDecimal("4,5").Decimal.Equal(decimal.RequireFromString("4.5")))
	assert.True(t, parse.DecimalOrZero("abc").IsZero())
	assert.True(t, parse.DecimalOrZero("1,000.50").IsZero())
}

func TestTotalOrProduct(t *testing.T) {
	qty, unit := decimal.NewFromInt(3), decimal.RequireFromString("4.5")

	assert.True(t, parse.TotalOrProduct("", qty, unit).Equal(decimal.RequireFromString("13.5")), "total vacío → qty × unit")
	assert.True(t, parse.TotalOrProduct("abc", qty, unit).Equal(decimal.RequireFromString("13.5")))
	assert.True(t, parse.TotalOrProduct("10", qty, unit).Equal(decimal.NewFromInt(10)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Identificadores
// ──────────────────────────────────────────────────────────────────────────────

func TestID(t *testing.T) {
	assert.Equal(t, "7", parse.ID("7.0"))
	assert.Equal(t, "7", parse.ID(" 7 "))
	assert.Equal(t, "7.5", parse.ID("7.5"))
	assert.Equal(t, "SKU-01", parse.ID("SKU-01"))
	assert.Equal(t, "", parse.ID(""))
}
