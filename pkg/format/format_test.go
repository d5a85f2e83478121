package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-dashboard/pkg/format"
)

func TestThousands(t *testing.T) {
	assert.Equal(t, "0", format.Thousands(0))
	assert.Equal(t, "999", format.Thousands(999))
	assert.Equal(t, "1.234", format.Thousands(1234))
	assert.Equal(t, "1.234.567", format.Thousands(1234567))
	assert.Equal(t, "-25.000", format.Thousands(-25000))
	assert.Equal(t, format.Decimal(decimal.NewFromInt(9876543), 0), format.Thousands(9876543), "mismo agrupamiento que Decimal")
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", format.Currency(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 0,00", format.Currency(decimal.Zero))
	assert.Equal(t, "R$ 10,50", format.Currency(decimal.RequireFromString("10.5")))
}

func TestCompactCurrency(t *testing.T) {
	cases := map[string]string{
		"999.99":     "R$ 999,99",
		"12000":      "R$ 12 Mil",
		"1250000":    "R$ 1.3 Mi",
		"3400000000": "R$ 3.4 Bi",
	}
	for in, want := range cases {
		assert.Equal(t, want, format.CompactCurrency(decimal.RequireFromString(in)), in)
	}
}

func TestMonthLabelYDate(t *testing.T) {
	d := time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "jan/25", format.MonthLabel(d))
	assert.Equal(t, "dez/24", format.MonthLabel(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "07/01/2025", format.Date(&d))
	assert.Equal(t, "", format.Date(nil))
}
