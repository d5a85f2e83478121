package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
)

// DefaultTopN tamaño por defecto de los rankings.
const DefaultTopN = 10

// InventoryMetrics indicadores del tablero de inventario.
type InventoryMetrics struct {
	DistinctProducts     int
	TotalQuantity        int64 // parte entera de la suma
	TotalValue           decimal.Decimal
	BelowMinimumProducts int // productos distintos con al menos una fila BELOW_MINIMUM
	UnknownStatusRows    int
}

// SalesMetrics indicadores del tablero de ventas.
type SalesMetrics struct {
	ItemsSold       int64
	Revenue         decimal.Decimal
	Transactions    int
	MeanTransaction decimal.Decimal // 0 con tabla vacía
}

// Ranked grupo de un ranking Top-N.
type Ranked struct {
	Key   string
	Value decimal.Decimal
}

// StockComparison barra del gráfico stock actual vs mínimo.
type StockComparison struct {
	ProductName string
	OnHand      decimal.Decimal
	MeanMinimum decimal.NullDecimal // nulo si ninguna fila del producto tiene mínimo
}

// CategoryShare porción del gráfico de distribución por categoría.
type CategoryShare struct {
	Category string
	Rows     int
	Percent  decimal.Decimal // 0–100, dos decimales
}

// MonthPoint punto de la serie mensual. Month es el día 1 del mes (UTC).
type MonthPoint struct {
	Month time.Time
	Value decimal.Decimal
}

// ComputeInventoryMetrics calcula los KPIs de inventario. Los valores nulos no suman.
func ComputeInventoryMetrics(rows []entity.AssembledInventoryRow) InventoryMetrics {
	var m InventoryMetrics
	products := map[string]struct{}{}
	below := map[string]struct{}{}
	qty := decimal.Zero
	m.TotalValue = decimal.Zero

	for _, r := range rows {
		if r.ProductID != "" {
			products[r.ProductID] = struct{}{}
		}
		if r.QuantityOnHand.Valid {
			qty = qty.Add(r.QuantityOnHand.Decimal)
		}
		if r.TotalValue.Valid {
			m.TotalValue = m.TotalValue.Add(r.TotalValue.Decimal)
		}
		switch r.Status {
		case entity.StockStatusBelowMinimum:
			below[r.ProductID] = struct{}{}
		case entity.StockStatusUnknown:
			m.UnknownStatusRows++
		}
	}
	m.DistinctProducts = len(products)
	m.BelowMinimumProducts = len(below)
	m.TotalQuantity = qty.IntPart()
	return m
}

// ComputeSalesMetrics calcula los KPIs de ventas. Cada fila cuenta como una transacción.
func ComputeSalesMetrics(rows []entity.AssembledSaleRow) SalesMetrics {
	m := SalesMetrics{Revenue: decimal.Zero, MeanTransaction: decimal.Zero}
	items := decimal.Zero
	for _, r := range rows {
		items = items.Add(r.QuantitySold)
		m.Revenue = m.Revenue.Add(r.TotalValue)
	}
	m.ItemsSold = items.IntPart()
	m.Transactions = len(rows)
	if m.Transactions > 0 {
		m.MeanTransaction = m.Revenue.Div(decimal.NewFromInt(int64(m.Transactions)))
	}
	return m
}

// TopN agrupa por key sumando measure y devuelve los n grupos mayores en orden descendente.
// Los empates conservan el orden de primera aparición. Las claves vacías se descartan.
// n <= 0 usa DefaultTopN.
func TopN[T any](rows []T, n int, key func(T) string, measure func(T) decimal.Decimal) []Ranked {
	if n <= 0 {
		n = DefaultTopN
	}
	index := map[string]int{}
	groups := make([]Ranked, 0)
	for _, r := range rows {
		k := key(r)
		if k == "" {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Ranked{Key: k, Value: decimal.Zero})
		}
		groups[i].Value = groups[i].Value.Add(measure(r))
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Value.GreaterThan(groups[j].Value)
	})
	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// TopProductsSold ranking de productos por cantidad vendida.
func TopProductsSold(rows []entity.AssembledSaleRow, n int) []Ranked {
	return TopN(rows, n,
		func(r entity.AssembledSaleRow) string { return r.ProductName },
		func(r entity.AssembledSaleRow) decimal.Decimal { return r.QuantitySold },
	)
}

// StockVsMinimum top-n productos por stock total, con el mínimo promedio de sus localizaciones.
func StockVsMinimum(rows []entity.AssembledInventoryRow, n int) []StockComparison {
	type acc struct {
		minSum decimal.Decimal
		minCnt int64
	}
	mins := map[string]*acc{}
	for _, r := range rows {
		if r.ProductName == "" {
			continue
		}
		a, ok := mins[r.ProductName]
		if !ok {
			a = &acc{minSum: decimal.Zero}
			mins[r.ProductName] = a
		}
		if r.MinimumQuantity.Valid {
			a.minSum = a.minSum.Add(r.MinimumQuantity.Decimal)
			a.minCnt++
		}
	}

	ranked := TopN(rows, n,
		func(r entity.AssembledInventoryRow) string { return r.ProductName },
		func(r entity.AssembledInventoryRow) decimal.Decimal {
			if !r.QuantityOnHand.Valid {
				return decimal.Zero
			}
			return r.QuantityOnHand.Decimal
		},
	)

	out := make([]StockComparison, 0, len(ranked))
	for _, g := range ranked {
		c := StockComparison{ProductName: g.Key, OnHand: g.Value}
		if a := mins[g.Key]; a != nil && a.minCnt > 0 {
			c.MeanMinimum = decimal.NewNullDecimal(a.minSum.Div(decimal.NewFromInt(a.minCnt)))
		}
		out = append(out, c)
	}
	return out
}

// CategoryDistribution cuenta filas por categoría (sin vacías), de mayor a menor.
func CategoryDistribution(rows []entity.AssembledInventoryRow) []CategoryShare {
	ranked := TopN(rows, len(rows),
		func(r entity.AssembledInventoryRow) string { return r.Category },
		func(entity.AssembledInventoryRow) decimal.Decimal { return decimal.NewFromInt(1) },
	)
	total := 0
	for _, g := range ranked {
		total += int(g.Value.IntPart())
	}

	out := make([]CategoryShare, 0, len(ranked))
	hundred := decimal.NewFromInt(100)
	for _, g := range ranked {
		n := int(g.Value.IntPart())
		out = append(out, CategoryShare{
			Category: g.Key,
			Rows:     n,
			Percent:  decimal.NewFromInt(int64(n)).Mul(hundred).Div(decimal.NewFromInt(int64(total))).Round(2),
		})
	}
	return out
}

// MonthlySeries suma la cantidad vendida por mes calendario, en orden ascendente.
// Las ventas sin fecha no participan y los meses sin ventas no aparecen.
func MonthlySeries(rows []entity.AssembledSaleRow) []MonthPoint {
	sums := map[time.Time]decimal.Decimal{}
	for _, r := range rows {
		if r.SaleDate == nil {
			continue
		}
		d := r.SaleDate.UTC()
		month := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		sums[month] = sums[month].Add(r.QuantitySold)
	}

	out := make([]MonthPoint, 0, len(sums))
	for m, v := range sums {
		out = append(out, MonthPoint{Month: m, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}
