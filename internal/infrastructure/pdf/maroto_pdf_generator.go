// Package pdf implementa el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4 horizontal:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                 │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Produtos | Quantidade | Valor | Abaixo do mínimo      │
//	│  AVISOS (si los hay)                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Produto | Categoria | Local | Qtd | Mín | ...   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: snapshot + total de filas                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-dashboard/internal/application/dto"
	"github.com/jhoicas/estoque-dashboard/internal/application/report"
	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
	"github.com/jhoicas/estoque-dashboard/pkg/format"
)

var _ report.InventoryPDFRenderer = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 200, Green: 60, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.InventoryPDFRenderer usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// RenderInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderInventoryReport(_ context.Context, r report.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(r.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(r.Metrics))
	for _, w := range r.Warnings {
		m.AddRows(warningRow(w))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(r.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Nenhum dado disponível.", props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray}),
		)))
	}
	m.AddRows(tableDetailRows(r.Rows)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(r report.InventoryReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Detalhamento dos produtos em estoque por localização", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// kpiRow: los cuatro indicadores principales.
func kpiRow(m dto.InventoryMetricsDTO) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Align: align.Center, Color: colorPrimary}),
		)
	}
	return row.New(16).Add(
		kpi("Total de Produtos", format.Thousands(int64(m.TotalProducts))),
		kpi("Quantidade Total em Estoque", m.TotalQuantityLabel),
		kpi("Valor Total em Estoque", m.TotalValueLabel),
		kpi("Produtos Abaixo do Mínimo", format.Thousands(int64(m.BelowMinimumProducts))),
	)
}

func warningRow(w dto.SignalDTO) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Aviso: "+w.Message, props.Text{Size: 7, Color: colorAlert, Top: 1}),
	))
}

// tableHeaderRow: cabecera de la tabla con fondo de color primario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("ID", 1, align.Left),
		h("Produto", 3, align.Left),
		h("Categoria", 2, align.Left),
		h("Localização", 2, align.Left),
		h("Qtd.", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Valor", 1, align.Right),
		h("Status", 1, align.Center),
	)
}

// tableDetailRows: una fila por (producto, localización).
func tableDetailRows(rows []dto.InventoryRowDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, d := range rows {
		statusColor := colorGray
		if d.Status == string(entity.StockStatusBelowMinimum) {
			statusColor = colorAlert
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		result = append(result, row.New(6).Add(
			cell(d.ProductID, 1, align.Left),
			cell(nonEmpty(d.ProductName, "-"), 3, align.Left),
			cell(nonEmpty(d.Category, "-"), 2, align.Left),
			cell(d.Location, 2, align.Left),
			cell(nullNumber(d.QuantityOnHand), 1, align.Right),
			cell(nullNumber(d.MinimumQuantity), 1, align.Right),
			cell(nullMoney(d.TotalValue), 1, align.Right),
			col.New(1).Add(text.New(d.StatusLabel, props.Text{
				Size: 7, Align: align.Center, Top: 1, Color: statusColor,
			})),
		))
	}
	return result
}

func footerRow(r report.InventoryReport) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d linhas  |  snapshot %s", len(r.Rows), r.SnapshotID), props.Text{
			Size: 6.5, Color: colorGray, Top: 1,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// nullNumber muestra enteros sin decimales y fracciones con dos; nulo → "-".
func nullNumber(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	if d.Decimal.IsInteger() {
		return format.Decimal(d.Decimal, 0)
	}
	return format.Decimal(d.Decimal, 2)
}

func nullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return format.Currency(d.Decimal)
}
