// Package xlsx exporta las ventas filtradas a un libro Excel con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/estoque-dashboard/internal/application/report"
)

const (
	SheetSales   = "Vendas"
	SheetMonthly = "Mensal"
)

var _ report.SalesWorkbookRenderer = (*SalesWorkbookGenerator)(nil)

// SalesWorkbookGenerator implementa report.SalesWorkbookRenderer.
type SalesWorkbookGenerator struct{}

func NewSalesWorkbookGenerator() *SalesWorkbookGenerator { return &SalesWorkbookGenerator{} }

// RenderSalesWorkbook arma el libro con la hoja de ventas y la serie mensual.
// La columna Cliente solo existe si el snapshot tiene tabla de clientes.
func (g *SalesWorkbookGenerator) RenderSalesWorkbook(_ context.Context, w report.SalesWorkbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSales); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(SheetMonthly); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja mensual: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de cabecera: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo monetario: %w", err)
	}

	if err := writeSales(f, w, header, money); err != nil {
		return nil, err
	}
	if err := writeMonthly(f, w, header); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSales(f *excelize.File, w report.SalesWorkbook, header, money int) error {
	cols := []string{"ID Venda", "Data", "Loja", "ID Produto", "Produto"}
	if w.CustomersAvailable {
		cols = append(cols, "Cliente")
	}
	cols = append(cols, "Quantidade", "Valor Unitário", "Valor Total", "Forma de Pagamento", "Canal")

	if err := setRow(f, SheetSales, 1, toCells(cols)); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(cols), 1)
	if err := f.SetCellStyle(SheetSales, "A1", last, header); err != nil {
		return fmt.Errorf("xlsx: aplicar estilo: %w", err)
	}

	for i, r := range w.Rows {
		cells := []any{r.SaleID, r.SaleDateLabel, r.Store, r.ProductID, r.ProductName}
		if w.CustomersAvailable {
			name := ""
			if r.CustomerName != nil {
				name = *r.CustomerName
			}
			cells = append(cells, name)
		}
		cells = append(cells,
			r.QuantitySold.InexactFloat64(),
			r.UnitValue.InexactFloat64(),
			r.TotalValue.InexactFloat64(),
			r.PaymentMethod,
			r.SalesChannel,
		)
		if err := setRow(f, SheetSales, i+2, cells); err != nil {
			return err
		}
	}

	if n := len(w.Rows); n > 0 {
		// valor unitario y total son las dos columnas tras la cantidad
		unitCol := len(cols) - 3
		from, _ := excelize.CoordinatesToCellName(unitCol, 2)
		to, _ := excelize.CoordinatesToCellName(unitCol+1, n+1)
		if err := f.SetCellStyle(SheetSales, from, to, money); err != nil {
			return fmt.Errorf("xlsx: aplicar formato monetario: %w", err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(cols))
	if err := f.SetColWidth(SheetSales, "A", lastCol, 16); err != nil {
		return fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}
	return f.SetPanes(SheetSales, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func writeMonthly(f *excelize.File, w report.SalesWorkbook, header int) error {
	if err := setRow(f, SheetMonthly, 1, []any{"Mês", "Período", "Quantidade Vendida"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetMonthly, "A1", "C1", header); err != nil {
		return fmt.Errorf("xlsx: aplicar estilo: %w", err)
	}
	for i, p := range w.Series {
		if err := setRow(f, SheetMonthly, i+2, []any{p.Label, p.Month, p.Quantity.InexactFloat64()}); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetMonthly, "A", "C", 20)
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("xlsx: celda inválida: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("xlsx: escribir fila %d de %s: %w", row, sheet, err)
	}
	return nil
}

func toCells(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
