package analytics

import (
	"time"

	"github.com/jhoicas/estoque-dashboard/internal/application/dto"
	"github.com/jhoicas/estoque-dashboard/internal/application/loader"
	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
	"github.com/jhoicas/estoque-dashboard/pkg/format"
)

// SnapshotInfo metadatos públicos del snapshot.
func SnapshotInfo(s *loader.Snapshot) dto.SnapshotInfoDTO {
	return dto.SnapshotInfoDTO{
		ID:                 s.ID.String(),
		Source:             s.Source,
		LoadedAt:           s.LoadedAt,
		CustomersAvailable: s.CustomersAvailable,
		UndatedSales:       s.UndatedSales,
	}
}

// InventoryMetricsDTO agrega las etiquetas pt-BR a los KPIs.
func InventoryMetricsDTO(m InventoryMetrics) dto.InventoryMetricsDTO {
	return dto.InventoryMetricsDTO{
		TotalProducts:        m.DistinctProducts,
		TotalQuantity:        m.TotalQuantity,
		TotalQuantityLabel:   format.Thousands(m.TotalQuantity),
		TotalValue:           m.TotalValue.Round(2),
		TotalValueLabel:      format.CompactCurrency(m.TotalValue),
		BelowMinimumProducts: m.BelowMinimumProducts,
		UnknownStatusRows:    m.UnknownStatusRows,
	}
}

// SalesMetricsDTO agrega las etiquetas pt-BR a los KPIs de ventas.
func SalesMetricsDTO(m SalesMetrics) dto.SalesMetricsDTO {
	return dto.SalesMetricsDTO{
		ItemsSold:            m.ItemsSold,
		Revenue:              m.Revenue.Round(2),
		RevenueLabel:         format.CompactCurrency(m.Revenue),
		Transactions:         m.Transactions,
		MeanTransaction:      m.MeanTransaction.Round(2),
		MeanTransactionLabel: format.Currency(m.MeanTransaction),
	}
}

// WarningsDTO avisos de carga del snapshot.
func WarningsDTO(s *loader.Snapshot) []dto.SignalDTO {
	out := make([]dto.SignalDTO, 0, len(s.Warnings))
	for _, w := range s.Warnings {
		out = append(out, dto.SignalDTO{Code: w.Code, Message: w.Message})
	}
	return out
}

// InventoryRowsDTO convierte las filas conservando el orden recibido.
func InventoryRowsDTO(rows []entity.AssembledInventoryRow) []dto.InventoryRowDTO {
	out := make([]dto.InventoryRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryRowDTO{
			ProductID:       r.ProductID,
			ProductName:     r.ProductName,
			Category:        r.Category,
			Brand:           r.Brand,
			Location:        r.Location,
			QuantityOnHand:  r.QuantityOnHand,
			MinimumQuantity: r.MinimumQuantity,
			UnitPrice:       r.UnitPrice,
			TotalValue:      r.TotalValue,
			Status:          string(r.Status),
			StatusLabel:     r.Status.Label(),
		})
	}
	return out
}

// SaleRowsDTO convierte las ventas; sin tabla de clientes el nombre se omite en todas.
func SaleRowsDTO(rows []entity.AssembledSaleRow, customersAvailable bool) []dto.SaleRowDTO {
	out := make([]dto.SaleRowDTO, 0, len(rows))
	for _, r := range rows {
		row := dto.SaleRowDTO{
			SaleID:        r.SaleID,
			SaleDate:      isoDate(r.SaleDate),
			SaleDateLabel: format.Date(r.SaleDate),
			Store:         r.StoreLabel,
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			QuantitySold:  r.QuantitySold,
			UnitValue:     r.UnitValue,
			TotalValue:    r.TotalValue,
			PaymentMethod: r.PaymentMethod,
			SalesChannel:  r.SalesChannel,
		}
		if customersAvailable && r.CustomerMatched {
			name := r.CustomerName
			row.CustomerName = &name
		}
		out = append(out, row)
	}
	return out
}

// MonthlySeriesDTO etiqueta cada punto con "jan/25".
func MonthlySeriesDTO(points []MonthPoint) []dto.MonthPointDTO {
	out := make([]dto.MonthPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.MonthPointDTO{
			Month:    p.Month.Format("2006-01"),
			Label:    format.MonthLabel(p.Month),
			Quantity: p.Value,
		})
	}
	return out
}

func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
