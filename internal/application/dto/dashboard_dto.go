package dto

import "github.com/shopspring/decimal"

// InventoryDashboardDTO respuesta de GET /api/inventory/dashboard.
type InventoryDashboardDTO struct {
	Snapshot SnapshotInfoDTO     `json:"snapshot"`
	Metrics  InventoryMetricsDTO `json:"metrics"`

	// Top 10 productos por stock total con su mínimo promedio
	StockVsMinimum []StockComparisonDTO `json:"stock_vs_minimum"`
	// Filas por categoría, de mayor a menor
	CategoryDistribution []CategoryShareDTO `json:"category_distribution"`

	Rows []InventoryRowDTO `json:"rows"` // orden: categoría, producto, localización

	Warnings []SignalDTO `json:"warnings"`
	Notices  []SignalDTO `json:"notices"`
}

// InventoryMetricsDTO KPIs del inventario filtrado. Los campos *_label ya vienen formateados en pt-BR.
type InventoryMetricsDTO struct {
	TotalProducts        int             `json:"total_products"`
	TotalQuantity        int64           `json:"total_quantity"`
	TotalQuantityLabel   string          `json:"total_quantity_label"` // "1.234"
	TotalValue           decimal.Decimal `json:"total_value"`
	TotalValueLabel      string          `json:"total_value_label"` // "R$ 1.2 Mi"
	BelowMinimumProducts int             `json:"below_minimum_products"`
	UnknownStatusRows    int             `json:"unknown_status_rows"`
}

// StockComparisonDTO barra del gráfico stock actual vs mínimo.
type StockComparisonDTO struct {
	ProductName string              `json:"product_name"`
	OnHand      decimal.Decimal     `json:"on_hand"`
	MeanMinimum decimal.NullDecimal `json:"mean_minimum"`
}

// CategoryShareDTO porción del gráfico por categoría.
type CategoryShareDTO struct {
	Category string          `json:"category"`
	Rows     int             `json:"rows"`
	Percent  decimal.Decimal `json:"percent"`
}

// InventoryRowDTO fila de la tabla de detalle.
type InventoryRowDTO struct {
	ProductID       string              `json:"product_id"`
	ProductName     string              `json:"product_name"`
	Category        string              `json:"category"`
	Brand           string              `json:"brand"`
	Location        string              `json:"location"`
	QuantityOnHand  decimal.NullDecimal `json:"quantity_on_hand"`
	MinimumQuantity decimal.NullDecimal `json:"minimum_quantity"`
	UnitPrice       decimal.NullDecimal `json:"unit_price"`
	TotalValue      decimal.NullDecimal `json:"total_value"`
	Status          string              `json:"status"`       // OK | BELOW_MINIMUM | UNKNOWN
	StatusLabel     string              `json:"status_label"` // "Abaixo do mínimo"
}

// InventoryFacetsDTO respuesta de GET /api/inventory/facets.
type InventoryFacetsDTO struct {
	Categories []string          `json:"categories"`
	Brands     []string          `json:"brands"`
	Locations  []string          `json:"locations"`
	Statuses   []StatusOptionDTO `json:"statuses"`
}

// StatusOptionDTO opción de la faceta de estado.
type StatusOptionDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
