package dto

import "github.com/shopspring/decimal"

// SalesDashboardDTO respuesta de GET /api/sales/dashboard.
type SalesDashboardDTO struct {
	Snapshot SnapshotInfoDTO `json:"snapshot"`
	Metrics  SalesMetricsDTO `json:"metrics"`

	MonthlySeries []MonthPointDTO `json:"monthly_series"` // ascendente, sin meses vacíos
	TopProducts   []RankedDTO     `json:"top_products"`

	Rows []SaleRowDTO `json:"rows"`

	Warnings []SignalDTO `json:"warnings"`
	Notices  []SignalDTO `json:"notices"`
}

// SalesMetricsDTO KPIs de las ventas filtradas.
type SalesMetricsDTO struct {
	ItemsSold            int64           `json:"items_sold"`
	Revenue              decimal.Decimal `json:"revenue"`
	RevenueLabel         string          `json:"revenue_label"`
	Transactions         int             `json:"transactions"`
	MeanTransaction      decimal.Decimal `json:"mean_transaction"`
	MeanTransactionLabel string          `json:"mean_transaction_label"` // "R$ 45,90"
}

// MonthPointDTO punto de la serie mensual de unidades vendidas.
type MonthPointDTO struct {
	Month    string          `json:"month"` // "2025-01"
	Label    string          `json:"label"` // "jan/25"
	Quantity decimal.Decimal `json:"quantity"`
}

// RankedDTO entrada del Top-N de productos.
type RankedDTO struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// SaleRowDTO fila de la tabla de ventas. CustomerName se omite si no hay datos de cliente.
type SaleRowDTO struct {
	SaleID        string          `json:"sale_id"`
	SaleDate      *string         `json:"sale_date"`       // ISO "2006-01-02"; null si no se pudo interpretar
	SaleDateLabel string          `json:"sale_date_label"` // "02/01/2006"
	Store         string          `json:"store"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	CustomerName  *string         `json:"customer_name,omitempty"`
	QuantitySold  decimal.Decimal `json:"quantity_sold"`
	UnitValue     decimal.Decimal `json:"unit_value"`
	TotalValue    decimal.Decimal `json:"total_value"`
	PaymentMethod string          `json:"payment_method"`
	SalesChannel  string          `json:"sales_channel"`
}

// SalesFacetsDTO respuesta de GET /api/sales/facets.
// Customers solo se informa cuando hay tabla de clientes.
type SalesFacetsDTO struct {
	Stores             []string `json:"stores"`
	Products           []string `json:"products"`
	CustomersAvailable bool     `json:"customers_available"`
	Customers          []string `json:"customers,omitempty"`
	PaymentMethods     []string `json:"payment_methods"`
	Channels           []string `json:"channels"`
	MinDate            *string  `json:"min_date"`
	MaxDate            *string  `json:"max_date"`
}
