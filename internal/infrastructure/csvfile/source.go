package csvfile

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/zeebo/xxh3"

	"github.com/jhoicas/estoque-dashboard/internal/domain"
	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
	"github.com/jhoicas/estoque-dashboard/internal/domain/repository"
	"github.com/jhoicas/estoque-dashboard/pkg/parse"
)

var _ repository.RecordSource = (*Source)(nil)

// Columnas canónicas y sus alias aceptados en el encabezado (ya normalizados o no, da igual).
var (
	inventoryColumns = map[string][]string{
		"product_id":       {"produto_id", "id_produto"},
		"location":         {"localizacao", "localização", "local"},
		"quantity_on_hand": {"quantidade_estoque", "quantity_estoque", "quantidade", "quantity"},
		"minimum_quantity": {"estoque_minimo", "estoque_mínimo", "minimum_stock"},
	}
	productColumns = map[string][]string{
		"product_id": {"produto_id", "id_produto"},
		"name":       {"produto_nome", "nome_produto", "product_name", "nome"},
		"category":   {"categoria"},
		"brand":      {"marca"},
		"unit_price": {"preco_unitario", "preço_unitário", "price"},
	}
	saleColumns = map[string][]string{
		"sale_id":        {"venda_id", "id_venda"},
		"sale_date":      {"data_venda", "data", "date"},
		"store_id":       {"loja_id", "id_loja"},
		"product_id":     {"produto_id", "id_produto"},
		"customer_id":    {"cliente_id", "id_cliente"},
		"quantity_sold":  {"quantidade_vendida", "quantity"},
		"unit_value":     {"valor_unitario", "valor_unitário", "unit_price"},
		"total_value":    {"valor_total", "total"},
		"payment_method": {"forma_pagamento", "pagamento"},
		"sales_channel":  {"canal_venda", "canal", "channel"},
	}
	customerColumns = map[string][]string{
		"customer_id": {"cliente_id", "id_cliente"},
		"name":        {"nome", "cliente_nome", "customer_name"},
	}
)

// Paths rutas de los cuatro archivos. Customers puede ser vacío (fuente opcional).
type Paths struct {
	Inventory string
	Products  string
	Sales     string
	Customers string
}

// Source lee los registros desde archivos delimitados.
type Source struct {
	paths       Paths
	opts        Options
	placeholder string
}

// NewSource construye la fuente. placeholder se usa cuando el inventario no trae localización;
// vacío = entity.DefaultLocationPlaceholder.
func NewSource(paths Paths, opts Options, placeholder string) *Source {
	if placeholder == "" {
		placeholder = entity.DefaultLocationPlaceholder
	}
	return &Source{paths: paths, opts: opts.withDefaults(), placeholder: placeholder}
}

// Name implementa repository.RecordSource.
func (s *Source) Name() string { return "csv" }

// Fingerprint combina ruta, tamaño y fecha de modificación de cada archivo (xxh3).
// No lee el contenido: un archivo reescrito con los mismos bytes y mtime distinto cuenta como cambio.
func (s *Source) Fingerprint(_ context.Context) (string, error) {
	h := xxh3.New()
	for _, p := range []string{s.paths.Inventory, s.paths.Products, s.paths.Sales, s.paths.Customers} {
		_, _ = h.WriteString(p)
		_, _ = h.WriteString("|")
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			// El archivo ausente también forma parte de la identidad (clientes es opcional).
			_, _ = h.WriteString("missing|")
			continue
		}
		_, _ = h.WriteString(strconv.FormatInt(info.Size(), 10))
		_, _ = h.WriteString("|")
		_, _ = h.WriteString(strconv.FormatInt(info.ModTime().UnixNano(), 10))
		_, _ = h.WriteString("|")
	}
	return fmt.Sprintf("csv:%016x", h.Sum64()), nil
}

// LoadInventory lee FCD_estoque. Si falta la columna de localización inyecta el placeholder.
func (s *Source) LoadInventory(_ context.Context) (repository.InventoryLoad, error) {
	t, err := readTable(s.paths.Inventory, s.opts, inventoryColumns)
	if err != nil {
		return repository.InventoryLoad{}, fmt.Errorf("inventario: %w", err)
	}
	if err := t.require("product_id"); err != nil {
		return repository.InventoryLoad{}, fmt.Errorf("inventario: %w", err)
	}

	injected := !t.has("location")
	records := make([]entity.InventoryRecord, 0, len(t.rows))
	for _, row := range t.rows {
		loc := s.placeholder
		if !injected {
			loc = t.value(row, "location")
		}
		records = append(records, entity.InventoryRecord{
			ProductID:       parse.ID(t.value(row, "product_id")),
			Location:        loc,
			QuantityOnHand:  parse.NullDecimal(t.value(row, "quantity_on_hand")),
			MinimumQuantity: parse.NullDecimal(t.value(row, "minimum_quantity")),
		})
	}
	return repository.InventoryLoad{Records: records, LocationInjected: injected}, nil
}

// LoadProducts lee FCD_produtos.
func (s *Source) LoadProducts(_ context.Context) ([]entity.Product, error) {
	t, err := readTable(s.paths.Products, s.opts, productColumns)
	if err != nil {
		return nil, fmt.Errorf("productos: %w", err)
	}
	if err := t.require("product_id"); err != nil {
		return nil, fmt.Errorf("productos: %w", err)
	}

	products := make([]entity.Product, 0, len(t.rows))
	for _, row := range t.rows {
		products = append(products, entity.Product{
			ProductID: parse.ID(t.value(row, "product_id")),
			Name:      t.value(row, "name"),
			Category:  t.value(row, "category"),
			Brand:     t.value(row, "brand"),
			UnitPrice: parse.NullDecimal(t.value(row, "unit_price")),
		})
	}
	return products, nil
}

// LoadSales lee FCD_vendas aplicando la coerción de fechas y números.
func (s *Source) LoadSales(_ context.Context) ([]entity.Sale, error) {
	t, err := readTable(s.paths.Sales, s.opts, saleColumns)
	if err != nil {
		return nil, fmt.Errorf("ventas: %w", err)
	}
	if err := t.require("product_id"); err != nil {
		return nil, fmt.Errorf("ventas: %w", err)
	}

	sales := make([]entity.Sale, 0, len(t.rows))
	for _, row := range t.rows {
		qty := parse.DecimalOrZero(t.value(row, "quantity_sold"))
		unit := parse.DecimalOrZero(t.value(row, "unit_value"))
		sales = append(sales, entity.Sale{
			SaleID:        parse.ID(t.value(row, "sale_id")),
			SaleDate:      parse.DayFirst(t.value(row, "sale_date")),
			StoreID:       parse.ID(t.value(row, "store_id")),
			ProductID:     parse.ID(t.value(row, "product_id")),
			CustomerID:    parse.ID(t.value(row, "customer_id")),
			QuantitySold:  qty,
			UnitValue:     unit,
			TotalValue:    parse.TotalOrProduct(t.value(row, "total_value"), qty, unit),
			PaymentMethod: t.value(row, "payment_method"),
			SalesChannel:  t.value(row, "sales_channel"),
		})
	}
	return sales, nil
}

// LoadCustomers lee FCD_clientes. Sin ruta configurada devuelve ErrSourceUnavailable.
func (s *Source) LoadCustomers(_ context.Context) ([]entity.Customer, error) {
	if s.paths.Customers == "" {
		return nil, fmt.Errorf("clientes: %w: ruta no configurada", domain.ErrSourceUnavailable)
	}
	t, err := readTable(s.paths.Customers, s.opts, customerColumns)
	if err != nil {
		return nil, fmt.Errorf("clientes: %w", err)
	}
	if err := t.require("customer_id", "name"); err != nil {
		return nil, fmt.Errorf("clientes: %w", err)
	}

	customers := make([]entity.Customer, 0, len(t.rows))
	for _, row := range t.rows {
		customers = append(customers, entity.Customer{
			CustomerID: parse.ID(t.value(row, "customer_id")),
			Name:       t.value(row, "name"),
		})
	}
	return customers, nil
}
