package filter

import (
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
)

// InventoryFilter facetas del tablero de inventario. Status usa los códigos de entity.StockStatus.
type InventoryFilter struct {
	Category Selection
	Brand    Selection
	Location Selection
	Status   Selection
}

// SalesFilter facetas del tablero de ventas.
type SalesFilter struct {
	Store         Selection
	Product       Selection
	Customer      Selection
	PaymentMethod Selection
	Channel       Selection
	Dates         DateRange
}

// ApplyInventory devuelve las filas que cumplen todas las facetas (AND). No modifica la entrada.
func ApplyInventory(rows []entity.AssembledInventoryRow, f InventoryFilter) []entity.AssembledInventoryRow {
	out := make([]entity.AssembledInventoryRow, 0, len(rows))
	for _, r := range rows {
		if f.Category.Matches(r.Category) &&
			f.Brand.Matches(r.Brand) &&
			f.Location.Matches(r.Location) &&
			f.Status.Matches(string(r.Status)) {
			out = append(out, r)
		}
	}
	return out
}

// ApplySales devuelve las ventas que cumplen todas las facetas y el rango de fechas.
func ApplySales(rows []entity.AssembledSaleRow, f SalesFilter) []entity.AssembledSaleRow {
	out := make([]entity.AssembledSaleRow, 0, len(rows))
	for _, r := range rows {
		if f.Store.Matches(r.StoreLabel) &&
			f.Product.Matches(r.ProductName) &&
			f.Customer.Matches(r.CustomerName) &&
			f.PaymentMethod.Matches(r.PaymentMethod) &&
			f.Channel.Matches(r.SalesChannel) &&
			f.Dates.Contains(r.SaleDate) {
			out = append(out, r)
		}
	}
	return out
}

// ── Opciones de facetas ──────────────────────────────────────────────────────

// InventoryOptions valores disponibles por faceta, tomados siempre de la tabla sin filtrar.
type InventoryOptions struct {
	Categories []string
	Brands     []string
	Locations  []string
	Statuses   []entity.StockStatus
}

// SalesOptions valores disponibles por faceta de ventas. Customers queda vacío cuando
// no hay tabla de clientes. MinDate/MaxDate ignoran las ventas sin fecha.
type SalesOptions struct {
	Stores         []string
	Products       []string
	Customers      []string
	PaymentMethods []string
	Channels       []string
	MinDate        *time.Time
	MaxDate        *time.Time
}

var statusOrder = []entity.StockStatus{
	entity.StockStatusOK,
	entity.StockStatusBelowMinimum,
	entity.StockStatusUnknown,
}

// InventoryFacetOptions calcula las opciones sobre la tabla completa.
func InventoryFacetOptions(rows []entity.AssembledInventoryRow) InventoryOptions {
	cat, brand, loc := newDistinct(), newDistinct(), newDistinct()
	statuses := map[entity.StockStatus]bool{}
	for _, r := range rows {
		cat.add(r.Category)
		brand.add(r.Brand)
		loc.add(r.Location)
		statuses[r.Status] = true
	}

	opts := InventoryOptions{
		Categories: cat.sorted(),
		Brands:     brand.sorted(),
		Locations:  loc.sorted(),
		Statuses:   []entity.StockStatus{},
	}
	for _, s := range statusOrder {
		if statuses[s] {
			opts.Statuses = append(opts.Statuses, s)
		}
	}
	return opts
}

// SalesFacetOptions calcula las opciones de ventas sobre la tabla completa.
func SalesFacetOptions(rows []entity.AssembledSaleRow, customersAvailable bool) SalesOptions {
	store, product, customer, payment, channel := newDistinct(), newDistinct(), newDistinct(), newDistinct(), newDistinct()
	var opts SalesOptions
	for _, r := range rows {
		store.add(r.StoreLabel)
		product.add(r.ProductName)
		if customersAvailable {
			customer.add(r.CustomerName)
		}
		payment.add(r.PaymentMethod)
		channel.add(r.SalesChannel)

		if r.SaleDate == nil {
			continue
		}
		if opts.MinDate == nil || r.SaleDate.Before(*opts.MinDate) {
			opts.MinDate = r.SaleDate
		}
		if opts.MaxDate == nil || r.SaleDate.After(*opts.MaxDate) {
			opts.MaxDate = r.SaleDate
		}
	}
	opts.Stores = store.sorted()
	opts.Products = product.sorted()
	opts.Customers = customer.sorted()
	opts.PaymentMethods = payment.sorted()
	opts.Channels = channel.sorted()
	return opts
}

// distinct conjunto de valores no vacíos.
type distinct map[string]struct{}

func newDistinct() distinct { return distinct{} }

func (d distinct) add(v string) {
	if v != "" {
		d[v] = struct{}{}
	}
}

func (d distinct) sorted() []string {
	out := make([]string, 0, len(d))
	for v := range d {
		out = append(out, v)
	}
	sortOptions(out)
	return out
}

// sortOptions ordena como lo espera un usuario pt-BR: acentos ignorados en primera instancia
// y números por valor ("Loja 2" antes que "Loja 10").
func sortOptions(values []string) {
	collate.New(language.BrazilianPortuguese, collate.Numeric, collate.IgnoreCase).SortStrings(values)
}
