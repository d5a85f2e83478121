// Package sales arma la tabla de ventas enriquecida (producto, cliente, etiqueta de tienda).
package sales

import (
	"strings"

	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
)

// DefaultStoreLabelPrefix prefijo de la etiqueta de tienda ("Loja 3").
const DefaultStoreLabelPrefix = "Loja"

// Options parámetros de armado.
type Options struct {
	StoreLabelPrefix string
}

// StoreLabel deriva la etiqueta visible de una tienda. ID vacío → etiqueta vacía.
func StoreLabel(prefix, storeID string) string {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return ""
	}
	if prefix == "" {
		prefix = DefaultStoreLabelPrefix
	}
	return prefix + " " + storeID
}

// Assemble cruza las ventas con el catálogo y, si hay clientes, con la tabla de clientes.
// Con la tabla de clientes vacía CustomerName queda ausente en todas las filas.
// Las ventas sin fecha se conservan.
func Assemble(sales []entity.Sale, products []entity.Product, customers []entity.Customer, opts Options) []entity.AssembledSaleRow {
	catalog := entity.NewProductCatalog(products)

	var names map[string]string
	if len(customers) > 0 {
		names = make(map[string]string, len(customers))
		for _, c := range customers {
			if _, dup := names[c.CustomerID]; !dup {
				names[c.CustomerID] = c.Name
			}
		}
	}

	rows := make([]entity.AssembledSaleRow, 0, len(sales))
	for _, s := range sales {
		row := entity.AssembledSaleRow{
			Sale:       s,
			StoreLabel: StoreLabel(opts.StoreLabelPrefix, s.StoreID),
		}
		if p, ok := catalog[s.ProductID]; ok {
			row.ProductMatched = true
			row.ProductName = p.Name
			row.Category = p.Category
			row.Brand = p.Brand
			row.ListPrice = p.UnitPrice
		}
		if names != nil {
			if name, ok := names[s.CustomerID]; ok {
				row.CustomerMatched = true
				row.CustomerName = name
			}
		}
		rows = append(rows, row)
	}
	return rows
}
