package inventory

import (
	"sort"

	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
	domaininv "github.com/jhoicas/estoque-dashboard/internal/domain/inventory"
)

// Deduplicate conserva la primera aparición de cada clave (producto, localización);
// las repeticiones posteriores se descartan sin aviso.
func Deduplicate(records []entity.InventoryRecord) []entity.InventoryRecord {
	seen := make(map[entity.InventoryKey]struct{}, len(records))
	out := make([]entity.InventoryRecord, 0, len(records))
	for _, r := range records {
		k := r.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Assemble deduplica el inventario, lo cruza con el catálogo (left join) y calcula
// valor total y estado de stock por fila. Nunca descarta filas sin producto.
func Assemble(records []entity.InventoryRecord, products []entity.Product) []entity.AssembledInventoryRow {
	catalog := entity.NewProductCatalog(products)
	deduped := Deduplicate(records)

	rows := make([]entity.AssembledInventoryRow, 0, len(deduped))
	for _, rec := range deduped {
		row := entity.AssembledInventoryRow{InventoryRecord: rec}
		if p, ok := catalog[rec.ProductID]; ok {
			row.ProductMatched = true
			row.ProductName = p.Name
			row.Category = p.Category
			row.Brand = p.Brand
			row.UnitPrice = p.UnitPrice
		}
		row.TotalValue = domaininv.RowValue(rec.QuantityOnHand, row.UnitPrice)
		row.Status = domaininv.ClassifyStock(rec.QuantityOnHand, rec.MinimumQuantity)
		rows = append(rows, row)
	}
	return rows
}

// DetailOrder devuelve una copia ordenada por categoría, nombre de producto y localización
// (orden de la tabla de detalle). No modifica la entrada.
func DetailOrder(rows []entity.AssembledInventoryRow) []entity.AssembledInventoryRow {
	out := make([]entity.AssembledInventoryRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.ProductName != b.ProductName {
			return a.ProductName < b.ProductName
		}
		return a.Location < b.Location
	})
	return out
}
