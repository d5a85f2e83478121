package entity

import "github.com/shopspring/decimal"

// Product representa una fila del catálogo de productos (FCD_produtos).
// UnitPrice es nulo cuando la fuente no trae un precio numérico.
type Product struct {
	ProductID string
	Name      string
	Category  string
	Brand     string
	UnitPrice decimal.NullDecimal
}

// ProductCatalog índice de productos por ProductID.
type ProductCatalog map[string]Product

// NewProductCatalog indexa el catálogo; si un ID se repite, gana la primera aparición.
func NewProductCatalog(products []Product) ProductCatalog {
	c := make(ProductCatalog, len(products))
	for _, p := range products {
		if _, dup := c[p.ProductID]; dup {
			continue
		}
		c[p.ProductID] = p
	}
	return c
}
