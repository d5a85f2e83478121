package repository

import (
	"context"

	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
)

// InventoryLoad resultado de leer la fuente de inventario.
// LocationInjected es true cuando la fuente no trae columna de localización y se usó el placeholder.
type InventoryLoad struct {
	Records          []entity.InventoryRecord
	LocationInjected bool
}

// RecordSource define el puerto de lectura de los registros crudos (archivos CSV, PostgreSQL, ...).
// Las implementaciones son read-only: nunca escriben en la fuente.
type RecordSource interface {
	// Name identifica la fuente en logs y métricas (ej. "csv", "postgres").
	Name() string

	// Fingerprint devuelve una identidad estable del contenido actual de la fuente.
	// Dos llamadas con el mismo resultado implican que los datos no cambiaron.
	Fingerprint(ctx context.Context) (string, error)

	LoadInventory(ctx context.Context) (InventoryLoad, error)
	LoadProducts(ctx context.Context) ([]entity.Product, error)
	LoadSales(ctx context.Context) ([]entity.Sale, error)

	// LoadCustomers puede fallar (fuente opcional); el llamador decide degradar a tabla vacía.
	LoadCustomers(ctx context.Context) ([]entity.Customer, error)
}
