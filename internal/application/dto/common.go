package dto

import "time"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SignalDTO aviso o nota que acompaña una respuesta sin ser un error
// (ej. LOCATION_COLUMN_MISSING, EMPTY_RESULT).
type SignalDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SnapshotInfoDTO metadatos de la carga de datos usada para responder.
type SnapshotInfoDTO struct {
	ID                 string    `json:"id"`
	Source             string    `json:"source"`
	LoadedAt           time.Time `json:"loaded_at"`
	CustomersAvailable bool      `json:"customers_available"`
	UndatedSales       int       `json:"undated_sales"`
}

// CacheInvalidateResponse respuesta de POST /api/cache/invalidate.
type CacheInvalidateResponse struct {
	Invalidated bool             `json:"invalidated"`
	Snapshot    *SnapshotInfoDTO `json:"snapshot,omitempty"` // presente si se recargó de inmediato
}
