package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrSourceUnavailable = errors.New("fuente de datos no disponible")
	ErrSchema            = errors.New("esquema de la fuente incompatible")
)
