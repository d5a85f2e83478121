package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/estoque-dashboard/internal/domain"
)

// Códigos SQLSTATE relevantes para la lectura.
const (
	codeUndefinedTable  = "42P01"
	codeUndefinedColumn = "42703"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// classify traduce el error de consulta al sentinel de dominio:
// columna inexistente → ErrSchema, cualquier otra falla → ErrSourceUnavailable.
func classify(table string, err error) error {
	switch pgCode(err) {
	case codeUndefinedColumn:
		return fmt.Errorf("%s: %w: %v", table, domain.ErrSchema, err)
	case codeUndefinedTable:
		return fmt.Errorf("%s: %w: tabla inexistente: %v", table, domain.ErrSourceUnavailable, err)
	default:
		return fmt.Errorf("%s: %w: %v", table, domain.ErrSourceUnavailable, err)
	}
}
