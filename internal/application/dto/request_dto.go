package dto

// DashboardQuery parámetros escalares de los tableros. Las facetas son multivaluadas
// (clave repetida en la query) y se leen aparte.
type DashboardQuery struct {
	TopN int    `query:"top_n" validate:"omitempty,min=1,max=100"`
	From string `query:"from" validate:"omitempty,sale_date"` // "2025-01-31" o "31/01/2025"
	To   string `query:"to" validate:"omitempty,sale_date"`
}
