package entity

// StockStatus clasificación del stock de una fila de inventario.
type StockStatus string

const (
	StockStatusOK           StockStatus = "OK"
	StockStatusBelowMinimum StockStatus = "BELOW_MINIMUM"
	// StockStatusUnknown: cantidad o mínimo nulos, no se puede comparar.
	StockStatusUnknown StockStatus = "UNKNOWN"
)

// Label devuelve la etiqueta de presentación (pt-BR, como en los archivos de origen).
func (s StockStatus) Label() string {
	switch s {
	case StockStatusOK:
		return "OK"
	case StockStatusBelowMinimum:
		return "Abaixo do mínimo"
	case StockStatusUnknown:
		return "Indeterminado"
	default:
		return string(s)
	}
}

// ParseStockStatus acepta el código o la etiqueta de presentación.
func ParseStockStatus(s string) (StockStatus, bool) {
	for _, st := range []StockStatus{StockStatusOK, StockStatusBelowMinimum, StockStatusUnknown} {
		if s == string(st) || s == st.Label() {
			return st, true
		}
	}
	return "", false
}
