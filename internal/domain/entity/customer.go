package entity

// Customer representa un cliente (FCD_clientes). La fuente es opcional.
type Customer struct {
	CustomerID string
	Name       string
}
