package loader

import "time"

// Metrics puerto de observabilidad de carga y caché (implementación Prometheus en
// infrastructure/metrics).
type Metrics interface {
	ObserveLoad(source string, d time.Duration, err error)
	CacheResult(hit bool)
	SetRows(table string, n int)
}

// NopMetrics descarta todo.
type NopMetrics struct{}

func (NopMetrics) ObserveLoad(string, time.Duration, error) {}
func (NopMetrics) CacheResult(bool)                         {}
func (NopMetrics) SetRows(string, int)                      {}
