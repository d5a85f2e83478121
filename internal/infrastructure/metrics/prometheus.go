// Package metrics expone las métricas del servicio en formato Prometheus.
//
// Todas las métricas viven en un registro propio (no el global) para que los
// tests puedan crear colectores independientes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/estoque-dashboard/internal/application/loader"
)

const namespace = "estoque"

var _ loader.Metrics = (*Collector)(nil)

// Collector implementa loader.Metrics y las métricas HTTP.
type Collector struct {
	reg *prometheus.Registry

	loads        *prometheus.CounterVec   // estoque_loads_total{source,status}
	loadDuration *prometheus.HistogramVec // estoque_load_duration_seconds{source}
	cache        *prometheus.CounterVec   // estoque_cache_requests_total{result}
	rows         *prometheus.GaugeVec     // estoque_snapshot_rows{table}

	requests        *prometheus.CounterVec   // estoque_http_requests_total{route,method,code}
	requestDuration *prometheus.HistogramVec // estoque_http_request_duration_seconds{route,method}
}

// New registra los colectores. Con withRuntime también expone métricas de Go y del proceso.
func New(withRuntime bool) *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Cargas de snapshot por fuente y resultado.",
		}, []string{"source", "status"}),
		loadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Duración de la carga completa del snapshot.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"source"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Consultas a la caché de snapshots (hit|miss).",
		}, []string{"result"}),
		rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_rows",
			Help:      "Filas por tabla en el último snapshot cargado.",
		}, []string{"table"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP por ruta, método y código.",
		}, []string{"route", "method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	c.reg.MustRegister(c.loads, c.loadDuration, c.cache, c.rows, c.requests, c.requestDuration)
	if withRuntime {
		c.reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return c
}

// ObserveLoad cuenta la carga y registra su duración.
func (c *Collector) ObserveLoad(source string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.loads.WithLabelValues(source, status).Inc()
	c.loadDuration.WithLabelValues(source).Observe(d.Seconds())
}

func (c *Collector) CacheResult(hit bool) {
	if hit {
		c.cache.WithLabelValues("hit").Inc()
		return
	}
	c.cache.WithLabelValues("miss").Inc()
}

func (c *Collector) SetRows(table string, n int) {
	c.rows.WithLabelValues(table).Set(float64(n))
}

// ObserveRequest usa la ruta registrada (no la URL) para acotar la cardinalidad.
func (c *Collector) ObserveRequest(route, method string, code int, d time.Duration) {
	c.requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	c.requestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// Handler endpoint de scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

// Registry expuesto para tests.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }
