package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-dashboard/internal/infrastructure/metrics"
)

func TestCollector_Cargas(t *testing.T) {
	c := metrics.New(false)

	c.ObserveLoad("csv", 120*time.Millisecond, nil)
	c.ObserveLoad("csv", time.Second, errors.New("falla"))
	c.SetRows("inventory", 42)

	expected := `
# HELP estoque_loads_total Cargas de snapshot por fuente y resultado.
# TYPE estoque_loads_total counter
estoque_loads_total{source="csv",status="error"} 1
estoque_loads_total{source="csv",status="ok"} 1
# HELP estoque_snapshot_rows Filas por tabla en el último snapshot cargado.
# TYPE estoque_snapshot_rows gauge
estoque_snapshot_rows{table="inventory"} 42
`
	err := testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected),
		"estoque_loads_total", "estoque_snapshot_rows")
	assert.NoError(t, err)

	n, err := testutil.GatherAndCount(c.Registry(), "estoque_load_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "un histograma por fuente")
}

func TestCollector_Cache(t *testing.T) {
	c := metrics.New(false)

	c.CacheResult(true)
	c.CacheResult(true)
	c.CacheResult(false)

	expected := `
# HELP estoque_cache_requests_total Consultas a la caché de snapshots (hit|miss).
# TYPE estoque_cache_requests_total counter
estoque_cache_requests_total{result="hit"} 2
estoque_cache_requests_total{result="miss"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "estoque_cache_requests_total"))
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.New(true)
	c.ObserveRequest("/api/sales/dashboard", http.MethodGet, 200, 5*time.Millisecond)

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `estoque_http_requests_total{code="200",method="GET",route="/api/sales/dashboard"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
