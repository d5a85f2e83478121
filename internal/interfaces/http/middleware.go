package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-dashboard/pkg/logger"
)

// RequestObserver recibe la latencia de cada petición (infrastructure/metrics.Collector).
type RequestObserver interface {
	ObserveRequest(route, method string, code int, d time.Duration)
}

// RequestMetrics registra ruta, método, status y latencia. La ruta es la plantilla registrada.
func RequestMetrics(obs RequestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		code := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			} else {
				code = fiber.StatusInternalServerError
			}
		}
		obs.ObserveRequest(c.Route().Path, c.Method(), code, time.Since(start))
		return err
	}
}

// AccessLog una línea por petición; 5xx en error, 4xx en warn, el resto en debug.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()

		ev := log.Debug()
		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
