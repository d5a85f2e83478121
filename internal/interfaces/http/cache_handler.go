package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/estoque-dashboard/internal/application/analytics"
	"github.com/jhoicas/estoque-dashboard/internal/application/dto"
	"github.com/jhoicas/estoque-dashboard/internal/application/loader"
)

// SnapshotCache subconjunto de loader.Cache usado por los handlers de caché y salud.
type SnapshotCache interface {
	Snapshot(ctx context.Context) (*loader.Snapshot, error)
	Invalidate()
	Current() *loader.Snapshot
}

var _ SnapshotCache = (*loader.Cache)(nil)

// CacheHandler operaciones sobre la caché de snapshots.
type CacheHandler struct {
	cache SnapshotCache
}

func NewCacheHandler(cache SnapshotCache) *CacheHandler {
	return &CacheHandler{cache: cache}
}

// Invalidate godoc
// @Summary      Invalida la caché de datos
// @Description  Descarta el snapshot vigente. Con reload=true recarga de inmediato y devuelve el nuevo snapshot.
// @Tags         cache
// @Produce      json
// @Param        reload  query  bool  false  "Recargar inmediatamente"
// @Success      200  {object}  dto.CacheInvalidateResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/cache/invalidate [post]
func (h *CacheHandler) Invalidate(c *fiber.Ctx) error {
	h.cache.Invalidate()

	resp := dto.CacheInvalidateResponse{Invalidated: true}
	if c.QueryBool("reload", false) {
		snap, err := h.cache.Snapshot(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		info := appanalytics.SnapshotInfo(snap)
		resp.Snapshot = &info
	}
	return c.JSON(resp)
}

// HealthHandler GET /health: el servicio responde aunque la fuente no esté cargada.
func HealthHandler(service string, cache SnapshotCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := fiber.Map{"status": "ok", "service": service}
		if snap := cache.Current(); snap != nil {
			body["snapshot"] = appanalytics.SnapshotInfo(snap)
		}
		return c.JSON(body)
	}
}
