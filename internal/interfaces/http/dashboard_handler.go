package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/estoque-dashboard/internal/application/analytics"
)

// DashboardHandler maneja los tableros de inventario y ventas.
type DashboardHandler struct {
	uc        *appanalytics.DashboardUseCase
	validator *QueryValidator
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, v *QueryValidator) *DashboardHandler {
	return &DashboardHandler{uc: uc, validator: v}
}

// GetInventoryDashboard godoc
// @Summary      Tablero de inventario
// @Description  KPIs, stock vs mínimo, distribución por categoría y detalle del inventario filtrado.
// @Description  Las facetas se repiten en la query (category=A&category=B); una clave presente
// @Description  sin valor (category=) es un subconjunto vacío y no devuelve filas.
// @Tags         inventory
// @Produce      json
// @Param        category  query  []string  false  "Categorías"  collectionFormat(multi)
// @Param        brand     query  []string  false  "Marcas"      collectionFormat(multi)
// @Param        location  query  []string  false  "Localizaciones"  collectionFormat(multi)
// @Param        status    query  []string  false  "OK | BELOW_MINIMUM | UNKNOWN (o su etiqueta)"  collectionFormat(multi)
// @Param        top_n     query  int       false  "Tamaño del ranking (1-100, default TOP_N)"
// @Success      200  {object}  dto.InventoryDashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventory/dashboard [get]
func (h *DashboardHandler) GetInventoryDashboard(c *fiber.Ctx) error {
	q, err := h.validator.parseDashboardQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetInventoryDashboard(c.UserContext(), inventoryFilter(c), q.TopN)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetInventoryFacets godoc
// @Summary      Opciones de facetas de inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryFacetsDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventory/facets [get]
func (h *DashboardHandler) GetInventoryFacets(c *fiber.Ctx) error {
	out, err := h.uc.GetInventoryFacets(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetSalesDashboard godoc
// @Summary      Tablero de ventas
// @Description  KPIs, serie mensual, Top-N de productos y tabla de las ventas filtradas.
// @Description  La faceta customer se ignora cuando no hay tabla de clientes.
// @Tags         sales
// @Produce      json
// @Param        store           query  []string  false  "Tiendas (etiqueta, ej. Loja 1)"  collectionFormat(multi)
// @Param        product         query  []string  false  "Nombres de producto"  collectionFormat(multi)
// @Param        customer        query  []string  false  "Nombres de cliente"  collectionFormat(multi)
// @Param        payment_method  query  []string  false  "Formas de pago"  collectionFormat(multi)
// @Param        channel         query  []string  false  "Canales de venta"  collectionFormat(multi)
// @Param        from            query  string    false  "Desde (AAAA-MM-DD o DD/MM/AAAA), inclusivo"
// @Param        to              query  string    false  "Hasta (AAAA-MM-DD o DD/MM/AAAA), inclusivo"
// @Param        top_n           query  int       false  "Tamaño del ranking (1-100)"
// @Success      200  {object}  dto.SalesDashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sales/dashboard [get]
func (h *DashboardHandler) GetSalesDashboard(c *fiber.Ctx) error {
	q, err := h.validator.parseDashboardQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetSalesDashboard(c.UserContext(), salesFilter(c, q), q.TopN)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetSalesFacets godoc
// @Summary      Opciones de facetas de ventas y rango de fechas disponible
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SalesFacetsDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sales/facets [get]
func (h *DashboardHandler) GetSalesFacets(c *fiber.Ctx) error {
	out, err := h.uc.GetSalesFacets(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
