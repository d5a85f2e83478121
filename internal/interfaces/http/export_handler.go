package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-dashboard/internal/application/report"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler descarga de reportes con los mismos filtros del tablero.
type ExportHandler struct {
	uc        *report.ExportUseCase
	validator *QueryValidator
}

func NewExportHandler(uc *report.ExportUseCase, v *QueryValidator) *ExportHandler {
	return &ExportHandler{uc: uc, validator: v}
}

// InventoryPDF godoc
// @Summary      Reporte PDF del inventario filtrado
// @Tags         inventory
// @Produce      application/pdf
// @Param        category  query  []string  false  "Categorías"  collectionFormat(multi)
// @Param        brand     query  []string  false  "Marcas"      collectionFormat(multi)
// @Param        location  query  []string  false  "Localizaciones"  collectionFormat(multi)
// @Param        status    query  []string  false  "Estados"  collectionFormat(multi)
// @Success      200  {file}    file
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventory/report.pdf [get]
func (h *ExportHandler) InventoryPDF(c *fiber.Ctx) error {
	doc, name, err := h.uc.InventoryPDF(c.UserContext(), inventoryFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, mimePDF)
	return c.Send(doc)
}

// SalesXLSX godoc
// @Summary      Exporta las ventas filtradas a Excel
// @Tags         sales
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        store           query  []string  false  "Tiendas"  collectionFormat(multi)
// @Param        product         query  []string  false  "Productos"  collectionFormat(multi)
// @Param        customer        query  []string  false  "Clientes"  collectionFormat(multi)
// @Param        payment_method  query  []string  false  "Formas de pago"  collectionFormat(multi)
// @Param        channel         query  []string  false  "Canales"  collectionFormat(multi)
// @Param        from            query  string    false  "Desde"
// @Param        to              query  string    false  "Hasta"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sales/export.xlsx [get]
func (h *ExportHandler) SalesXLSX(c *fiber.Ctx) error {
	q, err := h.validator.parseDashboardQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	doc, name, err := h.uc.SalesXLSX(c.UserContext(), salesFilter(c, q))
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, mimeXLSX)
	return c.Send(doc)
}
