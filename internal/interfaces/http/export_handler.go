package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/report"
)

// ExportHandler exporta stock e historial en CSV o PDF (protegido).
type ExportHandler struct {
	uc *report.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *report.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Stock godoc
// @Summary      Exportar stock (csv por defecto, pdf opcional)
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        format  query  string  false  "csv | pdf"  default(csv)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/stock [get]
func (h *ExportHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.ExportStock(c.Context(), CallerAccess(c), c.Query("format"))
	if err != nil {
		return domainError(c, err)
	}
	return sendExport(c, out)
}

// History godoc
// @Summary      Exportar historial de movimientos (csv por defecto, pdf opcional)
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        format  query  string  false  "csv | pdf"  default(csv)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/history [get]
func (h *ExportHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.ExportHistory(c.Context(), CallerAccess(c), c.Query("format"))
	if err != nil {
		return domainError(c, err)
	}
	return sendExport(c, out)
}

func sendExport(c *fiber.Ctx, out *report.Export) error {
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+out.Filename)
	return c.Send(out.Content)
}
