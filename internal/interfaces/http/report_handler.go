package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/report"
	domaininv "github.com/jhoicas/inventario-console/internal/domain/inventory"
)

// ReportHandler reportes de solo lectura.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         reports
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (cantidad <= umbral)"  default(5)
// @Success      200  {object}  dto.LowStockReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", domaininv.AlertThreshold)
	out, err := h.uc.LowStock(c.UserContext(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial y estadísticas de movimientos
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.MovementReport
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.MovementReport(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StockPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	b, err := h.uc.ExportPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="reporte-stock.pdf"`)
	return c.Send(b)
}
