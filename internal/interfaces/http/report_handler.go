package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invoice-layout/internal/application/billing"
)

// ReportHandler tablero y exportación de ventas.
type ReportHandler struct {
	uc *billing.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *billing.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard devuelve ventas brutas, clientes activos, facturas emitidas y productos.
// GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(summary)
}

// SalesCSV GET /api/reports/sales.csv
func (h *ReportHandler) SalesCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.SalesCSV(c.UserContext(), &buf); err != nil {
		return respondError(c, err, "")
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales.csv"`)
	return c.Send(buf.Bytes())
}
