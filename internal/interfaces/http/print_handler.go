package http

import (
	"mime"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invoice-layout/internal/application/billing"
	"github.com/jhoicas/invoice-layout/internal/application/dto"
)

// PrintHandler densidad, vista previa y exportación PDF de facturas.
type PrintHandler struct {
	uc *billing.PrintUseCase
}

// NewPrintHandler construye el handler.
func NewPrintHandler(uc *billing.PrintUseCase) *PrintHandler {
	return &PrintHandler{uc: uc}
}

// Recommend godoc
// @Summary      Perfil de densidad para N líneas
// @Tags         layout
// @Produce      json
// @Param        items  query  int  true  "Cantidad de líneas"
// @Success      200    {object}  dto.LayoutRecommendationDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/layout/recommend [get]
func (h *PrintHandler) Recommend(c *fiber.Ctx) error {
	n, err := strconv.Atoi(c.Query("items"))
	if err != nil || n < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items debe ser un entero >= 0"})
	}
	return c.JSON(billing.Recommend(n))
}

// Profiles GET /api/layout/profiles
func (h *PrintHandler) Profiles(c *fiber.Ctx) error {
	return c.JSON(billing.Profiles())
}

// RecommendForInvoice GET /api/invoices/:id/print/recommend
func (h *PrintHandler) RecommendForInvoice(c *fiber.Ctx) error {
	out, err := h.uc.RecommendForInvoice(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.JSON(out)
}

// Document GET /api/invoices/:id/document?profile=A|B|C|D
func (h *PrintHandler) Document(c *fiber.Ctx) error {
	tree, err := h.uc.Document(c.UserContext(), c.Params("id"), c.Query("profile"))
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.JSON(tree)
}

// Preview godoc
// @Summary      Vista previa HTML
// @Description  mode=print incluye @page A4 y abre el diálogo de impresión.
// @Tags         print
// @Produce      html
// @Param        id       path   string  true   "ID de la factura"
// @Param        profile  query  string  false  "A, B, C o D (por defecto el recomendado)"
// @Param        mode     query  string  false  "screen | print"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/preview [get]
func (h *PrintHandler) Preview(c *fiber.Ctx) error {
	html, err := h.uc.Preview(c.UserContext(), c.Params("id"), c.Query("profile"), c.Query("mode"))
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}

// PDF godoc
// @Summary      Descargar PDF
// @Tags         print
// @Produce      application/pdf
// @Param        id       path   string  true   "ID de la factura"
// @Param        profile  query  string  false  "A, B, C o D (por defecto el recomendado)"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *PrintHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.Export(c.UserContext(), c.Params("id"), c.Query("profile"))
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	// El número de factura es texto libre: FormatMediaType escapa comillas y no-ASCII.
	c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	return c.Send(data)
}
