package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invoice-layout/internal/application/billing"
	"github.com/jhoicas/invoice-layout/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *billing.CustomerUseCase
	ProductUC  *billing.ProductUseCase
	InvoiceUC  *billing.InvoiceUseCase
	PrintUC    *billing.PrintUseCase
	ReportUC   *billing.ReportUseCase
	// JWTSecret vacío deja la API abierta (desarrollo local).
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
	}
	// Lectura, vista previa y exportación: admin y operator. Escritura: solo admin.
	read := roleGuard(deps.JWTSecret, jwt.RoleAdmin, jwt.RoleOperator)
	write := roleGuard(deps.JWTSecret, jwt.RoleAdmin)

	printHandler := NewPrintHandler(deps.PrintUC)
	layoutGroup := api.Group("/layout", read)
	layoutGroup.Get("/recommend", printHandler.Recommend)
	layoutGroup.Get("/profiles", printHandler.Profiles)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", write, customerHandler.Create)
	customers.Get("/", read, customerHandler.List)
	customers.Get("/:id", read, customerHandler.GetByID)
	customers.Delete("/:id", write, customerHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", write, productHandler.Create)
	products.Get("/", read, productHandler.List)
	products.Get("/:id", read, productHandler.GetByID)
	products.Delete("/:id", write, productHandler.Delete)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", write, invoiceHandler.Create)
	invoices.Get("/", read, invoiceHandler.List)
	invoices.Get("/:id", read, invoiceHandler.GetByID)
	invoices.Put("/:id", write, invoiceHandler.Update)
	invoices.Delete("/:id", write, invoiceHandler.Delete)
	invoices.Get("/:id/print/recommend", read, printHandler.RecommendForInvoice)
	invoices.Get("/:id/document", read, printHandler.Document)
	invoices.Get("/:id/preview", read, printHandler.Preview)
	invoices.Get("/:id/pdf", read, printHandler.PDF)

	reports := api.Group("/reports", write)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/sales.csv", reportHandler.SalesCSV)
}

// roleGuard RequireRole cuando la autenticación está activa; si no, deja pasar.
func roleGuard(secret string, roles ...string) fiber.Handler {
	if secret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return RequireRole(roles...)
}
