package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/reports/dashboard.
type DashboardSummaryDTO struct {
	GrossSales     decimal.Decimal `json:"gross_sales"`     // Σ total de todas las facturas
	ActiveClients  int             `json:"active_clients"`  // clientes registrados
	InvoicesIssued int             `json:"invoices_issued"` // facturas guardadas
	Products       int             `json:"products"`
}
