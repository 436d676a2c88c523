package billing

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-layout/internal/application/dto"
	"github.com/jhoicas/invoice-layout/internal/domain/repository"
)

// ReportUseCase indicadores y exportación de ventas.
type ReportUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *ReportUseCase {
	return &ReportUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo, productRepo: productRepo}
}

// Dashboard ventas brutas (Σ total guardado), clientes, facturas y productos.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	invoices, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: listar facturas: %w", err)
	}
	customers, err := uc.customerRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("report: listar clientes: %w", err)
	}
	products, err := uc.productRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("report: listar productos: %w", err)
	}
	gross := decimal.Zero
	for _, inv := range invoices {
		gross = gross.Add(inv.Total)
	}
	return &dto.DashboardSummaryDTO{
		GrossSales:     gross,
		ActiveClients:  len(customers),
		InvoicesIssued: len(invoices),
		Products:       len(products),
	}, nil
}

var salesCSVHeader = []string{"number", "date", "customer", "items", "subtotal", "tax", "total"}

// SalesCSV escribe una fila por factura, de la más reciente a la más antigua.
func (uc *ReportUseCase) SalesCSV(ctx context.Context, w io.Writer) error {
	invoices, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("report: listar facturas: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(salesCSVHeader); err != nil {
		return err
	}
	for _, inv := range invoices {
		row := []string{
			inv.Number,
			inv.Date.Format("2006-01-02"),
			inv.CustomerName,
			strconv.Itoa(inv.ActiveItemCount()),
			inv.Subtotal.StringFixed(2),
			inv.Tax.StringFixed(2),
			inv.Total.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
