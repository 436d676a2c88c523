package billing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-layout/internal/domain/entity"
	"github.com/jhoicas/invoice-layout/internal/infrastructure/kv"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures compartidos
// ──────────────────────────────────────────────────────────────────────────────

type repos struct {
	customers *kv.CustomerRepo
	products  *kv.ProductRepo
	invoices  *kv.InvoiceRepo
}

func newRepos(t *testing.T) repos {
	t.Helper()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	c, err := kv.NewCustomerRepo(ctx, store)
	require.NoError(t, err)
	p, err := kv.NewProductRepo(ctx, store)
	require.NoError(t, err)
	i, err := kv.NewInvoiceRepo(ctx, store)
	require.NoError(t, err)
	return repos{customers: c, products: p, invoices: i}
}

// seedInvoice guarda una factura con n líneas activas y zeros líneas en cero.
func seedInvoice(t *testing.T, r repos, id, number string, n, zeros int) *entity.Invoice {
	t.Helper()
	items := make([]entity.InvoiceItem, 0, n+zeros)
	for i := 0; i < n; i++ {
		items = append(items, entity.NewInvoiceItem(
			fmt.Sprintf("p%d", i), fmt.Sprintf("Item %d", i),
			decimal.NewFromInt(int64(i+1)), decimal.RequireFromString("2.50")))
	}
	for i := 0; i < zeros; i++ {
		items = append(items, entity.NewInvoiceItem(
			fmt.Sprintf("z%d", i), fmt.Sprintf("Zero %d", i), decimal.Zero, decimal.NewFromInt(9)))
	}
	inv := &entity.Invoice{
		ID: id, Number: number, CustomerID: "c1", CustomerName: "Corner Bodega",
		CustomerAddress: "9 Main St", Date: time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC), Items: items,
	}
	inv.ApplySummary()
	require.NoError(t, r.invoices.Save(context.Background(), inv))
	return inv
}
