package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura cerrada.
// CustomerName y CustomerAddress son una instantánea del cliente al guardar;
// el documento impreso debe seguir siendo el mismo aunque el cliente cambie después.
type Invoice struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"` // número visible, se imprime tal cual
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	Date            time.Time       `json:"date"`
	Items           []InvoiceItem   `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"` // siempre 0 por ahora
	Total           decimal.Decimal `json:"total"`
}

// ActiveItemCount cuenta las líneas con cantidad > 0 (las que aparecen impresas).
func (inv *Invoice) ActiveItemCount() int {
	n := 0
	for _, it := range inv.Items {
		if it.Quantity.IsPositive() {
			n++
		}
	}
	return n
}

// Summary totales de una factura.
type Summary struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeSummary calcula subtotal = Σ item.Total, tax = 0 y total = subtotal + tax.
// La usa quien edita la factura al guardarla; el motor de layout no la invoca.
func ComputeSummary(items []InvoiceItem) Summary {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total)
	}
	tax := decimal.Zero
	return Summary{Subtotal: subtotal, Tax: tax, Total: subtotal.Add(tax)}
}

// ApplySummary fija los totales de la factura a partir de sus líneas.
func (inv *Invoice) ApplySummary() {
	s := ComputeSummary(inv.Items)
	inv.Subtotal = s.Subtotal
	inv.Tax = s.Tax
	inv.Total = s.Total
}
