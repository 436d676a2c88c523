package entity

import "github.com/shopspring/decimal"

// InvoiceItem copia desnormalizada de un producto dentro de una factura.
// ProductID solo sirve para trazabilidad; Name y Price son los del momento de la venta.
type InvoiceItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"` // puede ser fraccionaria; 0 = línea retirada
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"` // Quantity × Price
}

// LineTotal recalcula Quantity × Price sin confiar en el campo Total almacenado.
func (i InvoiceItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.Price)
}

// NewInvoiceItem construye una línea con el total consistente.
func NewInvoiceItem(productID, name string, quantity, price decimal.Decimal) InvoiceItem {
	return InvoiceItem{
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		Price:     price,
		Total:     quantity.Mul(price),
	}
}
