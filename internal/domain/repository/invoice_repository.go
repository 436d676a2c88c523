package repository

import (
	"context"

	"github.com/jhoicas/invoice-layout/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Las líneas viajan dentro de la factura; no hay tabla de detalle aparte.
type InvoiceRepository interface {
	// Save crea o reemplaza la factura con el mismo ID.
	Save(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// List ordena por fecha descendente.
	List(ctx context.Context) ([]*entity.Invoice, error)
	// NumberExists indica si algún registro ya usa el número visible.
	NumberExists(ctx context.Context, number string) (bool, error)
	Delete(ctx context.Context, id string) error
}
