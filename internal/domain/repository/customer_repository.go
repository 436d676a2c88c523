package repository

import (
	"context"

	"github.com/jhoicas/invoice-layout/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID devuelve (nil, nil) si no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// List filtra por nombre (subcadena, sin distinguir mayúsculas); search vacío = todos.
	List(ctx context.Context, search string) ([]*entity.Customer, error)
	Delete(ctx context.Context, id string) error
}
