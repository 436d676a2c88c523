package repository

import (
	"context"
	"encoding/json"
)

// CollectionStore puerto de persistencia por colecciones con clave.
// Cada colección es un objeto JSON id → registro que se lee completo y se
// reemplaza completo en cada cambio. Load devuelve (nil, nil) si la colección no existe.
type CollectionStore interface {
	Load(ctx context.Context, name string) (json.RawMessage, error)
	Replace(ctx context.Context, name string, payload json.RawMessage) error
}

// Nombres de colección.
const (
	CollectionCustomers = "customers"
	CollectionProducts  = "products"
	CollectionInvoices  = "invoices"
)
