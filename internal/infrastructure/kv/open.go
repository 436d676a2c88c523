package kv

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-layout/internal/domain/repository"
	"github.com/jhoicas/invoice-layout/internal/infrastructure/cache"
	"github.com/jhoicas/invoice-layout/internal/infrastructure/postgres"
	"github.com/jhoicas/invoice-layout/pkg/config"
)

// Open abre el almacén de colecciones según cfg.Store.Driver.
// El close devuelto libera la conexión subyacente; nunca es nil.
func Open(ctx context.Context, cfg *config.Config) (repository.CollectionStore, func(), error) {
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		store := postgres.NewCollectionStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	case "redis":
		store, err := cache.NewRedisCollectionStore(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case "memory", "":
		return NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("kv: driver desconocido %q", cfg.Store.Driver)
	}
}

// Repos los tres repositorios de facturación sobre un mismo almacén.
type Repos struct {
	Customers *CustomerRepo
	Products  *ProductRepo
	Invoices  *InvoiceRepo
}

// OpenRepos carga las tres colecciones.
func OpenRepos(ctx context.Context, store repository.CollectionStore) (*Repos, error) {
	customers, err := NewCustomerRepo(ctx, store)
	if err != nil {
		return nil, err
	}
	products, err := NewProductRepo(ctx, store)
	if err != nil {
		return nil, err
	}
	invoices, err := NewInvoiceRepo(ctx, store)
	if err != nil {
		return nil, err
	}
	return &Repos{Customers: customers, Products: products, Invoices: invoices}, nil
}
