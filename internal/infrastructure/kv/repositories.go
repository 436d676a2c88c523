package kv

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/jhoicas/invoice-layout/internal/domain"
	"github.com/jhoicas/invoice-layout/internal/domain/entity"
	"github.com/jhoicas/invoice-layout/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.InvoiceRepository  = (*InvoiceRepo)(nil)
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ── Clientes ─────────────────────────────────────────────────────────────────

// CustomerRepo implementación de CustomerRepository sobre la colección customers.
type CustomerRepo struct {
	c *Collection[entity.Customer]
}

// NewCustomerRepo carga la colección y construye el repositorio.
func NewCustomerRepo(ctx context.Context, store repository.CollectionStore) (*CustomerRepo, error) {
	c := NewCollection[entity.Customer](store, repository.CollectionCustomers)
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	return &CustomerRepo{c: c}, nil
}

func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	inserted, err := r.c.PutIfAbsent(ctx, customer.ID, *customer)
	if err != nil {
		return err
	}
	if !inserted {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	v, ok := r.c.Get(id)
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// List ordena por nombre.
func (r *CustomerRepo) List(_ context.Context, search string) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, r.c.Len())
	for _, v := range r.c.All() {
		if search != "" && !containsFold(v.Name, search) {
			continue
		}
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool {
		if !strings.EqualFold(out[i].Name, out[j].Name) {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	found, err := r.c.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// ── Productos ────────────────────────────────────────────────────────────────

// ProductRepo implementación de ProductRepository sobre la colección products.
type ProductRepo struct {
	c *Collection[entity.Product]
}

// NewProductRepo carga la colección y construye el repositorio.
func NewProductRepo(ctx context.Context, store repository.CollectionStore) (*ProductRepo, error) {
	c := NewCollection[entity.Product](store, repository.CollectionProducts)
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	return &ProductRepo{c: c}, nil
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	inserted, err := r.c.PutIfAbsent(ctx, product.ID, *product)
	if err != nil {
		return err
	}
	if !inserted {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	v, ok := r.c.Get(id)
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// List ordena por nombre.
func (r *ProductRepo) List(_ context.Context, search string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, r.c.Len())
	for _, v := range r.c.All() {
		if search != "" && !containsFold(v.Name, search) {
			continue
		}
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	found, err := r.c.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// ── Facturas ─────────────────────────────────────────────────────────────────

// InvoiceRepo implementación de InvoiceRepository sobre la colección invoices.
// Las líneas se copian al entrar y al salir para no compartir el slice con el caller.
type InvoiceRepo struct {
	c *Collection[entity.Invoice]
}

// NewInvoiceRepo carga la colección y construye el repositorio.
func NewInvoiceRepo(ctx context.Context, store repository.CollectionStore) (*InvoiceRepo, error) {
	c := NewCollection[entity.Invoice](store, repository.CollectionInvoices)
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	return &InvoiceRepo{c: c}, nil
}

func cloneInvoice(inv entity.Invoice) *entity.Invoice {
	inv.Items = slices.Clone(inv.Items)
	return &inv
}

func (r *InvoiceRepo) Save(ctx context.Context, invoice *entity.Invoice) error {
	return r.c.Put(ctx, invoice.ID, *cloneInvoice(*invoice))
}

func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	v, ok := r.c.Get(id)
	if !ok {
		return nil, nil
	}
	return cloneInvoice(v), nil
}

// List ordena por fecha descendente y, a igual fecha, por número.
func (r *InvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	all := r.c.All()
	out := make([]*entity.Invoice, 0, len(all))
	for _, v := range all {
		out = append(out, cloneInvoice(v))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Number < out[j].Number
	})
	return out, nil
}

func (r *InvoiceRepo) NumberExists(_ context.Context, number string) (bool, error) {
	for _, v := range r.c.All() {
		if v.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	found, err := r.c.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}
