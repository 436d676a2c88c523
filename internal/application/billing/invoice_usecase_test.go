package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-layout/internal/application/billing"
	"github.com/jhoicas/invoice-layout/internal/application/dto"
	"github.com/jhoicas/invoice-layout/internal/domain"
	"github.com/jhoicas/invoice-layout/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedCatalog(t *testing.T, r repos) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, r.customers.Create(ctx, &entity.Customer{ID: "c1", Name: "Corner Bodega", Address: "9 Main St"}))
	require.NoError(t, r.products.Create(ctx, &entity.Product{ID: "kale", Name: "Kale", Category: entity.CategoryVegetable, UnitType: entity.UnitBunch, Price: dec("1.75")}))
	require.NoError(t, r.products.Create(ctx, &entity.Product{ID: "mango", Name: "Mango Box", Category: entity.CategoryFruit, UnitType: entity.UnitBox, Price: dec("24")}))
}

func sequence(nums ...string) func() string {
	i := 0
	return func() string {
		n := nums[i%len(nums)]
		i++
		return n
	}
}

func TestRandomInvoiceNumber_SeisDigitos(t *testing.T) {
	for i := 0; i < 500; i++ {
		n := billing.RandomInvoiceNumber()
		require.Len(t, n, 6)
		assert.GreaterOrEqual(t, n, "100000")
		assert.LessOrEqual(t, n, "999999")
	}
}

func TestInvoiceCreate_CalculaTotalesYCopiaDatos(t *testing.T) {
	r := newRepos(t)
	seedCatalog(t, r)
	fixed := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	uc := billing.NewInvoiceUseCase(r.invoices, r.customers, r.products).
		WithNumberGenerator(sequence("555000")).
		WithClock(func() time.Time { return fixed })

	custom := dec("20")
	out, err := uc.Create(context.Background(), dto.SaveInvoiceRequest{
		CustomerID: "c1",
		Items: []dto.InvoiceItemRequest{
			{ProductID: "kale", Quantity: dec("4")},
			{ProductID: "mango", Quantity: dec("1.5"), Price: &custom},
			{ProductID: "z", Quantity: dec("0")},
		},
	})
	// "z" no existe en el catálogo.
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, out)

	out, err = uc.Create(context.Background(), dto.SaveInvoiceRequest{
		CustomerID: "c1",
		Items: []dto.InvoiceItemRequest{
			{ProductID: "kale", Quantity: dec("4")},
			{ProductID: "mango", Quantity: dec("1.5"), Price: &custom},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "555000", out.Number)
	assert.Equal(t, fixed, out.Date)
	assert.Equal(t, "Corner Bodega", out.CustomerName)
	assert.Equal(t, "9 Main St", out.CustomerAddress)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Total.Equal(dec("7")))
	assert.True(t, out.Items[1].Total.Equal(dec("30")))
	assert.True(t, out.Subtotal.Equal(dec("37")))
	assert.True(t, out.Tax.IsZero())
	assert.True(t, out.Total.Equal(out.Subtotal))
}

func TestInvoiceCreate_Validaciones(t *testing.T) {
	r := newRepos(t)
	seedCatalog(t, r)
	uc := billing.NewInvoiceUseCase(r.invoices, r.customers, r.products)
	ctx := context.Background()

	cases := map[string]dto.SaveInvoiceRequest{
		"sin cliente":         {Items: []dto.InvoiceItemRequest{{ProductID: "kale", Quantity: dec("1")}}},
		"cliente inexistente": {CustomerID: "x", Items: []dto.InvoiceItemRequest{{ProductID: "kale", Quantity: dec("1")}}},
		"sin líneas":          {CustomerID: "c1"},
		"cantidad negativa":   {CustomerID: "c1", Items: []dto.InvoiceItemRequest{{ProductID: "kale", Quantity: dec("-1")}}},
		"producto repetido":   {CustomerID: "c1", Items: []dto.InvoiceItemRequest{
			{ProductID: "kale", Quantity: dec("1")}, {ProductID: "kale", Quantity: dec("2")},
		}},
	}
	for name, in := range cases {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestInvoiceCreate_NumeroOcupadoSeReintenta(t *testing.T) {
	r := newRepos(t)
	seedCatalog(t, r)
	seedInvoice(t, r, "old", "111111", 1, 0)
	uc := billing.NewInvoiceUseCase(r.invoices, r.customers, r.products).
		WithNumberGenerator(sequence("111111", "222222"))

	out, err := uc.Create(context.Background(), dto.SaveInvoiceRequest{
		CustomerID: "c1", Items: []dto.InvoiceItemRequest{{ProductID: "kale", Quantity: dec("1")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "222222", out.Number)
}

func TestInvoiceCreate_SinNumeroLibre(t *testing.T) {
	r := newRepos(t)
	seedCatalog(t, r)
	seedInvoice(t, r, "old", "111111", 1, 0)
	uc := billing.NewInvoiceUseCase(r.invoices, r.customers, r.products).
		WithNumberGenerator(sequence("111111"))

	_, err := uc.Create(context.Background(), dto.SaveInvoiceRequest{
		CustomerID: "c1", Items: []dto.InvoiceItemRequest{{ProductID: "kale", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Al editar se conservan número y fecha, y un producto retirado del catálogo
// mantiene el nombre y precio de la versión anterior.
func TestInvoiceUpdate_ConservaIdentidad(t *testing.T) {
	r := newRepos(t)
	seedCatalog(t, r)
	ctx := context.Background()
	uc := billing.NewInvoiceUseCase(r.invoices, r.customers, r.products).
		WithNumberGenerator(sequence("654321"))

	created, err := uc.Create(ctx, dto.SaveInvoiceRequest{
		CustomerID: "c1", Items: []dto.InvoiceItemRequest{
			{ProductID: "kale", Quantity: dec("2")},
			{ProductID: "mango", Quantity: dec("1")},
		},
	})
	require.NoError(t, err)
	require.NoError(t, r.products.Delete(ctx, "mango"))

	updated, err := uc.Update(ctx, created.ID, dto.SaveInvoiceRequest{
		CustomerID: "c1", Items: []dto.InvoiceItemRequest{
			{ProductID: "kale", Quantity: dec("0")},
			{ProductID: "mango", Quantity: dec("3")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "654321", updated.Number)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, "Mango Box", updated.Items[1].Name)
	assert.True(t, updated.Total.Equal(dec("72")))

	_, err = uc.Update(ctx, "nope", dto.SaveInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceList_FiltraPorClienteONumero(t *testing.T) {
	r := newRepos(t)
	seedInvoice(t, r, "a", "100200", 2, 1)
	seedInvoice(t, r, "b", "300400", 1, 0)
	uc := billing.NewInvoiceUseCase(r.invoices, r.customers, r.products)
	ctx := context.Background()

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byNumber, err := uc.List(ctx, "3004")
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	assert.Equal(t, "b", byNumber[0].ID)

	byName, err := uc.List(ctx, "bodega")
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	for _, s := range all {
		if s.ID == "a" {
			assert.Equal(t, 2, s.ItemCount)
		}
	}
}

func TestCustomerYProducto_Validaciones(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	cuc := billing.NewCustomerUseCase(r.customers)
	puc := billing.NewProductUseCase(r.products)

	_, err := cuc.Create(ctx, dto.CreateCustomerRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	c, err := cuc.Create(ctx, dto.CreateCustomerRequest{Name: " Deli 24 ", Address: "1 Av"})
	require.NoError(t, err)
	assert.Equal(t, "Deli 24", c.Name)
	assert.NotEmpty(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	got, err := cuc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	require.NoError(t, cuc.Delete(ctx, c.ID))
	_, err = cuc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = puc.Create(ctx, dto.CreateProductRequest{Name: "Kale", Category: "Meat"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = puc.Create(ctx, dto.CreateProductRequest{Name: "Kale", UnitType: "Ton"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = puc.Create(ctx, dto.CreateProductRequest{Name: "Kale", Price: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p, err := puc.Create(ctx, dto.CreateProductRequest{Name: "Kale", Price: dec("1.5")})
	require.NoError(t, err)
	assert.Equal(t, "Vegetable", p.Category)
	assert.Equal(t, "Kg", p.UnitType)

	list, err := puc.List(ctx, "ka")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
