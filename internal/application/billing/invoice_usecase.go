package billing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-layout/internal/application/dto"
	"github.com/jhoicas/invoice-layout/internal/domain"
	"github.com/jhoicas/invoice-layout/internal/domain/entity"
	"github.com/jhoicas/invoice-layout/internal/domain/repository"
)

// Intentos para encontrar un número de factura libre antes de rendirse.
const maxNumberAttempts = 20

// InvoiceUseCase alta, edición y consulta de facturas.
// Es quien mantiene el invariante de totales: cada línea guarda Quantity × Price
// y el resumen se recalcula completo en cada guardado.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	now          func() time.Time
	newNumber    func() string
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		now:          time.Now,
		newNumber:    RandomInvoiceNumber,
	}
}

// WithNumberGenerator reemplaza el generador de números (tests).
func (uc *InvoiceUseCase) WithNumberGenerator(fn func() string) *InvoiceUseCase {
	uc.newNumber = fn
	return uc
}

// WithClock reemplaza el reloj (tests).
func (uc *InvoiceUseCase) WithClock(fn func() time.Time) *InvoiceUseCase {
	uc.now = fn
	return uc
}

// RandomInvoiceNumber número visible de 6 dígitos entre 100000 y 999999.
func RandomInvoiceNumber() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}

// Create guarda una factura nueva con número y fecha asignados.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	number, err := uc.freeNumber(ctx)
	if err != nil {
		return nil, err
	}
	date := uc.now().UTC()
	if in.Date != nil {
		date = *in.Date
	}
	inv := &entity.Invoice{ID: uuid.New().String(), Number: number, Date: date}
	if err := uc.fill(ctx, inv, in, nil); err != nil {
		return nil, err
	}
	if err := uc.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("guardar factura: %w", err)
	}
	return toInvoiceResponse(inv), nil
}

// Update reemplaza cliente y líneas de una factura existente.
// ID, número y fecha originales se conservan.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	inv := &entity.Invoice{ID: existing.ID, Number: existing.Number, Date: existing.Date}
	if err := uc.fill(ctx, inv, in, existing.Items); err != nil {
		return nil, err
	}
	if err := uc.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("guardar factura: %w", err)
	}
	return toInvoiceResponse(inv), nil
}

// fill valida la petición y copia en inv los datos del cliente y de cada producto.
// previous son las líneas anteriores: si un producto ya no está en el catálogo,
// la línea conserva el nombre y precio que tenía.
func (uc *InvoiceUseCase) fill(ctx context.Context, inv *entity.Invoice, in dto.SaveInvoiceRequest, previous []entity.InvoiceItem) error {
	if in.CustomerID == "" {
		return fmt.Errorf("%w: seleccione un cliente", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: agregue al menos una línea", domain.ErrInvalidInput)
	}
	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return fmt.Errorf("obtener cliente: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("%w: cliente %s no existe", domain.ErrInvalidInput, in.CustomerID)
	}

	prev := make(map[string]entity.InvoiceItem, len(previous))
	for _, it := range previous {
		prev[it.ProductID] = it
	}
	seen := make(map[string]bool, len(in.Items))
	items := make([]entity.InvoiceItem, 0, len(in.Items))
	for _, line := range in.Items {
		if seen[line.ProductID] {
			return fmt.Errorf("%w: producto %s repetido", domain.ErrInvalidInput, line.ProductID)
		}
		seen[line.ProductID] = true
		if line.Quantity.IsNegative() {
			return fmt.Errorf("%w: cantidad negativa para %s", domain.ErrInvalidInput, line.ProductID)
		}
		name, price, err := uc.productSnapshot(ctx, line.ProductID, prev)
		if err != nil {
			return err
		}
		if line.Price != nil {
			if line.Price.IsNegative() {
				return fmt.Errorf("%w: precio negativo para %s", domain.ErrInvalidInput, line.ProductID)
			}
			price = *line.Price
		}
		items = append(items, entity.NewInvoiceItem(line.ProductID, name, line.Quantity, price))
	}

	inv.CustomerID = customer.ID
	inv.CustomerName = customer.Name
	inv.CustomerAddress = customer.Address
	inv.Items = items
	inv.ApplySummary()
	return nil
}

func (uc *InvoiceUseCase) productSnapshot(ctx context.Context, productID string, prev map[string]entity.InvoiceItem) (string, decimal.Decimal, error) {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return "", decimal.Decimal{}, fmt.Errorf("obtener producto: %w", err)
	}
	if p != nil {
		return p.Name, p.Price, nil
	}
	if old, ok := prev[productID]; ok {
		return old.Name, old.Price, nil
	}
	return "", decimal.Decimal{}, fmt.Errorf("%w: producto %s no existe", domain.ErrInvalidInput, productID)
}

func (uc *InvoiceUseCase) freeNumber(ctx context.Context) (string, error) {
	for i := 0; i < maxNumberAttempts; i++ {
		n := uc.newNumber()
		exists, err := uc.invoiceRepo.NumberExists(ctx, n)
		if err != nil {
			return "", fmt.Errorf("verificar número: %w", err)
		}
		if !exists {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: no se encontró un número de factura libre", domain.ErrDuplicate)
}

// Get obtiene una factura con sus líneas.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List facturas cuyo cliente contiene search (sin distinguir mayúsculas) o cuyo número lo contiene.
func (uc *InvoiceUseCase) List(ctx context.Context, search string) ([]*dto.InvoiceSummaryDTO, error) {
	list, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.TrimSpace(search)
	needle := strings.ToLower(search)
	out := make([]*dto.InvoiceSummaryDTO, 0, len(list))
	for _, inv := range list {
		if search != "" &&
			!strings.Contains(strings.ToLower(inv.CustomerName), needle) &&
			!strings.Contains(inv.Number, search) {
			continue
		}
		out = append(out, &dto.InvoiceSummaryDTO{
			ID:           inv.ID,
			Number:       inv.Number,
			CustomerName: inv.CustomerName,
			Date:         inv.Date,
			ItemCount:    inv.ActiveItemCount(),
			Total:        inv.Total,
		})
	}
	return out, nil
}

// Delete elimina la factura.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.invoiceRepo.Delete(ctx, id)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Total:     it.Total,
		})
	}
	return &dto.InvoiceResponse{
		ID:              inv.ID,
		Number:          inv.Number,
		CustomerID:      inv.CustomerID,
		CustomerName:    inv.CustomerName,
		CustomerAddress: inv.CustomerAddress,
		Date:            inv.Date,
		Items:           items,
		Subtotal:        inv.Subtotal,
		Tax:             inv.Tax,
		Total:           inv.Total,
	}
}
