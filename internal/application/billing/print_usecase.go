package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-layout/internal/application/dto"
	"github.com/jhoicas/invoice-layout/internal/domain"
	"github.com/jhoicas/invoice-layout/internal/domain/document"
	"github.com/jhoicas/invoice-layout/internal/domain/entity"
	"github.com/jhoicas/invoice-layout/internal/domain/layout"
	"github.com/jhoicas/invoice-layout/internal/domain/repository"
	"github.com/jhoicas/invoice-layout/pkg/logger"
)

// PrintUseCase vista previa, impresión y exportación de facturas.
// No guarda estado entre llamadas: un fallo de exportación no afecta la vista previa.
type PrintUseCase struct {
	invoiceRepo repository.InvoiceRepository
	renderer    PreviewRenderer
	rasterizer  DocumentRasterizer
	archive     ExportArchive // opcional
	branding    document.Branding
	log         *logger.Logger
}

// NewPrintUseCase construye el caso de uso. archive puede ser nil.
func NewPrintUseCase(
	invoiceRepo repository.InvoiceRepository,
	renderer PreviewRenderer,
	rasterizer DocumentRasterizer,
	archive ExportArchive,
	branding document.Branding,
	log *logger.Logger,
) *PrintUseCase {
	return &PrintUseCase{
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
		rasterizer:  rasterizer,
		archive:     archive,
		branding:    branding,
		log:         log,
	}
}

// Recommend perfil sugerido para itemCount líneas.
func Recommend(itemCount int) dto.LayoutRecommendationDTO {
	p := layout.RecommendDensity(itemCount)
	return dto.LayoutRecommendationDTO{
		ItemCount:  itemCount,
		Profile:    p,
		Typography: layout.MustResolveTypography(p),
	}
}

// Profiles los cuatro perfiles que el operador puede elegir.
func Profiles() []dto.LayoutProfileDTO {
	out := make([]dto.LayoutProfileDTO, 0, 4)
	for _, p := range layout.AllProfiles() {
		out = append(out, dto.LayoutProfileDTO{Profile: p, Typography: layout.MustResolveTypography(p)})
	}
	return out
}

// RecommendForInvoice recomienda a partir de las líneas con cantidad > 0.
func (uc *PrintUseCase) RecommendForInvoice(ctx context.Context, invoiceID string) (*dto.LayoutRecommendationDTO, error) {
	inv, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	rec := Recommend(inv.ActiveItemCount())
	return &rec, nil
}

// Document arma el árbol de la factura. profile vacío = recomendación automática;
// un valor que no sea A–D se rechaza con domain.ErrInvalidInput.
func (uc *PrintUseCase) Document(ctx context.Context, invoiceID, profile string) (*document.Tree, error) {
	inv, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.assemble(inv, profile)
}

func (uc *PrintUseCase) assemble(inv *entity.Invoice, profile string) (*document.Tree, error) {
	p, err := resolveProfile(inv, profile)
	if err != nil {
		return nil, err
	}
	tree, err := document.Assemble(inv, p, uc.branding)
	if err != nil {
		return nil, fmt.Errorf("print: armar documento: %w", err)
	}
	return tree, nil
}

// Preview HTML de pantalla o de impresión.
func (uc *PrintUseCase) Preview(ctx context.Context, invoiceID, profile, mode string) ([]byte, error) {
	m, err := ParseRenderMode(mode)
	if err != nil {
		return nil, err
	}
	tree, err := uc.Document(ctx, invoiceID, profile)
	if err != nil {
		return nil, err
	}
	html, err := uc.renderer.RenderHTML(ctx, tree, m)
	if err != nil {
		return nil, fmt.Errorf("print: render html: %w", err)
	}
	return html, nil
}

// Export genera el PDF y su nombre de archivo.
//
// Cualquier fallo del rasterizador, incluido un pánico, se registra y se devuelve
// como domain.ErrExportFailed. No hay reintentos ni timeout: el rasterizador
// recibe un contexto que no se cancela con la petición.
func (uc *PrintUseCase) Export(ctx context.Context, invoiceID, profile string) (data []byte, filename string, err error) {
	inv, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	tree, err := uc.assemble(inv, profile)
	if err != nil {
		return nil, "", err
	}
	number := inv.Number
	filename = ExportFileName(number, "pdf")

	data, err = uc.rasterize(context.WithoutCancel(ctx), tree)
	if err != nil {
		uc.log.Error().Err(err).
			Str("invoice_id", invoiceID).
			Str("invoice_number", number).
			Str("engine", uc.rasterizer.Name()).
			Msg("exportación PDF fallida")
		return nil, "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	if uc.archive != nil {
		if aErr := uc.archive.Save(ctx, filename, data); aErr != nil {
			uc.log.Warn().Err(aErr).Str("file", filename).Msg("no se pudo archivar la exportación")
		}
	}
	uc.log.Info().
		Str("invoice_number", number).
		Str("profile", tree.Profile.String()).
		Int("bytes", len(data)).
		Msg("factura exportada")
	return data, filename, nil
}

func (uc *PrintUseCase) rasterize(ctx context.Context, tree *document.Tree) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("pánico en %s: %v", uc.rasterizer.Name(), r)
		}
	}()
	data, err = uc.rasterizer.Rasterize(ctx, tree, DefaultExportOptions())
	if err == nil && len(data) == 0 {
		err = fmt.Errorf("%s devolvió un archivo vacío", uc.rasterizer.Name())
	}
	return data, err
}

func (uc *PrintUseCase) load(ctx context.Context, invoiceID string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("print: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func resolveProfile(inv *entity.Invoice, profile string) (layout.DensityProfile, error) {
	if profile == "" {
		return layout.RecommendDensity(inv.ActiveItemCount()), nil
	}
	p, err := layout.ParseDensityProfile(profile)
	if err != nil {
		return "", fmt.Errorf("%w: perfil %q (A, B, C o D)", domain.ErrInvalidInput, profile)
	}
	return p, nil
}
