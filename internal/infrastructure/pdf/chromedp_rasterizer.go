package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jhoicas/invoice-layout/internal/application/billing"
	"github.com/jhoicas/invoice-layout/internal/domain/document"
	"github.com/jhoicas/invoice-layout/internal/infrastructure/htmlview"
	"github.com/jhoicas/invoice-layout/pkg/logger"
)

// Hoja A4 en pulgadas (Chrome) y en px CSS a 96 dpi.
const (
	a4WidthIn  = 210.0 / 25.4
	a4HeightIn = 297.0 / 25.4
	a4WidthPx  = 794
	a4HeightPx = 1123
)

// PageRenderer produce el HTML de impresión que se envía a Chrome.
type PageRenderer interface {
	RenderPage(ctx context.Context, tree *document.Tree, opts htmlview.Options) ([]byte, error)
}

// ChromedpConfig configuración del rasterizador Chrome.
type ChromedpConfig struct {
	// RemoteURL ws:// de un Chrome ya en ejecución; vacío = lanzar uno local.
	RemoteURL string
	// NoSandbox necesario al correr como root (Docker).
	NoSandbox bool
	Logger    *logger.Logger
}

var _ billing.DocumentRasterizer = (*ChromedpRasterizer)(nil)

// ChromedpRasterizer imprime la vista HTML de impresión con Page.printToPDF.
// El navegador se lanza en el primer uso y se reutiliza; cada exportación abre su pestaña.
type ChromedpRasterizer struct {
	pages       PageRenderer
	log         *logger.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpRasterizer prepara el allocator; no arranca Chrome todavía.
func NewChromedpRasterizer(cfg ChromedpConfig, pages PageRenderer) *ChromedpRasterizer {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	r := &ChromedpRasterizer{pages: pages, log: log}

	if cfg.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
		return r
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return r
}

// Name identifica el motor.
func (r *ChromedpRasterizer) Name() string { return "chromedp" }

// Close termina el navegador.
func (r *ChromedpRasterizer) Close() {
	r.allocCancel()
}

// Rasterize renderiza la vista de impresión y la imprime a PDF.
// No aplica timeout propio: la duración la decide el llamador.
func (r *ChromedpRasterizer) Rasterize(ctx context.Context, tree *document.Tree, opts billing.ExportOptions) ([]byte, error) {
	if err := checkOptions(opts); err != nil {
		return nil, err
	}
	html, err := r.pages.RenderPage(ctx, tree, htmlview.Options{Mode: billing.RenderPrint})
	if err != nil {
		return nil, fmt.Errorf("pdf: html de impresión: %w", err)
	}

	start := time.Now()
	tabCtx, cancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			r.log.Debug().Msgf(format, args...)
		}),
	)
	defer cancel()
	// Respetar una cancelación explícita del llamador.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	p := buildPrintParams(opts)
	var pdf []byte
	err = chromedp.Run(tabCtx,
		emulation.SetDeviceMetricsOverride(a4WidthPx, a4HeightPx, p.deviceScale, false),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithLandscape(p.landscape).
				WithPaperWidth(p.paperWidth).
				WithPaperHeight(p.paperHeight).
				WithMarginTop(0).WithMarginBottom(0).
				WithMarginLeft(0).WithMarginRight(0).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf: chromedp: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("pdf: chromedp devolvió un PDF vacío")
	}
	r.log.Debug().Int("bytes", len(pdf)).Dur("duration", time.Since(start)).Msg("PDF impreso con chromedp")
	return pdf, nil
}

type printParams struct {
	paperWidth  float64
	paperHeight float64
	landscape   bool
	deviceScale float64
}

// buildPrintParams A4 vertical sin márgenes; Scale se aplica como densidad de píxeles.
func buildPrintParams(opts billing.ExportOptions) printParams {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	return printParams{
		paperWidth:  a4WidthIn,
		paperHeight: a4HeightIn,
		landscape:   opts.Orientation != billing.OrientationPortrait,
		deviceScale: scale,
	}
}
