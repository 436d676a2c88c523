// Package htmlview renderiza el árbol de documento como HTML para pantalla e impresión.
package htmlview

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"github.com/jhoicas/invoice-layout/internal/application/billing"
	"github.com/jhoicas/invoice-layout/internal/domain/document"
)

//go:embed templates/invoice.html.tmpl
var templatesFS embed.FS

var _ billing.PreviewRenderer = (*Renderer)(nil)

// DefaultPreviewScale escala de la hoja en la vista de pantalla.
const DefaultPreviewScale = 0.85

// Anchos de columna (porcentaje de la tabla); la columna Item toma el resto.
var (
	singleWidths = map[document.ColumnKey]string{
		document.ColumnNumber: "7%",
		document.ColumnItem:   "auto",
		document.ColumnQty:    "10%",
		document.ColumnPrice:  "16%",
		document.ColumnTotal:  "18%",
	}
	splitWidths = map[document.ColumnKey]string{
		document.ColumnNumber: "10%",
		document.ColumnItem:   "auto",
		document.ColumnQty:    "16%",
		document.ColumnTotal:  "26%",
	}
)

// Options parámetros de una página.
type Options struct {
	Mode billing.RenderMode
	// AutoPrint agrega el script que abre el diálogo de impresión (solo en modo print).
	AutoPrint bool
}

// Renderer implementa billing.PreviewRenderer con html/template.
// La plantilla se parsea una vez y es segura para uso concurrente.
type Renderer struct {
	tmpl         *template.Template
	previewScale float64
}

// NewRenderer parsea la plantilla embebida.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("invoice.html.tmpl").
		Funcs(template.FuncMap{"columnWidth": columnWidth}).
		ParseFS(templatesFS, "templates/invoice.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("htmlview: parse template: %w", err)
	}
	return &Renderer{tmpl: tmpl, previewScale: DefaultPreviewScale}, nil
}

// RenderHTML vista de pantalla, o de impresión con diálogo automático.
func (r *Renderer) RenderHTML(ctx context.Context, tree *document.Tree, mode billing.RenderMode) ([]byte, error) {
	return r.RenderPage(ctx, tree, Options{Mode: mode, AutoPrint: mode == billing.RenderPrint})
}

// RenderPage renderiza con opciones explícitas; el rasterizador HTML la usa sin AutoPrint.
func (r *Renderer) RenderPage(_ context.Context, tree *document.Tree, opts Options) ([]byte, error) {
	if tree == nil {
		return nil, fmt.Errorf("htmlview: árbol nulo")
	}
	data := pageData{
		Tree:         tree,
		Mode:         string(opts.Mode),
		Screen:       opts.Mode != billing.RenderPrint,
		AutoPrint:    opts.AutoPrint && opts.Mode == billing.RenderPrint,
		FontSize:     template.CSS(strconv.FormatFloat(tree.Typography.FontSize, 'f', -1, 64) + "pt"),
		RowHeight:    template.CSS(strconv.FormatFloat(tree.Typography.RowHeight, 'f', -1, 64) + "px"),
		PreviewScale: template.CSS(strconv.FormatFloat(r.previewScale, 'f', -1, 64)),
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("htmlview: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

type pageData struct {
	Tree         *document.Tree
	Mode         string
	Screen       bool
	AutoPrint    bool
	FontSize     template.CSS
	RowHeight    template.CSS
	PreviewScale template.CSS
}

func columnWidth(split bool, key document.ColumnKey) template.CSS {
	widths := singleWidths
	if split {
		widths = splitWidths
	}
	if w, ok := widths[key]; ok {
		return template.CSS(w)
	}
	return "auto"
}
