package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/invoice-layout/internal/domain"
	"github.com/jhoicas/invoice-layout/internal/domain/document"
)

// RenderMode destino de la vista HTML.
type RenderMode string

const (
	// RenderScreen vista previa escalada dentro de un contenedor.
	RenderScreen RenderMode = "screen"
	// RenderPrint hoja A4 con CSS de impresión; dispara el diálogo nativo del navegador.
	RenderPrint RenderMode = "print"
)

// ParseRenderMode interpreta el modo recibido por query; vacío = screen.
func ParseRenderMode(s string) (RenderMode, error) {
	switch RenderMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", RenderScreen:
		return RenderScreen, nil
	case RenderPrint:
		return RenderPrint, nil
	}
	return "", fmt.Errorf("%w: modo de vista %q", domain.ErrInvalidInput, s)
}

// PreviewRenderer produce el HTML de pantalla o impresión a partir del árbol.
type PreviewRenderer interface {
	RenderHTML(ctx context.Context, tree *document.Tree, mode RenderMode) ([]byte, error)
}

// PageSize tamaño de hoja.
type PageSize string

// Orientation orientación de la hoja.
type Orientation string

const (
	PageA4              PageSize    = "A4"
	OrientationPortrait Orientation = "portrait"
)

// ExportOptions parámetros fijos de la exportación a archivo.
type ExportOptions struct {
	PageSize    PageSize
	Orientation Orientation
	Scale       float64 // factor de rasterizado (2 = doble resolución)
}

// DefaultExportOptions A4 vertical, escala 2.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{PageSize: PageA4, Orientation: OrientationPortrait, Scale: 2}
}

// DocumentRasterizer convierte el árbol en un archivo PDF.
type DocumentRasterizer interface {
	Rasterize(ctx context.Context, tree *document.Tree, opts ExportOptions) ([]byte, error)
	// Name identifica el motor en los logs.
	Name() string
}

// ExportArchive destino opcional donde se guarda una copia de cada exportación.
type ExportArchive interface {
	Save(ctx context.Context, filename string, data []byte) error
}

// ExportFileName nombre del archivo descargado: invoice-<number>.<ext>.
// El número se usa tal cual, sin relleno ni validación.
func ExportFileName(number, ext string) string {
	return "invoice-" + number + "." + ext
}
