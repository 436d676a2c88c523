// Package pdf convierte el árbol de documento en PDF.
//
// Dos motores implementan billing.DocumentRasterizer:
//   - MarotoRasterizer: dibuja el árbol directamente con Maroto v2 (sin dependencias externas).
//   - ChromedpRasterizer: renderiza la vista HTML de impresión en Chrome headless.
//
// Grilla Maroto (24 columnas) en A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Razón social / contacto (16)      │  Date / Invoice # (8)   │
//	│  BILL TO nombre / dirección (16)   │  Términos (8)           │
//	│  # 2 | Item 12 | Qty 3 | Price 3 | Total 4     (perfiles A/B) │
//	│  # 1 | Item 5 | Qty 2 | Total 3 ║ 2 ║ ídem      (perfiles C/D) │
//	│  Leyenda (14)                      │  Grand Total (10)       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/invoice-layout/internal/application/billing"
	"github.com/jhoicas/invoice-layout/internal/domain/document"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorInk   = &props.Color{Red: 15, Green: 23, Blue: 42}
	colorGray  = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorLight = &props.Color{Red: 226, Green: 232, Blue: 240}
)

const (
	gridSize    = 24
	pageWidthMM = 210.0
	marginMM    = 12.0
	pxToMM      = 0.2646 // 1px CSS a 96 dpi
	ellipsis    = "..."
)

// Anchos de columna en unidades de grilla.
var (
	singleSpans = map[document.ColumnKey]int{
		document.ColumnNumber: 2,
		document.ColumnItem:   12,
		document.ColumnQty:    3,
		document.ColumnPrice:  3,
		document.ColumnTotal:  4,
	}
	splitSpans = map[document.ColumnKey]int{
		document.ColumnNumber: 1,
		document.ColumnItem:   5,
		document.ColumnQty:    2,
		document.ColumnTotal:  3,
	}
	splitTableSpan = 11
	splitGapSpan   = gridSize - 2*splitTableSpan
)

var _ billing.DocumentRasterizer = (*MarotoRasterizer)(nil)

// MarotoRasterizer implementa billing.DocumentRasterizer usando Maroto v2.
// La salida es vectorial: ExportOptions.Scale no cambia el resultado.
type MarotoRasterizer struct{}

// NewMarotoRasterizer construye el rasterizador.
func NewMarotoRasterizer() *MarotoRasterizer { return &MarotoRasterizer{} }

// Name identifica el motor.
func (r *MarotoRasterizer) Name() string { return "maroto" }

// Rasterize genera el PDF y devuelve sus bytes.
func (r *MarotoRasterizer) Rasterize(_ context.Context, tree *document.Tree, opts billing.ExportOptions) ([]byte, error) {
	if tree == nil {
		return nil, fmt.Errorf("pdf: árbol nulo")
	}
	if err := checkOptions(opts); err != nil {
		return nil, err
	}

	font := tree.Typography.FontSize
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithMaxGridSize(gridSize).
		WithLeftMargin(marginMM).WithRightMargin(marginMM).
		WithTopMargin(marginMM).WithBottomMargin(marginMM).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: font}).
		WithTitle(tree.Title, true).
		WithAuthor(tree.Header.BusinessName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(tree, font))
	m.AddRows(line.NewRow(2, props.Line{Color: colorInk, Thickness: 0.6}))
	m.AddRows(billToRow(tree.BillTo, font))
	m.AddRows(tableRows(tree, font)...)
	m.AddRows(line.NewRow(3, props.Line{Color: colorInk, Thickness: 0.6}))
	m.AddRows(footerRow(tree.Footer, font))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func checkOptions(opts billing.ExportOptions) error {
	if opts.PageSize != billing.PageA4 {
		return fmt.Errorf("pdf: tamaño de hoja no soportado %q", opts.PageSize)
	}
	if opts.Orientation != billing.OrientationPortrait {
		return fmt.Errorf("pdf: orientación no soportada %q", opts.Orientation)
	}
	return nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + contacto (izq) y metadatos (der).
func headerRow(tree *document.Tree, font float64) core.Row {
	left := col.New(16).Add(
		text.New(tree.Header.BusinessName, props.Text{
			Style: fontstyle.Bold, Size: font * 1.6, Color: colorInk, Top: 1,
		}),
	)
	if tree.Header.Contact != "" {
		left.Add(text.New(tree.Header.Contact, props.Text{
			Style: fontstyle.Bold, Size: font, Color: colorGray, Top: 2 + font*0.6,
		}))
	}
	right := col.New(8)
	for i, m := range tree.Header.Meta {
		right.Add(text.New(m.Label+"  "+m.Value, props.Text{
			Style: fontstyle.Bold, Size: font, Align: alignOf(m.Align), Top: 1 + float64(i)*font*0.5,
		}))
	}
	return row.New(6 + font*1.2).Add(left, right)
}

// billToRow: cliente con la dirección en varias líneas y términos a la derecha.
func billToRow(b document.BillTo, font float64) core.Row {
	lineMM := font * 0.45
	left := col.New(16).Add(
		text.New(b.Heading, props.Text{Style: fontstyle.Bold, Size: font * 0.8, Color: colorGray, Top: 1}),
		text.New(b.Name, props.Text{Style: fontstyle.Bold, Size: font * 1.2, Top: 1 + lineMM}),
	)
	addr := strings.Split(b.Address, "\n")
	for i, l := range addr {
		left.Add(text.New(l, props.Text{Size: font, Color: colorGray, Top: 1 + lineMM*(float64(i)+2.5)}))
	}
	right := col.New(8)
	if b.Terms != "" {
		right.Add(text.New(b.Terms, props.Text{Style: fontstyle.Bold, Size: font, Align: align.Right, Top: 1 + lineMM}))
	}
	return row.New(4 + lineMM*float64(len(addr)+3)).Add(left, right)
}

// tableRows: cabecera y filas de una tabla, o de dos tablas lado a lado.
func tableRows(tree *document.Tree, font float64) []core.Row {
	rowMM := tree.Typography.RowHeight * pxToMM
	tables := tree.Body.Tables
	if len(tables) == 0 {
		return nil
	}
	if !tree.Body.Split || len(tables) == 1 {
		t := tables[0]
		rows := []core.Row{headerRowOf(rowMM, headerCols(t.Columns, singleSpans, font))}
		for _, r := range t.Rows {
			rows = append(rows, row.New(rowMM).Add(cellCols(t.Columns, r, singleSpans, font)...))
		}
		return rows
	}

	left, right := tables[0], tables[1]
	head := append(headerCols(left.Columns, splitSpans, font), col.New(splitGapSpan))
	head = append(head, headerCols(right.Columns, splitSpans, font)...)
	rows := []core.Row{headerRowOf(rowMM, head)}
	for i := range left.Rows {
		cols := append(cellCols(left.Columns, left.Rows[i], splitSpans, font), col.New(splitGapSpan))
		if i < len(right.Rows) {
			cols = append(cols, cellCols(right.Columns, right.Rows[i], splitSpans, font)...)
		} else {
			cols = append(cols, col.New(splitTableSpan))
		}
		rows = append(rows, row.New(rowMM).Add(cols...))
	}
	return rows
}

// headerRowOf cabecera de tabla con fondo gris claro.
func headerRowOf(heightMM float64, cols []core.Col) core.Row {
	return row.New(heightMM).WithStyle(&props.Cell{BackgroundColor: colorLight}).Add(cols...)
}

func headerCols(columns []document.Column, spans map[document.ColumnKey]int, font float64) []core.Col {
	out := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		out = append(out, col.New(spans[c.Key]).Add(text.New(strings.ToUpper(c.Label), props.Text{
			Style: fontstyle.Bold, Size: font * 0.8, Color: colorGray, Align: alignOf(c.Align), Top: 1, Left: 0.5, Right: 0.5,
		})))
	}
	return out
}

func cellCols(columns []document.Column, r document.Row, spans map[document.ColumnKey]int, font float64) []core.Col {
	out := make([]core.Col, 0, len(columns))
	for i, c := range columns {
		txt := ""
		if i < len(r.Cells) {
			txt = r.Cells[i].Text
		}
		span := spans[c.Key]
		if c.Truncate {
			txt = truncateToWidth(txt, spanWidthMM(span)-1, font)
		}
		style := fontstyle.Normal
		color := colorInk
		if c.Key == document.ColumnNumber {
			color = colorGray
		}
		if c.Key == document.ColumnTotal {
			style = fontstyle.Bold
		}
		out = append(out, col.New(span).Add(text.New(txt, props.Text{
			Style: style, Size: font, Color: color, Align: alignOf(c.Align), Top: 0.8, Left: 0.5, Right: 0.5,
		})))
	}
	return out
}

// footerRow: leyenda y contacto (izq), total general (der).
func footerRow(f document.Footer, font float64) core.Row {
	left := col.New(14).Add(
		text.New(f.Disclaimer, props.Text{Style: fontstyle.Italic, Size: font * 0.8, Color: colorGray, Top: 1}),
	)
	top := 1 + font*0.5
	for _, s := range []string{f.Tagline, f.OrderContact} {
		if s == "" {
			continue
		}
		left.Add(text.New(s, props.Text{Style: fontstyle.Bold, Size: font * 0.8, Top: top}))
		top += font * 0.45
	}
	right := col.New(10).Add(
		text.New(f.GrandTotalLabel, props.Text{Style: fontstyle.Bold, Size: font, Align: align.Right, Top: 1}),
		text.New(f.GrandTotal, props.Text{Style: fontstyle.Bold, Size: font * 1.8, Align: align.Right, Top: 1 + font*0.5}),
	)
	return row.New(6+font*1.4).Add(left, right)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func alignOf(a document.Align) align.Type {
	switch a {
	case document.AlignCenter:
		return align.Center
	case document.AlignRight:
		return align.Right
	}
	return align.Left
}

// spanWidthMM ancho en mm de span columnas de la grilla.
func spanWidthMM(span int) float64 {
	return (pageWidthMM - 2*marginMM) * float64(span) / gridSize
}

// truncateToWidth recorta s para que entre en una línea de widthMM a fontPt puntos.
// Aproxima el ancho medio de un carácter de Helvetica como medio em.
func truncateToWidth(s string, widthMM, fontPt float64) string {
	charMM := fontPt * 0.3528 * 0.5
	maxChars := int(widthMM / charMM)
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	if maxChars <= len(ellipsis) {
		return string(runes[:max(maxChars, 0)])
	}
	return strings.TrimRight(string(runes[:maxChars-len(ellipsis)]), " ") + ellipsis
}
