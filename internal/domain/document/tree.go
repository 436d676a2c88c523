// Package document arma la representación tabular de una factura para impresión.
//
// Estructura del árbol (regiones en orden fijo):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón social + contacto │ Fecha │ Invoice #         │
//	│  BILL TO: NOMBRE DEL CLIENTE / dirección        Términos     │
//	│  BODY: una tabla (A, B) o dos tablas lado a lado (C, D)      │
//	│        # | Item | Qty | Price | Total   (Price se omite en C/D)│
//	│  FOOTER: leyenda │ Grand Total: $X,XXX.XX                    │
//	└─────────────────────────────────────────────────────────────┘
//
// El árbol no conoce el medio de salida: la vista HTML (pantalla e impresión)
// y los rasterizadores PDF consumen exactamente la misma estructura.
package document

import "github.com/jhoicas/invoice-layout/internal/domain/layout"

// Align alineación horizontal de un texto.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ColumnKey identifica una columna de la tabla de ítems.
type ColumnKey string

const (
	ColumnNumber ColumnKey = "number"
	ColumnItem   ColumnKey = "item"
	ColumnQty    ColumnKey = "qty"
	ColumnPrice  ColumnKey = "price"
	ColumnTotal  ColumnKey = "total"
)

// Tree documento armado, listo para cualquier renderizador.
type Tree struct {
	Title      string                `json:"title"`
	Profile    layout.DensityProfile `json:"profile"`
	Typography layout.Typography     `json:"typography"`
	Header     Header                `json:"header"`
	BillTo     BillTo                `json:"bill_to"`
	Body       Body                  `json:"body"`
	Footer     Footer                `json:"footer"`
}

// Header identidad del negocio y metadatos alineados a la derecha.
type Header struct {
	BusinessName string      `json:"business_name"`
	Contact      string      `json:"contact"`
	Meta         []MetaField `json:"meta"`
}

// MetaField par etiqueta/valor del encabezado (fecha, número de factura).
type MetaField struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Align Align  `json:"align"`
}

// BillTo bloque del cliente. Address se imprime tal cual, con ajuste de línea.
type BillTo struct {
	Heading string `json:"heading"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Wrap    bool   `json:"wrap"`
	Terms   string `json:"terms,omitempty"`
}

// Body una o dos tablas de ítems.
type Body struct {
	Split  bool    `json:"split"`
	Tables []Table `json:"tables"`
}

// Table tabla de ítems. StartIndex es el número de filas previas a esta tabla.
type Table struct {
	StartIndex int      `json:"start_index"`
	Columns    []Column `json:"columns"`
	Rows       []Row    `json:"rows"`
}

// Column definición de columna. Truncate indica que el texto se recorta y nunca ocupa más de una línea.
type Column struct {
	Key      ColumnKey `json:"key"`
	Label    string    `json:"label"`
	Align    Align     `json:"align"`
	Truncate bool      `json:"truncate,omitempty"`
}

// Row fila numerada; Cells sigue el orden de Columns.
type Row struct {
	Number int    `json:"number"`
	Cells  []Cell `json:"cells"`
}

// Cell celda de texto ya formateado.
type Cell struct {
	Column ColumnKey `json:"column"`
	Text   string    `json:"text"`
}

// Footer leyenda fija y total general.
type Footer struct {
	Disclaimer      string `json:"disclaimer"`
	GrandTotalLabel string `json:"grand_total_label"`
	GrandTotal      string `json:"grand_total"`
	Tagline         string `json:"tagline,omitempty"`
	OrderContact    string `json:"order_contact,omitempty"`
}

// HasColumn indica si la tabla incluye la columna key.
func (t Table) HasColumn(key ColumnKey) bool {
	for _, c := range t.Columns {
		if c.Key == key {
			return true
		}
	}
	return false
}

// Cell devuelve el texto de la celda key de la fila (vacío si la columna no existe).
func (r Row) Cell(key ColumnKey) string {
	for _, c := range r.Cells {
		if c.Column == key {
			return c.Text
		}
	}
	return ""
}

// RowCount total de filas en todas las tablas.
func (t *Tree) RowCount() int {
	n := 0
	for _, tb := range t.Body.Tables {
		n += len(tb.Rows)
	}
	return n
}
