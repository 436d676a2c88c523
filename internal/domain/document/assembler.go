package document

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/invoice-layout/internal/domain"
	"github.com/jhoicas/invoice-layout/internal/domain/entity"
	"github.com/jhoicas/invoice-layout/internal/domain/layout"
)

// Branding datos fijos del negocio que aparecen en cada factura.
// Se inyecta en cada llamada; no hay constantes compiladas.
type Branding struct {
	BusinessName  string
	BusinessPhone string
	OrderPhone    string
	Terms         string // ej. "Due on Delivery"
	Disclaimer    string
	Tagline       string
	DateLayout    string         // layout de time.Format; vacío = DefaultDateLayout
	Location      *time.Location // zona para la fecha; nil = la almacenada
}

// DefaultBranding valores de la instalación original (Ever Green Produce).
func DefaultBranding() Branding {
	return Branding{
		BusinessName:  "EVER GREEN PRODUCE L.L.C",
		BusinessPhone: "646-667-9749",
		OrderPhone:    "646-667-9749",
		Terms:         "Due on Delivery",
		Disclaimer:    "Deliveries verified on-site. No adjustments after departure.",
		Tagline:       "PRODUCE DISTRIBUTION HUB",
		DateLayout:    DefaultDateLayout,
	}
}

// Etiquetas fijas del documento.
const (
	labelDate       = "Date"
	labelInvoiceNo  = "Invoice #"
	labelBillTo     = "BILL TO"
	labelGrandTotal = "Grand Total:"
)

// Assemble arma el árbol del documento para inv con el perfil p.
//
// Es una función pura: el mismo (inv, p, b) produce siempre un árbol igual.
// El total general se toma de inv.Total tal como está guardado; no se recalcula
// desde las líneas filtradas. Si el resumen quedó desactualizado aguas arriba,
// el pie lo mostrará desactualizado.
//
// Retorna un error que envuelve domain.ErrPrecondition si inv es nil o p no es
// uno de los cuatro perfiles; nunca devuelve un árbol parcial.
func Assemble(inv *entity.Invoice, p layout.DensityProfile, b Branding) (*Tree, error) {
	if inv == nil {
		return nil, fmt.Errorf("%w: factura nula", domain.ErrPrecondition)
	}
	typo, err := layout.ResolveTypography(p)
	if err != nil {
		return nil, err
	}

	items := layout.PrepareItems(inv.Items)
	part := layout.PartitionItems(items, typo.SplitColumns)
	columns := itemColumns(typo.SplitColumns)

	tables := []Table{buildTable(columns, part, layout.LeftColumn)}
	if typo.SplitColumns {
		tables = append(tables, buildTable(columns, part, layout.RightColumn))
	}

	return &Tree{
		Title:      "Invoice " + inv.Number,
		Profile:    p,
		Typography: typo,
		Header: Header{
			BusinessName: b.BusinessName,
			Contact:      prefixed("Contact: ", b.BusinessPhone),
			Meta: []MetaField{
				{Label: labelDate, Value: FormatDate(inv.Date, b.DateLayout, b.Location), Align: AlignRight},
				{Label: labelInvoiceNo, Value: inv.Number, Align: AlignRight},
			},
		},
		BillTo: BillTo{
			Heading: labelBillTo,
			Name:    cases.Upper(language.AmericanEnglish).String(inv.CustomerName),
			Address: inv.CustomerAddress,
			Wrap:    true,
			Terms:   b.Terms,
		},
		Body: Body{
			Split:  typo.SplitColumns,
			Tables: tables,
		},
		Footer: Footer{
			Disclaimer:      b.Disclaimer,
			GrandTotalLabel: labelGrandTotal,
			GrandTotal:      FormatUSD(inv.Total),
			Tagline:         b.Tagline,
			OrderContact:    prefixed("Order: ", b.OrderPhone),
		},
	}, nil
}

// itemColumns columnas de la tabla; en modo dividido se omite Price para ganar ancho.
func itemColumns(split bool) []Column {
	cols := []Column{
		{Key: ColumnNumber, Label: "#", Align: AlignLeft},
		{Key: ColumnItem, Label: "Item", Align: AlignLeft, Truncate: true},
		{Key: ColumnQty, Label: "Qty", Align: AlignCenter},
	}
	if !split {
		cols = append(cols, Column{Key: ColumnPrice, Label: "Price", Align: AlignRight})
	}
	return append(cols, Column{Key: ColumnTotal, Label: "Total", Align: AlignRight})
}

func buildTable(columns []Column, part layout.Partition, col layout.Column) Table {
	items := part.Left
	start := 0
	if col == layout.RightColumn {
		items = part.Right
		start = part.RightStartIndex
	}
	rows := make([]Row, 0, len(items))
	for pos, it := range items {
		cells := make([]Cell, 0, len(columns))
		n := part.RowNumber(col, pos)
		for _, c := range columns {
			cells = append(cells, Cell{Column: c.Key, Text: cellText(c.Key, n, it)})
		}
		rows = append(rows, Row{Number: n, Cells: cells})
	}
	return Table{StartIndex: start, Columns: columns, Rows: rows}
}

func cellText(key ColumnKey, n int, it entity.InvoiceItem) string {
	switch key {
	case ColumnNumber:
		return strconv.Itoa(n)
	case ColumnItem:
		return it.Name
	case ColumnQty:
		return FormatQuantity(it.Quantity)
	case ColumnPrice:
		return FormatUSD(it.Price)
	case ColumnTotal:
		return FormatUSD(it.LineTotal())
	}
	return ""
}

func prefixed(prefix, v string) string {
	if v == "" {
		return ""
	}
	return prefix + v
}
