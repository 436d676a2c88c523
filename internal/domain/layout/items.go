package layout

import (
	"sort"

	"github.com/jhoicas/invoice-layout/internal/domain/entity"
)

// PrepareItems filtra las líneas retiradas (cantidad <= 0) y ordena el resto por
// cantidad descendente. El orden es estable: a igual cantidad se conserva el de entrada.
// No modifica el slice recibido.
func PrepareItems(items []entity.InvoiceItem) []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, 0, len(items))
	for _, it := range items {
		if it.Quantity.IsPositive() {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quantity.GreaterThan(out[j].Quantity)
	})
	return out
}

// Column identifica la columna visual de la tabla de ítems.
type Column int

const (
	LeftColumn Column = iota
	RightColumn
)

// Partition reparto de las líneas en una o dos columnas.
// RightStartIndex es la cantidad de filas que preceden a la columna derecha,
// para que la numeración continúe entre columnas.
type Partition struct {
	Left            []entity.InvoiceItem
	Right           []entity.InvoiceItem
	RightStartIndex int
}

// PartitionItems reparte items. Sin división todo va a la izquierda.
// Con división el punto de corte es ceil(n/2): la izquierda nunca tiene menos filas.
func PartitionItems(items []entity.InvoiceItem, splitColumns bool) Partition {
	if !splitColumns {
		return Partition{Left: items, Right: []entity.InvoiceItem{}, RightStartIndex: 0}
	}
	mid := (len(items) + 1) / 2
	return Partition{
		Left:            items[:mid:mid],
		Right:           items[mid:],
		RightStartIndex: mid,
	}
}

// RowNumber número de fila (base 1) de la posición pos dentro de la columna col.
func (p Partition) RowNumber(col Column, pos int) int {
	if col == RightColumn {
		return p.RightStartIndex + pos + 1
	}
	return pos + 1
}

// Len total de filas de ambas columnas.
func (p Partition) Len() int { return len(p.Left) + len(p.Right) }
