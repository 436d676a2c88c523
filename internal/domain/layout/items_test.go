package layout_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-layout/internal/domain/entity"
	"github.com/jhoicas/invoice-layout/internal/domain/layout"
)

func item(name string, qty string) entity.InvoiceItem {
	return entity.NewInvoiceItem("p-"+name, name, decimal.RequireFromString(qty), decimal.NewFromInt(2))
}

func names(items []entity.InvoiceItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

// ── PrepareItems ─────────────────────────────────────────────────────────────

func TestPrepareItems_FiltraCantidadNoPositiva(t *testing.T) {
	in := []entity.InvoiceItem{
		item("lime", "3"),
		item("mint", "0"),
		item("dill", "-1"),
		item("okra", "0.5"),
	}
	out := layout.PrepareItems(in)
	assert.Equal(t, []string{"lime", "okra"}, names(out))
	for _, it := range out {
		assert.True(t, it.Quantity.IsPositive())
	}
}

// A igual cantidad se conserva el orden de entrada.
func TestPrepareItems_OrdenDescendenteEstable(t *testing.T) {
	in := []entity.InvoiceItem{
		item("a", "2"),
		item("b", "10"),
		item("c", "2"),
		item("d", "7.5"),
		item("e", "2"),
		item("f", "10"),
	}
	out := layout.PrepareItems(in)
	assert.Equal(t, []string{"b", "f", "d", "a", "c", "e"}, names(out))
}

func TestPrepareItems_NoMutaEntrada(t *testing.T) {
	in := []entity.InvoiceItem{item("a", "1"), item("b", "5")}
	_ = layout.PrepareItems(in)
	assert.Equal(t, []string{"a", "b"}, names(in))
}

func TestPrepareItems_Vacio(t *testing.T) {
	assert.Empty(t, layout.PrepareItems(nil))
}

// ── PartitionItems ───────────────────────────────────────────────────────────

func TestPartitionItems_SinDivision(t *testing.T) {
	in := []entity.InvoiceItem{item("a", "1"), item("b", "1"), item("c", "1")}
	p := layout.PartitionItems(in, false)
	assert.Equal(t, in, p.Left)
	assert.Empty(t, p.Right)
	assert.Equal(t, 0, p.RightStartIndex)
}

func TestPartitionItems_ConDivision_Longitudes(t *testing.T) {
	for n := 0; n <= 101; n++ {
		in := make([]entity.InvoiceItem, n)
		for i := range in {
			in[i] = item(fmt.Sprintf("i%d", i), "1")
		}
		p := layout.PartitionItems(in, true)
		wantLeft := (n + 1) / 2
		require.Len(t, p.Left, wantLeft, "n=%d", n)
		assert.Equal(t, n, len(p.Left)+len(p.Right), "n=%d", n)
		assert.Equal(t, len(p.Left), p.RightStartIndex, "n=%d", n)
		assert.GreaterOrEqual(t, len(p.Left), len(p.Right), "n=%d", n)
	}
}

// Numeración continua: izquierda y luego derecha equivale a 1..N.
func TestPartition_RowNumberContinuo(t *testing.T) {
	in := make([]entity.InvoiceItem, 9)
	for i := range in {
		in[i] = item(fmt.Sprintf("i%d", i), "1")
	}
	p := layout.PartitionItems(in, true)

	var got []int
	for i := range p.Left {
		got = append(got, p.RowNumber(layout.LeftColumn, i))
	}
	for i := range p.Right {
		got = append(got, p.RowNumber(layout.RightColumn, i))
	}
	want := make([]int, len(in))
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, got)
}

// Agregar a la columna izquierda no debe pisar la derecha.
func TestPartitionItems_IzquierdaNoComparteCapacidad(t *testing.T) {
	in := []entity.InvoiceItem{item("a", "1"), item("b", "1"), item("c", "1"), item("d", "1")}
	p := layout.PartitionItems(in, true)
	_ = append(p.Left, item("x", "1"))
	assert.Equal(t, "c", p.Right[0].Name)
}

// Escenario: 45 líneas activas + 3 en cero.
func TestEscenario_45ActivasY3EnCero(t *testing.T) {
	var in []entity.InvoiceItem
	for i := 0; i < 45; i++ {
		in = append(in, item(fmt.Sprintf("i%d", i), fmt.Sprintf("%d", i+1)))
	}
	for i := 0; i < 3; i++ {
		in = append(in, item(fmt.Sprintf("z%d", i), "0"))
	}

	assert.Equal(t, layout.ProfileC, layout.RecommendDensity(45))
	prepared := layout.PrepareItems(in)
	require.Len(t, prepared, 45)

	typo := layout.MustResolveTypography(layout.ProfileC)
	p := layout.PartitionItems(prepared, typo.SplitColumns)
	assert.Len(t, p.Left, 23)
	assert.Len(t, p.Right, 22)
	assert.Equal(t, 23, p.RightStartIndex)
}
