package htmlview_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-layout/internal/application/billing"
	"github.com/jhoicas/invoice-layout/internal/domain/document"
	"github.com/jhoicas/invoice-layout/internal/domain/entity"
	"github.com/jhoicas/invoice-layout/internal/domain/layout"
	"github.com/jhoicas/invoice-layout/internal/infrastructure/htmlview"
)

func tree(t *testing.T, n int, p layout.DensityProfile) *document.Tree {
	t.Helper()
	items := make([]entity.InvoiceItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, entity.NewInvoiceItem(fmt.Sprint(i), fmt.Sprintf("Item <%d>", i),
			decimal.NewFromInt(int64(i+1)), decimal.NewFromInt(3)))
	}
	inv := &entity.Invoice{
		Number: "482913", CustomerName: "Lopez & Sons", CustomerAddress: "1 Dock Rd\nBronx",
		Date: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), Items: items,
	}
	inv.ApplySummary()
	tr, err := document.Assemble(inv, p, document.DefaultBranding())
	require.NoError(t, err)
	return tr
}

func render(t *testing.T, tr *document.Tree, mode billing.RenderMode) string {
	t.Helper()
	r, err := htmlview.NewRenderer()
	require.NoError(t, err)
	out, err := r.RenderHTML(context.Background(), tr, mode)
	require.NoError(t, err)
	return string(out)
}

func TestRenderHTML_Pantalla(t *testing.T) {
	html := render(t, tree(t, 3, layout.ProfileA), billing.RenderScreen)

	assert.Contains(t, html, "<title>Invoice 482913</title>")
	assert.Contains(t, html, "EVER GREEN PRODUCE L.L.C")
	assert.Contains(t, html, "LOPEZ &amp; SONS")
	assert.Contains(t, html, "Item &lt;0&gt;", "los nombres se escapan")
	assert.Contains(t, html, "font-size: 11pt")
	assert.Contains(t, html, "height: 32px")
	assert.Contains(t, html, "transform: scale(0.85)")
	assert.Contains(t, html, "Grand Total:")
	assert.NotContains(t, html, "window.print")
	assert.NotContains(t, html, "@page")
	assert.Equal(t, 1, strings.Count(html, "<table"))
}

func TestRenderHTML_ImpresionDividida(t *testing.T) {
	html := render(t, tree(t, 40, layout.ProfileC), billing.RenderPrint)

	assert.Contains(t, html, "@page { size: A4 portrait; margin: 0; }")
	assert.Contains(t, html, "window.print()")
	assert.Contains(t, html, "font-size: 8.5pt")
	assert.Equal(t, 2, strings.Count(html, "<table"))
	assert.Contains(t, html, `data-start="20"`)
	assert.NotContains(t, html, ">Price<")
	assert.Equal(t, 40, strings.Count(html, "<td class=\"left num\">"))
}

func TestRenderPage_ImpresionSinDialogo(t *testing.T) {
	r, err := htmlview.NewRenderer()
	require.NoError(t, err)
	out, err := r.RenderPage(context.Background(), tree(t, 2, layout.ProfileB),
		htmlview.Options{Mode: billing.RenderPrint})
	require.NoError(t, err)
	assert.Contains(t, string(out), "@page")
	assert.NotContains(t, string(out), "window.print")
}

func TestRenderPage_ArbolNulo(t *testing.T) {
	r, err := htmlview.NewRenderer()
	require.NoError(t, err)
	_, err = r.RenderPage(context.Background(), nil, htmlview.Options{})
	assert.Error(t, err)
}
