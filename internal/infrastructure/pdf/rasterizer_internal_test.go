package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-layout/internal/application/billing"
)

func TestTruncateToWidth(t *testing.T) {
	short := "Kale"
	assert.Equal(t, short, truncateToWidth(short, 40, 11))

	long := strings.Repeat("Organic Hass Avocado ", 10)
	got := truncateToWidth(long, 40, 11)
	assert.True(t, strings.HasSuffix(got, ellipsis))
	assert.Less(t, len([]rune(got)), len([]rune(long)))
	assert.NotContains(t, got, "\n")

	// Letra más chica, caben más caracteres.
	assert.Greater(t, len(truncateToWidth(long, 40, 7)), len(got))

	assert.Equal(t, "", truncateToWidth("abc", 0, 11))
}

func TestSpans_SumanLaGrilla(t *testing.T) {
	total := 0
	for _, s := range singleSpans {
		total += s
	}
	assert.Equal(t, gridSize, total)

	split := 0
	for _, s := range splitSpans {
		split += s
	}
	assert.Equal(t, splitTableSpan, split)
	assert.Equal(t, gridSize, 2*splitTableSpan+splitGapSpan)
}

func TestBuildPrintParams(t *testing.T) {
	p := buildPrintParams(billing.DefaultExportOptions())
	assert.InDelta(t, 8.27, p.paperWidth, 0.01)
	assert.InDelta(t, 11.69, p.paperHeight, 0.01)
	assert.False(t, p.landscape)
	assert.Equal(t, 2.0, p.deviceScale)

	assert.Equal(t, 1.0, buildPrintParams(billing.ExportOptions{}).deviceScale)
}

func TestCheckOptions(t *testing.T) {
	assert.NoError(t, checkOptions(billing.DefaultExportOptions()))
	assert.Error(t, checkOptions(billing.ExportOptions{PageSize: "Letter", Orientation: billing.OrientationPortrait}))
	assert.Error(t, checkOptions(billing.ExportOptions{PageSize: billing.PageA4, Orientation: "landscape"}))
}
