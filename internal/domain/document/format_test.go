package document_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-layout/internal/domain/document"
)

func TestFormatUSD(t *testing.T) {
	cases := map[string]string{
		"0":          "$0.00",
		"3":          "$3.00",
		"1234.5":     "$1,234.50",
		"999.999":    "$1,000.00",
		"1000000":    "$1,000,000.00",
		"123456.785": "$123,456.79",
		"-3":         "-$3.00",
		"-1234.567":  "-$1,234.57",
		"0.005":      "$0.01",
	}
	for in, want := range cases {
		assert.Equal(t, want, document.FormatUSD(decimal.RequireFromString(in)), "entrada %s", in)
	}
}

func TestFormatQuantity_SinCerosDeRelleno(t *testing.T) {
	assert.Equal(t, "10", document.FormatQuantity(decimal.RequireFromString("10.00")))
	assert.Equal(t, "2.5", document.FormatQuantity(decimal.RequireFromString("2.50")))
	assert.Equal(t, "0.25", document.FormatQuantity(decimal.RequireFromString("0.25")))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.March, 5, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "3/5/2026", document.FormatDate(d, "", nil))
	assert.Equal(t, "2026-03-05", document.FormatDate(d, "2006-01-02", nil))

	ny, err := time.LoadLocation("America/New_York")
	if err == nil {
		assert.Equal(t, "3/5/2026", document.FormatDate(d, "", ny))
	}
	tokyo := time.FixedZone("JST", 9*3600)
	assert.Equal(t, "3/6/2026", document.FormatDate(d, "", tokyo))
}
