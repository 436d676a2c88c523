package document

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDateLayout fecha corta en-US (M/D/YYYY).
const DefaultDateLayout = "1/2/2006"

// FormatUSD formatea un monto como dólares en-US: "$1,234.50", "-$3.00".
// Redondea a dos decimales (mitad hacia arriba) con aritmética decimal exacta.
func FormatUSD(amount decimal.Decimal) string {
	d := amount.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	intPart, fracPart, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + "$" + groupThousands(intPart) + "." + fracPart
}

// groupThousands inserta comas de miles en un entero sin signo: "1234567" → "1,234,567".
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(n + n/3)
	for i, c := range s {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// FormatQuantity imprime la cantidad sin ceros de relleno: 10, 2.5, 0.25.
func FormatQuantity(q decimal.Decimal) string {
	return q.String()
}

// FormatDate fecha de emisión según el layout y zona horaria configurados.
func FormatDate(t time.Time, layoutStr string, loc *time.Location) string {
	if layoutStr == "" {
		layoutStr = DefaultDateLayout
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(layoutStr)
}
