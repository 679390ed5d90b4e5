// Package export renders saved budgets for the client: PDF quotes, WhatsApp
// messages and the history workbook.
package export

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "02/01/2006"

// FormatMoney prints v with two decimals, '.' as thousands separator and ','
// as decimal separator, prefixed by the currency symbol.
//
//	FormatMoney("$", 3811.5) == "$3.811,50"
func FormatMoney(symbol string, v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	intPart, decPart, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + symbol + groupThousands(intPart) + "," + decPart
}

// FormatQuantity prints a quantity without trailing zeros and with a
// decimal comma.
func FormatQuantity(q float64) string {
	return strings.Replace(decimal.NewFromFloat(q).Round(2).String(), ".", ",", 1)
}

// FormatPercent prints a percentage the same way as quantities.
func FormatPercent(p float64) string {
	return FormatQuantity(p) + "%"
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
