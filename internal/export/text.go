// Package export renders computed estimates as plain text, PDF, and Excel.
// All renderers are read-only over the estimate and produce their output
// in memory; none of them touch the filesystem.
package export

import (
	"strings"
	"unicode/utf8"

	humanize "github.com/dustin/go-humanize"

	"github.com/piwi3910/RenoQuote/internal/model"
)

// currencySymbol prefixes every monetary amount in reports.
const currencySymbol = "¥"

const reportTitle = "Interior Renovation Estimate"

// money formats an amount with the currency symbol and thousands separators.
// Fractions are kept to two decimal places; whole amounts print without them.
func money(v float64) string {
	return currencySymbol + humanize.CommafWithDigits(v, 2)
}

// amount formats a quantity with thousands separators and up to two decimals.
func amount(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// percent formats a labor rate fraction as a percentage.
func percent(rate float64) string {
	return humanize.CommafWithDigits(rate*100, 1) + "%"
}

// padLeft and padRight pad by rune count. fmt's %Ns pads by bytes, which
// shifts columns containing "¥" and "m²".
func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// RenderText produces the fixed-format plain-text estimate report.
// The same estimate always yields byte-identical output.
func RenderText(est model.Estimate) string {
	var b strings.Builder
	rule := strings.Repeat("-", 64)

	b.WriteString(reportTitle + "\n")
	b.WriteString(rule + "\n")

	for _, it := range est.Items {
		b.WriteString(padRight(it.Label, 14) + " " +
			padLeft(amount(it.Quantity), 10) + " " +
			padRight(it.Unit, 3) + " x " +
			padLeft(money(it.UnitPrice), 10) + " = " +
			padLeft(money(it.Subtotal), 14) + "\n")
	}

	b.WriteString(rule + "\n")
	b.WriteString(padRight("Material subtotal", 44) + " " + padLeft(money(est.MaterialSubtotal), 14) + "\n")
	b.WriteString(padRight("Labor ("+percent(est.LaborRate)+")", 44) + " " + padLeft(money(est.LaborCost), 14) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(padRight("Total", 44) + " " + padLeft(money(est.GrandTotal), 14) + "\n")

	return b.String()
}
