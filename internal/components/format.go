package components

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"dashboard.aifa.mx/internal/charts"
)

var numberPrinter = message.NewPrinter(language.English)

// Percent renders v as "v%" with at least one decimal: 12.8%, 15.0%.
func Percent(v float64) string {
	return charts.FormatNumber(v) + "%"
}

// SignedPercent renders a change as +2.3% or -1.3%.
func SignedPercent(v float64) string {
	return numberPrinter.Sprintf("%+.1f%%", v)
}

// Thousands groups an integer with commas: 125,000.
func Thousands(n int) string {
	return numberPrinter.Sprintf("%d", n)
}
