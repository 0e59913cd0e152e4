package charts

import (
	"math"

	"dashboard.aifa.mx/internal/models"
)

// FinancialTrend compares monthly revenue and costs.
func FinancialTrend(series models.FinancialSeries) Figure {
	layout := baseLayout()
	layout.XAxis = axis("Mes")
	layout.YAxis = axis("Millones MXN")
	layout.BarMode = "group"

	return Figure{
		Data: []Trace{
			{Type: "bar", Name: "Ingresos", X: series.Months, Y: series.Revenue, Marker: &Marker{Color: ColorAccent}},
			{Type: "bar", Name: "Costos", X: series.Months, Y: series.Costs, Marker: &Marker{Color: ColorNegative}},
		},
		Layout: layout,
	}
}

// EBITDAMargin plots the monthly EBITDA margin.
func EBITDAMargin(series models.FinancialSeries) Figure {
	margins := series.Margins()
	labels := make([]string, len(margins))
	for i, m := range margins {
		margins[i] = math.Round(m*10) / 10
		labels[i] = round1Label(m) + "%"
	}

	layout := baseLayout()
	layout.XAxis = axis("Mes")
	layout.YAxis = axis("Margen EBITDA (%)")

	trace := lineSeries("Margen EBITDA", ColorAmber, series.Months, margins)
	trace.Text = labels
	return Figure{
		Data:   []Trace{trace},
		Layout: layout,
	}
}
