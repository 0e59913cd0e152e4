package components

import (
	"fmt"

	"dashboard.aifa.mx/internal/charts"
	"dashboard.aifa.mx/internal/models"
)

// ChartCard is a titled card whose body holds the container a chart id is drawn into.
type ChartCard struct {
	ChartID  string
	Title    string
	Subtitle string
	// Width in twelfths of the row, as the grid classes expect.
	Width int
}

// NewChartCard builds a chart card; a width outside 1..12 takes the full row.
func NewChartCard(chartID, title, subtitle string, width int) ChartCard {
	if width < 1 || width > 12 {
		width = 12
	}
	return ChartCard{ChartID: chartID, Title: title, Subtitle: subtitle, Width: width}
}

// SummaryCard is a headline figure such as monthly revenue.
type SummaryCard struct {
	Label      string
	Value      string
	Color      string
	Arrow      string
	TrendColor string
	Change     string
}

func NewSummaryCard(summary models.FinancialSummary) SummaryCard {
	return SummaryCard{
		Label:      summary.Label,
		Value:      summary.Value,
		Color:      summary.Color,
		Arrow:      charts.TrendArrow(summary.Change),
		TrendColor: charts.TrendColor(summary.Change),
		Change:     SignedPercent(summary.Change) + " " + summary.Period,
	}
}

func SummaryCards(summaries []models.FinancialSummary) []SummaryCard {
	cards := make([]SummaryCard, len(summaries))
	for i, s := range summaries {
		cards[i] = NewSummaryCard(s)
	}
	return cards
}

// DestinationItem is one entry of the route network list.
type DestinationItem struct {
	City       string
	Country    string
	Passengers string
	LoadFactor string
	Frequency  string
	Distance   string
}

func NewDestinationItem(route models.Route, distanceKM float64) DestinationItem {
	return DestinationItem{
		City:       route.City,
		Country:    route.Country,
		Passengers: Thousands(route.Passengers) + " pasajeros",
		LoadFactor: "Factor de carga: " + Percent(route.LoadFactor),
		Frequency:  fmt.Sprintf("Frecuencia: %d vuelos/mes", route.Frequency),
		Distance:   Thousands(int(distanceKM+0.5)) + " km",
	}
}

// MetricRow is one line of the security, quality or productivity tables.
type MetricRow struct {
	Name        string
	Rate        string
	Target      string
	Status      models.Status
	StatusColor string
	Arrow       string
	TrendColor  string
	Change      string
}

func rateText(v float64, unit string) string {
	if unit == "%" {
		return Percent(v)
	}
	if unit == "" {
		return charts.FormatNumber(v)
	}
	return charts.FormatNumber(v) + " " + unit
}

func NewMetricRow(m models.Metric) MetricRow {
	// a falling incident rate is good news
	good := m.Change
	if m.LowerIsBetter {
		good = -m.Change
	}
	return MetricRow{
		Name:        m.Name,
		Rate:        rateText(m.Rate, m.Unit),
		Target:      rateText(m.Target, m.Unit),
		Status:      m.Status,
		StatusColor: charts.StatusColor(m.Status),
		Arrow:       charts.TrendArrow(m.Change),
		TrendColor:  charts.TrendColor(good),
		Change:      SignedPercent(m.Change),
	}
}

func MetricRows(metrics []models.Metric) []MetricRow {
	rows := make([]MetricRow, len(metrics))
	for i, m := range metrics {
		rows[i] = NewMetricRow(m)
	}
	return rows
}

// StatusCount is how many metrics sit in each status bucket.
type StatusCount struct {
	Status models.Status
	Color  string
	Count  int
}

// StatusSummary counts metrics per status in Óptimo, Aceptable, Crítico order.
func StatusSummary(metrics []models.Metric) []StatusCount {
	order := []models.Status{models.StatusOptimal, models.StatusAcceptable, models.StatusCritical}
	counts := make(map[models.Status]int, len(order))
	for _, m := range metrics {
		counts[m.Status]++
	}
	summary := make([]StatusCount, len(order))
	for i, s := range order {
		summary[i] = StatusCount{Status: s, Color: charts.StatusColor(s), Count: counts[s]}
	}
	return summary
}

// CapacityRow is one subsystem of the capacity tab.
type CapacityRow struct {
	Area        string
	Used        string
	Utilization string
	Width       float64
	Color       string
}

func NewCapacityRow(c models.CapacityMetric) CapacityRow {
	width := c.Utilization
	if width > 100 {
		width = 100
	}
	return CapacityRow{
		Area:        c.Area,
		Used:        fmt.Sprintf("%s / %s %s", charts.FormatNumber(c.Used), charts.FormatNumber(c.Capacity), c.Unit),
		Utilization: Percent(c.Utilization),
		Width:       width,
		Color:       charts.UtilizationColor(c.Utilization),
	}
}

func CapacityRows(metrics []models.CapacityMetric) []CapacityRow {
	rows := make([]CapacityRow, len(metrics))
	for i, m := range metrics {
		rows[i] = NewCapacityRow(m)
	}
	return rows
}
