// Package report renders the executive summary PDF.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"dashboard.aifa.mx/internal/charts"
	"dashboard.aifa.mx/internal/components"
	"dashboard.aifa.mx/internal/data"
	"dashboard.aifa.mx/internal/models"
)

// Page geometry, landscape letter in mm.
const (
	marginX    = 12.0
	lineHeight = 6.0
	barMaxMM   = 120.0
)

// Source is the live data the report reads besides the literal tables.
type Source interface {
	Historical() models.HistoricalSeries
	Financial() models.FinancialSeries
}

// Report is an executive PDF in progress.
type Report struct {
	*gofpdf.Fpdf
	tr func(string) string

	// sections maps each section heading to the page it starts on.
	sections map[string]int
}

func rgb(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func newReport() *Report {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(marginX, 12, marginX)
	pdf.SetAutoPageBreak(true, 12)
	return &Report{
		Fpdf:     pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		sections: make(map[string]int),
	}
}

func (r *Report) title(text, subtitle string) {
	r.SetFont("Arial", "B", 18)
	r.SetTextColor(rgb(charts.ColorAccent))
	r.CellFormat(0, 10, r.tr(text), "", 1, "L", false, 0, "")
	r.SetFont("Arial", "", 10)
	r.SetTextColor(0x50, 0x50, 0x50)
	r.CellFormat(0, lineHeight, r.tr(subtitle), "", 1, "L", false, 0, "")
	r.Ln(2)
}

func (r *Report) section(text string) {
	r.Ln(3)
	r.SetFont("Arial", "B", 12)
	r.SetTextColor(0x0a, 0x0e, 0x27)
	r.CellFormat(0, 8, r.tr(text), "B", 1, "L", false, 0, "")
	r.Ln(1)
	r.sections[text] = r.PageNo()
}

func (r *Report) row(widths []float64, cells []string, header bool) {
	style := ""
	if header {
		style = "B"
		r.SetFillColor(0xe8, 0xf9, 0xff)
	}
	r.SetFont("Arial", style, 9)
	r.SetTextColor(0, 0, 0)
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.CellFormat(widths[i], lineHeight, r.tr(cell), "1", 0, align, header, 0, "")
	}
	r.Ln(-1)
}

// coloredCell writes text in color, used for trend and status columns.
func (r *Report) coloredCell(width float64, text, color string) {
	r.SetTextColor(rgb(color))
	r.CellFormat(width, lineHeight, r.tr(text), "1", 0, "R", false, 0, "")
	r.SetTextColor(0, 0, 0)
}

func (r *Report) kpis(kpis []models.KPI) {
	r.section("KPIs Estratégicos")
	widths := []float64{90, 35, 35, 35, 40}
	r.row(widths, []string{"Indicador", "Actual", "Cambio", "Meta", "Avance"}, true)
	for _, card := range components.KPICards(kpis) {
		r.SetFont("Arial", "", 9)
		r.CellFormat(widths[0], lineHeight, r.tr(card.Title), "1", 0, "L", false, 0, "")
		r.CellFormat(widths[1], lineHeight, card.Value, "1", 0, "R", false, 0, "")
		r.coloredCell(widths[2], card.Change, card.TrendColor)
		target, progress := "-", "-"
		if card.HasTarget {
			target = card.TargetLabel
			progress = fmt.Sprintf("%.1f%%", card.Progress)
		}
		r.CellFormat(widths[3], lineHeight, target, "1", 0, "R", false, 0, "")
		r.CellFormat(widths[4], lineHeight, progress, "1", 0, "R", false, 0, "")
		r.Ln(-1)
	}
}

// loadFactors draws a horizontal bar per route, scaled to 100%.
func (r *Report) loadFactors(routes []models.Route) {
	r.section("Factor de Carga por Ruta")
	r.SetFont("Arial", "", 9)
	for _, route := range routes {
		x, y := r.GetXY()
		r.SetTextColor(0, 0, 0)
		r.CellFormat(40, lineHeight, r.tr(route.City), "", 0, "L", false, 0, "")
		r.SetFillColor(rgb(charts.LoadFactorColor(route.LoadFactor)))
		r.Rect(x+42, y+1, barMaxMM*route.LoadFactor/100, lineHeight-2, "F")
		r.SetX(x + 44 + barMaxMM)
		r.CellFormat(20, lineHeight, components.Percent(route.LoadFactor), "", 1, "R", false, 0, "")
	}
}

func (r *Report) financial(series models.FinancialSeries) {
	r.section("Análisis Financiero")
	widths := []float64{30, 40, 40, 40, 40}
	r.row(widths, []string{"Mes", "Ingresos", "Costos", "EBITDA", "Margen"}, true)
	for i, month := range series.Months {
		r.row(widths, []string{
			month,
			fmt.Sprintf("%.1f", series.Revenue[i]),
			fmt.Sprintf("%.1f", series.Costs[i]),
			fmt.Sprintf("%.1f", series.EBITDA(i)),
			fmt.Sprintf("%.1f%%", series.Margin(i)),
		}, false)
	}
}

func (r *Report) metrics(title string, metrics []models.Metric) {
	r.section(title)
	widths := []float64{100, 45, 45, 35, 30}
	r.row(widths, []string{"Indicador", "Actual", "Meta", "Cambio", "Estado"}, true)
	for _, m := range components.MetricRows(metrics) {
		r.SetFont("Arial", "", 9)
		r.CellFormat(widths[0], lineHeight, r.tr(m.Name), "1", 0, "L", false, 0, "")
		r.CellFormat(widths[1], lineHeight, r.tr(m.Rate), "1", 0, "R", false, 0, "")
		r.CellFormat(widths[2], lineHeight, r.tr(m.Target), "1", 0, "R", false, 0, "")
		r.coloredCell(widths[3], m.Change, m.TrendColor)
		r.coloredCell(widths[4], string(m.Status), m.StatusColor)
		r.Ln(-1)
	}
}

// Write renders the executive report for src to w.
func Write(w io.Writer, src Source, generatedAt time.Time) error {
	r, err := build(src, generatedAt)
	if err != nil {
		return err
	}
	if err := r.Output(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// build lays out the three pages: strategic KPIs and routes, the financial
// table, then the security, quality and productivity tables.
func build(src Source, generatedAt time.Time) (*Report, error) {
	r := newReport()
	r.SetTitle("Reporte Ejecutivo AIFA", true)
	r.SetAuthor(data.AirportName, true)
	r.SetCreationDate(generatedAt)

	r.AddPage()
	r.title("Reporte Ejecutivo AIFA", data.AirportName+" - "+models.FormatLiveTime(generatedAt))
	r.kpis(data.KPIs())

	historical := src.Historical()
	if n := len(historical.Months); n > 0 {
		r.section("Participación de Mercado")
		r.SetFont("Arial", "", 9)
		line := fmt.Sprintf("%s: pasajeros %.1f%%, operaciones %.1f%%, carga %.1f%%",
			historical.Months[n-1], historical.Passengers[n-1], historical.Operations[n-1], historical.Cargo[n-1])
		r.CellFormat(0, lineHeight, r.tr(line), "", 1, "L", false, 0, "")
	}
	r.loadFactors(charts.TopDestinations(data.Routes(), -1))

	r.AddPage()
	r.financial(src.Financial())

	r.AddPage()
	r.metrics("Seguridad", data.Security())
	r.metrics("Calidad de Servicio", data.Quality())
	r.metrics("Productividad", data.Productivity())

	if err := r.Error(); err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	return r, nil
}
