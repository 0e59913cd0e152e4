package dashboard

import (
	"errors"
	"html/template"

	"dashboard.aifa.mx/internal/charts"
	"dashboard.aifa.mx/internal/components"
	"dashboard.aifa.mx/internal/data"
	"dashboard.aifa.mx/internal/models"
	"dashboard.aifa.mx/internal/routegeo"
)

var errUnknownTab = errors.New("unknown tab")

// topDestinationCount is how many routes the destinations list shows.
const topDestinationCount = 8

// Chart is a chart card with its initial figure.
type Chart struct {
	components.ChartCard
	Figure template.JS
}

// Region is an option of the route map filter.
type Region struct {
	Value    string
	Label    string
	Selected bool
}

type strategicTab struct {
	Cards  []components.KPICard
	Charts []Chart
}

type geographicTab struct {
	Title        string
	Regions      []Region
	RouteMap     Chart
	Charts       []Chart
	Destinations []components.DestinationItem
}

type financialTab struct {
	Title   string
	Summary []components.SummaryCard
	Charts  []Chart
}

type capacityTab struct {
	Title      string
	Operations []components.SummaryCard
	Rows       []components.CapacityRow
	Charts     []Chart
}

type metricsTab struct {
	Title   string
	Summary []components.StatusCount
	Rows    []components.MetricRow
	Chart   Chart
}

type methodologyTab struct {
	Title         string
	Authenticated bool
	Username      string
	LoginError    string
	Entries       []models.MethodologyEntry
}

// route maps a tab id to its template and data.
func (d *Dashboard) route(tabID string, req Request) (string, any, error) {
	switch tabID {
	case TabStrategic:
		content, err := d.strategic(req)
		return "tab-strategic", content, err
	case TabGeographic:
		content, err := d.geographic(req)
		return "tab-geographic", content, err
	case TabFinancial:
		content, err := d.financial(req)
		return "tab-financial", content, err
	case TabCapacity:
		content, err := d.capacity(req)
		return "tab-capacity", content, err
	case TabSecurity:
		content, err := d.metrics(req, "Seguridad", data.Security(), charts.SecurityIncidentsID, "Indicadores de seguridad")
		return "tab-metrics", content, err
	case TabQuality:
		content, err := d.metrics(req, "Calidad de Servicio", data.Quality(), charts.QualitySatisfactionID, "Experiencia del pasajero")
		return "tab-metrics", content, err
	case TabProductivity:
		content, err := d.metrics(req, "Productividad", data.Productivity(), charts.ProductivityID, "Eficiencia de recursos")
		return "tab-metrics", content, err
	case TabMethodology:
		return "tab-methodology", d.methodology(req), nil
	default:
		return "", nil, errUnknownTab
	}
}

func (d *Dashboard) chart(card components.ChartCard, req Request) (Chart, error) {
	fig, err := d.chartJSON(card.ChartID, req.Source, charts.Options{Region: req.Region})
	if err != nil {
		return Chart{}, err
	}
	return Chart{ChartCard: card, Figure: fig}, nil
}

func (d *Dashboard) chartList(req Request, cards ...components.ChartCard) ([]Chart, error) {
	list := make([]Chart, 0, len(cards))
	for _, card := range cards {
		c, err := d.chart(card, req)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func (d *Dashboard) strategic(req Request) (strategicTab, error) {
	list, err := d.chartList(req,
		components.NewChartCard(charts.ParticipationTrendID, "Evolución Participación de Mercado", "Últimos 12 meses", 8),
		components.NewChartCard(charts.ProgressGaugeID, "Progreso Meta Anual", "Participación de pasajeros", 4),
		components.NewChartCard(charts.AirportComparisonID, "Comparativo Aeropuertos Mexicanos", "Participación de mercado nacional", 12),
	)
	if err != nil {
		return strategicTab{}, err
	}
	return strategicTab{Cards: components.KPICards(data.KPIs()), Charts: list}, nil
}

// Regions lists the route map filter options, "all" first, in route order.
func Regions(routes []models.Route, selected string) []Region {
	regions := []Region{{Value: "", Label: "Todas las regiones", Selected: selected == ""}}
	seen := make(map[string]bool)
	for _, r := range routes {
		if seen[r.Country] {
			continue
		}
		seen[r.Country] = true
		regions = append(regions, Region{Value: r.Country, Label: r.Country, Selected: r.Country == selected})
	}
	return regions
}

func (d *Dashboard) geographic(req Request) (geographicTab, error) {
	routes := data.Routes()

	routeMap, err := d.chart(components.NewChartCard(charts.WorldRoutesID,
		"Red de Rutas Internacionales AIFA", "Conexiones actuales y tráfico de pasajeros", 12), req)
	if err != nil {
		return geographicTab{}, err
	}

	list, err := d.chartList(req,
		components.NewChartCard(charts.MexicoPenetrationID, "Penetración por Estados", "Participación de mercado nacional", 8),
		components.NewChartCard(charts.LoadFactorID, "Factor de Carga por Ruta", "Eficiencia operativa", 6),
		components.NewChartCard(charts.FrequencyPassengersID, "Frecuencias vs Pasajeros", "Optimización de rutas", 6),
	)
	if err != nil {
		return geographicTab{}, err
	}

	top := charts.TopDestinations(routes, topDestinationCount)
	destinations := make([]components.DestinationItem, len(top))
	for i, r := range top {
		destinations[i] = components.NewDestinationItem(r, routegeo.DistanceKM(r))
	}

	return geographicTab{
		Title:        "Análisis Geográfico",
		Regions:      Regions(routes, req.Region),
		RouteMap:     routeMap,
		Charts:       list,
		Destinations: destinations,
	}, nil
}

func (d *Dashboard) financial(req Request) (financialTab, error) {
	list, err := d.chartList(req,
		components.NewChartCard(charts.FinancialTrendID, "Evolución Financiera", "Ingresos vs Costos (Millones MXN)", 12),
		components.NewChartCard(charts.EBITDAMarginID, "Margen EBITDA", "Rentabilidad operativa", 12),
	)
	if err != nil {
		return financialTab{}, err
	}
	return financialTab{
		Title:   "Análisis Financiero",
		Summary: components.SummaryCards(data.FinancialSummaries()),
		Charts:  list,
	}, nil
}

func operationsCards(ops models.OperationalMetrics) []components.SummaryCard {
	return []components.SummaryCard{
		{Label: "Operaciones diarias", Value: components.Thousands(ops.DailyOperations), Color: charts.ColorAccent},
		{Label: "Salidas a tiempo", Value: components.Percent(ops.OnTimeDeparture), Color: charts.ColorPositive},
		{Label: "Utilización de posiciones", Value: components.Percent(ops.GateUtilization), Color: charts.ColorAmber},
		{Label: "Tiempo de rotación", Value: charts.FormatNumber(ops.TurnaroundMinutes) + " min", Color: charts.ColorAccent},
		{Label: "Flujo de pasajeros", Value: components.Thousands(ops.PassengerFlow) + " pax/día", Color: charts.ColorAccent},
		{Label: "Carga diaria", Value: components.Thousands(ops.CargoTons) + " ton", Color: charts.ColorAmber},
	}
}

func (d *Dashboard) capacity(req Request) (capacityTab, error) {
	list, err := d.chartList(req,
		components.NewChartCard(charts.CapacityUtilizationID, "Utilización de Capacidad", "Por subsistema", 8),
		components.NewChartCard(charts.OperationsMixID, "Mezcla de Operaciones", "Nacional vs internacional", 4),
	)
	if err != nil {
		return capacityTab{}, err
	}
	return capacityTab{
		Title:      "Capacidad Operativa",
		Operations: operationsCards(data.Operations()),
		Rows:       components.CapacityRows(data.Capacity()),
		Charts:     list,
	}, nil
}

func (d *Dashboard) metrics(req Request, title string, metrics []models.Metric, chartID, subtitle string) (metricsTab, error) {
	c, err := d.chart(components.NewChartCard(chartID, "Cumplimiento de Metas", subtitle, 12), req)
	if err != nil {
		return metricsTab{}, err
	}
	return metricsTab{
		Title:   title,
		Summary: components.StatusSummary(metrics),
		Rows:    components.MetricRows(metrics),
		Chart:   c,
	}, nil
}

func (d *Dashboard) methodology(req Request) methodologyTab {
	tab := methodologyTab{
		Title:         "Metodología",
		Authenticated: req.Authenticated,
		Username:      req.Username,
		LoginError:    req.LoginError,
	}
	if req.Authenticated {
		tab.Entries = data.Methodology()
	}
	return tab
}
