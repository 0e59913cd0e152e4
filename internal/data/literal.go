// Package data holds the literal airport tables behind the dashboard and the
// simulator that jitters the monthly series between refreshes.
package data

import (
	"dashboard.aifa.mx/internal/models"
)

// Coordinates of the airport itself, origin of every route.
const (
	AirportCode = "AIFA"
	AirportName = "Aeropuerto Internacional Felipe Ángeles"
	AirportLat  = 19.7369
	AirportLon  = -99.0256
)

// MonthNames are the Spanish month abbreviations used on every chart axis.
var MonthNames = []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// KPI keys, in the order the strategic tab lays them out.
const (
	KPIParticipationPassengers = "participation_passengers"
	KPIParticipationOperations = "participation_operations"
	KPIParticipationCargo      = "participation_cargo"
	KPIGrowthVsMarket          = "growth_vs_market"
	KPIPunctuality             = "punctuality"
	KPIRouteUtilization        = "route_utilization"
)

func target(v float64) *float64 {
	return &v
}

func kpi(key, title, icon string, current, change float64, goal *float64) models.KPI {
	return models.KPI{
		Key:     key,
		Title:   title,
		Icon:    icon,
		Current: current,
		Change:  change,
		Target:  goal,
		Unit:    "%",
		Trend:   models.TrendOf(change),
	}
}

// KPIs returns the six strategic indicators.
func KPIs() []models.KPI {
	return []models.KPI{
		kpi(KPIParticipationPassengers, "Participación Nacional Pasajeros", "mdi:account-group", 12.8, 2.3, target(15.0)),
		kpi(KPIParticipationOperations, "Participación Nacional Operaciones", "mdi:airplane-takeoff", 9.7, 1.8, target(12.0)),
		kpi(KPIParticipationCargo, "Participación Nacional Carga", "mdi:package-variant", 8.4, 3.1, target(10.0)),
		kpi(KPIGrowthVsMarket, "Crecimiento vs Mercado", "mdi:trending-up", 5.5, 0.8, nil),
		kpi(KPIPunctuality, "Puntualidad de Vuelos", "mdi:clock-check-outline", 87.2, -1.3, target(90.0)),
		kpi(KPIRouteUtilization, "Utilización de Rutas", "mdi:map-marker-path", 78.4, 2.1, target(85.0)),
	}
}

// KPIByKey looks up one indicator.
func KPIByKey(key string) (models.KPI, bool) {
	for _, k := range KPIs() {
		if k.Key == key {
			return k, true
		}
	}
	return models.KPI{}, false
}

// Historical returns the literal twelve-month participation series.
func Historical() models.HistoricalSeries {
	return models.HistoricalSeries{
		Months:     append([]string(nil), MonthNames...),
		Passengers: []float64{8.2, 8.6, 9.1, 9.5, 10.2, 10.8, 11.3, 11.7, 12.1, 12.4, 12.6, 12.8},
		Operations: []float64{6.8, 7.1, 7.5, 7.9, 8.3, 8.7, 9.0, 9.3, 9.5, 9.6, 9.7, 9.7},
		Cargo:      []float64{5.1, 5.4, 5.8, 6.2, 6.7, 7.1, 7.5, 7.8, 8.0, 8.1, 8.2, 8.4},
	}
}

// Routes returns the destinations served from the airport.
func Routes() []models.Route {
	return []models.Route{
		{City: "Los Angeles", Country: "USA", Lat: 34.0522, Lon: -118.2437, Passengers: 87000, LoadFactor: 85.7, Frequency: 21},
		{City: "Houston", Country: "USA", Lat: 29.9844, Lon: -95.3414, Passengers: 76000, LoadFactor: 81.3, Frequency: 19},
		{City: "Miami", Country: "USA", Lat: 25.7617, Lon: -80.1918, Passengers: 92000, LoadFactor: 87.4, Frequency: 17},
		{City: "Guadalajara", Country: "México", Lat: 20.5218, Lon: -103.3111, Passengers: 125000, LoadFactor: 82.3, Frequency: 42},
		{City: "Monterrey", Country: "México", Lat: 25.7785, Lon: -100.1069, Passengers: 98000, LoadFactor: 78.5, Frequency: 35},
		{City: "Cancún", Country: "México", Lat: 21.0368, Lon: -86.8770, Passengers: 156000, LoadFactor: 89.2, Frequency: 28},
		{City: "Bogotá", Country: "Colombia", Lat: 4.7110, Lon: -74.0721, Passengers: 45000, LoadFactor: 79.8, Frequency: 14},
		{City: "Lima", Country: "Perú", Lat: -12.0464, Lon: -77.0428, Passengers: 38000, LoadFactor: 82.1, Frequency: 10},
	}
}

// RouteByCity finds a destination by city name.
func RouteByCity(city string) (models.Route, bool) {
	for _, r := range Routes() {
		if r.City == city {
			return r, true
		}
	}
	return models.Route{}, false
}

// AirportComparison returns national market share of the main Mexican airports.
func AirportComparison() []models.AirportShare {
	return []models.AirportShare{
		{Name: "AICM", Passengers: 48.2, Operations: 41.3, Change: -2.1},
		{Name: "AIFA", Passengers: 12.8, Operations: 9.7, Change: 2.3},
		{Name: "Guadalajara", Passengers: 8.9, Operations: 10.2, Change: 0.8},
		{Name: "Cancún", Passengers: 15.4, Operations: 12.8, Change: 1.2},
		{Name: "Monterrey", Passengers: 7.2, Operations: 8.1, Change: -0.3},
		{Name: "Tijuana", Passengers: 4.9, Operations: 6.3, Change: 0.5},
		{Name: "Otros", Passengers: 2.6, Operations: 11.6, Change: -0.4},
	}
}

// Financial returns the literal monthly revenue and cost series.
func Financial() models.FinancialSeries {
	return models.FinancialSeries{
		Months:  append([]string(nil), MonthNames...),
		Revenue: []float64{150, 162, 175, 188, 195, 210, 225, 238, 245, 260, 275, 290},
		Costs:   []float64{112, 118, 125, 135, 140, 150, 160, 170, 175, 185, 195, 205},
	}
}

// FinancialSummaries returns the three headline cards of the financial tab.
func FinancialSummaries() []models.FinancialSummary {
	return []models.FinancialSummary{
		{Label: "Ingresos Mensuales", Value: "$290M MXN", Change: 5.4, Period: "vs mes anterior", Color: "#00d4ff"},
		{Label: "Margen EBITDA", Value: "29.3%", Change: 1.8, Period: "vs mes anterior", Color: "#f59e0b"},
		{Label: "ROI Anual", Value: "22.1%", Change: 3.2, Period: "vs año anterior", Color: "#00ff88"},
	}
}

// statePenetration is kept ordered so the chart is stable.
var statePenetration = []struct {
	state       string
	penetration float64
}{
	{"Ciudad de México", 45.2},
	{"Estado de México", 38.7},
	{"Jalisco", 12.3},
	{"Nuevo León", 8.9},
	{"Puebla", 7.2},
	{"Querétaro", 6.8},
	{"Guanajuato", 5.9},
	{"Veracruz", 4.2},
	{"Hidalgo", 15.3},
	{"Michoacán", 3.8},
	{"Chihuahua", 2.1},
	{"Coahuila", 1.9},
	{"San Luis Potosí", 3.4},
	{"Aguascalientes", 2.8},
	{"Morelos", 4.5},
	{"Tlaxcala", 8.9},
}

// passengersPerPenetrationPoint converts a penetration percentage to monthly passengers.
const passengersPerPenetrationPoint = 25000

// StatePenetration returns market penetration per state.
func StatePenetration() []models.StatePenetration {
	states := make([]models.StatePenetration, 0, len(statePenetration))
	for _, s := range statePenetration {
		states = append(states, models.StatePenetration{
			State:       s.state,
			Penetration: s.penetration,
			Passengers:  int(s.penetration * passengersPerPenetrationPoint),
		})
	}
	return states
}

// Operations returns the daily operations snapshot.
func Operations() models.OperationalMetrics {
	return models.OperationalMetrics{
		DailyOperations:   287,
		OnTimeDeparture:   87.2,
		GateUtilization:   82.4,
		TurnaroundMinutes: 38.5,
		PassengerFlow:     42500,
		CargoTons:         1250,
		Domestic:          198,
		International:     89,
	}
}

func capacity(area string, total, used float64, unit string) models.CapacityMetric {
	return models.CapacityMetric{
		Area:        area,
		Capacity:    total,
		Used:        used,
		Unit:        unit,
		Utilization: used / total * 100,
	}
}

// Capacity returns utilization of the airport subsystems.
func Capacity() []models.CapacityMetric {
	return []models.CapacityMetric{
		capacity("Posiciones de contacto", 32, 26, "posiciones"),
		capacity("Pista (operaciones/hora)", 61, 38, "ops/h"),
		capacity("Terminal de pasajeros", 19.5, 6.2, "M pax/año"),
		capacity("Terminal de carga", 470, 312, "k ton/año"),
		capacity("Estacionamiento", 3900, 2410, "cajones"),
		capacity("Filtros de seguridad", 24, 17, "filtros"),
	}
}

// Security returns the operational security indicators. Incident rates are
// lower-is-better.
func Security() []models.Metric {
	return []models.Metric{
		models.NewMetric("Incidentes de seguridad operacional", 0.42, 0.50, "por 10k ops", true, -0.05),
		models.NewMetric("Incursiones en pista", 0.08, 0.05, "por 10k ops", true, 0.02),
		models.NewMetric("Impactos con fauna", 1.9, 2.0, "por 10k ops", true, -0.3),
		models.NewMetric("Objetos prohibidos detectados", 2.3, 2.1, "por 1k pax", true, 0.4),
		models.NewMetric("Cumplimiento de auditorías", 96.5, 95.0, "%", false, 1.5),
		models.NewMetric("Tiempo de respuesta SEI", 2.7, 3.0, "min", true, -0.2),
	}
}

// Quality returns the passenger experience indicators.
func Quality() []models.Metric {
	return []models.Metric{
		models.NewMetric("Satisfacción general", 4.2, 4.5, "/5", false, 0.1),
		models.NewMetric("Tiempo en filtro de seguridad", 11.5, 10.0, "min", true, -1.2),
		models.NewMetric("Entrega de equipaje", 18.0, 20.0, "min", true, -0.8),
		models.NewMetric("Limpieza de instalaciones", 92.4, 90.0, "%", false, 0.6),
		models.NewMetric("Quejas por cada 10k pasajeros", 3.1, 2.5, "quejas", true, 0.3),
		models.NewMetric("Disponibilidad de WiFi", 97.8, 99.0, "%", false, -0.4),
	}
}

// Productivity returns staff and asset productivity indicators.
func Productivity() []models.Metric {
	return []models.Metric{
		models.NewMetric("Pasajeros por empleado", 3120, 3000, "pax/año", false, 4.1),
		models.NewMetric("Operaciones por posición", 8.9, 9.5, "ops/día", false, 0.3),
		models.NewMetric("Ingreso por pasajero", 118.0, 125.0, "MXN", false, 2.2),
		models.NewMetric("Costo por unidad de tráfico", 84.5, 80.0, "MXN", true, -1.1),
		models.NewMetric("Toneladas de carga por empleado", 41.2, 45.0, "ton/año", false, 1.7),
		models.NewMetric("Tiempo de rotación de aeronaves", 38.5, 40.0, "min", true, -0.9),
	}
}

// Methodology documents the calculation behind every strategic KPI.
func Methodology() []models.MethodologyEntry {
	return []models.MethodologyEntry{
		{
			KPI:        "Participación Nacional Pasajeros",
			Definition: "Proporción de pasajeros nacionales atendidos por AIFA.",
			Formula:    "Pasajeros AIFA / Pasajeros totales del sistema aeroportuario × 100",
			Source:     "Estadística operacional AFAC",
			Frequency:  "Mensual",
		},
		{
			KPI:        "Participación Nacional Operaciones",
			Definition: "Proporción de operaciones aéreas nacionales realizadas en AIFA.",
			Formula:    "Operaciones AIFA / Operaciones nacionales × 100",
			Source:     "Estadística operacional AFAC",
			Frequency:  "Mensual",
		},
		{
			KPI:        "Participación Nacional Carga",
			Definition: "Proporción de toneladas de carga aérea manejadas en AIFA.",
			Formula:    "Toneladas AIFA / Toneladas nacionales × 100",
			Source:     "Reporte de carga aérea",
			Frequency:  "Mensual",
		},
		{
			KPI:        "Crecimiento vs Mercado",
			Definition: "Diferencia entre el crecimiento de pasajeros de AIFA y el del mercado.",
			Formula:    "Crecimiento AIFA (%) − Crecimiento mercado (%)",
			Source:     "Estadística operacional AFAC",
			Frequency:  "Mensual",
		},
		{
			KPI:        "Puntualidad de Vuelos",
			Definition: "Salidas dentro de 15 minutos del horario programado.",
			Formula:    "Salidas a tiempo / Salidas totales × 100",
			Source:     "Centro de control operacional",
			Frequency:  "Diaria",
		},
		{
			KPI:        "Utilización de Rutas",
			Definition: "Factor de ocupación promedio ponderado de las rutas activas.",
			Formula:    "Σ pasajeros / Σ asientos ofertados × 100",
			Source:     "Reportes de aerolíneas",
			Frequency:  "Mensual",
		},
	}
}
