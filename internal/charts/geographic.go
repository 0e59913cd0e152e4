package charts

import (
	"errors"
	"fmt"
	"sort"

	"dashboard.aifa.mx/internal/data"
	"dashboard.aifa.mx/internal/models"
	"dashboard.aifa.mx/internal/routegeo"
)

// ErrUnknownRegion is returned when a route filter names no served country.
var ErrUnknownRegion = errors.New("unknown region")

const loadFactorScale = "Viridis"

// FilterRoutes keeps the routes to country. An empty country keeps all.
func FilterRoutes(routes []models.Route, country string) ([]models.Route, error) {
	if country == "" {
		return routes, nil
	}
	var filtered []models.Route
	for _, r := range routes {
		if r.Country == country {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, country)
	}
	return filtered, nil
}

func worldLayout() Layout {
	layout := baseLayout()
	layout.Geo = &Geo{
		ShowFrame:      false,
		ShowCoastlines: true,
		ProjectionType: "equirectangular",
		BgColor:        transparentColor,
	}
	layout.Margin = Margin{}
	return layout
}

func airportMarker() Trace {
	return Trace{
		Type:         "scattergeo",
		Name:         data.AirportCode,
		Mode:         "markers+text",
		Lat:          []float64{data.AirportLat},
		Lon:          []float64{data.AirportLon},
		Text:         []string{data.AirportCode},
		TextPosition: "top center",
		Marker:       &Marker{Size: 15, Color: ColorAmber, Symbol: "airport"},
		ShowLegend:   boolPtr(false),
	}
}

// DefaultWorldMap is the map shown when route filtering fails: the airport
// alone on an empty world.
func DefaultWorldMap() Figure {
	return Figure{
		Data:   []Trace{airportMarker()},
		Layout: worldLayout(),
	}
}

// WorldRoutes draws an arc from the airport to each destination, sized by
// passengers and colored by load factor.
func WorldRoutes(routes []models.Route, country string) (Figure, error) {
	filtered, err := FilterRoutes(routes, country)
	if err != nil {
		return Figure{}, err
	}

	traces := make([]Trace, 0, len(filtered)+2)
	for _, route := range filtered {
		lats, lons := routegeo.Split(routegeo.RoutePath(route, routegeo.DefaultSegments))
		traces = append(traces, Trace{
			Type:       "scattergeo",
			Mode:       "lines",
			Lat:        lats,
			Lon:        lons,
			Line:       &Line{Width: 2, Color: ColorAccent},
			Opacity:    0.6,
			ShowLegend: boolPtr(false),
		})
	}

	traces = append(traces, airportMarker())

	lats := make([]float64, len(filtered))
	lons := make([]float64, len(filtered))
	cities := make([]string, len(filtered))
	sizes := make([]float64, len(filtered))
	colors := make([]float64, len(filtered))
	for i, route := range filtered {
		lats[i] = route.Lat
		lons[i] = route.Lon
		cities[i] = route.City
		sizes[i] = float64(route.Passengers) / 5000
		colors[i] = route.LoadFactor
	}
	traces = append(traces, Trace{
		Type:         "scattergeo",
		Name:         "Destinos",
		Mode:         "markers+text",
		Lat:          lats,
		Lon:          lons,
		Text:         cities,
		TextPosition: "top center",
		Marker: &Marker{
			Size:       sizes,
			Color:      colors,
			ColorScale: loadFactorScale,
			ColorBar:   &ColorBar{Title: "Factor de Carga (%)"},
		},
		ShowLegend: boolPtr(false),
	})

	return Figure{Data: traces, Layout: worldLayout()}, nil
}

// StatePenetrationChart is the per-state penetration bar chart.
func StatePenetrationChart(states []models.StatePenetration) Figure {
	names := make([]string, len(states))
	values := make([]float64, len(states))
	labels := make([]string, len(states))
	for i, s := range states {
		names[i] = s.State
		values[i] = s.Penetration
		labels[i] = round1Label(s.Penetration)
	}

	layout := baseLayout()
	layout.XAxis = &Axis{GridColor: gridColor, Title: "Estado", TickAngle: 45}
	layout.YAxis = axis("Penetración (%)")
	layout.Margin = Margin{L: 20, R: 20, T: 20, B: 80}

	return Figure{
		Data: []Trace{{
			Type:         "bar",
			X:            names,
			Y:            values,
			Marker:       &Marker{Color: ColorAccent},
			Text:         labels,
			TextPosition: "auto",
		}},
		Layout: layout,
	}
}

// TopDestinations returns up to n routes by descending passengers.
func TopDestinations(routes []models.Route, n int) []models.Route {
	sorted := append([]models.Route(nil), routes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Passengers > sorted[j].Passengers
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// LoadFactorChart is a horizontal bar per route, ascending by load factor.
func LoadFactorChart(routes []models.Route) Figure {
	sorted := append([]models.Route(nil), routes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LoadFactor < sorted[j].LoadFactor
	})

	values := make([]float64, len(sorted))
	cities := make([]string, len(sorted))
	colors := make([]string, len(sorted))
	labels := make([]string, len(sorted))
	for i, r := range sorted {
		values[i] = r.LoadFactor
		cities[i] = r.City
		colors[i] = LoadFactorColor(r.LoadFactor)
		labels[i] = round1Label(r.LoadFactor)
	}

	layout := baseLayout()
	layout.XAxis = axis("Factor de Carga (%)")
	layout.YAxis = axis("")
	layout.Margin = Margin{L: 80, R: 20, T: 20, B: 20}

	return Figure{
		Data: []Trace{{
			Type:         "bar",
			Orientation:  "h",
			X:            values,
			Y:            cities,
			Marker:       &Marker{Color: colors},
			Text:         labels,
			TextPosition: "auto",
		}},
		Layout: layout,
	}
}

// FrequencyPassengers relates monthly frequency to passengers per route.
func FrequencyPassengers(routes []models.Route) Figure {
	freq := make([]int, len(routes))
	pax := make([]int, len(routes))
	cities := make([]string, len(routes))
	sizes := make([]float64, len(routes))
	colors := make([]float64, len(routes))
	for i, r := range routes {
		freq[i] = r.Frequency
		pax[i] = r.Passengers
		cities[i] = r.City
		sizes[i] = r.LoadFactor / 3
		colors[i] = r.LoadFactor
	}

	layout := baseLayout()
	layout.XAxis = axis("Frecuencia (vuelos/mes)")
	layout.YAxis = axis("Pasajeros Mensuales")
	layout.Margin = Margin{L: 20, R: 20, T: 20, B: 20}

	return Figure{
		Data: []Trace{{
			Type:         "scatter",
			Name:         "Rutas",
			Mode:         "markers+text",
			X:            freq,
			Y:            pax,
			Text:         cities,
			TextPosition: "top center",
			Marker: &Marker{
				Size:       sizes,
				Color:      colors,
				ColorScale: loadFactorScale,
				ShowScale:  boolPtr(true),
				ColorBar:   &ColorBar{Title: "Factor de Carga (%)"},
			},
		}},
		Layout: layout,
	}
}
