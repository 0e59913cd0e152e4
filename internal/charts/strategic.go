package charts

import (
	"fmt"

	"dashboard.aifa.mx/internal/data"
	"dashboard.aifa.mx/internal/models"
)

func lineSeries(name, color string, x []string, y []float64) Trace {
	return Trace{
		Type:   "scatter",
		Mode:   "lines+markers",
		Name:   name,
		X:      x,
		Y:      y,
		Line:   &Line{Color: color, Width: 3},
		Marker: &Marker{Size: 8, Color: color},
	}
}

// ParticipationTrend plots passenger, operations and cargo market share.
func ParticipationTrend(series models.HistoricalSeries) Figure {
	layout := baseLayout()
	layout.XAxis = axis("Mes")
	layout.YAxis = axis("Participación (%)")
	layout.Legend = &Legend{Orientation: "h", YAnchor: "bottom", Y: 1.02, XAnchor: "right", X: 1}

	return Figure{
		Data: []Trace{
			lineSeries("Pasajeros", ColorAccent, series.Months, series.Passengers),
			lineSeries("Operaciones", ColorAmber, series.Months, series.Operations),
			lineSeries("Carga", ColorPositive, series.Months, series.Cargo),
		},
		Layout: layout,
	}
}

// Gauge bands and axis maximum for the annual goal indicator.
const (
	gaugeMax       = 20.0
	gaugeLowBand   = 10.0
	thresholdWidth = 4.0
)

// ProgressGauge shows a KPI against its annual goal.
func ProgressGauge(kpi models.KPI) Figure {
	goal := kpi.Current
	if kpi.HasTarget() {
		goal = *kpi.Target
	}
	axisMax := gaugeMax
	if goal >= axisMax {
		axisMax = goal * 4 / 3
	}
	lowBand := gaugeLowBand
	if lowBand >= goal {
		lowBand = goal * 2 / 3
	}

	layout := baseLayout()
	return Figure{
		Data: []Trace{{
			Type:   "indicator",
			Mode:   "gauge+number+delta",
			Value:  floatPtr(kpi.Current),
			Domain: &Domain{X: [2]float64{0, 1}, Y: [2]float64{0, 1}},
			Title:  &Title{Text: fmt.Sprintf("Meta %s%%", FormatNumber(goal)), Font: &Font{Color: "white"}},
			Delta:  &Delta{Reference: goal},
			Gauge: &Gauge{
				Axis: GaugeAxis{Range: [2]*float64{nil, floatPtr(axisMax)}},
				Bar:  Line{Color: ColorAccent},
				Steps: []GaugeStep{
					{Range: [2]float64{0, lowBand}, Color: "rgba(255,71,87,0.3)"},
					{Range: [2]float64{lowBand, goal}, Color: "rgba(245,158,11,0.3)"},
					{Range: [2]float64{goal, axisMax}, Color: "rgba(0,255,136,0.3)"},
				},
				Threshold: GaugeThreshold{
					Line:      Line{Color: "red", Width: thresholdWidth},
					Thickness: 0.75,
					Value:     goal,
				},
			},
		}},
		Layout: layout,
	}
}

// PassengerGoalGauge is the progress gauge of the passenger participation KPI.
func PassengerGoalGauge() Figure {
	kpi, _ := data.KPIByKey(data.KPIParticipationPassengers)
	return ProgressGauge(kpi)
}

// AirportComparison is the national market share bar chart.
func AirportComparison(airports []models.AirportShare) Figure {
	names := make([]string, len(airports))
	values := make([]float64, len(airports))
	labels := make([]string, len(airports))
	for i, a := range airports {
		names[i] = a.Name
		values[i] = a.Passengers
		labels[i] = FormatNumber(a.Passengers) + "%"
	}

	layout := baseLayout()
	layout.XAxis = axis("Aeropuerto")
	layout.YAxis = axis("Participación (%)")

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
