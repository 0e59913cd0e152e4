package charts

import "dashboard.aifa.mx/internal/models"

// CapacityUtilization is a horizontal bar per subsystem colored by saturation.
func CapacityUtilization(metrics []models.CapacityMetric) Figure {
	areas := make([]string, len(metrics))
	values := make([]float64, len(metrics))
	colors := make([]string, len(metrics))
	labels := make([]string, len(metrics))
	for i, m := range metrics {
		areas[i] = m.Area
		values[i] = m.Utilization
		colors[i] = UtilizationColor(m.Utilization)
		labels[i] = round1Label(m.Utilization) + "%"
	}

	layout := baseLayout()
	layout.XAxis = axis("Utilización (%)")
	layout.YAxis = axis("")
	layout.Margin = Margin{L: 160, R: 20, T: 20, B: 20}

	return Figure{
		Data: []Trace{{
			Type:         "bar",
			Orientation:  "h",
			X:            values,
			Y:            areas,
			Marker:       &Marker{Color: colors},
			Text:         labels,
			TextPosition: "auto",
		}},
		Layout: layout,
	}
}

// MetricAttainment plots each metric's rate as a share of its target, colored
// by status. Lower-is-better metrics are inverted so 100% always means on target.
func MetricAttainment(metrics []models.Metric, yTitle string) Figure {
	names := make([]string, len(metrics))
	values := make([]float64, len(metrics))
	colors := make([]string, len(metrics))
	labels := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = m.Name
		values[i] = Attainment(m)
		colors[i] = StatusColor(m.Status)
		labels[i] = string(m.Status)
	}

	layout := baseLayout()
	layout.XAxis = &Axis{GridColor: gridColor, TickAngle: 30}
	layout.YAxis = axis(yTitle)
	layout.Margin = Margin{L: 20, R: 20, T: 20, B: 120}

	return Figure{
		Data: []Trace{{
			Type:         "bar",
			X:            names,
			Y:            values,
			Marker:       &Marker{Color: colors},
			Text:         labels,
			TextPosition: "auto",
		}},
		Layout: layout,
	}
}

// Attainment is rate/target as a percentage, inverted for lower-is-better
// metrics. A zero rate on a lower-is-better metric is full attainment.
func Attainment(m models.Metric) float64 {
	if m.Target == 0 {
		return 0
	}
	if m.LowerIsBetter {
		if m.Rate == 0 {
			return 100
		}
		return m.Target / m.Rate * 100
	}
	return m.Rate / m.Target * 100
}

// OperationsMix splits daily movements into domestic and international.
func OperationsMix(ops models.OperationalMetrics) Figure {
	layout := baseLayout()
	layout.XAxis = axis("")
	layout.YAxis = axis("Operaciones diarias")

	return Figure{
		Data: []Trace{{
			Type:         "bar",
			X:            []string{"Nacional", "Internacional"},
			Y:            []int{ops.Domestic, ops.International},
			Marker:       &Marker{Color: []string{ColorAccent, ColorAmber}},
			Text:         []string{"Nacional", "Internacional"},
			TextPosition: "auto",
		}},
		Layout: layout,
	}
}
