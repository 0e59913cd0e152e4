package charts

import "dashboard.aifa.mx/internal/models"

const (
	ColorAccent   = "#00d4ff"
	ColorAmber    = "#f59e0b"
	ColorPositive = "#00ff88"
	ColorNegative = "#ff4757"
	ColorMuted    = "#8b92a9"

	gridColor        = "rgba(255,255,255,0.1)"
	transparentColor = "rgba(0,0,0,0)"
)

// TrendColor picks green for a positive change and red otherwise.
func TrendColor(change float64) string {
	if change > 0 {
		return ColorPositive
	}
	return ColorNegative
}

// TrendArrow is the arrow glyph shown next to a change.
func TrendArrow(change float64) string {
	if change > 0 {
		return "↗"
	}
	return "↘"
}

// LoadFactorColor buckets a load factor: red under 80, amber under 85.
func LoadFactorColor(loadFactor float64) string {
	switch {
	case loadFactor < 80:
		return ColorNegative
	case loadFactor < 85:
		return ColorAmber
	default:
		return ColorPositive
	}
}

// StatusColor maps a metric status to its badge color.
func StatusColor(status models.Status) string {
	switch status {
	case models.StatusOptimal:
		return ColorPositive
	case models.StatusAcceptable:
		return ColorAmber
	default:
		return ColorNegative
	}
}

// UtilizationColor flags saturated subsystems: red from 85%, amber from 70%.
func UtilizationColor(utilization float64) string {
	switch {
	case utilization >= 85:
		return ColorNegative
	case utilization >= 70:
		return ColorAmber
	default:
		return ColorPositive
	}
}

func baseLayout() Layout {
	return Layout{
		PlotBgColor:  transparentColor,
		PaperBgColor: transparentColor,
		Font:         Font{Color: "white"},
		Margin:       Margin{L: 20, R: 20, T: 40, B: 20},
	}
}

func axis(title string) *Axis {
	return &Axis{GridColor: gridColor, Title: title}
}
