// Package charts builds Plotly figure descriptions for the dashboard graphs.
// Figures are plain data; the browser renders them with plotly.js.
package charts

import (
	"errors"
	"fmt"
)

// Figure is the {data, layout} pair plotly.js expects.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

type ColorBar struct {
	Title string `json:"title,omitempty"`
}

type Marker struct {
	Color      any       `json:"color,omitempty"`
	Size       any       `json:"size,omitempty"`
	Symbol     string    `json:"symbol,omitempty"`
	ColorScale string    `json:"colorscale,omitempty"`
	ShowScale  *bool     `json:"showscale,omitempty"`
	ColorBar   *ColorBar `json:"colorbar,omitempty"`
}

type Title struct {
	Text string `json:"text"`
	Font *Font  `json:"font,omitempty"`
}

type Font struct {
	Color string  `json:"color,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

// GaugeStep is a colored band on an indicator gauge.
type GaugeStep struct {
	Range [2]float64 `json:"range"`
	Color string     `json:"color"`
}

type GaugeThreshold struct {
	Line      Line    `json:"line"`
	Thickness float64 `json:"thickness"`
	Value     float64 `json:"value"`
}

type GaugeAxis struct {
	// Range uses a nil lower bound to let plotly pick it, as [null, 20].
	Range [2]*float64 `json:"range"`
}

type Gauge struct {
	Axis      GaugeAxis      `json:"axis"`
	Bar       Line           `json:"bar"`
	Steps     []GaugeStep    `json:"steps"`
	Threshold GaugeThreshold `json:"threshold"`
}

type Delta struct {
	Reference float64 `json:"reference"`
}

type Domain struct {
	X [2]float64 `json:"x"`
	Y [2]float64 `json:"y"`
}

// Trace is one plotly trace. Only the fields a given trace type uses are set.
type Trace struct {
	Type         string    `json:"type"`
	Name         string    `json:"name,omitempty"`
	Mode         string    `json:"mode,omitempty"`
	X            any       `json:"x,omitempty"`
	Y            any       `json:"y,omitempty"`
	Lat          []float64 `json:"lat,omitempty"`
	Lon          []float64 `json:"lon,omitempty"`
	Text         any       `json:"text,omitempty"`
	TextPosition string    `json:"textposition,omitempty"`
	Orientation  string    `json:"orientation,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
	Line         *Line     `json:"line,omitempty"`
	Opacity      float64   `json:"opacity,omitempty"`
	ShowLegend   *bool     `json:"showlegend,omitempty"`

	// indicator fields
	Value  *float64 `json:"value,omitempty"`
	Title  *Title   `json:"title,omitempty"`
	Delta  *Delta   `json:"delta,omitempty"`
	Gauge  *Gauge   `json:"gauge,omitempty"`
	Domain *Domain  `json:"domain,omitempty"`
}

type Axis struct {
	Title         string  `json:"title,omitempty"`
	GridColor     string  `json:"gridcolor,omitempty"`
	ZeroLineColor string  `json:"zerolinecolor,omitempty"`
	TickAngle     float64 `json:"tickangle,omitempty"`
}

type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	YAnchor     string  `json:"yanchor,omitempty"`
	Y           float64 `json:"y,omitempty"`
	XAnchor     string  `json:"xanchor,omitempty"`
	X           float64 `json:"x,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Geo struct {
	ShowFrame      bool   `json:"showframe"`
	ShowCoastlines bool   `json:"showcoastlines"`
	ProjectionType string `json:"projection_type,omitempty"`
	BgColor        string `json:"bgcolor,omitempty"`
}

type Layout struct {
	PlotBgColor  string  `json:"plot_bgcolor"`
	PaperBgColor string  `json:"paper_bgcolor"`
	Font         Font    `json:"font"`
	XAxis        *Axis   `json:"xaxis,omitempty"`
	YAxis        *Axis   `json:"yaxis,omitempty"`
	Legend       *Legend `json:"legend,omitempty"`
	Margin       Margin  `json:"margin"`
	Geo          *Geo    `json:"geo,omitempty"`
	BarMode      string  `json:"barmode,omitempty"`
}

// ErrEmptyFigure is returned by Validate for a figure without traces.
var ErrEmptyFigure = errors.New("figure has no traces")

// Validate checks that every trace has a type and that paired coordinate
// series have matching lengths.
func (f Figure) Validate() error {
	if len(f.Data) == 0 {
		return ErrEmptyFigure
	}
	for i, trace := range f.Data {
		if trace.Type == "" {
			return fmt.Errorf("trace %d has no type", i)
		}
		switch trace.Type {
		case "indicator":
			if trace.Value == nil {
				return fmt.Errorf("trace %d: indicator without value", i)
			}
		case "scattergeo":
			if len(trace.Lat) == 0 || len(trace.Lat) != len(trace.Lon) {
				return fmt.Errorf("trace %d: lat/lon length mismatch (%d/%d)", i, len(trace.Lat), len(trace.Lon))
			}
		default:
			nx, ny := seriesLen(trace.X), seriesLen(trace.Y)
			if nx == 0 || nx != ny {
				return fmt.Errorf("trace %d: x/y length mismatch (%d/%d)", i, nx, ny)
			}
		}
	}
	return nil
}

func seriesLen(v any) int {
	switch s := v.(type) {
	case []string:
		return len(s)
	case []float64:
		return len(s)
	case []int:
		return len(s)
	default:
		return 0
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func floatPtr(f float64) *float64 {
	return &f
}
