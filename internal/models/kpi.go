package models

// Trend is the direction of a metric versus the previous period.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// TrendOf maps the sign of a change to a Trend. Zero counts as down, the same
// way the cards color a flat change.
func TrendOf(change float64) Trend {
	if change > 0 {
		return TrendUp
	}
	return TrendDown
}

// KPI is a single strategic indicator. Target is nil for indicators without
// an annual goal.
type KPI struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Icon    string   `json:"icon"`
	Current float64  `json:"current"`
	Change  float64  `json:"change"`
	Target  *float64 `json:"target,omitempty"`
	Unit    string   `json:"unit"`
	Trend   Trend    `json:"trend"`
}

// HasTarget reports whether the KPI carries a goal.
func (k KPI) HasTarget() bool {
	return k.Target != nil
}

// Progress returns current/target as a percentage, or 0 without a target.
func (k KPI) Progress() float64 {
	if k.Target == nil || *k.Target == 0 {
		return 0
	}
	return k.Current / *k.Target * 100
}

// HistoricalSeries holds twelve months of national market participation.
type HistoricalSeries struct {
	Months     []string  `json:"months"`
	Passengers []float64 `json:"passengers"`
	Operations []float64 `json:"operations"`
	Cargo      []float64 `json:"cargo"`
}

// AirportShare is one row of the national airport comparison.
type AirportShare struct {
	Name       string  `json:"name"`
	Passengers float64 `json:"passengers"`
	Operations float64 `json:"operations"`
	Change     float64 `json:"change"`
}

// StatePenetration is the market penetration of the airport in a Mexican state.
type StatePenetration struct {
	State       string  `json:"state"`
	Penetration float64 `json:"penetration"`
	Passengers  int     `json:"passengers"`
}
