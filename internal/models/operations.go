package models

// OperationalMetrics is the daily operations snapshot.
type OperationalMetrics struct {
	DailyOperations   int     `json:"dailyOperations"`
	OnTimeDeparture   float64 `json:"onTimeDeparture"`
	GateUtilization   float64 `json:"gateUtilization"`
	TurnaroundMinutes float64 `json:"turnaroundMinutes"`
	PassengerFlow     int     `json:"passengerFlow"`
	CargoTons         int     `json:"cargoTons"`
	Domestic          int     `json:"domestic"`
	International     int     `json:"international"`
}

// CapacityMetric is the utilization of one airport subsystem.
type CapacityMetric struct {
	Area        string  `json:"area"`
	Capacity    float64 `json:"capacity"`
	Used        float64 `json:"used"`
	Unit        string  `json:"unit"`
	Utilization float64 `json:"utilization"`
}

// Status labels shared by the security, quality and productivity tables.
type Status string

const (
	StatusOptimal    Status = "Óptimo"
	StatusAcceptable Status = "Aceptable"
	StatusCritical   Status = "Crítico"
)

// Metric is a rate compared against a target. LowerIsBetter is set for
// incident-style rates.
type Metric struct {
	Name          string  `json:"name"`
	Rate          float64 `json:"rate"`
	Target        float64 `json:"target"`
	Unit          string  `json:"unit"`
	LowerIsBetter bool    `json:"lowerIsBetter"`
	Change        float64 `json:"change"`
	Status        Status  `json:"status"`
	Trend         Trend   `json:"trend"`
}

// acceptableBand is how far past the target a metric may be before it is critical.
const acceptableBand = 0.10

// EvaluateStatus classifies rate against target. Meeting the target is
// optimal, missing it by at most 10% of the target is acceptable.
func EvaluateStatus(rate, target float64, lowerIsBetter bool) Status {
	if target <= 0 {
		return StatusAcceptable
	}
	gap := (target - rate) / target
	if lowerIsBetter {
		gap = -gap
	}
	switch {
	case gap <= 0:
		return StatusOptimal
	case gap <= acceptableBand:
		return StatusAcceptable
	default:
		return StatusCritical
	}
}

// NewMetric builds a Metric with its status and trend derived.
func NewMetric(name string, rate, target float64, unit string, lowerIsBetter bool, change float64) Metric {
	return Metric{
		Name:          name,
		Rate:          rate,
		Target:        target,
		Unit:          unit,
		LowerIsBetter: lowerIsBetter,
		Change:        change,
		Status:        EvaluateStatus(rate, target, lowerIsBetter),
		Trend:         TrendOf(change),
	}
}

// MethodologyEntry documents how a KPI is computed.
type MethodologyEntry struct {
	KPI        string `json:"kpi"`
	Definition string `json:"definition"`
	Formula    string `json:"formula"`
	Source     string `json:"source"`
	Frequency  string `json:"frequency"`
}
