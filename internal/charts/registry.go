package charts

import (
	"errors"
	"fmt"

	"dashboard.aifa.mx/internal/data"
	"dashboard.aifa.mx/internal/models"
)

// ErrUnknownChart is returned by Build for an id no builder is registered under.
var ErrUnknownChart = errors.New("unknown chart")

// Source supplies the series that change between refreshes. *data.Store
// satisfies it.
type Source interface {
	Historical() models.HistoricalSeries
	Financial() models.FinancialSeries
	States() []models.StatePenetration
}

// Options carries per-request chart parameters.
type Options struct {
	// Region filters the world routes map by country.
	Region string
}

type builder func(src Source, opts Options) (Figure, error)

func static(f func(Source) Figure) builder {
	return func(src Source, _ Options) (Figure, error) {
		return f(src), nil
	}
}

// Chart ids as used by the page's chart containers.
const (
	ParticipationTrendID  = "participation-trend-chart"
	ProgressGaugeID       = "progress-gauge"
	AirportComparisonID   = "airport-comparison-chart"
	FinancialTrendID      = "financial-trend-chart"
	EBITDAMarginID        = "ebitda-margin-chart"
	WorldRoutesID         = "world-routes-map"
	MexicoPenetrationID   = "mexico-penetration-map"
	LoadFactorID          = "load-factor-chart"
	FrequencyPassengersID = "frequency-passengers-chart"
	CapacityUtilizationID = "capacity-utilization-chart"
	OperationsMixID       = "operations-mix-chart"
	SecurityIncidentsID   = "security-incidents-chart"
	QualitySatisfactionID = "quality-satisfaction-chart"
	ProductivityID        = "productivity-chart"
)

var registry = map[string]builder{
	ParticipationTrendID: static(func(src Source) Figure { return ParticipationTrend(src.Historical()) }),
	ProgressGaugeID:      static(func(Source) Figure { return PassengerGoalGauge() }),
	AirportComparisonID:  static(func(Source) Figure { return AirportComparison(data.AirportComparison()) }),
	FinancialTrendID:     static(func(src Source) Figure { return FinancialTrend(src.Financial()) }),
	EBITDAMarginID:       static(func(src Source) Figure { return EBITDAMargin(src.Financial()) }),
	WorldRoutesID: func(_ Source, opts Options) (Figure, error) {
		return WorldRoutes(data.Routes(), opts.Region)
	},
	MexicoPenetrationID:   static(func(src Source) Figure { return StatePenetrationChart(src.States()) }),
	LoadFactorID:          static(func(Source) Figure { return LoadFactorChart(data.Routes()) }),
	FrequencyPassengersID: static(func(Source) Figure { return FrequencyPassengers(data.Routes()) }),
	CapacityUtilizationID: static(func(Source) Figure { return CapacityUtilization(data.Capacity()) }),
	OperationsMixID:       static(func(Source) Figure { return OperationsMix(data.Operations()) }),
	SecurityIncidentsID: static(func(Source) Figure {
		return MetricAttainment(data.Security(), "Cumplimiento de meta (%)")
	}),
	QualitySatisfactionID: static(func(Source) Figure {
		return MetricAttainment(data.Quality(), "Cumplimiento de meta (%)")
	}),
	ProductivityID: static(func(Source) Figure {
		return MetricAttainment(data.Productivity(), "Cumplimiento de meta (%)")
	}),
}

// Known reports whether id names a chart.
func Known(id string) bool {
	_, ok := registry[id]
	return ok
}

// IDs lists every registered chart id in a stable order.
func IDs() []string {
	return []string{
		ParticipationTrendID, ProgressGaugeID, AirportComparisonID,
		FinancialTrendID, EBITDAMarginID,
		WorldRoutesID, MexicoPenetrationID, LoadFactorID, FrequencyPassengersID,
		CapacityUtilizationID, OperationsMixID,
		SecurityIncidentsID, QualitySatisfactionID, ProductivityID,
	}
}

// Build runs the builder registered under id.
func Build(id string, src Source, opts Options) (Figure, error) {
	build, ok := registry[id]
	if !ok {
		return Figure{}, fmt.Errorf("%w: %q", ErrUnknownChart, id)
	}
	return build(src, opts)
}
