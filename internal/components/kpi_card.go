// Package components turns dashboard records into view models for the
// page templates: KPI cards, chart cards, metric tables and destination items.
package components

import (
	"dashboard.aifa.mx/internal/charts"
	"dashboard.aifa.mx/internal/models"
)

// Progress bar colors, named after the bootstrap contextual classes.
const (
	ProgressInfo    = "info"
	ProgressWarning = "warning"
	ProgressDanger  = "danger"
)

// PeriodLabel is the comparison period printed under every KPI change.
const PeriodLabel = "vs mes anterior"

// KPICard is the rendered form of one indicator.
type KPICard struct {
	Title      string
	Icon       string
	Value      string
	Change     string
	Arrow      string
	TrendColor string
	Period     string

	// Progress block, only when the indicator has a target.
	HasTarget     bool
	Progress      float64
	ProgressColor string
	TargetLabel   string
}

// ProgressColor buckets progress towards a target.
func ProgressColor(progress float64) string {
	switch {
	case progress >= 90:
		return ProgressInfo
	case progress >= 70:
		return ProgressWarning
	default:
		return ProgressDanger
	}
}

// NewKPICard builds a card. target may be nil.
func NewKPICard(title string, value, change float64, icon string, target *float64) KPICard {
	card := KPICard{
		Title:      title,
		Icon:       icon,
		Value:      Percent(value),
		Change:     SignedPercent(change),
		Arrow:      charts.TrendArrow(change),
		TrendColor: charts.TrendColor(change),
		Period:     PeriodLabel,
	}
	if target == nil || *target == 0 {
		return card
	}
	card.HasTarget = true
	card.Progress = value / *target * 100
	card.ProgressColor = ProgressColor(card.Progress)
	card.TargetLabel = "Meta: " + Percent(*target)
	return card
}

// KPICardFor builds the card of a KPI record.
func KPICardFor(kpi models.KPI) KPICard {
	return NewKPICard(kpi.Title, kpi.Current, kpi.Change, kpi.Icon, kpi.Target)
}

// KPICards builds the cards of a KPI list in order.
func KPICards(kpis []models.KPI) []KPICard {
	cards := make([]KPICard, len(kpis))
	for i, k := range kpis {
		cards[i] = KPICardFor(k)
	}
	return cards
}

// ProgressWidth clamps progress to a CSS width percentage.
func (c KPICard) ProgressWidth() float64 {
	switch {
	case c.Progress < 0:
		return 0
	case c.Progress > 100:
		return 100
	default:
		return c.Progress
	}
}
