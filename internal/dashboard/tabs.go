// Package dashboard maps the active tab to its rendered content and lays out
// the full page around it.
package dashboard

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tab ids, in navigation order.
const (
	TabStrategic    = "strategic"
	TabGeographic   = "geographic"
	TabFinancial    = "financial"
	TabCapacity     = "capacity"
	TabSecurity     = "security"
	TabQuality      = "quality"
	TabProductivity = "productivity"
	TabMethodology  = "methodology"

	DefaultTab = TabStrategic
)

// Tab is one entry of the navigation bar.
type Tab struct {
	ID    string
	Label string
}

// Tabs lists the navigation bar.
var Tabs = []Tab{
	{ID: TabStrategic, Label: "KPIs Estratégicos"},
	{ID: TabGeographic, Label: "Análisis Geográfico"},
	{ID: TabFinancial, Label: "Análisis Financiero"},
	{ID: TabCapacity, Label: "Capacidad Operativa"},
	{ID: TabSecurity, Label: "Seguridad"},
	{ID: TabQuality, Label: "Calidad de Servicio"},
	{ID: TabProductivity, Label: "Productividad"},
	{ID: TabMethodology, Label: "Metodología"},
}

// KnownTab reports whether id is in the navigation bar.
func KnownTab(id string) bool {
	for _, t := range Tabs {
		if t.ID == id {
			return true
		}
	}
	return false
}

// TabLabel returns the navigation label of id, or "" for an unknown tab.
func TabLabel(id string) string {
	for _, t := range Tabs {
		if t.ID == id {
			return t.Label
		}
	}
	return ""
}

// PlaceholderTitle is the heading shown for a tab that has no content yet:
// "Módulo: " and the id in title case with underscores as spaces.
func PlaceholderTitle(id string) string {
	// A Caser is stateful and cannot be shared between requests.
	caser := cases.Title(language.Spanish)
	return "Módulo: " + caser.String(strings.ReplaceAll(id, "_", " "))
}

// PlaceholderText is the line under the placeholder heading.
const PlaceholderText = "En desarrollo - Framework implementado"
