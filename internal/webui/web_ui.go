package webui

import (
	"dashboard.aifa.mx/internal/app"
	"dashboard.aifa.mx/internal/dashboard"
)

// pageTitle is the document title of every dashboard page.
const pageTitle = "AIFA - Centro de Operaciones"

// WebUI serves the browser dashboard.
type WebUI struct {
	*app.Application
	Dashboard *dashboard.Dashboard
}

func NewWebUI(application *app.Application, d *dashboard.Dashboard) *WebUI {
	return &WebUI{
		Application: application,
		Dashboard:   d,
	}
}
