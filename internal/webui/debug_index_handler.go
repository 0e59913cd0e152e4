package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"dashboard.aifa.mx/internal/data"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

var debugDataTypes = []string{
	"kpis", "historical", "routes", "airports", "financial", "states", "operations",
	"capacity", "security", "quality", "productivity", "methodology", "sessions",
}

func writeDebugData(w http.ResponseWriter, status int, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	dataStruct := debugData{
		Title:     title,
		Pre:       content,
		DataTypes: debugDataTypes,
	}

	if err := debugTemplate.Execute(w, dataStruct); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	if webUI.Config.IsProduction() {
		http.NotFound(w, r)
		return
	}

	dataType := r.URL.Query().Get("dataType")

	var dump interface{}
	var title string
	status := http.StatusOK

	switch dataType {
	case "kpis":
		dump = data.KPIs()
		title = "KPIs"
	case "historical":
		dump = webUI.Store.Historical()
		title = "Historical participation"
	case "routes":
		dump = data.Routes()
		title = "Routes"
	case "airports":
		dump = data.AirportComparison()
		title = "Airport comparison"
	case "financial":
		dump = webUI.Store.Financial()
		title = "Financial series"
	case "states":
		dump = webUI.Store.States()
		title = "State penetration"
	case "operations":
		dump = data.Operations()
		title = "Operations"
	case "capacity":
		dump = data.Capacity()
		title = "Capacity"
	case "security":
		dump = data.Security()
		title = "Security metrics"
	case "quality":
		dump = data.Quality()
		title = "Quality metrics"
	case "productivity":
		dump = data.Productivity()
		title = "Productivity metrics"
	case "methodology":
		title = "Methodology"
		// same gate as the methodology tab
		if _, ok := webUI.session(r); !ok {
			dump = map[string]string{"error": "Sign in through the methodology tab first."}
			status = http.StatusUnauthorized
			break
		}
		dump = data.Methodology()
	case "sessions":
		dump = map[string]int{
			"sessions": webUI.Sessions.Len(),
			"users":    webUI.Credentials.Len(),
		}
		title = "Sessions"
	default:
		dump = map[string]string{
			"error": "Please use one of the following: kpis, historical, routes, airports, financial, states, operations, capacity, security, quality, productivity, methodology, sessions.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, status, title, dump)
}
