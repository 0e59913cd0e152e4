package webui

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"dashboard.aifa.mx/internal/app"
	"dashboard.aifa.mx/internal/charts"
	"dashboard.aifa.mx/internal/dashboard"
	"dashboard.aifa.mx/internal/logging"
	"dashboard.aifa.mx/internal/models"
	"dashboard.aifa.mx/internal/utils"
)

//go:embed assets
var assetFS embed.FS

// queryParams reads and validates the tab and region query parameters.
func queryParams(r *http.Request) (tab, region string, fieldErrors map[string][]string) {
	query := r.URL.Query()
	tab = query.Get("tab")
	if tab == "" {
		tab = dashboard.DefaultTab
	}
	region = query.Get("region")

	fieldErrors = make(map[string][]string)
	if err := utils.ValidateID(tab); err != nil {
		fieldErrors["tab"] = append(fieldErrors["tab"], err.Error())
	}
	if err := utils.ValidatePlaceName(region); err != nil {
		fieldErrors["region"] = append(fieldErrors["region"], err.Error())
	}
	return tab, region, fieldErrors
}

// dashboardRequest collects what the tab router needs from r.
func (webUI *WebUI) dashboardRequest(r *http.Request, region string) dashboard.Request {
	req := dashboard.Request{
		Source: webUI.Store,
		Region: region,
	}
	if session, ok := webUI.session(r); ok {
		req.Authenticated = true
		req.Username = session.Username
	}
	return req
}

func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	tab, region, fieldErrors := queryParams(r)
	if len(fieldErrors) > 0 {
		webUI.badRequest(w, r, fieldErrors)
		return
	}
	webUI.writePage(w, r, http.StatusOK, tab, webUI.dashboardRequest(r, region))
}

// writePage renders the full document with tabID active. The page is
// buffered so a template failure still yields a clean 500.
func (webUI *WebUI) writePage(w http.ResponseWriter, r *http.Request, status int, tabID string, req dashboard.Request) {
	page := dashboard.Page{
		Title:      pageTitle,
		Accent:     app.DefaultTheme.Accent,
		Background: app.DefaultTheme.Background,
		Viewport:   app.DefaultTheme.Viewport,
		Active:     tabID,
		LiveTime:   models.FormatLiveTime(time.Now()),
		View:       webUI.Dashboard.Render(tabID, req),
	}

	var buf bytes.Buffer
	if err := webUI.Dashboard.WritePage(&buf, page); err != nil {
		webUI.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (webUI *WebUI) tabHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		webUI.badRequest(w, r, map[string][]string{"id": {err.Error()}})
		return
	}
	region := r.URL.Query().Get("region")
	if err := utils.ValidatePlaceName(region); err != nil {
		webUI.badRequest(w, r, map[string][]string{"region": {err.Error()}})
		return
	}

	view := webUI.Dashboard.Render(id, webUI.dashboardRequest(r, region))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(view.Content))
}

func (webUI *WebUI) chartHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		webUI.badRequest(w, r, map[string][]string{"id": {err.Error()}})
		return
	}
	region := r.URL.Query().Get("region")
	if err := utils.ValidatePlaceName(region); err != nil {
		webUI.badRequest(w, r, map[string][]string{"region": {err.Error()}})
		return
	}

	fig, err := webUI.Dashboard.Figure(id, webUI.Store, charts.Options{Region: region})
	if errors.Is(err, charts.ErrUnknownChart) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		webUI.serverError(w, r, err)
		return
	}

	webUI.writeJSON(w, r, fig)
}

func (webUI *WebUI) liveTimeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(models.FormatLiveTime(time.Now())))
}

type health struct {
	Status     string  `json:"status"`
	Simulated  bool    `json:"simulated"`
	Generation int     `json:"generation"`
	Uptime     float64 `json:"uptimeSeconds"`
}

func (webUI *WebUI) healthHandler(w http.ResponseWriter, r *http.Request) {
	webUI.writeJSON(w, r, health{
		Status:     "ok",
		Simulated:  webUI.Store.Simulated(),
		Generation: webUI.Store.Generation(),
		Uptime:     time.Since(webUI.StartedAt).Seconds(),
	})
}

func (webUI *WebUI) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.LogError(webUI.logger(r), "failed to encode response", err,
			slog.String("path", r.URL.Path))
	}
}

func (webUI *WebUI) badRequest(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{fieldErrors})
}

func (webUI *WebUI) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(webUI.logger(r), "request failed", err,
		slog.String("path", r.URL.Path))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// logger prefers the request scoped logger set by the logging middleware.
func (webUI *WebUI) logger(r *http.Request) *slog.Logger {
	if logger := logging.FromContext(r.Context()); logger != nil && logger != slog.Default() {
		return logger
	}
	if webUI.Logger != nil {
		return webUI.Logger
	}
	return slog.Default()
}
