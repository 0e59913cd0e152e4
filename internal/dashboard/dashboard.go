package dashboard

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"

	"dashboard.aifa.mx/internal/charts"
	"dashboard.aifa.mx/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// Request is what a tab needs from the incoming request.
type Request struct {
	Source charts.Source

	// Session state, consulted by the methodology tab only.
	Authenticated bool
	Username      string
	LoginError    string

	// Region filters the world routes map.
	Region string
}

// View is a rendered tab.
type View struct {
	TabID       string
	Title       string
	Placeholder bool
	Content     template.HTML
}

// Dashboard renders tabs and pages from the embedded templates.
type Dashboard struct {
	templates *template.Template
	logger    *slog.Logger
}

// New parses the embedded templates.
func New(logger *slog.Logger) (*Dashboard, error) {
	if logger == nil {
		logger = slog.Default()
	}
	templates, err := template.New("dashboard").Funcs(template.FuncMap{
		"pct": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard templates: %w", err)
	}
	return &Dashboard{templates: templates, logger: logger}, nil
}

// Render builds the content of tabID. Unknown ids, builder errors and panics
// all produce the placeholder view; the latter two are logged.
func (d *Dashboard) Render(tabID string, req Request) (view View) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logging.LogPanic(d.logger, "tab render panicked", recovered,
				slog.String("tab", tabID))
			view = d.placeholder(tabID)
		}
	}()

	name, content, err := d.route(tabID, req)
	if errors.Is(err, errUnknownTab) {
		return d.placeholder(tabID)
	}
	if err != nil {
		logging.LogError(d.logger, "failed to build tab", err, slog.String("tab", tabID))
		return d.placeholder(tabID)
	}

	html, err := d.execute(name, content)
	if err != nil {
		logging.LogError(d.logger, "failed to render tab", err, slog.String("tab", tabID))
		return d.placeholder(tabID)
	}
	return View{TabID: tabID, Title: TabLabel(tabID), Content: html}
}

type placeholderData struct {
	Title string
	Text  string
}

func (d *Dashboard) placeholder(tabID string) View {
	data := placeholderData{Title: PlaceholderTitle(tabID), Text: PlaceholderText}
	html, err := d.execute("placeholder", data)
	if err != nil {
		logging.LogError(d.logger, "failed to render placeholder", err, slog.String("tab", tabID))
		html = template.HTML("<h4>" + template.HTMLEscapeString(data.Title) + "</h4><p>" +
			template.HTMLEscapeString(data.Text) + "</p>")
	}
	return View{TabID: tabID, Title: data.Title, Placeholder: true, Content: html}
}

func (d *Dashboard) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := d.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Page is the full document around the active tab.
type Page struct {
	Title      string
	Accent     string
	Background string
	Viewport   string
	Tabs       []Tab
	Active     string
	LiveTime   string
	View       View
}

// WritePage renders the full document for view.
func (d *Dashboard) WritePage(w io.Writer, page Page) error {
	if page.Tabs == nil {
		page.Tabs = Tabs
	}
	return d.templates.ExecuteTemplate(w, "page", page)
}

// Figure builds chart id. A world map whose region filter fails is logged and
// replaced by the default world map; other errors are returned.
func (d *Dashboard) Figure(id string, src charts.Source, opts charts.Options) (charts.Figure, error) {
	fig, err := charts.Build(id, src, opts)
	if errors.Is(err, charts.ErrUnknownRegion) {
		logging.LogError(d.logger, "route map filter failed, showing default map", err,
			slog.String("chart", id), slog.String("region", opts.Region))
		return charts.DefaultWorldMap(), nil
	}
	return fig, err
}

// chartJSON embeds a figure into a <script type="application/json"> block.
func (d *Dashboard) chartJSON(id string, src charts.Source, opts charts.Options) (template.JS, error) {
	fig, err := d.Figure(id, src, opts)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(fig)
	if err != nil {
		return "", fmt.Errorf("encode chart %s: %w", id, err)
	}
	return template.JS(raw), nil
}
