package dashboard

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.aifa.mx/internal/charts"
	"dashboard.aifa.mx/internal/data"
	"dashboard.aifa.mx/internal/models"
)

func newTestDashboard(t *testing.T) (*Dashboard, *bytes.Buffer) {
	var logs bytes.Buffer
	d, err := New(slog.New(slog.NewJSONHandler(&logs, nil)))
	require.NoError(t, err)
	return d, &logs
}

func literalStore() *data.Store {
	return data.NewStore(data.Config{Simulate: false}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type panickingSource struct{}

func (panickingSource) Historical() models.HistoricalSeries { panic("historical unavailable") }
func (panickingSource) Financial() models.FinancialSeries   { return data.Financial() }
func (panickingSource) States() []models.StatePenetration   { return data.StatePenetration() }

func TestRenderKnownTabsAreDistinct(t *testing.T) {
	d, _ := newTestDashboard(t)
	req := Request{Source: literalStore(), Authenticated: true, Username: "director"}

	seen := make(map[string]string)
	for _, tab := range Tabs {
		view := d.Render(tab.ID, req)
		assert.False(t, view.Placeholder, "tab %s", tab.ID)
		assert.NotEmpty(t, view.Content, "tab %s", tab.ID)
		assert.Equal(t, tab.Label, view.Title)

		content := string(view.Content)
		for other, previous := range seen {
			assert.NotEqual(t, previous, content, "tabs %s and %s rendered the same view", tab.ID, other)
		}
		seen[tab.ID] = content
	}
}

func TestRenderUnknownTabPlaceholder(t *testing.T) {
	d, logs := newTestDashboard(t)

	view := d.Render("network_health", Request{Source: literalStore()})
	assert.True(t, view.Placeholder)
	assert.Equal(t, "Módulo: Network Health", view.Title)
	assert.Contains(t, string(view.Content), "Módulo: Network Health")
	assert.Contains(t, string(view.Content), PlaceholderText)
	assert.Empty(t, logs.String())
}

func TestPlaceholderTitle(t *testing.T) {
	assert.Equal(t, "Módulo: Sustainability", PlaceholderTitle("sustainability"))
	assert.Equal(t, "Módulo: Air Cargo Hub", PlaceholderTitle("air_cargo_hub"))
	assert.Equal(t, "Módulo: Mixed Case", PlaceholderTitle("mIXED_case"))
}

func TestPlaceholderTitleConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				assert.Equal(t, "Módulo: Air Cargo Hub", PlaceholderTitle("air_cargo_hub"))
			}
		}()
	}
	wg.Wait()
}

func TestRenderUnknownTabsInParallel(t *testing.T) {
	d, _ := newTestDashboard(t)
	store := literalStore()

	for _, id := range []string{"fleet_status", "network_health", "sustainability", "air_cargo_hub"} {
		t.Run(id, func(t *testing.T) {
			t.Parallel()
			for i := 0; i < 50; i++ {
				view := d.Render(id, Request{Source: store})
				require.True(t, view.Placeholder)
				require.Equal(t, PlaceholderTitle(id), view.Title)
			}
		})
	}
}

func TestRenderRecoversFromPanic(t *testing.T) {
	d, logs := newTestDashboard(t)

	view := d.Render(TabStrategic, Request{Source: panickingSource{}})
	assert.True(t, view.Placeholder)
	assert.Equal(t, "Módulo: Strategic", view.Title)
	assert.Contains(t, logs.String(), "historical unavailable")
	assert.Contains(t, logs.String(), "stack")
}

func TestStrategicTabContent(t *testing.T) {
	d, _ := newTestDashboard(t)
	content := string(d.Render(TabStrategic, Request{Source: literalStore()}).Content)

	assert.Contains(t, content, "Participación Nacional Pasajeros")
	assert.Contains(t, content, "12.8%")
	assert.Contains(t, content, "+2.3%")
	assert.Contains(t, content, "Meta: 15.0%")
	assert.Contains(t, content, "vs mes anterior")
	assert.Contains(t, content, `data-figure="participation-trend-chart"`)
	assert.Contains(t, content, `data-figure="progress-gauge"`)
	assert.Contains(t, content, `data-figure="airport-comparison-chart"`)
	// Crecimiento vs Mercado has no target, five progress bars remain
	assert.Equal(t, 5, strings.Count(content, "kpi-progress"))
}

func TestMethodologyRequiresSession(t *testing.T) {
	d, _ := newTestDashboard(t)

	anonymous := string(d.Render(TabMethodology, Request{Source: literalStore(), LoginError: "Credenciales inválidas"}).Content)
	assert.Contains(t, anonymous, `action="/methodology/login"`)
	assert.Contains(t, anonymous, "Credenciales inválidas")
	assert.NotContains(t, anonymous, "Fórmula")

	signedIn := string(d.Render(TabMethodology, Request{Source: literalStore(), Authenticated: true, Username: "director"}).Content)
	assert.Contains(t, signedIn, "Fórmula")
	assert.Contains(t, signedIn, "director")
	assert.Contains(t, signedIn, `action="/methodology/logout"`)
}

func TestGeographicRegionFallback(t *testing.T) {
	d, logs := newTestDashboard(t)

	view := d.Render(TabGeographic, Request{Source: literalStore(), Region: "Atlantis"})
	assert.False(t, view.Placeholder)
	assert.Contains(t, logs.String(), "route map filter failed")
	assert.Contains(t, string(view.Content), "Cancún")
}

func TestFigureFallbacks(t *testing.T) {
	d, _ := newTestDashboard(t)

	fig, err := d.Figure(charts.WorldRoutesID, literalStore(), charts.Options{Region: "Atlantis"})
	require.NoError(t, err)
	assert.Equal(t, charts.DefaultWorldMap(), fig)

	_, err = d.Figure("nope", literalStore(), charts.Options{})
	assert.ErrorIs(t, err, charts.ErrUnknownChart)
}

func TestRegions(t *testing.T) {
	regions := Regions(data.Routes(), "México")
	require.Len(t, regions, 5)
	assert.Equal(t, "", regions[0].Value)
	assert.Equal(t, "USA", regions[1].Value)
	assert.True(t, regions[2].Selected)
}

func TestWritePage(t *testing.T) {
	d, _ := newTestDashboard(t)
	view := d.Render(TabFinancial, Request{Source: literalStore()})

	var buf bytes.Buffer
	err := d.WritePage(&buf, Page{
		Title:      "AIFA",
		Accent:     "#00d4ff",
		Background: "#0a0e27",
		Viewport:   "width=device-width, initial-scale=1.0",
		Active:     TabFinancial,
		LiveTime:   "19/10/2026 10:00:00",
		View:       view,
	})
	require.NoError(t, err)

	page := buf.String()
	assert.Contains(t, page, `content="width=device-width, initial-scale=1.0"`)
	assert.Contains(t, page, "$290M MXN")
	assert.Contains(t, page, "19/10/2026 10:00:00")
	for _, tab := range Tabs {
		assert.Contains(t, page, `data-tab="`+tab.ID+`"`)
	}
	assert.Contains(t, page, `nav-link active" href="/?tab=financial"`)
}

func TestKnownTab(t *testing.T) {
	assert.True(t, KnownTab(TabCapacity))
	assert.False(t, KnownTab("weather"))
	assert.Empty(t, TabLabel("weather"))
}
