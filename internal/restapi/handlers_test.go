package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listOf(t *testing.T, data interface{}) []interface{} {
	t.Helper()
	m, ok := data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, m["limitExceeded"])
	list, ok := m["list"].([]interface{})
	require.True(t, ok)
	return list
}

func entryOf(t *testing.T, data interface{}) map[string]interface{} {
	t.Helper()
	m, ok := data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := m["entry"].(map[string]interface{})
	require.True(t, ok)
	return entry
}

func TestListEndpoints(t *testing.T) {
	tests := []struct {
		endpoint string
		length   int
	}{
		{"/api/v1/kpis.json", 6},
		{"/api/v1/routes.json", 8},
		{"/api/v1/airports.json", 7},
		{"/api/v1/states.json", 16},
		{"/api/v1/capacity.json", 6},
		{"/api/v1/security.json", 6},
		{"/api/v1/quality.json", 6},
		{"/api/v1/productivity.json", 6},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			_, resp, model := serveAndRetrieveEndpoint(t, tt.endpoint+"?key=TEST")

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.Equal(t, 200, model.Code)
			assert.Equal(t, "OK", model.Text)
			assert.Equal(t, 2, model.Version)
			assert.Len(t, listOf(t, model.Data), tt.length)
		})
	}
}

func TestEndpointsRequireAPIKey(t *testing.T) {
	for _, endpoint := range []string{
		"/api/v1/kpis.json",
		"/api/v1/current-time.json?key=",
		"/api/v1/financial.json?key=WRONG",
		"/api/v1/route-geometry/Lima.json",
	} {
		t.Run(endpoint, func(t *testing.T) {
			_, resp, model := serveAndRetrieveEndpoint(t, endpoint)

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, http.StatusUnauthorized, model.Code)
			assert.Equal(t, "permission denied", model.Text)
			assert.Equal(t, 1, model.Version)
		})
	}
}

func TestKPIsEndpoint(t *testing.T) {
	_, _, model := serveAndRetrieveEndpoint(t, "/api/v1/kpis.json?key=TEST")
	list := listOf(t, model.Data)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "participation_passengers", first["key"])
	assert.InDelta(t, 12.8, first["current"], 1e-9)
	assert.InDelta(t, 15.0, first["target"], 1e-9)
	assert.Equal(t, "up", first["trend"])

	growth, ok := list[3].(map[string]interface{})
	require.True(t, ok)
	assert.Nil(t, growth["target"])
}

func TestHistoricalEndpoint(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/historical.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model.Data)
	assert.Len(t, entry["months"], 12)
	assert.Len(t, entry["passengers"], 12)
	assert.Equal(t, false, entry["simulated"])
	assert.NotZero(t, entry["generatedAt"])
}

func TestFinancialEndpoint(t *testing.T) {
	_, _, model := serveAndRetrieveEndpoint(t, "/api/v1/financial.json?key=TEST")
	entry := entryOf(t, model.Data)

	ebitda, ok := entry["ebitda"].([]interface{})
	require.True(t, ok)
	require.Len(t, ebitda, 12)
	assert.InDelta(t, 38.0, ebitda[0], 1e-9)

	margins, ok := entry["margins"].([]interface{})
	require.True(t, ok)
	assert.InDelta(t, 25.333, margins[0], 0.001)
	assert.Len(t, entry["summaries"], 3)
}

func TestOperationsEndpoint(t *testing.T) {
	_, _, model := serveAndRetrieveEndpoint(t, "/api/v1/operations.json?key=TEST")
	entry := entryOf(t, model.Data)
	assert.InDelta(t, 287, entry["dailyOperations"], 1e-9)
}

func TestCurrentTimeEndpoint(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/current-time.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model.Data)
	assert.NotEmpty(t, entry["readableTime"])
	assert.NotZero(t, entry["time"])
}

func TestRoutesEndpointCountryFilter(t *testing.T) {
	_, _, model := serveAndRetrieveEndpoint(t, "/api/v1/routes.json?key=TEST&country=USA")
	list := listOf(t, model.Data)
	require.Len(t, list, 3)

	route, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Los Angeles", route["city"])
	assert.Greater(t, route["distanceKm"], 2000.0)
}

func TestRoutesEndpointRejectsBadCountry(t *testing.T) {
	api := createTestApi(t)
	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/v1/routes.json?key=TEST&country=%3Cscript%3E")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouteGeometryEndpoint(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/route-geometry/Lima.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model.Data)
	assert.Equal(t, "Lima", entry["city"])
	assert.InDelta(t, 4276, entry["distanceKm"], 50)
	assert.Equal(t, "SE", entry["compass"])
	assert.NotEmpty(t, entry["polyline"])
}

func TestRouteGeometryEndpointAccentedCity(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/route-geometry/Canc%C3%BAn.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Cancún", entryOf(t, model.Data)["city"])
}

func TestRouteGeometryEndpointUnknownCity(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/route-geometry/Atlantis.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}
