package restapi

import (
	"net/http"
	"time"

	"dashboard.aifa.mx/internal/data"
	"dashboard.aifa.mx/internal/models"
)

func (api *RestAPI) kpisHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(data.KPIs()))
}

// historicalEntry is the participation series with the time it was generated.
type historicalEntry struct {
	models.HistoricalSeries
	GeneratedAt int64 `json:"generatedAt"`
	Simulated   bool  `json:"simulated"`
}

func (api *RestAPI) historicalHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := api.Store.Snapshot()
	entry := historicalEntry{
		HistoricalSeries: snapshot.Historical,
		GeneratedAt:      snapshot.GeneratedAt.UnixMilli(),
		Simulated:        api.Store.Simulated(),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}

func (api *RestAPI) airportsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(data.AirportComparison()))
}

// financialEntry adds the derived EBITDA columns to the monthly series.
type financialEntry struct {
	models.FinancialSeries
	EBITDA      []float64                 `json:"ebitda"`
	Margins     []float64                 `json:"margins"`
	Summaries   []models.FinancialSummary `json:"summaries"`
	GeneratedAt int64                     `json:"generatedAt"`
}

func newFinancialEntry(series models.FinancialSeries, generatedAt time.Time) financialEntry {
	ebitda := make([]float64, len(series.Revenue))
	for i := range series.Revenue {
		ebitda[i] = series.EBITDA(i)
	}
	return financialEntry{
		FinancialSeries: series,
		EBITDA:          ebitda,
		Margins:         series.Margins(),
		Summaries:       data.FinancialSummaries(),
		GeneratedAt:     generatedAt.UnixMilli(),
	}
}

func (api *RestAPI) financialHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := api.Store.Snapshot()
	api.sendResponse(w, r, models.NewEntryResponse(newFinancialEntry(snapshot.Financial, snapshot.GeneratedAt)))
}

func (api *RestAPI) statesHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(api.Store.States()))
}

func (api *RestAPI) operationsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(data.Operations()))
}

func (api *RestAPI) capacityHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(data.Capacity()))
}

func (api *RestAPI) securityHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(data.Security()))
}

func (api *RestAPI) qualityHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(data.Quality()))
}

func (api *RestAPI) productivityHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(data.Productivity()))
}
