package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) limited(finalHandler handlerFunc) http.Handler {
	handler := validateAPIKey(api, finalHandler)
	if api.rateLimiter == nil {
		return handler
	}
	return api.rateLimiter(handler)
}

// SetRoutes registers the JSON API under /api/v1.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/v1/current-time.json", api.limited(api.currentTimeHandler))
	router.Handler(http.MethodGet, "/api/v1/kpis.json", api.limited(api.kpisHandler))
	router.Handler(http.MethodGet, "/api/v1/historical.json", api.limited(api.historicalHandler))
	router.Handler(http.MethodGet, "/api/v1/routes.json", api.limited(api.routesHandler))
	router.Handler(http.MethodGet, "/api/v1/route-geometry/:city", api.limited(api.routeGeometryHandler))
	router.Handler(http.MethodGet, "/api/v1/airports.json", api.limited(api.airportsHandler))
	router.Handler(http.MethodGet, "/api/v1/financial.json", api.limited(api.financialHandler))
	router.Handler(http.MethodGet, "/api/v1/states.json", api.limited(api.statesHandler))
	router.Handler(http.MethodGet, "/api/v1/operations.json", api.limited(api.operationsHandler))
	router.Handler(http.MethodGet, "/api/v1/capacity.json", api.limited(api.capacityHandler))
	router.Handler(http.MethodGet, "/api/v1/security.json", api.limited(api.securityHandler))
	router.Handler(http.MethodGet, "/api/v1/quality.json", api.limited(api.qualityHandler))
	router.Handler(http.MethodGet, "/api/v1/productivity.json", api.limited(api.productivityHandler))
}
