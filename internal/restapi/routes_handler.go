package restapi

import (
	"net/http"

	"dashboard.aifa.mx/internal/data"
	"dashboard.aifa.mx/internal/models"
	"dashboard.aifa.mx/internal/routegeo"
	"dashboard.aifa.mx/internal/utils"
)

// routeEntry is a destination with its great-circle distance.
type routeEntry struct {
	models.Route
	DistanceKM float64 `json:"distanceKm"`
}

func (api *RestAPI) routesHandler(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	if err := utils.ValidatePlaceName(country); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"country": {err.Error()},
		})
		return
	}

	routes := data.Routes()
	list := make([]routeEntry, 0, len(routes))
	for _, route := range routes {
		if country != "" && route.Country != country {
			continue
		}
		list = append(list, routeEntry{
			Route:      route,
			DistanceKM: routegeo.Geometry(route).DistanceKM,
		})
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}

func (api *RestAPI) routeGeometryHandler(w http.ResponseWriter, r *http.Request) {
	city := utils.ExtractIDFromParams(r, "city")

	if city == "" {
		api.validationErrorResponse(w, r, map[string][]string{
			"city": {"city cannot be empty"},
		})
		return
	}
	if err := utils.ValidatePlaceName(city); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"city": {err.Error()},
		})
		return
	}

	route, ok := data.RouteByCity(city)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(routegeo.Geometry(route)))
}
