package models

// Route is a destination served from the airport.
type Route struct {
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Passengers int     `json:"passengers"`
	LoadFactor float64 `json:"loadFactor"`
	Frequency  int     `json:"frequency"`
}

// DisplayName is "City, Country" as shown on the destination cards.
func (r Route) DisplayName() string {
	if r.Country == "" {
		return r.City
	}
	return r.City + ", " + r.Country
}

// RouteGeometry is the great-circle path between the airport and a destination.
type RouteGeometry struct {
	City       string  `json:"city"`
	DistanceKM float64 `json:"distanceKm"`
	BearingDeg float64 `json:"bearingDeg"`
	Compass    string  `json:"compass"`
	Polyline   string  `json:"polyline"`
	Points     int     `json:"points"`
}
