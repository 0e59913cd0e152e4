// Package routegeo computes great-circle geometry between the airport and
// its destinations.
package routegeo

import (
	"math"

	"github.com/skypies/geo"
	"github.com/twpayne/go-polyline"

	"dashboard.aifa.mx/internal/data"
	"dashboard.aifa.mx/internal/models"
	"dashboard.aifa.mx/internal/utils"
)

// DefaultSegments is the number of segments used to draw a route arc.
const DefaultSegments = 32

// Origin is the airport position.
func Origin() geo.Latlong {
	return geo.Latlong{Lat: data.AirportLat, Long: data.AirportLon}
}

// Destination is the position of a route's city.
func Destination(route models.Route) geo.Latlong {
	return geo.Latlong{Lat: route.Lat, Long: route.Lon}
}

// DistanceKM is the great-circle distance from the airport to the route's city.
func DistanceKM(route models.Route) float64 {
	return Origin().DistKM(Destination(route))
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// Path interpolates the great circle from a to b into segments+1 points,
// endpoints included.
func Path(a, b geo.Latlong, segments int) []geo.Latlong {
	if segments < 1 {
		segments = 1
	}

	lat1, lon1 := toRadians(a.Lat), toRadians(a.Long)
	lat2, lon2 := toRadians(b.Lat), toRadians(b.Long)

	// angular distance (haversine)
	dLat, dLon := lat2-lat1, lon2-lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	delta := 2 * math.Asin(math.Min(1, math.Sqrt(h)))

	points := make([]geo.Latlong, 0, segments+1)
	if delta == 0 {
		for i := 0; i <= segments; i++ {
			points = append(points, a)
		}
		return points
	}

	sinDelta := math.Sin(delta)
	for i := 0; i <= segments; i++ {
		f := float64(i) / float64(segments)
		ka := math.Sin((1-f)*delta) / sinDelta
		kb := math.Sin(f*delta) / sinDelta

		x := ka*math.Cos(lat1)*math.Cos(lon1) + kb*math.Cos(lat2)*math.Cos(lon2)
		y := ka*math.Cos(lat1)*math.Sin(lon1) + kb*math.Cos(lat2)*math.Sin(lon2)
		z := ka*math.Sin(lat1) + kb*math.Sin(lat2)

		points = append(points, geo.Latlong{
			Lat:  toDegrees(math.Atan2(z, math.Sqrt(x*x+y*y))),
			Long: toDegrees(math.Atan2(y, x)),
		})
	}
	return points
}

// RoutePath is the arc from the airport to the route's city.
func RoutePath(route models.Route, segments int) []geo.Latlong {
	return Path(Origin(), Destination(route), segments)
}

// Split returns the latitudes and longitudes of points as parallel slices.
func Split(points []geo.Latlong) (lats, lons []float64) {
	lats = make([]float64, len(points))
	lons = make([]float64, len(points))
	for i, p := range points {
		lats[i] = p.Lat
		lons[i] = p.Long
	}
	return lats, lons
}

// Encode renders points in the encoded polyline format.
func Encode(points []geo.Latlong) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lat, p.Long}
	}
	return string(polyline.EncodeCoords(coords))
}

// Geometry summarizes the arc to a destination.
func Geometry(route models.Route) models.RouteGeometry {
	points := RoutePath(route, DefaultSegments)
	bearing := Origin().BearingTowards(Destination(route))
	return models.RouteGeometry{
		City:       route.City,
		DistanceKM: math.Round(DistanceKM(route)*10) / 10,
		BearingDeg: math.Round(bearing*10) / 10,
		Compass:    utils.BearingToCompass(bearing),
		Polyline:   Encode(points),
		Points:     len(points),
	}
}
