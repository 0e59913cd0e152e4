package utils

import "math"

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SO", "O", "NO"}

// BearingToCompass converts a bearing in degrees to an 8-point compass
// direction with Spanish abbreviations (O for oeste).
func BearingToCompass(bearing float64) string {
	bearing = math.Mod(bearing, 360)
	if bearing < 0 {
		bearing += 360
	}
	index := int((bearing+22.5)/45.0) % 8
	return compassPoints[index]
}
