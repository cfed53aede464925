// Package geo holds distance helpers and the user's last known coordinate.
package geo

import (
	"fmt"
	"math"

	"apna/models"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the haversine great-circle distance between two points.
func DistanceKm(from, to models.LatLng) float64 {
	dLat := toRadians(to.Lat - from.Lat)
	dLon := toRadians(to.Lng - from.Lng)
	lat1 := toRadians(from.Lat)
	lat2 := toRadians(to.Lat)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// FormatDistance renders km with one decimal, e.g. "3.2 km".
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
