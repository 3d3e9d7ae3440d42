// Package geo provides coordinate validation, great-circle distance and zone lookup.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used by CalculateDistance.
const EarthRadiusKm = 6371.0

// IsValidCoordinate checks if a coordinate is finite and within Earth bounds.
func IsValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) ||
		math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 &&
		lng >= -180 && lng <= 180
}

// CalculateDistance returns the Haversine great-circle distance in kilometers.
// It returns NaN when either point is invalid.
func CalculateDistance(lat1, lng1, lat2, lng2 float64) float64 {
	if !IsValidCoordinate(lat1, lng1) || !IsValidCoordinate(lat2, lng2) {
		return math.NaN()
	}

	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// DistanceMeters is CalculateDistance in meters.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	return CalculateDistance(lat1, lng1, lat2, lng2) * 1000
}

// FormatCoordinates renders a coordinate pair with six decimals.
func FormatCoordinates(lat, lng float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lng)
}

// Zone is a named area represented by its centre point.
type Zone struct {
	Name   string
	Center orb.Point // [lng, lat]
}

// FindZone returns the zone whose centre is nearest to point, if that centre lies
// within maxKm. Zones with invalid centres are ignored.
func FindZone(point orb.Point, zones []Zone, maxKm float64) (Zone, bool) {
	if !IsValidCoordinate(point.Lat(), point.Lon()) {
		return Zone{}, false
	}

	var (
		best     Zone
		bestDist = math.Inf(1)
	)
	for _, zone := range zones {
		d := CalculateDistance(point.Lat(), point.Lon(), zone.Center.Lat(), zone.Center.Lon())
		if math.IsNaN(d) || d > maxKm {
			continue
		}
		if d < bestDist {
			best = zone
			bestDist = d
		}
	}

	return best, !math.IsInf(bestDist, 1)
}
