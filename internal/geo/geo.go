// Package geo provides pure distance and travel-time calculations.
package geo

import (
	"fmt"
	"math"

	"github.com/nearest-throne/service-restroom/internal/domain/restroom"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371.0

const (
	walkingSpeedKmh = 5.0
	drivingSpeedKmh = 30.0
)

// DistanceKm returns the great-circle distance between two points in
// kilometers, rounded to 2 decimal places. Symmetric in its arguments.
func DistanceKm(a, b restroom.Position) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*100) / 100
}

// WalkingEstimate renders the walking time for a distance in kilometers,
// e.g. "12 min walk" or "1h 15m walk". Returns "" when distance is absent.
func WalkingEstimate(distanceKm *float64) string {
	return travelEstimate(distanceKm, walkingSpeedKmh, "walk")
}

// DrivingEstimate renders the driving time for a distance in kilometers,
// e.g. "4 min drive" or "1h 5m drive". Returns "" when distance is absent.
func DrivingEstimate(distanceKm *float64) string {
	return travelEstimate(distanceKm, drivingSpeedKmh, "drive")
}

func travelEstimate(distanceKm *float64, speedKmh float64, mode string) string {
	if distanceKm == nil {
		return ""
	}
	minutes := int(math.Round(*distanceKm / speedKmh * 60))
	if minutes < 60 {
		return fmt.Sprintf("%d min %s", minutes, mode)
	}
	return fmt.Sprintf("%dh %dm %s", minutes/60, minutes%60, mode)
}

// FormatDistance renders a distance as meters below 1 km ("850m") and as
// one-decimal kilometers otherwise ("2.4km"). Returns "" when absent.
func FormatDistance(distanceKm *float64) string {
	if distanceKm == nil {
		return ""
	}
	if *distanceKm < 1 {
		return fmt.Sprintf("%dm", int(math.Round(*distanceKm*1000)))
	}
	return fmt.Sprintf("%.1fkm", *distanceKm)
}
