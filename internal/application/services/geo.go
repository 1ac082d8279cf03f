package services

import (
	"math"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle (haversine) distance between two
// coordinates in kilometers. Inputs are trusted; non-finite coordinates
// propagate as NaN.
func DistanceKm(a, b entities.Location) float64 {
	dLat := degreesToRadians(b.Latitude - a.Latitude)
	dLon := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(a.Latitude))*math.Cos(degreesToRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
