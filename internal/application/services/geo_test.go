package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	p := entities.Location{Latitude: 38.9907, Longitude: -76.9361}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKm_Symmetry(t *testing.T) {
	a := entities.Location{Latitude: 38.9907, Longitude: -76.9361}
	b := entities.Location{Latitude: 38.9920, Longitude: -76.9340}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-12)
}

func TestDistanceKm_NeighboringHotels(t *testing.T) {
	collegePark := entities.Location{Latitude: 38.9907, Longitude: -76.9361}
	inn := entities.Location{Latitude: 38.9920, Longitude: -76.9340}

	d := DistanceKm(collegePark, inn)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 0.5)
}

func TestDistanceKm_CollegeParkToDowntownDC(t *testing.T) {
	collegePark := entities.Location{Latitude: 38.9907, Longitude: -76.9361}
	dc := entities.Location{Latitude: 38.9072, Longitude: -77.0369}

	assert.InDelta(t, 12.7, DistanceKm(collegePark, dc), 0.5)
}
