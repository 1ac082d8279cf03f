package services

import (
	"time"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
)

// Matching policy. These are fixed storefront policy values, not per-call
// knobs; tests assert the exact numbers.
const (
	// ScanStep is the slot-fit scan granularity.
	ScanStep = 15 * time.Minute

	// Composite score weights. Lower score ranks higher.
	WeightTimeShift = 0.6
	WeightDistance  = 0.25
	WeightPrice     = 0.15

	// DistanceScale converts kilometers into score points.
	DistanceScale = 10.0

	// PriceScale divides the deviation from the budget midpoint.
	PriceScale = 10.0

	// MinimumStayHours is enforced at the booking-confirmation boundary,
	// never inside the matcher.
	MinimumStayHours = 3.0

	// DefaultBudgetMax caps the budget when the caller leaves it open.
	DefaultBudgetMax = 1000.0
)

// DefaultTargetLocation is downtown College Park, MD, used when a search
// carries no target coordinate.
var DefaultTargetLocation = entities.Location{Latitude: 38.9907, Longitude: -76.9361}
