package entities

import "time"

// SearchCriteria is the raw search form value supplied by the storefront.
// Date is a "2006-01-02" calendar date; CheckIn and CheckOut are "HH:MM"
// wall-clock times. All three must be present for slot matching; when any
// is missing the caller falls back to the traditional filter.
type SearchCriteria struct {
	Date           string    `json:"date"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	Guests         int       `json:"guests"`
	BudgetMin      float64   `json:"budget_min"`
	BudgetMax      float64   `json:"budget_max"`
	Amenities      []string  `json:"amenities"`
	TargetLocation *Location `json:"target_location,omitempty"`
	MaxDistanceKm  *float64  `json:"max_distance_km,omitempty"`
}

// UserPreferences is the validated, resolved form of SearchCriteria used by
// the matching engine. DesiredEnd is always strictly after DesiredStart;
// a check-out clock at or before check-in is resolved onto the next
// calendar day.
type UserPreferences struct {
	DesiredStart   time.Time
	DesiredEnd     time.Time
	TargetLocation Location
	BudgetMin      float64
	BudgetMax      float64
	MaxDistanceKm  *float64
	Guests         int
}

// MatchedSlot is the projection of the chosen sub-window within a slot:
// the possibly shifted start and end as "HH:MM", the slot's stored price,
// and a back-reference to the original slot.
type MatchedSlot struct {
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Price          float64 `json:"price"`
	OriginalSlotID string  `json:"original_slot_id"`
}

// MatchedResult is one ranked search hit. Hotels with no feasible slot
// under the current constraints produce no MatchedResult at all; they are
// dropped, not ranked last.
type MatchedResult struct {
	Hotel            *Hotel      `json:"hotel"`
	MatchedSlot      MatchedSlot `json:"matched_slot"`
	DistanceKm       float64     `json:"distance_km"`
	TimeShiftMinutes int         `json:"time_shift_minutes"`
	MatchScore       float64     `json:"match_score"`
}

// FilteredHotel is a traditional-filter hit: no slot matching, no score,
// just the hotel annotated with distance when a target location was given.
type FilteredHotel struct {
	Hotel      *Hotel   `json:"hotel"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
