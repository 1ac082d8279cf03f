package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	apperrors "github.com/hourstay/hourstay-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// MatchingService finds, for each candidate hotel, the single best
// available time slot for a desired window and ranks hotels by a composite
// score. It is a pure computation over an in-memory hotel snapshot: it
// holds no state, performs no I/O, and is safe to call concurrently.
type MatchingService struct{}

// NewMatchingService creates a new matching service
func NewMatchingService() *MatchingService {
	return &MatchingService{}
}

// BuildPreferences validates raw search criteria and resolves them into
// the preferences the matcher consumes. It returns a validation error when
// the date or either clock time is missing or malformed, so the caller
// takes the traditional-filter branch explicitly instead of matching on
// garbage.
func (s *MatchingService) BuildPreferences(criteria entities.SearchCriteria) (entities.UserPreferences, error) {
	if criteria.Date == "" || criteria.CheckIn == "" || criteria.CheckOut == "" {
		return entities.UserPreferences{}, apperrors.NewValidationError("date, check-in and check-out are required for slot matching")
	}

	date, err := time.ParseInLocation(dateLayout, criteria.Date, time.Local)
	if err != nil {
		return entities.UserPreferences{}, apperrors.NewValidationError(fmt.Sprintf("invalid date %q", criteria.Date))
	}

	start, end, err := resolveWindow(criteria.CheckIn, criteria.CheckOut, date)
	if err != nil {
		return entities.UserPreferences{}, apperrors.NewValidationError(err.Error())
	}

	target := DefaultTargetLocation
	if criteria.TargetLocation != nil {
		target = *criteria.TargetLocation
	}

	budgetMax := criteria.BudgetMax
	if budgetMax == 0 {
		budgetMax = DefaultBudgetMax
	}

	return entities.UserPreferences{
		DesiredStart:   start,
		DesiredEnd:     end,
		TargetLocation: target,
		BudgetMin:      criteria.BudgetMin,
		BudgetMax:      budgetMax,
		MaxDistanceKm:  criteria.MaxDistanceKm,
		Guests:         criteria.Guests,
	}, nil
}

// MatchHotels runs the primary search path: per-hotel distance and budget
// filters, slot-fit search over the hotel's available slots, composite
// scoring, and an ascending stable sort. Hotels with no feasible slot are
// dropped, never ranked last.
func (s *MatchingService) MatchHotels(prefs entities.UserPreferences, hotels []*entities.Hotel) []entities.MatchedResult {
	desiredHours := durationHours(prefs.DesiredStart, prefs.DesiredEnd)

	// Slot clocks and the desired window resolve against the same
	// reference date: midnight of the desired start's calendar day.
	baseDate := dayStart(prefs.DesiredStart)

	var results []entities.MatchedResult
	for _, hotel := range hotels {
		distance := DistanceKm(prefs.TargetLocation, hotel.Location)
		if prefs.MaxDistanceKm != nil && distance > *prefs.MaxDistanceKm {
			continue
		}

		// Coarse budget pre-filter on the flat hourly rate. The final
		// price is the winning slot's own stored price; the two
		// deliberately diverge and must not be unified.
		estimatedPrice := hotel.PricePerHour * desiredHours
		if estimatedPrice < prefs.BudgetMin || estimatedPrice > prefs.BudgetMax {
			continue
		}

		fit, slot, ok := bestSlotFit(hotel, prefs, baseDate)
		if !ok {
			continue
		}

		finalPrice := slot.Price
		priceDeviation := math.Abs(finalPrice - (prefs.BudgetMin+prefs.BudgetMax)/2)
		score := WeightTimeShift*fit.shiftMinutes +
			WeightDistance*(distance*DistanceScale) +
			WeightPrice*(priceDeviation/PriceScale)

		results = append(results, entities.MatchedResult{
			Hotel: hotel,
			MatchedSlot: entities.MatchedSlot{
				StartTime:      formatClock(fit.start),
				EndTime:        formatClock(fit.end),
				Price:          finalPrice,
				OriginalSlotID: slot.ID,
			},
			DistanceKm:       distance,
			TimeShiftMinutes: int(math.Round(fit.shiftMinutes)),
			MatchScore:       score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore < results[j].MatchScore
	})

	return results
}

// bestSlotFit runs the slot-fit search across a hotel's available slots
// and keeps the one with the smallest time shift. Slots with malformed
// clock strings never fit; the hotel simply loses that slot.
func bestSlotFit(hotel *entities.Hotel, prefs entities.UserPreferences, baseDate time.Time) (subWindow, *entities.TimeSlot, bool) {
	var best subWindow
	var bestSlot *entities.TimeSlot

	for i := range hotel.TimeSlots {
		slot := &hotel.TimeSlots[i]
		if !slot.Available {
			continue
		}

		slotStart, slotEnd, err := resolveWindow(slot.StartTime, slot.EndTime, baseDate)
		if err != nil {
			continue
		}

		fit, ok := findBestSubWindow(slotStart, slotEnd, prefs.DesiredStart, prefs.DesiredEnd)
		if !ok {
			continue
		}

		if bestSlot == nil || fit.shiftMinutes < best.shiftMinutes {
			best = fit
			bestSlot = slot
		}
	}

	return best, bestSlot, bestSlot != nil
}

// TraditionalFilter is the fallback path used when no full time window is
// given: keep hotels offering every requested amenity with a flat hourly
// rate inside the budget range, annotated with distance when a target
// location was supplied. Output keeps the input order; there is no score.
func (s *MatchingService) TraditionalFilter(criteria entities.SearchCriteria, hotels []*entities.Hotel) []entities.FilteredHotel {
	var out []entities.FilteredHotel
	for _, hotel := range hotels {
		if !hotel.HasAmenities(criteria.Amenities) {
			continue
		}
		if hotel.PricePerHour < criteria.BudgetMin || hotel.PricePerHour > criteria.BudgetMax {
			continue
		}

		fh := entities.FilteredHotel{Hotel: hotel}
		if criteria.TargetLocation != nil {
			d := DistanceKm(*criteria.TargetLocation, hotel.Location)
			fh.DistanceKm = &d
		}
		out = append(out, fh)
	}
	return out
}

// FilterByAmenities drops matched results whose hotel lacks a requested
// amenity. It runs after matching by contract: amenities never influence
// slot selection or scoring, only final inclusion.
func FilterByAmenities(results []entities.MatchedResult, amenities []string) []entities.MatchedResult {
	if len(amenities) == 0 {
		return results
	}
	var out []entities.MatchedResult
	for _, r := range results {
		if r.Hotel.HasAmenities(amenities) {
			out = append(out, r)
		}
	}
	return out
}
