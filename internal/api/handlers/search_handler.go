package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hourstay/hourstay-backend/internal/application/services"
	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
	"github.com/hourstay/hourstay-backend/internal/infrastructure/observability"
)

// Search modes reported in responses and metrics
const (
	searchModeMatched  = "matched"
	searchModeFiltered = "filtered"
)

// SearchHandler handles hotel search requests. When the request carries a
// date and a full check-in/check-out window it runs the matcher; otherwise
// it falls back to a plain amenity and price filter.
type SearchHandler struct {
	matcher *services.MatchingService
	hotels  *services.HotelService
	metrics *observability.Metrics
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(matcher *services.MatchingService, hotels *services.HotelService, metrics *observability.Metrics) *SearchHandler {
	return &SearchHandler{
		matcher: matcher,
		hotels:  hotels,
		metrics: metrics,
	}
}

// SearchHotels handles GET /api/hotels/search
func (h *SearchHandler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	ctx, span := observability.StartSpan(r.Context(), "search.hotels")
	defer span.End()

	criteria := parseSearchCriteria(r)

	hotels, err := h.hotels.List(ctx, repositories.HotelFilter{})
	if err != nil {
		observability.RecordError(span, err)
		respondWithAppError(w, err)
		return
	}

	started := time.Now()

	prefs, err := h.matcher.BuildPreferences(criteria)
	if err != nil {
		// Incomplete time window: degrade to the traditional filter
		// instead of failing the search.
		filtered := h.matcher.TraditionalFilter(criteria, hotels)
		h.recordSearch(ctx, span, searchModeFiltered, len(filtered), time.Since(started))
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"mode":   searchModeFiltered,
			"hotels": filtered,
			"count":  len(filtered),
		})
		return
	}

	results := h.matcher.MatchHotels(prefs, hotels)
	results = services.FilterByAmenities(results, criteria.Amenities)

	h.recordSearch(ctx, span, searchModeMatched, len(results), time.Since(started))
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"mode":    searchModeMatched,
		"results": results,
		"count":   len(results),
	})
}

func (h *SearchHandler) recordSearch(ctx context.Context, span trace.Span, mode string, count int, elapsed time.Duration) {
	span.SetAttributes(
		attribute.String("search.mode", mode),
		attribute.Int("search.results", count),
	)
	if h.metrics != nil {
		observability.RecordSearchMetric(ctx, h.metrics, mode, count, elapsed)
	}
}

func parseSearchCriteria(r *http.Request) entities.SearchCriteria {
	q := r.URL.Query()

	criteria := entities.SearchCriteria{
		Date:      q.Get("date"),
		CheckIn:   q.Get("check_in"),
		CheckOut:  q.Get("check_out"),
		Guests:    1,
		BudgetMin: 0,
		BudgetMax: services.DefaultBudgetMax,
	}

	if guestsStr := q.Get("guests"); guestsStr != "" {
		if guests, err := strconv.Atoi(guestsStr); err == nil && guests > 0 {
			criteria.Guests = guests
		}
	}
	if minStr := q.Get("min_price"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil && min >= 0 {
			criteria.BudgetMin = min
		}
	}
	if maxStr := q.Get("max_price"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil && max > 0 {
			criteria.BudgetMax = max
		}
	}

	if amenities := q.Get("amenities"); amenities != "" {
		for _, amenity := range strings.Split(amenities, ",") {
			if trimmed := strings.TrimSpace(amenity); trimmed != "" {
				criteria.Amenities = append(criteria.Amenities, trimmed)
			}
		}
	}

	latStr, lngStr := q.Get("lat"), q.Get("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			criteria.TargetLocation = &entities.Location{Latitude: lat, Longitude: lng}
		}
	}

	if distStr := q.Get("max_distance_km"); distStr != "" {
		if dist, err := strconv.ParseFloat(distStr, 64); err == nil && dist > 0 {
			criteria.MaxDistanceKm = &dist
		}
	}

	return criteria
}
