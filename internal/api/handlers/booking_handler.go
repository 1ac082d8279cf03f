package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hourstay/hourstay-backend/internal/application/services"
	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
	"github.com/hourstay/hourstay-backend/internal/infrastructure/observability"
)

// BookingHandler handles booking requests
type BookingHandler struct {
	service *services.BookingService
	metrics *observability.Metrics
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service *services.BookingService, metrics *observability.Metrics) *BookingHandler {
	return &BookingHandler{
		service: service,
		metrics: metrics,
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, span := observability.StartSpan(r.Context(), "booking.create")
	defer span.End()

	var input entities.CreateBookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, err := h.service.CreateBooking(ctx, input)
	if err != nil {
		observability.RecordError(span, err)
		h.recordOutcome(r, "rejected")
		respondWithAppError(w, err)
		return
	}

	h.recordOutcome(r, "confirmed")
	respondWithJSON(w, http.StatusCreated, booking)
}

// CancelBooking handles POST /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, span := observability.StartSpan(r.Context(), "booking.cancel")
	defer span.End()

	bookingID := r.PathValue("id")
	if bookingID == "" {
		respondWithError(w, http.StatusBadRequest, "booking ID is required")
		return
	}

	if err := h.service.CancelBooking(ctx, bookingID); err != nil {
		observability.RecordError(span, err)
		respondWithAppError(w, err)
		return
	}

	h.recordOutcome(r, "cancelled")
	respondWithJSON(w, http.StatusOK, map[string]string{
		"id":     bookingID,
		"status": string(entities.BookingStatusCancelled),
	})
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondWithError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	filter := repositories.BookingFilter{
		Status: entities.BookingStatus(r.URL.Query().Get("status")),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 100 {
			filter.Limit = limit
		}
	}

	bookings, err := h.service.ListBookings(r.Context(), email, filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

func (h *BookingHandler) recordOutcome(r *http.Request, outcome string) {
	if h.metrics != nil {
		observability.RecordBookingMetric(r.Context(), h.metrics, outcome)
	}
}
