package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hourstay/hourstay-backend/internal/application/services"
	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
)

// HotelHandler handles hotel-related HTTP requests
type HotelHandler struct {
	service *services.HotelService
}

// NewHotelHandler creates a new hotel handler
func NewHotelHandler(service *services.HotelService) *HotelHandler {
	return &HotelHandler{
		service: service,
	}
}

// GetHotel handles GET /api/hotels/{id}
func (h *HotelHandler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotelID := r.PathValue("id")
	if hotelID == "" {
		respondWithError(w, http.StatusBadRequest, "hotel ID is required")
		return
	}

	hotel, err := h.service.GetByID(r.Context(), hotelID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, hotel)
}

// ListHotels handles GET /api/hotels
func (h *HotelHandler) ListHotels(w http.ResponseWriter, r *http.Request) {
	filter := repositories.HotelFilter{
		City:   r.URL.Query().Get("city"),
		Limit:  30,
		Offset: 0,
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 100 {
			filter.Limit = limit
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			filter.Offset = offset
		}
	}

	hotels, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hotels": hotels,
		"count":  len(hotels),
	})
}

// CreateHotel handles POST /api/hotels
func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var hotel entities.Hotel
	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Create(r.Context(), &hotel); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, hotel)
}

// UpdateHotel handles PUT /api/hotels/{id}
func (h *HotelHandler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	hotelID := r.PathValue("id")
	if hotelID == "" {
		respondWithError(w, http.StatusBadRequest, "hotel ID is required")
		return
	}

	var hotel entities.Hotel
	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	hotel.ID = hotelID

	if err := h.service.Update(r.Context(), &hotel); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, hotel)
}

// DeleteHotel handles DELETE /api/hotels/{id}
func (h *HotelHandler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	hotelID := r.PathValue("id")
	if hotelID == "" {
		respondWithError(w, http.StatusBadRequest, "hotel ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), hotelID); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"id": hotelID, "status": "deleted"})
}
