package routes

import (
	"net/http"

	"github.com/hourstay/hourstay-backend/internal/api/handlers"
	"github.com/hourstay/hourstay-backend/internal/api/middleware"
	"github.com/hourstay/hourstay-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	hotelHandler   *handlers.HotelHandler
	searchHandler  *handlers.SearchHandler
	bookingHandler *handlers.BookingHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	hotelHandler *handlers.HotelHandler,
	searchHandler *handlers.SearchHandler,
	bookingHandler *handlers.BookingHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		hotelHandler:    hotelHandler,
		searchHandler:   searchHandler,
		bookingHandler:  bookingHandler,
		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Hotel endpoints
	r.mux.HandleFunc("GET /api/hotels", r.hotelHandler.ListHotels)
	r.mux.HandleFunc("GET /api/hotels/search", r.searchHandler.SearchHotels)
	r.mux.HandleFunc("GET /api/hotels/{id}", r.hotelHandler.GetHotel)
	r.mux.HandleFunc("POST /api/hotels", r.hotelHandler.CreateHotel)
	r.mux.HandleFunc("PUT /api/hotels/{id}", r.hotelHandler.UpdateHotel)
	r.mux.HandleFunc("DELETE /api/hotels/{id}", r.hotelHandler.DeleteHotel)

	// Booking endpoints
	r.mux.HandleFunc("POST /api/bookings", r.bookingHandler.CreateBooking)
	r.mux.HandleFunc("GET /api/bookings", r.bookingHandler.ListBookings)
	r.mux.HandleFunc("POST /api/bookings/{id}/cancel", r.bookingHandler.CancelBooking)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	// HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
