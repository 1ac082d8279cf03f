package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourstay/hourstay-backend/internal/adapters/staticdata"
	"github.com/hourstay/hourstay-backend/internal/api/handlers"
	"github.com/hourstay/hourstay-backend/internal/api/routes"
	"github.com/hourstay/hourstay-backend/internal/application/services"
)

func newTestServer(t *testing.T) (http.Handler, *staticdata.Store) {
	t.Helper()

	store := staticdata.NewSeededStore()
	matcher := services.NewMatchingService()
	hotelService := services.NewHotelService(store.HotelRepo())
	bookingService := services.NewBookingService(store.BookingRepo(), store.SlotRepo(), store.HotelRepo())

	router := routes.NewRouter(
		handlers.NewHotelHandler(hotelService),
		handlers.NewSearchHandler(matcher, hotelService, nil),
		handlers.NewBookingHandler(bookingService, nil),
		nil,
		nil,
	)
	return router.SetupRoutes(), store
}

func doJSON(t *testing.T, handler http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestSearchHotels_MatchedMode(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/hotels/search?date=2025-06-15&check_in=09:00&check_out=12:00", nil)
	rec, body := doJSON(t, handler, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "matched", body["mode"])
	assert.Equal(t, float64(2), body["count"])

	results := body["results"].([]interface{})
	require.Len(t, results, 2)

	// College Park Inn's 09:00-12:00 slot is a perfect fit and ranks first.
	first := results[0].(map[string]interface{})
	assert.Equal(t, "college-park-inn", first["hotel"].(map[string]interface{})["id"])
	assert.Equal(t, float64(0), first["time_shift_minutes"])
}

func TestSearchHotels_FallsBackWithoutWindow(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/hotels/search?amenities=WiFi&max_price=60", nil)
	rec, body := doJSON(t, handler, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "filtered", body["mode"])
	assert.Equal(t, float64(2), body["count"])
}

func TestSearchHotels_AmenityPostFilter(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/hotels/search?date=2025-06-15&check_in=09:00&check_out=12:00&amenities=Gym", nil)
	rec, body := doJSON(t, handler, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "matched", body["mode"])
	assert.Equal(t, float64(1), body["count"])

	results := body["results"].([]interface{})
	first := results[0].(map[string]interface{})
	assert.Equal(t, "hotel-college-park", first["hotel"].(map[string]interface{})["id"])
}

func TestSearchHotels_BudgetFilter(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/hotels/search?date=2025-06-15&check_in=09:00&check_out=12:00&max_price=150", nil)
	rec, body := doJSON(t, handler, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])
}

func TestListHotels(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/hotels", nil)
	rec, body := doJSON(t, handler, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["count"])
}

func TestGetHotel(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/hotels/hotel-college-park", nil)
	rec, body := doJSON(t, handler, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hotel College Park", body["name"])
	assert.Len(t, body["time_slots"], 6)
}

func TestGetHotel_NotFound(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/hotels/no-such-hotel", nil)
	rec, _ := doJSON(t, handler, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
