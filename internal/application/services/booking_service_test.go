package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hourstay/hourstay-backend/internal/application/services"
	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
	apperrors "github.com/hourstay/hourstay-backend/pkg/errors"
)

// Mocks

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByEmail(ctx context.Context, email string, filter repositories.BookingFilter) ([]*entities.Booking, error) {
	args := m.Called(ctx, email, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Booking), args.Error(1)
}

type MockTimeSlotRepository struct {
	mock.Mock
}

func (m *MockTimeSlotRepository) GetByID(ctx context.Context, id string) (*entities.TimeSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TimeSlot), args.Error(1)
}

func (m *MockTimeSlotRepository) ListByHotel(ctx context.Context, hotelID string) ([]entities.TimeSlot, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TimeSlot), args.Error(1)
}

func (m *MockTimeSlotRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) Create(ctx context.Context, hotel *entities.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id string) (*entities.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Hotel), args.Error(1)
}

func (m *MockHotelRepository) List(ctx context.Context, filter repositories.HotelFilter) ([]*entities.Hotel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Hotel), args.Error(1)
}

func (m *MockHotelRepository) Update(ctx context.Context, hotel *entities.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Fixtures

func testHotel() *entities.Hotel {
	return &entities.Hotel{
		ID:           "hotel-1",
		Name:         "Hotel College Park",
		PricePerHour: 55,
		IsActive:     true,
	}
}

func testSlot() *entities.TimeSlot {
	return &entities.TimeSlot{
		ID:        "slot-1",
		HotelID:   "hotel-1",
		StartTime: "09:00",
		EndTime:   "12:00",
		Available: true,
		Price:     110,
	}
}

func validInput() entities.CreateBookingInput {
	return entities.CreateBookingInput{
		HotelID:     "hotel-1",
		TimeSlotID:  "slot-1",
		Guests:      2,
		GuestName:   "Ada Lovelace",
		GuestEmail:  "ada@example.com",
		GuestPhone:  "+1-301-555-0100",
		BookingDate: "2025-06-15",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockTimeSlotRepository)
	hotels := new(MockHotelRepository)

	hotels.On("GetByID", mock.Anything, "hotel-1").Return(testHotel(), nil)
	slots.On("GetByID", mock.Anything, "slot-1").Return(testSlot(), nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*entities.Booking")).Return(nil)
	slots.On("SetAvailability", mock.Anything, "slot-1", false).Return(nil)

	svc := services.NewBookingService(bookings, slots, hotels)
	booking, err := svc.CreateBooking(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, entities.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 110.0, booking.TotalPrice) // the slot's stored price
	assert.Equal(t, "slot-1", booking.TimeSlotID)

	bookings.AssertExpectations(t)
	slots.AssertExpectations(t)
	hotels.AssertExpectations(t)
}

func TestCreateBooking_RequiresGuestDetails(t *testing.T) {
	svc := services.NewBookingService(new(MockBookingRepository), new(MockTimeSlotRepository), new(MockHotelRepository))

	input := validInput()
	input.GuestName = ""
	_, err := svc.CreateBooking(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	input = validInput()
	input.GuestEmail = ""
	_, err = svc.CreateBooking(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestCreateBooking_SlotAlreadyTaken(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockTimeSlotRepository)
	hotels := new(MockHotelRepository)

	taken := testSlot()
	taken.Available = false

	hotels.On("GetByID", mock.Anything, "hotel-1").Return(testHotel(), nil)
	slots.On("GetByID", mock.Anything, "slot-1").Return(taken, nil)

	svc := services.NewBookingService(bookings, slots, hotels)
	_, err := svc.CreateBooking(context.Background(), validInput())

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_SlotBelongsToOtherHotel(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockTimeSlotRepository)
	hotels := new(MockHotelRepository)

	foreign := testSlot()
	foreign.HotelID = "hotel-2"

	hotels.On("GetByID", mock.Anything, "hotel-1").Return(testHotel(), nil)
	slots.On("GetByID", mock.Anything, "slot-1").Return(foreign, nil)

	svc := services.NewBookingService(bookings, slots, hotels)
	_, err := svc.CreateBooking(context.Background(), validInput())

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestCreateBooking_EnforcesMinimumStay(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockTimeSlotRepository)
	hotels := new(MockHotelRepository)

	short := testSlot()
	short.EndTime = "11:00" // two hours

	hotels.On("GetByID", mock.Anything, "hotel-1").Return(testHotel(), nil)
	slots.On("GetByID", mock.Anything, "slot-1").Return(short, nil)

	svc := services.NewBookingService(bookings, slots, hotels)
	_, err := svc.CreateBooking(context.Background(), validInput())

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_FlipFailureDoesNotRollBack(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockTimeSlotRepository)
	hotels := new(MockHotelRepository)

	hotels.On("GetByID", mock.Anything, "hotel-1").Return(testHotel(), nil)
	slots.On("GetByID", mock.Anything, "slot-1").Return(testSlot(), nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*entities.Booking")).Return(nil)
	slots.On("SetAvailability", mock.Anything, "slot-1", false).Return(apperrors.NewInternalError("db down", nil))

	svc := services.NewBookingService(bookings, slots, hotels)
	booking, err := svc.CreateBooking(context.Background(), validInput())

	// The booking stands even though the availability flip failed.
	require.NoError(t, err)
	assert.Equal(t, entities.BookingStatusConfirmed, booking.Status)
}

func TestCreateBooking_DefaultsGuestCount(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockTimeSlotRepository)
	hotels := new(MockHotelRepository)

	hotels.On("GetByID", mock.Anything, "hotel-1").Return(testHotel(), nil)
	slots.On("GetByID", mock.Anything, "slot-1").Return(testSlot(), nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*entities.Booking")).Return(nil)
	slots.On("SetAvailability", mock.Anything, "slot-1", false).Return(nil)

	input := validInput()
	input.Guests = 0

	svc := services.NewBookingService(bookings, slots, hotels)
	booking, err := svc.CreateBooking(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 1, booking.Guests)
}

func TestCancelBooking_ReleasesSlot(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockTimeSlotRepository)
	hotels := new(MockHotelRepository)

	confirmed := &entities.Booking{
		ID:         "booking-1",
		HotelID:    "hotel-1",
		TimeSlotID: "slot-1",
		Status:     entities.BookingStatusConfirmed,
	}

	bookings.On("GetByID", mock.Anything, "booking-1").Return(confirmed, nil)
	bookings.On("UpdateStatus", mock.Anything, "booking-1", entities.BookingStatusCancelled).Return(nil)
	slots.On("SetAvailability", mock.Anything, "slot-1", true).Return(nil)

	svc := services.NewBookingService(bookings, slots, hotels)
	err := svc.CancelBooking(context.Background(), "booking-1")

	require.NoError(t, err)
	bookings.AssertExpectations(t)
	slots.AssertExpectations(t)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockTimeSlotRepository)
	hotels := new(MockHotelRepository)

	cancelled := &entities.Booking{
		ID:         "booking-1",
		TimeSlotID: "slot-1",
		Status:     entities.BookingStatusCancelled,
	}
	bookings.On("GetByID", mock.Anything, "booking-1").Return(cancelled, nil)

	svc := services.NewBookingService(bookings, slots, hotels)
	err := svc.CancelBooking(context.Background(), "booking-1")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	slots.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
}

func TestListBookings_RequiresEmail(t *testing.T) {
	svc := services.NewBookingService(new(MockBookingRepository), new(MockTimeSlotRepository), new(MockHotelRepository))

	_, err := svc.ListBookings(context.Background(), "", repositories.BookingFilter{})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestListBookings(t *testing.T) {
	bookings := new(MockBookingRepository)

	expected := []*entities.Booking{{ID: "booking-1", GuestEmail: "ada@example.com"}}
	bookings.On("ListByEmail", mock.Anything, "ada@example.com", repositories.BookingFilter{}).Return(expected, nil)

	svc := services.NewBookingService(bookings, new(MockTimeSlotRepository), new(MockHotelRepository))
	got, err := svc.ListBookings(context.Background(), "ada@example.com", repositories.BookingFilter{})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
