package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/providers"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
	apperrors "github.com/hourstay/hourstay-backend/pkg/errors"
)

// BookingService handles the booking boundary: confirming a stay for a
// specific time slot and flipping the slot's availability. The matcher has
// no transactional relationship with it; a slot shown as available by a
// search may be gone by the time a booking is attempted, and the
// availability check here is what catches that.
type BookingService struct {
	bookings repositories.BookingRepository
	slots    repositories.TimeSlotRepository
	hotels   repositories.HotelRepository
	eventBus providers.EventBus
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookings repositories.BookingRepository,
	slots repositories.TimeSlotRepository,
	hotels repositories.HotelRepository,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		slots:    slots,
		hotels:   hotels,
	}
}

// SetEventBus enables slot availability events for cache invalidation
func (s *BookingService) SetEventBus(bus providers.EventBus) {
	s.eventBus = bus
}

// CreateBooking verifies the slot is still available, persists a confirmed
// booking priced at the slot's stored price, and marks the slot
// unavailable. A failed availability flip after the booking is committed
// is logged, not rolled back.
func (s *BookingService) CreateBooking(ctx context.Context, input entities.CreateBookingInput) (*entities.Booking, error) {
	if input.GuestName == "" || input.GuestEmail == "" {
		return nil, apperrors.NewValidationError("guest name and email are required")
	}
	if input.Guests <= 0 {
		input.Guests = 1
	}

	hotel, err := s.hotels.GetByID(ctx, input.HotelID)
	if err != nil {
		return nil, err
	}

	slot, err := s.slots.GetByID(ctx, input.TimeSlotID)
	if err != nil {
		return nil, err
	}
	if slot.HotelID != hotel.ID {
		return nil, apperrors.NewValidationError("time slot does not belong to the requested hotel")
	}
	if !slot.Available {
		return nil, apperrors.NewConflictError("time slot is no longer available")
	}

	start, end, err := resolveWindow(slot.StartTime, slot.EndTime, time.Now())
	if err != nil {
		return nil, apperrors.NewInternalError("time slot has malformed clock times", err)
	}
	if durationHours(start, end) < MinimumStayHours {
		return nil, apperrors.NewValidationError(fmt.Sprintf("stays must be at least %.0f hours", MinimumStayHours))
	}

	now := time.Now()
	booking := &entities.Booking{
		ID:          uuid.New().String(),
		HotelID:     hotel.ID,
		TimeSlotID:  slot.ID,
		GuestName:   input.GuestName,
		GuestEmail:  input.GuestEmail,
		GuestPhone:  input.GuestPhone,
		Guests:      input.Guests,
		TotalPrice:  slot.Price,
		BookingDate: input.BookingDate,
		Status:      entities.BookingStatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.slots.SetAvailability(ctx, slot.ID, false); err != nil {
		log.Printf("Warning: booking %s created but slot %s availability flip failed: %v", booking.ID, slot.ID, err)
	} else {
		s.publishSlotUpdate(ctx, hotel.ID, slot.ID, false)
	}

	return booking, nil
}

// CancelBooking flips the booking to cancelled and makes its slot
// available again.
func (s *BookingService) CancelBooking(ctx context.Context, id string) error {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status == entities.BookingStatusCancelled {
		return apperrors.NewConflictError("booking is already cancelled")
	}

	if err := s.bookings.UpdateStatus(ctx, id, entities.BookingStatusCancelled); err != nil {
		return err
	}

	if err := s.slots.SetAvailability(ctx, booking.TimeSlotID, true); err != nil {
		log.Printf("Warning: booking %s cancelled but slot %s availability flip failed: %v", booking.ID, booking.TimeSlotID, err)
	} else {
		s.publishSlotUpdate(ctx, booking.HotelID, booking.TimeSlotID, true)
	}

	return nil
}

// ListBookings retrieves bookings for a guest email, newest first
func (s *BookingService) ListBookings(ctx context.Context, email string, filter repositories.BookingFilter) ([]*entities.Booking, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("guest email is required")
	}
	return s.bookings.ListByEmail(ctx, email, filter)
}

func (s *BookingService) publishSlotUpdate(ctx context.Context, hotelID, slotID string, available bool) {
	if s.eventBus == nil {
		return
	}
	event := &entities.HotelEvent{
		ID:         uuid.New().String(),
		HotelID:    hotelID,
		TimeSlotID: slotID,
		EventType:  entities.HotelEventTypeSlotAvailabilityUpdate,
		Available:  &available,
		Timestamp:  time.Now(),
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelHotelUpdates, event); err != nil {
		log.Printf("Warning: failed to publish slot availability event for %s: %v", slotID, err)
	}
}
