// Package staticdata provides an in-memory data source seeded with a
// reference hotel set. It backs local development and demos where no
// Postgres instance is available, selected with DATA_SOURCE=static.
package staticdata

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
	apperrors "github.com/hourstay/hourstay-backend/pkg/errors"
)

// Store holds hotels, time slots and bookings in memory. It implements
// HotelRepository, TimeSlotRepository and BookingRepository.
type Store struct {
	mu       sync.RWMutex
	hotels   map[string]*entities.Hotel
	slots    map[string]*entities.TimeSlot
	bookings map[string]*entities.Booking
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		hotels:   make(map[string]*entities.Hotel),
		slots:    make(map[string]*entities.TimeSlot),
		bookings: make(map[string]*entities.Booking),
	}
}

// NewSeededStore creates a store preloaded with the reference hotels
func NewSeededStore() *Store {
	s := NewStore()
	for _, hotel := range SeedHotels() {
		h := hotel
		_ = s.Create(context.Background(), &h)
	}
	return s
}

// Create adds a hotel and its time slots
func (s *Store) Create(ctx context.Context, hotel *entities.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.hotels[hotel.ID]; exists {
		return apperrors.NewConflictError(fmt.Sprintf("hotel with id %s already exists", hotel.ID))
	}

	stored := cloneHotel(hotel)
	s.hotels[hotel.ID] = stored
	for i := range stored.TimeSlots {
		slot := stored.TimeSlots[i]
		slot.HotelID = hotel.ID
		s.slots[slot.ID] = &slot
	}
	return nil
}

// GetByID returns a hotel with its current time slots
func (s *Store) GetByID(ctx context.Context, id string) (*entities.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hotel, ok := s.hotels[id]
	if !ok || !hotel.IsActive {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("hotel with id %s not found", id))
	}
	return s.snapshotHotel(hotel), nil
}

// List returns hotels matching the filter, sorted by name
func (s *Store) List(ctx context.Context, filter repositories.HotelFilter) ([]*entities.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hotels []*entities.Hotel
	for _, hotel := range s.hotels {
		if filter.City != "" && !strings.EqualFold(hotel.Address.City, filter.City) {
			continue
		}
		if filter.IsActive != nil {
			if hotel.IsActive != *filter.IsActive {
				continue
			}
		} else if !hotel.IsActive {
			continue
		}
		hotels = append(hotels, s.snapshotHotel(hotel))
	}

	sort.Slice(hotels, func(i, j int) bool {
		return hotels[i].Name < hotels[j].Name
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(hotels) {
			return nil, nil
		}
		hotels = hotels[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(hotels) {
		hotels = hotels[:filter.Limit]
	}
	return hotels, nil
}

// Update replaces a hotel's fields, leaving its slots alone
func (s *Store) Update(ctx context.Context, hotel *entities.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.hotels[hotel.ID]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("hotel with id %s not found", hotel.ID))
	}

	updated := cloneHotel(hotel)
	updated.TimeSlots = existing.TimeSlots
	updated.UpdatedAt = time.Now()
	s.hotels[hotel.ID] = updated
	return nil
}

// Delete marks a hotel inactive
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hotel, ok := s.hotels[id]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("hotel with id %s not found", id))
	}
	hotel.IsActive = false
	hotel.UpdatedAt = time.Now()
	return nil
}

// GetSlotByID returns a time slot by ID
func (s *Store) GetSlotByID(ctx context.Context, id string) (*entities.TimeSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("time slot with id %s not found", id))
	}
	copied := *slot
	return &copied, nil
}

// ListSlotsByHotel returns all slots for a hotel ordered by start time
func (s *Store) ListSlotsByHotel(ctx context.Context, hotelID string) ([]entities.TimeSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slotsForHotel(hotelID), nil
}

// SetSlotAvailability flips a slot's availability flag
func (s *Store) SetSlotAvailability(ctx context.Context, id string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("time slot with id %s not found", id))
	}
	slot.Available = available
	return nil
}

// CreateBooking stores a booking
func (s *Store) CreateBooking(ctx context.Context, booking *entities.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bookings[booking.ID]; exists {
		return apperrors.NewConflictError(fmt.Sprintf("booking with id %s already exists", booking.ID))
	}
	copied := *booking
	s.bookings[booking.ID] = &copied
	return nil
}

// GetBookingByID returns a booking by ID
func (s *Store) GetBookingByID(ctx context.Context, id string) (*entities.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("booking with id %s not found", id))
	}
	copied := *booking
	return &copied, nil
}

// UpdateBookingStatus updates a booking's status
func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status entities.BookingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("booking with id %s not found", id))
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

// ListBookingsByEmail returns bookings for a guest email, newest first
func (s *Store) ListBookingsByEmail(ctx context.Context, email string, filter repositories.BookingFilter) ([]*entities.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []*entities.Booking
	for _, booking := range s.bookings {
		if !strings.EqualFold(booking.GuestEmail, email) {
			continue
		}
		if filter.Status != "" && booking.Status != filter.Status {
			continue
		}
		copied := *booking
		bookings = append(bookings, &copied)
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(bookings) {
			return nil, nil
		}
		bookings = bookings[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(bookings) {
		bookings = bookings[:filter.Limit]
	}
	return bookings, nil
}

// snapshotHotel copies a hotel together with the live state of its slots.
// Callers must hold at least the read lock.
func (s *Store) snapshotHotel(hotel *entities.Hotel) *entities.Hotel {
	copied := cloneHotel(hotel)
	copied.TimeSlots = s.slotsForHotel(hotel.ID)
	return copied
}

func (s *Store) slotsForHotel(hotelID string) []entities.TimeSlot {
	var slots []entities.TimeSlot
	for _, slot := range s.slots {
		if slot.HotelID == hotelID {
			slots = append(slots, *slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].StartTime == slots[j].StartTime {
			return slots[i].ID < slots[j].ID
		}
		return slots[i].StartTime < slots[j].StartTime
	})
	return slots
}

func cloneHotel(hotel *entities.Hotel) *entities.Hotel {
	copied := *hotel
	copied.Images = append([]string(nil), hotel.Images...)
	copied.Amenities = append([]string(nil), hotel.Amenities...)
	copied.TimeSlots = append([]entities.TimeSlot(nil), hotel.TimeSlots...)
	return &copied
}

// HotelRepo exposes the store as a HotelRepository
func (s *Store) HotelRepo() repositories.HotelRepository { return (*hotelRepo)(s) }

// SlotRepo exposes the store as a TimeSlotRepository
func (s *Store) SlotRepo() repositories.TimeSlotRepository { return (*slotRepo)(s) }

// BookingRepo exposes the store as a BookingRepository
func (s *Store) BookingRepo() repositories.BookingRepository { return (*bookingRepo)(s) }

type hotelRepo Store

func (r *hotelRepo) Create(ctx context.Context, hotel *entities.Hotel) error {
	return (*Store)(r).Create(ctx, hotel)
}
func (r *hotelRepo) GetByID(ctx context.Context, id string) (*entities.Hotel, error) {
	return (*Store)(r).GetByID(ctx, id)
}
func (r *hotelRepo) List(ctx context.Context, filter repositories.HotelFilter) ([]*entities.Hotel, error) {
	return (*Store)(r).List(ctx, filter)
}
func (r *hotelRepo) Update(ctx context.Context, hotel *entities.Hotel) error {
	return (*Store)(r).Update(ctx, hotel)
}
func (r *hotelRepo) Delete(ctx context.Context, id string) error {
	return (*Store)(r).Delete(ctx, id)
}

type slotRepo Store

func (r *slotRepo) GetByID(ctx context.Context, id string) (*entities.TimeSlot, error) {
	return (*Store)(r).GetSlotByID(ctx, id)
}
func (r *slotRepo) ListByHotel(ctx context.Context, hotelID string) ([]entities.TimeSlot, error) {
	return (*Store)(r).ListSlotsByHotel(ctx, hotelID)
}
func (r *slotRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	return (*Store)(r).SetSlotAvailability(ctx, id, available)
}

type bookingRepo Store

func (r *bookingRepo) Create(ctx context.Context, booking *entities.Booking) error {
	return (*Store)(r).CreateBooking(ctx, booking)
}
func (r *bookingRepo) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	return (*Store)(r).GetBookingByID(ctx, id)
}
func (r *bookingRepo) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) error {
	return (*Store)(r).UpdateBookingStatus(ctx, id, status)
}
func (r *bookingRepo) ListByEmail(ctx context.Context, email string, filter repositories.BookingFilter) ([]*entities.Booking, error) {
	return (*Store)(r).ListBookingsByEmail(ctx, email, filter)
}
