package repositories

import (
	"context"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
)

// HotelRepository defines the interface for hotel data operations.
// Implementations return hotels with their time slots populated, ordered
// by slot start time.
type HotelRepository interface {
	// Create creates a new hotel with its time slots
	Create(ctx context.Context, hotel *entities.Hotel) error

	// GetByID retrieves a hotel by ID
	GetByID(ctx context.Context, id string) (*entities.Hotel, error)

	// List retrieves hotels with filters
	List(ctx context.Context, filter HotelFilter) ([]*entities.Hotel, error)

	// Update updates a hotel
	Update(ctx context.Context, hotel *entities.Hotel) error

	// Delete deletes a hotel (soft delete)
	Delete(ctx context.Context, id string) error
}

// TimeSlotRepository defines the interface for time slot operations.
// Availability flips are a booking side effect; the matching engine never
// performs them.
type TimeSlotRepository interface {
	// GetByID retrieves a time slot by ID
	GetByID(ctx context.Context, id string) (*entities.TimeSlot, error)

	// ListByHotel retrieves the time slots of a hotel ordered by start time
	ListByHotel(ctx context.Context, hotelID string) ([]entities.TimeSlot, error)

	// SetAvailability flips a slot's availability flag
	SetAvailability(ctx context.Context, id string, available bool) error
}

// HotelFilter defines filters for listing hotels
type HotelFilter struct {
	City     string
	IsActive *bool
	Limit    int
	Offset   int
}
