package repositories

import (
	"context"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	// Create creates a new booking
	Create(ctx context.Context, booking *entities.Booking) error

	// GetByID retrieves a booking by ID
	GetByID(ctx context.Context, id string) (*entities.Booking, error)

	// UpdateStatus updates a booking's status
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) error

	// ListByEmail retrieves bookings for a guest email, newest first
	ListByEmail(ctx context.Context, email string, filter BookingFilter) ([]*entities.Booking, error)
}

// BookingFilter defines filters for listing bookings
type BookingFilter struct {
	Status entities.BookingStatus
	Limit  int
	Offset int
}
