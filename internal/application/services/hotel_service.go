package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/providers"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
	apperrors "github.com/hourstay/hourstay-backend/pkg/errors"
)

// HotelService handles business logic for hotels
type HotelService struct {
	repo     repositories.HotelRepository
	eventBus providers.EventBus
}

// NewHotelService creates a new hotel service
func NewHotelService(repo repositories.HotelRepository) *HotelService {
	return &HotelService{repo: repo}
}

// SetEventBus enables real-time update events for hotel changes
func (s *HotelService) SetEventBus(bus providers.EventBus) {
	s.eventBus = bus
}

// GetByID retrieves a hotel by ID
func (s *HotelService) GetByID(ctx context.Context, id string) (*entities.Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves hotels with their time slots
func (s *HotelService) List(ctx context.Context, filter repositories.HotelFilter) ([]*entities.Hotel, error) {
	return s.repo.List(ctx, filter)
}

// Create creates a new hotel
func (s *HotelService) Create(ctx context.Context, hotel *entities.Hotel) error {
	if hotel.Name == "" {
		return apperrors.NewValidationError("hotel name is required")
	}
	if hotel.ID == "" {
		hotel.ID = uuid.New().String()
	}
	now := time.Now()
	if hotel.CreatedAt.IsZero() {
		hotel.CreatedAt = now
	}
	hotel.UpdatedAt = now
	hotel.IsActive = true

	return s.repo.Create(ctx, hotel)
}

// Update updates a hotel and publishes an update event
func (s *HotelService) Update(ctx context.Context, hotel *entities.Hotel) error {
	if hotel.ID == "" {
		return apperrors.NewValidationError("hotel ID is required")
	}
	hotel.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, hotel); err != nil {
		return err
	}

	if s.eventBus != nil {
		event := &entities.HotelEvent{
			ID:        uuid.New().String(),
			HotelID:   hotel.ID,
			EventType: entities.HotelEventTypeHotelUpdate,
			Timestamp: time.Now(),
		}
		if err := s.eventBus.Publish(ctx, providers.EventChannelHotelUpdates, event); err != nil {
			log.Printf("Warning: failed to publish hotel update for %s: %v", hotel.ID, err)
		}
	}

	return nil
}

// Delete deletes a hotel
func (s *HotelService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
