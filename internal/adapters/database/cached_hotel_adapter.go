package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/providers"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
)

// Cache TTLs (in seconds)
const (
	hotelByIDTTL  = 300 // 5 minutes for a single hotel
	hotelsListTTL = 120 // 2 minutes for hotel lists
)

func hotelCacheKey(id string) string {
	return fmt.Sprintf("hotel:%s", id)
}

func hotelsListCacheKey(filter repositories.HotelFilter) string {
	active := "any"
	if filter.IsActive != nil {
		active = fmt.Sprintf("%t", *filter.IsActive)
	}
	return fmt.Sprintf("hotels:list:%s:%s:%d:%d", filter.City, active, filter.Limit, filter.Offset)
}

// CachedHotelAdapter wraps a HotelRepository with caching. Reads go
// through the cache; writes go to the underlying repository and drop the
// stale entries.
type CachedHotelAdapter struct {
	adapter repositories.HotelRepository
	cache   providers.CacheProvider
}

// NewCachedHotelAdapter creates a new cached hotel adapter
func NewCachedHotelAdapter(adapter repositories.HotelRepository, cache providers.CacheProvider) repositories.HotelRepository {
	return &CachedHotelAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Create creates a hotel and invalidates list caches
func (a *CachedHotelAdapter) Create(ctx context.Context, hotel *entities.Hotel) error {
	if err := a.adapter.Create(ctx, hotel); err != nil {
		return err
	}
	a.invalidateLists(ctx)
	return nil
}

// GetByID retrieves a hotel by ID with caching
func (a *CachedHotelAdapter) GetByID(ctx context.Context, id string) (*entities.Hotel, error) {
	cacheKey := hotelCacheKey(id)

	// Try to get from cache first
	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var hotel entities.Hotel
		if err := json.Unmarshal(cached, &hotel); err == nil {
			return &hotel, nil
		}
		log.Printf("Failed to unmarshal cached hotel %s: %v", id, err)
	}

	// Cache miss - fetch from database
	hotel, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(hotel); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, hotelByIDTTL); err != nil {
				log.Printf("Failed to cache hotel %s: %v", id, err)
			}
		}
	}()

	return hotel, nil
}

// List retrieves hotels with caching
func (a *CachedHotelAdapter) List(ctx context.Context, filter repositories.HotelFilter) ([]*entities.Hotel, error) {
	cacheKey := hotelsListCacheKey(filter)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var hotels []*entities.Hotel
		if err := json.Unmarshal(cached, &hotels); err == nil {
			return hotels, nil
		}
		log.Printf("Failed to unmarshal cached hotel list: %v", err)
	}

	hotels, err := a.adapter.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(hotels); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, hotelsListTTL); err != nil {
				log.Printf("Failed to cache hotel list: %v", err)
			}
		}
	}()

	return hotels, nil
}

// Update updates a hotel and invalidates its caches
func (a *CachedHotelAdapter) Update(ctx context.Context, hotel *entities.Hotel) error {
	if err := a.adapter.Update(ctx, hotel); err != nil {
		return err
	}
	if err := a.cache.Delete(ctx, hotelCacheKey(hotel.ID)); err != nil {
		log.Printf("Failed to invalidate cache for hotel %s: %v", hotel.ID, err)
	}
	a.invalidateLists(ctx)
	return nil
}

// Delete deletes a hotel and invalidates its caches
func (a *CachedHotelAdapter) Delete(ctx context.Context, id string) error {
	if err := a.adapter.Delete(ctx, id); err != nil {
		return err
	}
	if err := a.cache.Delete(ctx, hotelCacheKey(id)); err != nil {
		log.Printf("Failed to invalidate cache for hotel %s: %v", id, err)
	}
	a.invalidateLists(ctx)
	return nil
}

func (a *CachedHotelAdapter) invalidateLists(ctx context.Context) {
	if err := a.cache.DeletePattern(ctx, "hotels:list:*"); err != nil {
		log.Printf("Failed to invalidate hotel list caches: %v", err)
	}
}

// CachedTimeSlotAdapter wraps a TimeSlotRepository. Slot reads pass
// through; availability flips drop the owning hotel's cached entries so
// the matcher never sees a booked slot as open.
type CachedTimeSlotAdapter struct {
	adapter repositories.TimeSlotRepository
	cache   providers.CacheProvider
}

// NewCachedTimeSlotAdapter creates a new cached time slot adapter
func NewCachedTimeSlotAdapter(adapter repositories.TimeSlotRepository, cache providers.CacheProvider) repositories.TimeSlotRepository {
	return &CachedTimeSlotAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// GetByID retrieves a time slot by ID
func (a *CachedTimeSlotAdapter) GetByID(ctx context.Context, id string) (*entities.TimeSlot, error) {
	return a.adapter.GetByID(ctx, id)
}

// ListByHotel retrieves all time slots for a hotel
func (a *CachedTimeSlotAdapter) ListByHotel(ctx context.Context, hotelID string) ([]entities.TimeSlot, error) {
	return a.adapter.ListByHotel(ctx, hotelID)
}

// SetAvailability flips a slot and invalidates the owning hotel's caches
func (a *CachedTimeSlotAdapter) SetAvailability(ctx context.Context, id string, available bool) error {
	slot, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := a.adapter.SetAvailability(ctx, id, available); err != nil {
		return err
	}

	if err := a.cache.Delete(ctx, hotelCacheKey(slot.HotelID)); err != nil {
		log.Printf("Failed to invalidate cache for hotel %s: %v", slot.HotelID, err)
	}
	if err := a.cache.DeletePattern(ctx, "hotels:list:*"); err != nil {
		log.Printf("Failed to invalidate hotel list caches: %v", err)
	}

	return nil
}
