package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/providers"
)

// CacheInvalidationService listens for hotel events and evicts the
// affected hotel's cache entries, so a freshly booked slot stops showing
// as available before its TTL would expire. List and search caches are
// left to expire naturally; their TTLs are short and evicting them on
// every booking would stampede the database.
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins listening for hotel events
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelHotelUpdates)
	if err != nil {
		return fmt.Errorf("failed to subscribe to hotel updates: %w", err)
	}

	go s.processEvents(eventChan)
	log.Println("Cache invalidation service started")
	return nil
}

// Stop stops the cache invalidation service
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	log.Println("Cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.HotelEvent) {
	for {
		select {
		case <-s.ctx.Done():
			return
		case event := <-eventChan:
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

func (s *CacheInvalidationService) handleEvent(event *entities.HotelEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.cache.Delete(ctx, fmt.Sprintf("hotel:%s", event.HotelID)); err != nil {
		log.Printf("Warning: failed to evict hotel %s from entity cache: %v", event.HotelID, err)
	}

	pattern := fmt.Sprintf("http:cache:*hotels/%s*", event.HotelID)
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		log.Printf("Warning: failed to evict hotel %s response cache: %v", event.HotelID, err)
	}
}
