package providers

import (
	"context"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// hotel update events.
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.HotelEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.HotelEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannelHotelUpdates is the channel carrying all hotel updates,
// including slot availability flips caused by bookings.
const EventChannelHotelUpdates = "hotel:updates"
