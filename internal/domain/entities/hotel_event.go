package entities

import "time"

// HotelEventType represents the type of hotel event
type HotelEventType string

const (
	HotelEventTypeSlotAvailabilityUpdate HotelEventType = "slot_availability_update"
	HotelEventTypeHotelUpdate            HotelEventType = "hotel_update"
)

// HotelEvent represents a real-time update event for a hotel, published
// when a booking flips a slot's availability.
type HotelEvent struct {
	ID         string         `json:"id"`
	HotelID    string         `json:"hotel_id"`
	TimeSlotID string         `json:"time_slot_id,omitempty"`
	EventType  HotelEventType `json:"event_type"`
	Available  *bool          `json:"available,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}
