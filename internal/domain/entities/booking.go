package entities

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking represents a confirmed stay for a specific time slot. The total
// price is always the slot's stored price, never recomputed from the
// hotel's hourly rate.
type Booking struct {
	ID          string        `json:"id" db:"id"`
	HotelID     string        `json:"hotel_id" db:"hotel_id"`
	TimeSlotID  string        `json:"time_slot_id" db:"time_slot_id"`
	GuestName   string        `json:"guest_name" db:"guest_name"`
	GuestEmail  string        `json:"guest_email" db:"guest_email"`
	GuestPhone  string        `json:"guest_phone,omitempty" db:"guest_phone"`
	Guests      int           `json:"guests" db:"guests"`
	TotalPrice  float64       `json:"total_price" db:"total_price"`
	BookingDate string        `json:"booking_date" db:"booking_date"`
	Status      BookingStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// CreateBookingInput carries everything the booking boundary needs to
// confirm a stay: the hotel, the chosen slot, and guest details.
type CreateBookingInput struct {
	HotelID     string `json:"hotel_id"`
	TimeSlotID  string `json:"time_slot_id"`
	Guests      int    `json:"guests"`
	GuestName   string `json:"guest_name"`
	GuestEmail  string `json:"guest_email"`
	GuestPhone  string `json:"guest_phone,omitempty"`
	BookingDate string `json:"booking_date"`
}
