package entities

import "time"

// Hotel represents a bookable hotel in the system. Hotels are reference
// data: the matching engine reads them but never mutates them.
type Hotel struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Address      Address    `json:"address" db:"-"`
	Location     Location   `json:"location" db:"-"`
	Description  string     `json:"description" db:"description"`
	Images       []string   `json:"images" db:"-"`
	Amenities    []string   `json:"amenities" db:"-"`
	Rating       float64    `json:"rating" db:"rating"`
	ReviewCount  int        `json:"review_count" db:"review_count"`
	PricePerHour float64    `json:"price_per_hour" db:"price_per_hour"`
	TimeSlots    []TimeSlot `json:"time_slots" db:"-"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// HasAmenities reports whether the hotel offers every requested amenity.
func (h *Hotel) HasAmenities(required []string) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(h.Amenities))
	for _, a := range h.Amenities {
		have[a] = struct{}{}
	}
	for _, r := range required {
		if _, ok := have[r]; !ok {
			return false
		}
	}
	return true
}

// TimeSlot is a hotel-defined bookable window with its own price and
// availability flag. Start and end are wall-clock "HH:MM" values; an end
// numerically at or before the start means the window crosses midnight.
// Each slot carries an absolute price because demand varies by time of day;
// the price is not derived from the hotel's hourly rate.
type TimeSlot struct {
	ID        string  `json:"id" db:"id"`
	HotelID   string  `json:"hotel_id" db:"hotel_id"`
	StartTime string  `json:"start_time" db:"start_time"`
	EndTime   string  `json:"end_time" db:"end_time"`
	Available bool    `json:"available" db:"available"`
	Price     float64 `json:"price" db:"price"`
}

// Address represents a physical address
type Address struct {
	Street  string `json:"street" db:"street"`
	City    string `json:"city" db:"city"`
	State   string `json:"state" db:"state"`
	ZipCode string `json:"zip_code" db:"zip_code"`
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}
