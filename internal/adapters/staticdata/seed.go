package staticdata

import (
	"time"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
)

// SeedHotels returns the reference College Park hotel set. The same data
// drives the database seed script, the static store and the service
// tests, so fixtures and the demo environment always agree.
func SeedHotels() []entities.Hotel {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	return []entities.Hotel{
		{
			ID:   "hotel-college-park",
			Name: "Hotel College Park",
			Address: entities.Address{
				Street:  "7777 Baltimore Ave",
				City:    "College Park",
				State:   "MD",
				ZipCode: "20740",
			},
			Location: entities.Location{
				Latitude:  38.9907,
				Longitude: -76.9361,
			},
			Description: "Modern hotel in the heart of College Park with flexible hourly stays, minutes from the University of Maryland campus.",
			Images: []string{
				"https://images.hourstay.io/hotel-college-park/exterior.jpg",
				"https://images.hourstay.io/hotel-college-park/room.jpg",
			},
			Amenities:    []string{"WiFi", "Parking", "Air Conditioning", "Room Service", "Gym", "Business Center"},
			Rating:       4.6,
			ReviewCount:  342,
			PricePerHour: 55,
			TimeSlots: []entities.TimeSlot{
				{ID: "hcp-slot-1", StartTime: "08:00", EndTime: "11:00", Available: true, Price: 110},
				{ID: "hcp-slot-2", StartTime: "11:00", EndTime: "14:00", Available: true, Price: 220},
				{ID: "hcp-slot-3", StartTime: "14:00", EndTime: "17:00", Available: true, Price: 165},
				{ID: "hcp-slot-4", StartTime: "17:00", EndTime: "20:00", Available: false, Price: 275},
				{ID: "hcp-slot-5", StartTime: "20:00", EndTime: "23:00", Available: true, Price: 110},
				{ID: "hcp-slot-6", StartTime: "23:00", EndTime: "02:00", Available: true, Price: 82.5},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:   "college-park-inn",
			Name: "College Park Inn",
			Address: entities.Address{
				Street:  "9020 Baltimore Ave",
				City:    "College Park",
				State:   "MD",
				ZipCode: "20740",
			},
			Location: entities.Location{
				Latitude:  38.9920,
				Longitude: -76.9340,
			},
			Description: "Cozy boutique inn offering hourly rooms with complimentary breakfast and quick access to Route 1.",
			Images: []string{
				"https://images.hourstay.io/college-park-inn/exterior.jpg",
				"https://images.hourstay.io/college-park-inn/lobby.jpg",
			},
			Amenities:    []string{"WiFi", "Parking", "Air Conditioning", "Breakfast", "Pet Friendly"},
			Rating:       4.4,
			ReviewCount:  278,
			PricePerHour: 48,
			TimeSlots: []entities.TimeSlot{
				{ID: "cpi-slot-1", StartTime: "09:00", EndTime: "12:00", Available: true, Price: 96},
				{ID: "cpi-slot-2", StartTime: "12:00", EndTime: "15:00", Available: true, Price: 192},
				{ID: "cpi-slot-3", StartTime: "15:00", EndTime: "18:00", Available: true, Price: 144},
				{ID: "cpi-slot-4", StartTime: "18:00", EndTime: "21:00", Available: true, Price: 240},
				{ID: "cpi-slot-5", StartTime: "21:00", EndTime: "24:00", Available: false, Price: 96},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
