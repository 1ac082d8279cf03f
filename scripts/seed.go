package main

import (
	"context"
	"log"
	"os"

	"github.com/hourstay/hourstay-backend/internal/adapters/database"
	"github.com/hourstay/hourstay-backend/internal/adapters/staticdata"
	"github.com/hourstay/hourstay-backend/internal/infrastructure/clients/postgres"
	"github.com/hourstay/hourstay-backend/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS hotels (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	street         TEXT NOT NULL DEFAULT '',
	city           TEXT NOT NULL DEFAULT '',
	state          TEXT NOT NULL DEFAULT '',
	zip_code       TEXT NOT NULL DEFAULT '',
	latitude       DOUBLE PRECISION NOT NULL,
	longitude      DOUBLE PRECISION NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	images         TEXT[] NOT NULL DEFAULT '{}',
	amenities      TEXT[] NOT NULL DEFAULT '{}',
	rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
	review_count   INTEGER NOT NULL DEFAULT 0,
	price_per_hour DOUBLE PRECISION NOT NULL,
	is_active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS time_slots (
	id         TEXT PRIMARY KEY,
	hotel_id   TEXT NOT NULL REFERENCES hotels(id) ON DELETE CASCADE,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL,
	available  BOOLEAN NOT NULL DEFAULT TRUE,
	price      DOUBLE PRECISION NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_time_slots_hotel_id ON time_slots(hotel_id);

CREATE TABLE IF NOT EXISTS bookings (
	id           TEXT PRIMARY KEY,
	hotel_id     TEXT NOT NULL REFERENCES hotels(id),
	time_slot_id TEXT NOT NULL REFERENCES time_slots(id),
	guest_name   TEXT NOT NULL,
	guest_email  TEXT NOT NULL,
	guest_phone  TEXT NOT NULL DEFAULT '',
	guests       INTEGER NOT NULL DEFAULT 1,
	total_price  DOUBLE PRECISION NOT NULL,
	booking_date TEXT NOT NULL,
	status       TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_bookings_guest_email ON bookings(guest_email);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				bookings,
				time_slots,
				hotels
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	hotelRepo := database.NewHotelAdapter(pgClient)

	seeded := 0
	for _, hotel := range staticdata.SeedHotels() {
		h := hotel
		if err := hotelRepo.Create(ctx, &h); err != nil {
			log.Printf("Failed to create hotel %s: %v", h.Name, err)
			continue
		}
		seeded++
	}

	log.Printf("Seeding complete: %d hotels", seeded)
}
