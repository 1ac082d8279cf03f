package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
	"github.com/hourstay/hourstay-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/hourstay/hourstay-backend/pkg/errors"
)

var hotelColumns = []interface{}{
	"id", "name", "street", "city", "state", "zip_code",
	"latitude", "longitude", "description", "images", "amenities",
	"rating", "review_count", "price_per_hour",
	"is_active", "created_at", "updated_at",
}

// HotelAdapter implements the HotelRepository interface. Hotels are read
// hotel-first, then slots, matching how the storefront loads them.
type HotelAdapter struct {
	client *postgres.Client
	db     *goqu.Database
	slots  *TimeSlotAdapter
}

// NewHotelAdapter creates a new hotel adapter
func NewHotelAdapter(client *postgres.Client) *HotelAdapter {
	return &HotelAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
		slots:  NewTimeSlotAdapter(client),
	}
}

// Create creates a new hotel with its time slots
func (a *HotelAdapter) Create(ctx context.Context, hotel *entities.Hotel) error {
	record := goqu.Record{
		"id":             hotel.ID,
		"name":           hotel.Name,
		"street":         hotel.Address.Street,
		"city":           hotel.Address.City,
		"state":          hotel.Address.State,
		"zip_code":       hotel.Address.ZipCode,
		"latitude":       hotel.Location.Latitude,
		"longitude":      hotel.Location.Longitude,
		"description":    hotel.Description,
		"images":         pq.Array(hotel.Images),
		"amenities":      pq.Array(hotel.Amenities),
		"rating":         hotel.Rating,
		"review_count":   hotel.ReviewCount,
		"price_per_hour": hotel.PricePerHour,
		"is_active":      hotel.IsActive,
		"created_at":     hotel.CreatedAt,
		"updated_at":     hotel.UpdatedAt,
	}

	query, args, err := a.db.Insert("hotels").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create hotel", err)
	}

	for i := range hotel.TimeSlots {
		slot := &hotel.TimeSlots[i]
		slot.HotelID = hotel.ID
		if err := a.slots.Create(ctx, slot); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a hotel by ID with its time slots
func (a *HotelAdapter) GetByID(ctx context.Context, id string) (*entities.Hotel, error) {
	query, args, err := a.db.Select(hotelColumns...).
		From("hotels").
		Where(goqu.Ex{"id": id, "is_active": true}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	hotel, err := scanHotel(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("hotel with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get hotel", err)
	}

	slots, err := a.slots.ListByHotel(ctx, hotel.ID)
	if err != nil {
		return nil, err
	}
	hotel.TimeSlots = slots

	return hotel, nil
}

// List retrieves hotels with filters, each with its time slots
func (a *HotelAdapter) List(ctx context.Context, filter repositories.HotelFilter) ([]*entities.Hotel, error) {
	ds := a.db.Select(hotelColumns...).From("hotels")

	if filter.City != "" {
		ds = ds.Where(goqu.Ex{"city": filter.City})
	}
	if filter.IsActive != nil {
		ds = ds.Where(goqu.Ex{"is_active": *filter.IsActive})
	} else {
		ds = ds.Where(goqu.Ex{"is_active": true})
	}

	ds = ds.Order(goqu.I("name").Asc())

	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list hotels", err)
	}
	defer rows.Close()

	var hotels []*entities.Hotel
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan hotel", err)
		}
		hotels = append(hotels, hotel)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate hotels", err)
	}

	for _, hotel := range hotels {
		slots, err := a.slots.ListByHotel(ctx, hotel.ID)
		if err != nil {
			return nil, err
		}
		hotel.TimeSlots = slots
	}

	return hotels, nil
}

// Update updates a hotel
func (a *HotelAdapter) Update(ctx context.Context, hotel *entities.Hotel) error {
	hotel.UpdatedAt = time.Now()

	record := goqu.Record{
		"name":           hotel.Name,
		"street":         hotel.Address.Street,
		"city":           hotel.Address.City,
		"state":          hotel.Address.State,
		"zip_code":       hotel.Address.ZipCode,
		"latitude":       hotel.Location.Latitude,
		"longitude":      hotel.Location.Longitude,
		"description":    hotel.Description,
		"images":         pq.Array(hotel.Images),
		"amenities":      pq.Array(hotel.Amenities),
		"rating":         hotel.Rating,
		"review_count":   hotel.ReviewCount,
		"price_per_hour": hotel.PricePerHour,
		"is_active":      hotel.IsActive,
		"updated_at":     hotel.UpdatedAt,
	}

	query, args, err := a.db.Update("hotels").
		Set(record).
		Where(goqu.Ex{"id": hotel.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update hotel", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("hotel with id %s not found", hotel.ID))
	}

	return nil
}

// Delete deletes a hotel (soft delete)
func (a *HotelAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Update("hotels").
		Set(goqu.Record{"is_active": false, "updated_at": time.Now()}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete hotel", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("hotel with id %s not found", id))
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHotel(row rowScanner) (*entities.Hotel, error) {
	hotel := &entities.Hotel{}
	err := row.Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Address.Street,
		&hotel.Address.City,
		&hotel.Address.State,
		&hotel.Address.ZipCode,
		&hotel.Location.Latitude,
		&hotel.Location.Longitude,
		&hotel.Description,
		pq.Array(&hotel.Images),
		pq.Array(&hotel.Amenities),
		&hotel.Rating,
		&hotel.ReviewCount,
		&hotel.PricePerHour,
		&hotel.IsActive,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return hotel, nil
}
