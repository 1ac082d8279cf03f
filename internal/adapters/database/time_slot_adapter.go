package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/hourstay/hourstay-backend/pkg/errors"
)

var timeSlotColumns = []interface{}{
	"id", "hotel_id", "start_time", "end_time", "available", "price",
}

// TimeSlotAdapter implements the TimeSlotRepository interface
type TimeSlotAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewTimeSlotAdapter creates a new time slot adapter
func NewTimeSlotAdapter(client *postgres.Client) *TimeSlotAdapter {
	return &TimeSlotAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a time slot
func (a *TimeSlotAdapter) Create(ctx context.Context, slot *entities.TimeSlot) error {
	record := goqu.Record{
		"id":         slot.ID,
		"hotel_id":   slot.HotelID,
		"start_time": slot.StartTime,
		"end_time":   slot.EndTime,
		"available":  slot.Available,
		"price":      slot.Price,
	}

	query, args, err := a.db.Insert("time_slots").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create time slot", err)
	}

	return nil
}

// GetByID retrieves a time slot by ID
func (a *TimeSlotAdapter) GetByID(ctx context.Context, id string) (*entities.TimeSlot, error) {
	query, args, err := a.db.Select(timeSlotColumns...).
		From("time_slots").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	slot := &entities.TimeSlot{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.HotelID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Available,
		&slot.Price,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("time slot with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get time slot", err)
	}

	return slot, nil
}

// ListByHotel retrieves all time slots for a hotel, ordered by start time
func (a *TimeSlotAdapter) ListByHotel(ctx context.Context, hotelID string) ([]entities.TimeSlot, error) {
	query, args, err := a.db.Select(timeSlotColumns...).
		From("time_slots").
		Where(goqu.Ex{"hotel_id": hotelID}).
		Order(goqu.I("start_time").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list time slots", err)
	}
	defer rows.Close()

	var slots []entities.TimeSlot
	for rows.Next() {
		var slot entities.TimeSlot
		err := rows.Scan(
			&slot.ID,
			&slot.HotelID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Available,
			&slot.Price,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan time slot", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate time slots", err)
	}

	return slots, nil
}

// SetAvailability flips a slot's availability flag
func (a *TimeSlotAdapter) SetAvailability(ctx context.Context, id string, available bool) error {
	query, args, err := a.db.Update("time_slots").
		Set(goqu.Record{"available": available}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update time slot", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("time slot with id %s not found", id))
	}

	return nil
}
