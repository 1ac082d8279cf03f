package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
	"github.com/hourstay/hourstay-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/hourstay/hourstay-backend/pkg/errors"
)

var bookingColumns = []interface{}{
	"id", "hotel_id", "time_slot_id",
	"guest_name", "guest_email", "guest_phone", "guests",
	"total_price", "booking_date", "status",
	"created_at", "updated_at",
}

// BookingAdapter implements the BookingRepository interface
type BookingAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBookingAdapter creates a new booking adapter
func NewBookingAdapter(client *postgres.Client) *BookingAdapter {
	return &BookingAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new booking
func (a *BookingAdapter) Create(ctx context.Context, booking *entities.Booking) error {
	record := goqu.Record{
		"id":           booking.ID,
		"hotel_id":     booking.HotelID,
		"time_slot_id": booking.TimeSlotID,
		"guest_name":   booking.GuestName,
		"guest_email":  booking.GuestEmail,
		"guest_phone":  booking.GuestPhone,
		"guests":       booking.Guests,
		"total_price":  booking.TotalPrice,
		"booking_date": booking.BookingDate,
		"status":       booking.Status,
		"created_at":   booking.CreatedAt,
		"updated_at":   booking.UpdatedAt,
	}

	query, args, err := a.db.Insert("bookings").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create booking", err)
	}

	return nil
}

// GetByID retrieves a booking by ID
func (a *BookingAdapter) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	query, args, err := a.db.Select(bookingColumns...).
		From("bookings").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("booking with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get booking", err)
	}

	return booking, nil
}

// UpdateStatus updates a booking's status
func (a *BookingAdapter) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) error {
	query, args, err := a.db.Update("bookings").
		Set(goqu.Record{"status": status, "updated_at": time.Now()}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update booking status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("booking with id %s not found", id))
	}

	return nil
}

// ListByEmail retrieves bookings for a guest email, newest first
func (a *BookingAdapter) ListByEmail(ctx context.Context, email string, filter repositories.BookingFilter) ([]*entities.Booking, error) {
	ds := a.db.Select(bookingColumns...).
		From("bookings").
		Where(goqu.Ex{"guest_email": email})

	if filter.Status != "" {
		ds = ds.Where(goqu.Ex{"status": filter.Status})
	}

	ds = ds.Order(goqu.I("created_at").Desc())

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
		return nil, apperrors.NewInternalError("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []*entities.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan booking", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate bookings", err)
	}

	return bookings, nil
}

func scanBooking(row rowScanner) (*entities.Booking, error) {
	booking := &entities.Booking{}
	err := row.Scan(
		&booking.ID,
		&booking.HotelID,
		&booking.TimeSlotID,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.Guests,
		&booking.TotalPrice,
		&booking.BookingDate,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return booking, nil
}
