package staticdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourstay/hourstay-backend/internal/domain/entities"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
	apperrors "github.com/hourstay/hourstay-backend/pkg/errors"
)

func TestSeededStore(t *testing.T) {
	store := NewSeededStore()

	hotels, err := store.List(context.Background(), repositories.HotelFilter{})
	require.NoError(t, err)
	require.Len(t, hotels, 2)

	// List sorts by name.
	assert.Equal(t, "College Park Inn", hotels[0].Name)
	assert.Equal(t, "Hotel College Park", hotels[1].Name)
	assert.Len(t, hotels[1].TimeSlots, 6)
}

func TestStore_SlotFlipVisibleInHotelSnapshot(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	require.NoError(t, store.SetSlotAvailability(ctx, "hcp-slot-1", false))

	hotel, err := store.GetByID(ctx, "hotel-college-park")
	require.NoError(t, err)
	for _, slot := range hotel.TimeSlots {
		if slot.ID == "hcp-slot-1" {
			assert.False(t, slot.Available)
			return
		}
	}
	t.Fatal("slot hcp-slot-1 missing from hotel snapshot")
}

func TestStore_SnapshotsAreCopies(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	hotel, err := store.GetByID(ctx, "hotel-college-park")
	require.NoError(t, err)

	hotel.Name = "Mutated"
	hotel.TimeSlots[0].Available = false

	fresh, err := store.GetByID(ctx, "hotel-college-park")
	require.NoError(t, err)
	assert.Equal(t, "Hotel College Park", fresh.Name)
	assert.True(t, fresh.TimeSlots[0].Available)
}

func TestStore_DeleteIsSoft(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, "college-park-inn"))

	_, err := store.GetByID(ctx, "college-park-inn")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	hotels, err := store.List(ctx, repositories.HotelFilter{})
	require.NoError(t, err)
	assert.Len(t, hotels, 1)
}

func TestStore_BookingLifecycle(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	booking := &entities.Booking{
		ID:         "booking-1",
		HotelID:    "college-park-inn",
		TimeSlotID: "cpi-slot-1",
		GuestEmail: "ada@example.com",
		Status:     entities.BookingStatusConfirmed,
	}
	require.NoError(t, store.CreateBooking(ctx, booking))

	got, err := store.GetBookingByID(ctx, "booking-1")
	require.NoError(t, err)
	assert.Equal(t, entities.BookingStatusConfirmed, got.Status)

	require.NoError(t, store.UpdateBookingStatus(ctx, "booking-1", entities.BookingStatusCancelled))

	byEmail, err := store.ListBookingsByEmail(ctx, "ADA@example.com", repositories.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, entities.BookingStatusCancelled, byEmail[0].Status)

	none, err := store.ListBookingsByEmail(ctx, "ada@example.com", repositories.BookingFilter{Status: entities.BookingStatusConfirmed})
	require.NoError(t, err)
	assert.Empty(t, none)
}
