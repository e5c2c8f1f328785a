package repository

import (
	"context"
	"testing"
	"time"

	"footballpro_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(t *testing.T, repo *BookingRepository, userID uint, status model.BookingStatus, scheduledAt time.Time) *model.Booking {
	t.Helper()
	booking := &model.Booking{
		UserID:      userID,
		SessionType: "1v1训练",
		ScheduledAt: scheduledAt,
		Status:      status,
	}
	require.NoError(t, repo.Create(booking))
	return booking
}

func TestBookingDefaultsToPending(t *testing.T) {
	db := newTestDB(t, &model.Booking{})
	repo := NewBookingRepository(db)

	booking := seedBooking(t, repo, 1, model.BookingPending, time.Now().Add(24*time.Hour))

	stored, err := repo.FindByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingPending, stored.Status)
}

func TestBookingFindByUserOrdersByScheduleDesc(t *testing.T) {
	db := newTestDB(t, &model.Booking{})
	repo := NewBookingRepository(db)
	now := time.Now()

	early := seedBooking(t, repo, 1, model.BookingPending, now.Add(24*time.Hour))
	late := seedBooking(t, repo, 1, model.BookingConfirmed, now.Add(72*time.Hour))
	seedBooking(t, repo, 2, model.BookingPending, now.Add(48*time.Hour))

	bookings, err := repo.FindByUser(1)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, late.ID, bookings[0].ID)
	assert.Equal(t, early.ID, bookings[1].ID)
}

func TestBookingListFiltersByStatus(t *testing.T) {
	db := newTestDB(t, &model.Booking{})
	repo := NewBookingRepository(db)
	now := time.Now()

	seedBooking(t, repo, 1, model.BookingPending, now.Add(24*time.Hour))
	seedBooking(t, repo, 2, model.BookingConfirmed, now.Add(48*time.Hour))
	seedBooking(t, repo, 3, model.BookingConfirmed, now.Add(72*time.Hour))

	confirmed, total, err := repo.List(1, 10, model.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, confirmed, 2)
	for _, booking := range confirmed {
		assert.Equal(t, model.BookingConfirmed, booking.Status)
	}

	all, total, err := repo.List(1, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 2, "分页只返回当前页")
}

func TestBookingUpdateStatus(t *testing.T) {
	db := newTestDB(t, &model.Booking{})
	repo := NewBookingRepository(db)

	booking := seedBooking(t, repo, 1, model.BookingPending, time.Now().Add(24*time.Hour))
	require.NoError(t, repo.UpdateStatus(booking.ID, model.BookingConfirmed))

	stored, err := repo.FindByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, stored.Status)
}

func TestBookingCountByUser(t *testing.T) {
	db := newTestDB(t, &model.Booking{})
	repo := NewBookingRepository(db)
	now := time.Now()

	seedBooking(t, repo, 1, model.BookingCompleted, now.Add(-72*time.Hour))
	seedBooking(t, repo, 1, model.BookingCompleted, now.Add(-48*time.Hour))
	seedBooking(t, repo, 1, model.BookingPending, now.Add(24*time.Hour))
	seedBooking(t, repo, 2, model.BookingCompleted, now.Add(-24*time.Hour))

	counts, err := repo.CountByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.Total)
	assert.Equal(t, int64(2), counts.Completed)
}
