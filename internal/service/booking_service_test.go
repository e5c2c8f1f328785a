package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"footballpro_backend/internal/model"
	"footballpro_backend/internal/repository"
	"footballpro_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newServiceTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

func newBookingService(t *testing.T) *BookingService {
	t.Helper()
	db := newServiceTestDB(t, &model.Booking{})
	return NewBookingService(repository.NewBookingRepository(db))
}

func createBooking(t *testing.T, svc *BookingService, userID uint) *model.Booking {
	t.Helper()
	booking, err := svc.CreateBooking(userID, &BookingRequest{
		SessionType: "射门专项",
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	return booking
}

func TestCreateBookingStartsPending(t *testing.T) {
	svc := newBookingService(t)

	booking := createBooking(t, svc, 1)
	assert.Equal(t, model.BookingPending, booking.Status)
	assert.Equal(t, uint(1), booking.UserID)
}

func TestCancelBookingByOwner(t *testing.T) {
	svc := newBookingService(t)
	booking := createBooking(t, svc, 1)

	require.NoError(t, svc.CancelBooking(1, booking.ID))

	stored, err := svc.BookingRepo.FindByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingCancelled, stored.Status)
}

func TestCancelBookingRejectsOtherUser(t *testing.T) {
	svc := newBookingService(t)
	booking := createBooking(t, svc, 1)

	err := svc.CancelBooking(2, booking.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestCancelBookingRejectsTerminalState(t *testing.T) {
	svc := newBookingService(t)
	booking := createBooking(t, svc, 1)

	_, err := svc.UpdateStatus(booking.ID, model.BookingConfirmed)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(booking.ID, model.BookingCompleted)
	require.NoError(t, err)

	err = svc.CancelBooking(1, booking.ID)
	assert.ErrorIs(t, err, util.ErrBookingNotCancelable)
}

func TestCancelBookingNotFound(t *testing.T) {
	svc := newBookingService(t)
	err := svc.CancelBooking(1, 999)
	assert.ErrorIs(t, err, util.ErrBookingNotFound)
}

func TestUpdateStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		current model.BookingStatus
		next    model.BookingStatus
		ok      bool
	}{
		{"待确认转已确认", model.BookingPending, model.BookingConfirmed, true},
		{"已确认转已完成", model.BookingConfirmed, model.BookingCompleted, true},
		{"待确认不能直接完成", model.BookingPending, model.BookingCompleted, false},
		{"待确认可取消", model.BookingPending, model.BookingCancelled, true},
		{"已确认可取消", model.BookingConfirmed, model.BookingCancelled, true},
		{"已完成不可再变更", model.BookingCompleted, model.BookingCancelled, false},
		{"已取消不可恢复", model.BookingCancelled, model.BookingConfirmed, false},
		{"不能回退到待确认", model.BookingConfirmed, model.BookingPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, validTransition(tc.current, tc.next))
		})
	}
}

func TestUpdateStatusPersistsValidTransition(t *testing.T) {
	svc := newBookingService(t)
	booking := createBooking(t, svc, 1)

	updated, err := svc.UpdateStatus(booking.ID, model.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, updated.Status)

	_, err = svc.UpdateStatus(booking.ID, model.BookingPending)
	assert.ErrorIs(t, err, util.ErrInvalidTransition)

	stored, err := svc.BookingRepo.FindByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, stored.Status)
}
