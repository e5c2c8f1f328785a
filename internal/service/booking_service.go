package service

import (
	"errors"
	"time"

	"footballpro_backend/internal/model"
	"footballpro_backend/internal/repository"
	"footballpro_backend/internal/util"

	"gorm.io/gorm"
)

type BookingService struct {
	BookingRepo *repository.BookingRepository
}

func NewBookingService(bookingRepo *repository.BookingRepository) *BookingService {
	return &BookingService{BookingRepo: bookingRepo}
}

type BookingRequest struct {
	CoachID     *uint     `json:"coachId"`
	SessionType string    `json:"sessionType" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Notes       string    `json:"notes"`
}

func (s *BookingService) CreateBooking(userID uint, req *BookingRequest) (*model.Booking, error) {
	booking := &model.Booking{
		UserID:      userID,
		CoachID:     req.CoachID,
		SessionType: req.SessionType,
		ScheduledAt: req.ScheduledAt,
		Status:      model.BookingPending,
		Notes:       req.Notes,
	}
	if err := s.BookingRepo.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) MyBookings(userID uint) ([]model.Booking, error) {
	return s.BookingRepo.FindByUser(userID)
}

// CancelBooking 只有本人且非终态的预约可以取消
func (s *BookingService) CancelBooking(userID, bookingID uint) error {
	booking, err := s.BookingRepo.FindByID(bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrBookingNotFound
	}
	if err != nil {
		return err
	}

	if booking.UserID != userID {
		return util.ErrPermissionDenied
	}
	if booking.Status.IsTerminal() {
		return util.ErrBookingNotCancelable
	}

	return s.BookingRepo.UpdateStatus(bookingID, model.BookingCancelled)
}

func (s *BookingService) ListBookings(page, limit int, status model.BookingStatus) ([]model.Booking, int64, error) {
	return s.BookingRepo.List(page, limit, status)
}

// UpdateStatus 教练/管理员的状态流转：PENDING→CONFIRMED→COMPLETED，
// 非终态均可转 CANCELLED，其余一律拒绝。返回变更后的预约供调用方作废缓存。
func (s *BookingService) UpdateStatus(bookingID uint, next model.BookingStatus) (*model.Booking, error) {
	booking, err := s.BookingRepo.FindByID(bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	if !validTransition(booking.Status, next) {
		return nil, util.ErrInvalidTransition
	}

	if err := s.BookingRepo.UpdateStatus(bookingID, next); err != nil {
		return nil, err
	}
	booking.Status = next
	return booking, nil
}

func validTransition(current, next model.BookingStatus) bool {
	if current.IsTerminal() {
		return false
	}
	switch next {
	case model.BookingConfirmed:
		return current == model.BookingPending
	case model.BookingCompleted:
		return current == model.BookingConfirmed
	case model.BookingCancelled:
		return true
	default:
		return false
	}
}
