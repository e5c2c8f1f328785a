package repository

import (
	"context"

	"footballpro_backend/internal/model"

	"gorm.io/gorm"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) Create(booking *model.Booking) error {
	return r.DB.Create(booking).Error
}

func (r *BookingRepository) FindByID(id uint) (*model.Booking, error) {
	var booking model.Booking
	err := r.DB.First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) FindByUser(userID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.DB.Where("user_id = ?", userID).
		Order("scheduled_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) List(page, limit int, status model.BookingStatus) ([]model.Booking, int64, error) {
	query := r.DB.Model(&model.Booking{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []model.Booking
	err := query.Order("scheduled_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *BookingRepository) UpdateStatus(id uint, status model.BookingStatus) error {
	return r.DB.Model(&model.Booking{}).Where("id = ?", id).
		Update("status", status).Error
}

// CountByUser 仪表盘只需要总数和完成数，预先统计后透传给统计引擎
func (r *BookingRepository) CountByUser(ctx context.Context, userID uint) (model.BookingCounts, error) {
	var counts model.BookingCounts

	err := r.DB.WithContext(ctx).Model(&model.Booking{}).
		Where("user_id = ?", userID).
		Count(&counts.Total).Error
	if err != nil {
		return counts, err
	}

	err = r.DB.WithContext(ctx).Model(&model.Booking{}).
		Where("user_id = ? AND status = ?", userID, model.BookingCompleted).
		Count(&counts.Completed).Error
	if err != nil {
		return counts, err
	}

	return counts, nil
}
