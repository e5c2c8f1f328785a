package model

import (
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking 一次预约的训练课
// swagger:model Booking
type Booking struct {
	BaseModel
	UserID      uint          `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	CoachID     *uint         `gorm:"index;type:bigint unsigned" json:"coachId,omitempty"`
	SessionType string        `gorm:"size:50;not null" json:"sessionType"`
	ScheduledAt time.Time     `gorm:"not null" json:"scheduledAt"`
	Status      BookingStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	Notes       string        `gorm:"type:text" json:"notes"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsTerminal 终态不允许再变更
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}
