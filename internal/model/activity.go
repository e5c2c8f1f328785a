package model

import (
	"time"

	"gorm.io/gorm"
)

// UserActivity 记录用户与课程/视频的一次交互，按 user+course+video 维度 upsert
// swagger:model UserActivity
type UserActivity struct {
	BaseModel
	UserID               uint      `gorm:"uniqueIndex:idx_user_course_video;type:bigint unsigned;not null" json:"userId"`
	CourseID             uint      `gorm:"uniqueIndex:idx_user_course_video;type:bigint unsigned;not null" json:"courseId"`
	VideoID              *uint     `gorm:"uniqueIndex:idx_user_course_video;type:bigint unsigned" json:"videoId,omitempty"`
	CompletionPercentage int       `gorm:"default:0" json:"completionPercentage"`
	TimeSpentSeconds     int       `gorm:"default:0" json:"timeSpent"`
	Rating               *int      `json:"rating,omitempty"`
	IsCompleted          bool      `gorm:"default:false" json:"isCompleted"`
	LastAccessedAt       time.Time `gorm:"index;not null" json:"lastAccessedAt"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}

// BeforeSave 写入侧保证 completion 在 [0,100]、rating 在 [1,5]
func (a *UserActivity) BeforeSave(tx *gorm.DB) error {
	if a.CompletionPercentage < 0 {
		a.CompletionPercentage = 0
	}
	if a.CompletionPercentage > 100 {
		a.CompletionPercentage = 100
	}
	if a.TimeSpentSeconds < 0 {
		a.TimeSpentSeconds = 0
	}
	if a.Rating != nil {
		r := *a.Rating
		if r < 1 {
			r = 1
		}
		if r > 5 {
			r = 5
		}
		a.Rating = &r
	}
	return nil
}
