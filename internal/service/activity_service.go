package service

import (
	"context"
	"time"

	"footballpro_backend/internal/model"
	"footballpro_backend/internal/repository"
	"footballpro_backend/internal/util"
)

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	CourseRepo   *repository.CourseRepository
}

func NewActivityService(activityRepo *repository.ActivityRepository, courseRepo *repository.CourseRepository) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		CourseRepo:   courseRepo,
	}
}

// ProgressUpdate 一次训练交互上报
type ProgressUpdate struct {
	CourseID             uint  `json:"courseId" binding:"required"`
	VideoID              *uint `json:"videoId"`
	CompletionPercentage int   `json:"completionPercentage" binding:"min=0,max=100"`
	TimeSpentSeconds     int   `json:"timeSpent" binding:"min=0"`
	Rating               *int  `json:"rating" binding:"omitempty,min=1,max=5"`
}

// RecordProgress 按 user+course+video 键 upsert：
// 已有记录累加观看时长、完成度只升不降，并刷新 lastAccessedAt；满100%置为完成。
// 记录从不物理删除。
func (s *ActivityService) RecordProgress(userID uint, update *ProgressUpdate) (*model.UserActivity, error) {
	if _, err := s.CourseRepo.FindByID(update.CourseID); err != nil {
		return nil, util.ErrCourseNotFound
	}

	now := time.Now()

	activity, err := s.ActivityRepo.FindByKey(userID, update.CourseID, update.VideoID)
	if err != nil {
		return nil, err
	}

	if activity == nil {
		activity = &model.UserActivity{
			UserID:               userID,
			CourseID:             update.CourseID,
			VideoID:              update.VideoID,
			CompletionPercentage: update.CompletionPercentage,
			TimeSpentSeconds:     update.TimeSpentSeconds,
			Rating:               update.Rating,
			LastAccessedAt:       now,
		}
		activity.IsCompleted = activity.CompletionPercentage >= 100
		if err := s.ActivityRepo.Create(activity); err != nil {
			return nil, err
		}
		return activity, nil
	}

	if update.CompletionPercentage > activity.CompletionPercentage {
		activity.CompletionPercentage = update.CompletionPercentage
	}
	activity.TimeSpentSeconds += update.TimeSpentSeconds
	if update.Rating != nil {
		activity.Rating = update.Rating
	}
	if activity.CompletionPercentage >= 100 {
		activity.IsCompleted = true
	}
	activity.LastAccessedAt = now

	if err := s.ActivityRepo.Save(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) RecentActivity(ctx context.Context, userID uint, limit int) ([]model.UserActivity, error) {
	if limit < 1 || limit > activitySampleSize {
		limit = 10
	}
	return s.ActivityRepo.FindRecentByUser(ctx, userID, limit)
}
