package repository

import (
	"context"
	"errors"
	"time"

	"footballpro_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// FindByKey 按 user+course+video 唯一键查找，不存在返回 (nil, nil)
func (r *ActivityRepository) FindByKey(userID, courseID uint, videoID *uint) (*model.UserActivity, error) {
	query := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID)
	if videoID == nil {
		query = query.Where("video_id IS NULL")
	} else {
		query = query.Where("video_id = ?", *videoID)
	}

	var activity model.UserActivity
	err := query.First(&activity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) Create(activity *model.UserActivity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) Save(activity *model.UserActivity) error {
	return r.DB.Save(activity).Error
}

// FindRecentByUser 按最近访问时间倒序取样本，limit 限定样本规模
func (r *ActivityRepository) FindRecentByUser(ctx context.Context, userID uint, limit int) ([]model.UserActivity, error) {
	var activities []model.UserActivity
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).
		Order("last_accessed_at DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// FindSince 取某时间之后访问过的记录，用于周趋势聚合
func (r *ActivityRepository) FindSince(ctx context.Context, userID uint, since time.Time) ([]model.UserActivity, error) {
	var activities []model.UserActivity
	err := r.DB.WithContext(ctx).Where("user_id = ? AND last_accessed_at >= ?", userID, since).
		Order("last_accessed_at DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// CountSince 独立于样本窗口的日期范围计数（本周/本月卡片）
func (r *ActivityRepository) CountSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.UserActivity{}).
		Where("user_id = ? AND last_accessed_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

// FindByPosition 同位置全体球员的活动记录，供排名使用。
// 原始行在此边界完成到强类型 UserActivity 的归一化，引擎不接触裸查询结果。
func (r *ActivityRepository) FindByPosition(ctx context.Context, position model.Position) ([]model.UserActivity, error) {
	var activities []model.UserActivity
	err := r.DB.WithContext(ctx).
		Joins("JOIN player_profiles ON player_profiles.user_id = user_activities.user_id").
		Where("player_profiles.position = ? AND player_profiles.deleted_at IS NULL", position).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
