package repository

import (
	"context"
	"errors"

	"footballpro_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// FindByUserID 档案可能不存在，此时返回 (nil, nil)，由调用方决定默认值
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uint) (*model.PlayerProfile, error) {
	var profile model.PlayerProfile
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *model.PlayerProfile) error {
	existing, err := r.FindByUserID(ctx, profile.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.DB.WithContext(ctx).Create(profile).Error
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.DB.WithContext(ctx).Save(profile).Error
}
