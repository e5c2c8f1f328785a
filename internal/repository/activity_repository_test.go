package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"footballpro_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库，避免用例间串数据
func newTestDB(t *testing.T, models ...interface{}) *gorm.DB {
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

func ratingPtr(v int) *int { return &v }

func seedActivity(t *testing.T, repo *ActivityRepository, userID, courseID uint, videoID *uint, completion int, accessedAt time.Time) *model.UserActivity {
	t.Helper()
	activity := &model.UserActivity{
		UserID:               userID,
		CourseID:             courseID,
		VideoID:              videoID,
		CompletionPercentage: completion,
		TimeSpentSeconds:     300,
		LastAccessedAt:       accessedAt,
	}
	require.NoError(t, repo.Create(activity))
	return activity
}

func TestActivityFindByKey(t *testing.T) {
	db := newTestDB(t, &model.UserActivity{})
	repo := NewActivityRepository(db)
	now := time.Now()

	videoID := uint(7)
	seedActivity(t, repo, 1, 2, &videoID, 50, now)
	seedActivity(t, repo, 1, 2, nil, 30, now)

	withVideo, err := repo.FindByKey(1, 2, &videoID)
	require.NoError(t, err)
	require.NotNil(t, withVideo)
	assert.Equal(t, 50, withVideo.CompletionPercentage)

	courseLevel, err := repo.FindByKey(1, 2, nil)
	require.NoError(t, err)
	require.NotNil(t, courseLevel)
	assert.Equal(t, 30, courseLevel.CompletionPercentage)

	missing, err := repo.FindByKey(1, 99, nil)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestActivitySaveClampsOutOfRangeValues(t *testing.T) {
	db := newTestDB(t, &model.UserActivity{})
	repo := NewActivityRepository(db)

	activity := &model.UserActivity{
		UserID:               1,
		CourseID:             1,
		CompletionPercentage: 150,
		TimeSpentSeconds:     -10,
		Rating:               ratingPtr(9),
		LastAccessedAt:       time.Now(),
	}
	require.NoError(t, repo.Create(activity))

	stored, err := repo.FindByKey(1, 1, nil)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 100, stored.CompletionPercentage)
	assert.Equal(t, 0, stored.TimeSpentSeconds)
	require.NotNil(t, stored.Rating)
	assert.Equal(t, 5, *stored.Rating)
}

func TestActivityFindRecentByUserOrderAndLimit(t *testing.T) {
	db := newTestDB(t, &model.UserActivity{})
	repo := NewActivityRepository(db)
	now := time.Now()

	for i := 0; i < 5; i++ {
		seedActivity(t, repo, 1, uint(i+1), nil, i*20, now.Add(-time.Duration(i)*time.Hour))
	}
	seedActivity(t, repo, 2, 1, nil, 80, now) // 其他用户的记录不应混入

	recent, err := repo.FindRecentByUser(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, uint(1), recent[0].CourseID)
	assert.Equal(t, uint(2), recent[1].CourseID)
	assert.Equal(t, uint(3), recent[2].CourseID)
	for _, activity := range recent {
		assert.Equal(t, uint(1), activity.UserID)
	}
}

func TestActivityCountSince(t *testing.T) {
	db := newTestDB(t, &model.UserActivity{})
	repo := NewActivityRepository(db)
	now := time.Now()

	seedActivity(t, repo, 1, 1, nil, 50, now.Add(-2*24*time.Hour))
	seedActivity(t, repo, 1, 2, nil, 50, now.Add(-5*24*time.Hour))
	seedActivity(t, repo, 1, 3, nil, 50, now.Add(-20*24*time.Hour))

	weekCount, err := repo.CountSince(context.Background(), 1, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), weekCount)

	monthCount, err := repo.CountSince(context.Background(), 1, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(3), monthCount)
}

func TestActivityFindByPosition(t *testing.T) {
	db := newTestDB(t, &model.UserActivity{}, &model.PlayerProfile{})
	repo := NewActivityRepository(db)
	now := time.Now()

	profiles := []model.PlayerProfile{
		{UserID: 1, Position: model.Forward, TrainingLevel: model.Beginner},
		{UserID: 2, Position: model.Forward, TrainingLevel: model.Advanced},
		{UserID: 3, Position: model.Goalkeeper, TrainingLevel: model.Beginner},
	}
	for i := range profiles {
		require.NoError(t, db.Create(&profiles[i]).Error)
	}

	seedActivity(t, repo, 1, 1, nil, 90, now)
	seedActivity(t, repo, 2, 1, nil, 70, now)
	seedActivity(t, repo, 3, 1, nil, 50, now)

	forwards, err := repo.FindByPosition(context.Background(), model.Forward)
	require.NoError(t, err)
	require.Len(t, forwards, 2)
	for _, activity := range forwards {
		assert.Contains(t, []uint{1, 2}, activity.UserID)
	}
}

func TestActivityFindByPositionSkipsDeletedProfiles(t *testing.T) {
	db := newTestDB(t, &model.UserActivity{}, &model.PlayerProfile{})
	repo := NewActivityRepository(db)
	now := time.Now()

	profile := model.PlayerProfile{UserID: 1, Position: model.Defender, TrainingLevel: model.Beginner}
	require.NoError(t, db.Create(&profile).Error)
	seedActivity(t, repo, 1, 1, nil, 90, now)

	require.NoError(t, db.Delete(&profile).Error)

	defenders, err := repo.FindByPosition(context.Background(), model.Defender)
	require.NoError(t, err)
	assert.Empty(t, defenders)
}
