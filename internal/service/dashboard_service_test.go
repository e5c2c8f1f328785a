package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"footballpro_backend/internal/model"
	"footballpro_backend/internal/repository"
	"footballpro_backend/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newDashboardService(t *testing.T, rdb *redis.Client, models ...interface{}) (*DashboardService, *gorm.DB) {
	t.Helper()
	logger.Log = zap.NewNop()

	db := newServiceTestDB(t, models...)
	svc := NewDashboardService(
		repository.NewActivityRepository(db),
		repository.NewProfileRepository(db),
		repository.NewBookingRepository(db),
		rdb,
	)
	return svc, db
}

func newCacheClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func seedDashboardData(t *testing.T, db *gorm.DB) {
	t.Helper()
	now := time.Now()

	profile := model.PlayerProfile{UserID: 1, Position: model.Forward, TrainingLevel: model.Intermediate}
	require.NoError(t, db.Create(&profile).Error)

	activities := []model.UserActivity{
		{UserID: 1, CourseID: 1, CompletionPercentage: 100, TimeSpentSeconds: 600, IsCompleted: true, LastAccessedAt: now},
		{UserID: 1, CourseID: 2, CompletionPercentage: 60, TimeSpentSeconds: 300, LastAccessedAt: now.Add(-time.Hour)},
	}
	for i := range activities {
		require.NoError(t, db.Create(&activities[i]).Error)
	}

	booking := model.Booking{UserID: 1, SessionType: "1v1训练", ScheduledAt: now.Add(-48 * time.Hour), Status: model.BookingCompleted}
	require.NoError(t, db.Create(&booking).Error)
}

func allDashboardModels() []interface{} {
	return []interface{}{&model.UserActivity{}, &model.PlayerProfile{}, &model.Booking{}}
}

func TestGetStatsComputesFromStores(t *testing.T) {
	svc, db := newDashboardService(t, newCacheClient(t), allDashboardModels()...)
	seedDashboardData(t, db)

	stats, err := svc.GetStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalSessions)
	assert.Equal(t, int64(1), stats.CompletedSessions)
	assert.Equal(t, 900, stats.TotalWatchTime)
	assert.Equal(t, 1, stats.CertificatesEarned)
	assert.Equal(t, 3, stats.WeeklyGoal)
	assert.Equal(t, int64(2), stats.ThisWeekSessions)
}

func TestGetStatsFailsWholeOnReadError(t *testing.T) {
	// 不建 user_activities 表，样本读取必然失败
	svc, db := newDashboardService(t, newCacheClient(t), &model.PlayerProfile{}, &model.Booking{})

	profile := model.PlayerProfile{UserID: 1, Position: model.Forward, TrainingLevel: model.Beginner}
	require.NoError(t, db.Create(&profile).Error)

	stats, err := svc.GetStats(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, stats, "任何一路失败都不返回部分统计")
}

func TestGetStatsServesCachedCopyUntilInvalidated(t *testing.T) {
	svc, db := newDashboardService(t, newCacheClient(t), allDashboardModels()...)
	seedDashboardData(t, db)

	first, err := svc.GetStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.TotalSessions)

	// 新预约入库后，缓存未作废前仍返回旧统计
	booking := model.Booking{UserID: 1, SessionType: "射门专项", ScheduledAt: time.Now().Add(24 * time.Hour), Status: model.BookingPending}
	require.NoError(t, db.Create(&booking).Error)

	cached, err := svc.GetStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cached.TotalSessions)

	svc.InvalidateStats(context.Background(), 1)

	fresh, err := svc.GetStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh.TotalSessions)
}

func TestGetStatsDegradesWhenCacheUnavailable(t *testing.T) {
	// 端口1上没有redis，缓存读写都会失败
	unreachable := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	svc, db := newDashboardService(t, unreachable, allDashboardModels()...)
	seedDashboardData(t, db)

	stats, err := svc.GetStats(context.Background(), 1)
	require.NoError(t, err, "缓存故障只降级，不影响结果")
	assert.Equal(t, int64(1), stats.TotalSessions)
}

func TestGetStatsStopsOnCanceledContext(t *testing.T) {
	svc, db := newDashboardService(t, newCacheClient(t), allDashboardModels()...)
	seedDashboardData(t, db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetStats(ctx, 1)
	assert.Error(t, err)
}

func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-%02d", year, week)
}

func TestWeeklyProgressBucketsByISOWeek(t *testing.T) {
	svc, db := newDashboardService(t, nil, allDashboardModels()...)
	now := time.Now()

	// 本周两条，上周一条
	records := []model.UserActivity{
		{UserID: 1, CourseID: 1, CompletionPercentage: 80, TimeSpentSeconds: 600, LastAccessedAt: now},
		{UserID: 1, CourseID: 2, CompletionPercentage: 40, TimeSpentSeconds: 300, LastAccessedAt: now.Add(-time.Hour)},
		{UserID: 1, CourseID: 3, CompletionPercentage: 100, TimeSpentSeconds: 900, LastAccessedAt: now.AddDate(0, 0, -7)},
	}
	for i := range records {
		require.NoError(t, db.Create(&records[i]).Error)
	}

	progress, err := svc.GetWeeklyProgress(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, progress, 2)

	// 序列从最旧到最新
	assert.Equal(t, weekKey(now.AddDate(0, 0, -7)), progress[0].Week)
	assert.Equal(t, weekKey(now), progress[1].Week)

	assert.Equal(t, 1, progress[0].Sessions)
	assert.Equal(t, 900, progress[0].WatchTimeSeconds)
	assert.Equal(t, 100.0, progress[0].AverageCompletion)

	assert.Equal(t, 2, progress[1].Sessions)
	assert.Equal(t, 900, progress[1].WatchTimeSeconds)
	assert.Equal(t, 60.0, progress[1].AverageCompletion)
}

func TestWeeklyProgressZeroFillsEmptyWeeks(t *testing.T) {
	svc, db := newDashboardService(t, nil, allDashboardModels()...)
	now := time.Now()

	record := model.UserActivity{
		UserID: 1, CourseID: 1,
		CompletionPercentage: 50, TimeSpentSeconds: 300,
		LastAccessedAt: now,
	}
	require.NoError(t, db.Create(&record).Error)

	progress, err := svc.GetWeeklyProgress(context.Background(), 1, 4)
	require.NoError(t, err)
	require.Len(t, progress, 4)

	for _, point := range progress[:3] {
		assert.Equal(t, 0, point.Sessions)
		assert.Equal(t, 0, point.WatchTimeSeconds)
		assert.Equal(t, 0.0, point.AverageCompletion)
	}
	assert.Equal(t, 1, progress[3].Sessions)
}

func TestWeeklyProgressMinimumOneWeek(t *testing.T) {
	svc, _ := newDashboardService(t, nil, allDashboardModels()...)

	progress, err := svc.GetWeeklyProgress(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, progress, 1)
}
