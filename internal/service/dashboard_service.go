package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"footballpro_backend/internal/model"
	"footballpro_backend/internal/repository"
	"footballpro_backend/pkg/logger"
	"footballpro_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	statsCacheKeyPrefix = "dashboard:stats:"
	statsCacheTTL       = 5 * time.Minute
)

type DashboardService struct {
	ActivityRepo *repository.ActivityRepository
	ProfileRepo  *repository.ProfileRepository
	BookingRepo  *repository.BookingRepository
	Redis        *redis.Client
}

func NewDashboardService(
	activityRepo *repository.ActivityRepository,
	profileRepo *repository.ProfileRepository,
	bookingRepo *repository.BookingRepository,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		ActivityRepo: activityRepo,
		ProfileRepo:  profileRepo,
		BookingRepo:  bookingRepo,
		Redis:        rdb,
	}
}

// GetStats 仪表盘统计入口：5分钟缓存，未命中则并发读库后交给统计引擎。
// 任何一路读取失败都整体失败，不返回部分统计，也绝不伪造数据。
func (s *DashboardService) GetStats(ctx context.Context, userID uint) (*model.DashboardStats, error) {
	cacheKey := fmt.Sprintf("%s%d", statsCacheKeyPrefix, userID)

	if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var stats model.DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			monitoring.DashboardCacheHits.WithLabelValues("hit").Inc()
			return &stats, nil
		}
	} else if err != redis.Nil {
		// 缓存故障降级为直接查库
		logger.Log.Warn("dashboard stats cache read failed", zap.Error(err))
	}
	monitoring.DashboardCacheHits.WithLabelValues("miss").Inc()

	now := time.Now()
	input := StatsInput{UserID: userID, Now: now}

	// 档案先取，同位置记录依赖它
	profile, err := s.ProfileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	input.Profile = profile

	position := model.Midfielder
	if profile != nil && profile.Position != "" {
		position = profile.Position
	}

	// 各路读取相互独立，可并发；任何一路失败时组上下文取消其余读取
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.ActivityRepo.FindRecentByUser(gctx, userID, activitySampleSize)
		if err != nil {
			return err
		}
		input.Records = records
		return nil
	})

	g.Go(func() error {
		peers, err := s.ActivityRepo.FindByPosition(gctx, position)
		if err != nil {
			return err
		}
		input.PeerRecords = peers
		return nil
	})

	g.Go(func() error {
		counts, err := s.BookingRepo.CountByUser(gctx, userID)
		if err != nil {
			return err
		}
		input.Bookings = counts
		return nil
	})

	g.Go(func() error {
		count, err := s.ActivityRepo.CountSince(gctx, userID, now.AddDate(0, 0, -7))
		if err != nil {
			return err
		}
		input.WeekSessions = count
		return nil
	})

	g.Go(func() error {
		count, err := s.ActivityRepo.CountSince(gctx, userID, now.AddDate(0, 0, -30))
		if err != nil {
			return err
		}
		input.MonthSessions = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats, err := ComputeStats(input)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.Redis.Set(ctx, cacheKey, payload, statsCacheTTL).Err(); err != nil {
			logger.Log.Warn("dashboard stats cache write failed", zap.Error(err))
		}
	}

	return &stats, nil
}

// GetWeeklyProgress 最近 N 周的训练趋势，缺数据的周补零
func (s *DashboardService) GetWeeklyProgress(ctx context.Context, userID uint, weeks int) ([]model.WeekProgress, error) {
	if weeks < 1 {
		weeks = 1
	}

	now := time.Now()
	since := now.AddDate(0, 0, -weeks*7)

	records, err := s.ActivityRepo.FindSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		sessions      int
		watchTime     int
		completionSum int
	}
	buckets := make(map[string]*bucket)
	for i := range records {
		year, week := records[i].LastAccessedAt.ISOWeek()
		key := fmt.Sprintf("%d-%02d", year, week)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.sessions++
		b.watchTime += records[i].TimeSpentSeconds
		b.completionSum += records[i].CompletionPercentage
	}

	result := make([]model.WeekProgress, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		t := now.AddDate(0, 0, -i*7)
		year, week := t.ISOWeek()
		key := fmt.Sprintf("%d-%02d", year, week)

		point := model.WeekProgress{Week: key}
		if b, ok := buckets[key]; ok {
			point.Sessions = b.sessions
			point.WatchTimeSeconds = b.watchTime
			point.AverageCompletion = float64(b.completionSum) / float64(b.sessions)
		}
		result = append(result, point)
	}

	return result, nil
}

// InvalidateStats 活动或预约变更后让缓存提前过期
func (s *DashboardService) InvalidateStats(ctx context.Context, userID uint) {
	cacheKey := fmt.Sprintf("%s%d", statsCacheKeyPrefix, userID)
	if err := s.Redis.Del(ctx, cacheKey).Err(); err != nil {
		logger.Log.Warn("dashboard stats cache invalidate failed", zap.Error(err))
	}
}
