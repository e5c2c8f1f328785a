package service

import (
	"math"
	"sort"
	"time"

	"footballpro_backend/internal/model"
	"footballpro_backend/internal/util"
)

const (
	// 近期样本规模，与仪表盘各项派生指标共用
	activitySampleSize = 50
	// 成功率只看最近的训练次数
	successRateWindow = 20
	// 信心增长对比的前后两组评分数量
	confidenceGroupSize = 10
	// 进步率对比的前后两组记录数量
	improvementGroupSize = 5
)

// StatsInput 统计引擎的全部输入。记录必须已按调用方权限过滤到单个用户，
// 周/月计数由独立的日期范围查询给出，预约计数原样透传。
type StatsInput struct {
	UserID        uint
	Records       []model.UserActivity
	PeerRecords   []model.UserActivity
	Profile       *model.PlayerProfile
	Bookings      model.BookingCounts
	WeekSessions  int64
	MonthSessions int64
	Now           time.Time
}

// ComputeStats 纯函数：对已取回的记录做确定性计算，无任何副作用。
// 除输入记录跨越多个用户这一前置条件违规外不会失败，
// 空集合一律给出各指标的零值/默认值而不是报错。
func ComputeStats(in StatsInput) (model.DashboardStats, error) {
	for i := range in.Records {
		if in.Records[i].UserID != in.UserID {
			return model.DashboardStats{}, util.ErrMixedUserRecords
		}
	}

	records := sortByRecency(in.Records)

	stats := model.DashboardStats{
		TotalSessions:      in.Bookings.Total,
		CompletedSessions:  in.Bookings.Completed,
		TotalWatchTime:     totalWatchTime(records),
		AverageRating:      averageRating(records),
		CertificatesEarned: completedCount(records),
		CurrentStreak:      currentStreak(records, in.Now),
		LastActive:         lastActive(records, in.Now),
		ImprovementRate:    improvementRate(records),
		SuccessRate:        successRate(records),
		ConfidenceGrowth:   confidenceGrowth(records),
		PositionRank:       positionRank(in.UserID, in.PeerRecords),
		PositionProgress:   positionProgress(records),
		ThisWeekSessions:   in.WeekSessions,
		ThisMonthSessions:  in.MonthSessions,
	}

	level := model.Beginner
	if in.Profile != nil {
		level = in.Profile.TrainingLevel
	}
	stats.WeeklyGoal, stats.MonthlyGoal = trainingGoals(level)

	return stats, nil
}

// sortByRecency 返回按 lastAccessedAt 倒序的副本，不改动调用方切片
func sortByRecency(records []model.UserActivity) []model.UserActivity {
	sorted := make([]model.UserActivity, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LastAccessedAt.After(sorted[j].LastAccessedAt)
	})
	return sorted
}

func totalWatchTime(records []model.UserActivity) int {
	total := 0
	for i := range records {
		total += records[i].TimeSpentSeconds
	}
	return total
}

func averageRating(records []model.UserActivity) float64 {
	sum, count := 0, 0
	for i := range records {
		if records[i].Rating != nil {
			sum += *records[i].Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*100) / 100
}

func completedCount(records []model.UserActivity) int {
	count := 0
	for i := range records {
		if records[i].IsCompleted {
			count++
		}
	}
	return count
}

func lastActive(records []model.UserActivity, now time.Time) time.Time {
	if len(records) == 0 {
		return now
	}
	latest := records[0].LastAccessedAt
	for i := range records {
		if records[i].LastAccessedAt.After(latest) {
			latest = records[i].LastAccessedAt
		}
	}
	return latest
}

// currentStreak 从今天往回数连续有训练记录的日历天。
// 恰好缺一天时游标前移 2 天继续（维持既有线上口径，勿“修正”），
// 缺口超过一天立即终止，最终计数扣掉起始当天。
func currentStreak(records []model.UserActivity, now time.Time) int {
	if len(records) == 0 {
		return 0
	}

	daySet := make(map[time.Time]bool, len(records))
	for i := range records {
		t := records[i].LastAccessedAt
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		daySet[day] = true
	}

	days := make([]time.Time, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	cursor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	streak := 0

	for _, day := range days {
		gap := int(cursor.Sub(day).Hours() / 24)
		switch {
		case gap == 0:
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		case gap == 1:
			streak++
			cursor = cursor.AddDate(0, 0, -2)
		default:
			return maxInt(0, streak-1)
		}
	}

	return maxInt(0, streak-1)
}

// performanceValue 单条记录的表现值：有评分时取完成度与评分换算的均值
func performanceValue(a *model.UserActivity) float64 {
	if a.Rating != nil {
		return math.Round(float64(a.CompletionPercentage+*a.Rating*20) / 2)
	}
	return float64(a.CompletionPercentage)
}

// improvementRate 最近5条与再往前5条的表现值均值之差的百分比，取整不封顶
func improvementRate(records []model.UserActivity) int {
	if len(records) < improvementGroupSize*2 {
		return 0
	}

	recent := records[:improvementGroupSize]
	older := records[improvementGroupSize : improvementGroupSize*2]

	recentAvg := 0.0
	for i := range recent {
		recentAvg += performanceValue(&recent[i])
	}
	recentAvg /= float64(len(recent))

	olderAvg := 0.0
	for i := range older {
		olderAvg += performanceValue(&older[i])
	}
	olderAvg /= float64(len(older))

	if olderAvg == 0 {
		return 0
	}
	return int(math.Round((recentAvg - olderAvg) / olderAvg * 100))
}

// successRate 最近不超过20次训练中达标（完成度≥80且评分≥4）的比例
func successRate(records []model.UserActivity) int {
	window := records
	if len(window) > successRateWindow {
		window = window[:successRateWindow]
	}
	if len(window) == 0 {
		return 0
	}

	qualified := 0
	for i := range window {
		if window[i].CompletionPercentage >= 80 &&
			window[i].Rating != nil && *window[i].Rating >= 4 {
			qualified++
		}
	}
	if qualified == 0 {
		return 0
	}
	return int(math.Round(float64(qualified) / float64(len(window)) * 100))
}

// confidenceGrowth 最近10条有评分记录与其前10条的平均评分差，×20 映射到百分制刻度
func confidenceGrowth(records []model.UserActivity) int {
	var rated []model.UserActivity
	for i := range records {
		if records[i].Rating != nil {
			rated = append(rated, records[i])
		}
	}

	if len(rated) <= confidenceGroupSize {
		return 0
	}

	recent := rated[:confidenceGroupSize]
	older := rated[confidenceGroupSize:]
	if len(older) > confidenceGroupSize {
		older = older[:confidenceGroupSize]
	}

	recentSum, olderSum := 0, 0
	for i := range recent {
		recentSum += *recent[i].Rating
	}
	for i := range older {
		olderSum += *older[i].Rating
	}

	recentAvg := float64(recentSum) / float64(len(recent)) * 20
	olderAvg := float64(olderSum) / float64(len(older)) * 20

	return int(math.Round(recentAvg - olderAvg))
}

// positionRank 同位置球员按单条得分（完成度+评分×20）的人均值降序排名，
// 稳定排序保持聚合插入顺序，目标用户无同组记录时默认第1名
func positionRank(userID uint, peerRecords []model.UserActivity) int {
	type peerScore struct {
		userID uint
		sum    float64
		count  int
	}

	var order []uint
	byUser := make(map[uint]*peerScore)

	for i := range peerRecords {
		rec := &peerRecords[i]
		score := float64(rec.CompletionPercentage)
		if rec.Rating != nil {
			score += float64(*rec.Rating * 20)
		}

		entry, ok := byUser[rec.UserID]
		if !ok {
			entry = &peerScore{userID: rec.UserID}
			byUser[rec.UserID] = entry
			order = append(order, rec.UserID)
		}
		entry.sum += score
		entry.count++
	}

	if _, ok := byUser[userID]; !ok {
		return 1
	}

	ranked := make([]*peerScore, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, byUser[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].sum/float64(ranked[i].count) > ranked[j].sum/float64(ranked[j].count)
	})

	for i, entry := range ranked {
		if entry.userID == userID {
			return i + 1
		}
	}
	return 1
}

func positionProgress(records []model.UserActivity) int {
	total := len(records)
	if total < 1 {
		total = 1
	}
	progress := int(math.Round(float64(completedCount(records)) / float64(total) * 100))
	return minInt(100, progress)
}

// trainingGoals 每周训练目标只由训练水平决定，月目标固定为周目标×4
func trainingGoals(level model.TrainingLevel) (weekly, monthly int) {
	switch level {
	case model.Beginner:
		weekly = 2
	case model.Intermediate:
		weekly = 3
	default:
		weekly = 4
	}
	return weekly, weekly * 4
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
