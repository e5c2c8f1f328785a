package model

import "time"

// DashboardStats 仪表盘统计结果，按需计算，不落库
// swagger:model DashboardStats
type DashboardStats struct {
	TotalSessions      int64     `json:"totalSessions"`
	CompletedSessions  int64     `json:"completedSessions"`
	TotalWatchTime     int       `json:"totalWatchTime"`
	AverageRating      float64   `json:"averageRating"`
	CertificatesEarned int       `json:"certificatesEarned"`
	CurrentStreak      int       `json:"currentStreak"`
	LastActive         time.Time `json:"lastActive"`
	ImprovementRate    int       `json:"improvementRate"`
	SuccessRate        int       `json:"successRate"`
	ConfidenceGrowth   int       `json:"confidenceGrowth"`
	PositionRank       int       `json:"positionRank"`
	PositionProgress   int       `json:"positionProgress"`
	ThisWeekSessions   int64     `json:"thisWeekSessions"`
	ThisMonthSessions  int64     `json:"thisMonthSessions"`
	WeeklyGoal         int       `json:"weeklyGoal"`
	MonthlyGoal        int       `json:"monthlyGoal"`
}

// BookingCounts 预约总数/完成数，由预约仓库预先统计后透传给统计引擎
type BookingCounts struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
}

// WeekProgress 周趋势序列中的一个点
// swagger:model WeekProgress
type WeekProgress struct {
	Week              string  `json:"week"`
	Sessions          int     `json:"sessions"`
	WatchTimeSeconds  int     `json:"watchTime"`
	AverageCompletion float64 `json:"averageCompletion"`
}
