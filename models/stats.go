package models

import "math"

type UserStats struct {
	WeeklyHours     float64 `json:"weeklyHours"`
	WeeklyServices  int     `json:"weeklyServices"`
	MonthlyHours    float64 `json:"monthlyHours"`
	MonthlyServices int     `json:"monthlyServices"`
}

// OverallStats keeps the historical wire name totalActiveUsers, but the
// figure is the number of users with any session that started in the last
// seven days, not users currently clocked in.
type OverallStats struct {
	TotalUsers          int     `json:"totalUsers"`
	RecentlyActiveUsers int     `json:"totalActiveUsers"`
	TotalHoursThisWeek  float64 `json:"totalHoursThisWeek"`
	TotalHoursThisMonth float64 `json:"totalHoursThisMonth"`
}

// MinutesToHours converts minutes to hours rounded to one decimal place.
func MinutesToHours(minutes int64) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}
