package service

import (
	"context"
	"time"

	"github.com/jacoagency/productivity/internal/repository"
)

// HourlyPoint is one bucket of the completions-per-hour series.
type HourlyPoint struct {
	Hour  string `json:"hour"` // "15:04", bucket start
	Count int    `json:"count"`
}

// DashboardStats aggregates the numbers shown on the dashboard.
type DashboardStats struct {
	TotalTasks     int     `json:"totalTasks"`
	CompletedTasks int     `json:"completedTasks"`
	PendingTasks   int     `json:"pendingTasks"`
	CompletionRate float64 `json:"completionRate"` // percent

	TodayTotal     int `json:"todayTotal"`
	TodayCompleted int `json:"todayCompleted"`
	TodayPending   int `json:"todayPending"`

	HourlyCompletions []HourlyPoint `json:"hourlyCompletions"`
}

// StatsService computes dashboard aggregates from the user's full task list.
// The client polls this periodically; each call recomputes from scratch.
type StatsService struct {
	tasks *repository.TaskRepository
	now   func() time.Time
}

func NewStatsService(tasks *repository.TaskRepository) *StatsService {
	return &StatsService{tasks: tasks, now: time.Now}
}

func (s *StatsService) Snapshot(ctx context.Context, userID string) (*DashboardStats, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	today := now.Format("2006-01-02")

	stats := &DashboardStats{TotalTasks: len(tasks)}

	for _, task := range tasks {
		if task.Completed {
			stats.CompletedTasks++
		}
		if task.DueDate != nil && task.DueDate.Format("2006-01-02") == today {
			stats.TodayTotal++
			if task.Completed {
				stats.TodayCompleted++
			}
		}
	}
	stats.PendingTasks = stats.TotalTasks - stats.CompletedTasks
	stats.TodayPending = stats.TodayTotal - stats.TodayCompleted
	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}

	// 24 one-hour buckets ending with the current hour.
	base := now.Truncate(time.Hour).Add(-23 * time.Hour)
	stats.HourlyCompletions = make([]HourlyPoint, 24)
	for i := range stats.HourlyCompletions {
		bucket := base.Add(time.Duration(i) * time.Hour)
		point := HourlyPoint{Hour: bucket.Format("15:04")}
		for _, task := range tasks {
			if task.CompletedAt == nil {
				continue
			}
			if !task.CompletedAt.Before(bucket) && task.CompletedAt.Before(bucket.Add(time.Hour)) {
				point.Count++
			}
		}
		stats.HourlyCompletions[i] = point
	}

	return stats, nil
}
