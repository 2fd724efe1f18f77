package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoagency/productivity/internal/model"
)

func TestSnapshotEmpty(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.stats.Snapshot(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTasks)
	assert.Zero(t, stats.CompletionRate)
	assert.Len(t, stats.HourlyCompletions, 24)
}

func TestSnapshot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := at(t, "2026-03-15T14:30:00Z")
	env.stats.now = func() time.Time { return now }

	seed := func(id string, due *time.Time, completedAt *time.Time) {
		task := model.Task{ID: id, UserID: "u1", Title: id, DueDate: due, Folder: model.FolderDay}
		if completedAt != nil {
			task.Completed = true
			task.CompletedAt = completedAt
		}
		require.NoError(t, env.tasks.Create(ctx, &task))
	}

	dueToday := at(t, "2026-03-15T09:00:00Z")
	dueTomorrow := at(t, "2026-03-16T09:00:00Z")
	doneAt12 := at(t, "2026-03-15T12:15:00Z")
	doneAt12b := at(t, "2026-03-15T12:45:00Z")
	doneLastWeek := at(t, "2026-03-08T12:00:00Z")

	seed("t_today_done", &dueToday, &doneAt12)
	seed("t_today_pending", &dueToday, nil)
	seed("t_tomorrow", &dueTomorrow, nil)
	seed("t_old_done", nil, &doneLastWeek)
	seed("t_done_again", &dueTomorrow, &doneAt12b)

	stats, err := env.stats.Snapshot(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalTasks)
	assert.Equal(t, 3, stats.CompletedTasks)
	assert.Equal(t, 2, stats.PendingTasks)
	assert.InDelta(t, 60.0, stats.CompletionRate, 0.01)

	assert.Equal(t, 2, stats.TodayTotal)
	assert.Equal(t, 1, stats.TodayCompleted)
	assert.Equal(t, 1, stats.TodayPending)

	require.Len(t, stats.HourlyCompletions, 24)
	assert.Equal(t, "15:00", stats.HourlyCompletions[0].Hour)
	assert.Equal(t, "14:00", stats.HourlyCompletions[23].Hour)

	// Both completions of the last day land in the 12:00 bucket; the one
	// from last week falls outside the 24h window.
	var total int
	for _, point := range stats.HourlyCompletions {
		total += point.Count
		if point.Hour == "12:00" {
			assert.Equal(t, 2, point.Count)
		}
	}
	assert.Equal(t, 2, total)
}

func TestSnapshotScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := model.Task{ID: "t_other", UserID: "u2", Title: "other", Folder: model.FolderDay}
	require.NoError(t, env.tasks.Create(ctx, &task))

	stats, err := env.stats.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTasks)
}
