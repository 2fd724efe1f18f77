package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jacoagency/productivity/internal/repository"
)

type testEnv struct {
	db       *gorm.DB
	tasks    *repository.TaskRepository
	events   *repository.EventRepository
	registry *RegistryService
	sync     *SyncService
	stats    *StatsService
	defaults *DefaultsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repository.NewDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	tasks := repository.NewTaskRepository(db)
	events := repository.NewEventRepository(db)
	categories := repository.NewCategoryRepository(db)
	importance := repository.NewImportanceRepository(db)
	defaults := repository.NewDefaultTaskRepository(db)

	registry := NewRegistryService(categories, importance, tasks, events)
	return &testEnv{
		db:       db,
		tasks:    tasks,
		events:   events,
		registry: registry,
		sync:     NewSyncService(tasks, events, registry),
		stats:    NewStatsService(tasks),
		defaults: NewDefaultsService(defaults, tasks),
	}
}

func ptr[T any](v T) *T {
	return &v
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}
