package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jacoagency/productivity/internal/model"
	"github.com/jacoagency/productivity/internal/repository"
)

// DefaultsService manages the per-user recurring task templates and their
// per-day completion state, and serves the "today" view of day-folder tasks.
type DefaultsService struct {
	defaults *repository.DefaultTaskRepository
	tasks    *repository.TaskRepository
	now      func() time.Time
}

func NewDefaultsService(defaults *repository.DefaultTaskRepository, tasks *repository.TaskRepository) *DefaultsService {
	return &DefaultsService{defaults: defaults, tasks: tasks, now: time.Now}
}

func (s *DefaultsService) ListTemplates(ctx context.Context, userID string) ([]model.DefaultTask, error) {
	return s.defaults.ListByUser(ctx, userID)
}

func (s *DefaultsService) CreateTemplate(ctx context.Context, userID, title, category string, estimatedTime int) (*model.DefaultTask, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	template := model.DefaultTask{
		ID:            newID(defaultTaskIDPrefix),
		UserID:        userID,
		Title:         title,
		Category:      category,
		EstimatedTime: estimatedTime,
	}
	if err := s.defaults.Create(ctx, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

// DeleteTemplate removes the template and all of its per-day status rows.
func (s *DefaultsService) DeleteTemplate(ctx context.Context, userID, templateID string) error {
	if _, err := s.defaults.FindByID(ctx, userID, templateID); err != nil {
		return notFoundOr(err)
	}
	if err := s.defaults.Delete(ctx, userID, templateID); err != nil {
		return err
	}
	return s.defaults.DeleteStatuses(ctx, userID, templateID)
}

// SetStatus upserts the completion state of a template for one calendar day.
func (s *DefaultsService) SetStatus(ctx context.Context, userID, templateID, date string, completed bool) (*model.DefaultTaskStatus, error) {
	if templateID == "" || date == "" {
		return nil, fmt.Errorf("%w: defaultTaskId and date are required", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be formatted as 2006-01-02", ErrValidation)
	}

	status, err := s.defaults.FindStatus(ctx, userID, templateID, date)
	switch {
	case err == nil:
		status.Completed = completed
		if err := s.defaults.SaveStatus(ctx, status); err != nil {
			return nil, err
		}
		return status, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = &model.DefaultTaskStatus{
			ID:            newID(statusIDPrefix),
			UserID:        userID,
			DefaultTaskID: templateID,
			Date:          date,
			Completed:     completed,
		}
		if err := s.defaults.CreateStatus(ctx, status); err != nil {
			return nil, err
		}
		return status, nil
	default:
		return nil, fmt.Errorf("find status: %w", err)
	}
}

// TodayTasks returns the tasks filed directly in today's day folder.
func (s *DefaultsService) TodayTasks(ctx context.Context, userID string) ([]model.Task, error) {
	today := s.now().Format("2006-01-02")
	return s.tasks.ListByFolder(ctx, userID, model.FolderDay, today)
}
