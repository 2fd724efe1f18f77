package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jacoagency/productivity/internal/model"
)

// DefaultTaskRepository handles recurring task templates and their per-day
// completion statuses.
type DefaultTaskRepository struct {
	db *gorm.DB
}

func NewDefaultTaskRepository(db *gorm.DB) *DefaultTaskRepository {
	return &DefaultTaskRepository{db: db}
}

func (r *DefaultTaskRepository) Create(ctx context.Context, task *model.DefaultTask) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create default task: %w", err)
	}
	return nil
}

func (r *DefaultTaskRepository) ListByUser(ctx context.Context, userID string) ([]model.DefaultTask, error) {
	var tasks []model.DefaultTask
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *DefaultTaskRepository) FindByID(ctx context.Context, userID, taskID string) (*model.DefaultTask, error) {
	var task model.DefaultTask
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *DefaultTaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&model.DefaultTask{}).Error; err != nil {
		return fmt.Errorf("delete default task: %w", err)
	}
	return nil
}

// DeleteStatuses removes every per-day status row of a template.
func (r *DefaultTaskRepository) DeleteStatuses(ctx context.Context, userID, defaultTaskID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND default_task_id = ?", userID, defaultTaskID).
		Delete(&model.DefaultTaskStatus{}).Error; err != nil {
		return fmt.Errorf("delete default task statuses: %w", err)
	}
	return nil
}

func (r *DefaultTaskRepository) FindStatus(ctx context.Context, userID, defaultTaskID, date string) (*model.DefaultTaskStatus, error) {
	var status model.DefaultTaskStatus
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND default_task_id = ? AND date = ?", userID, defaultTaskID, date).
		First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *DefaultTaskRepository) CreateStatus(ctx context.Context, status *model.DefaultTaskStatus) error {
	if err := r.db.WithContext(ctx).Create(status).Error; err != nil {
		return fmt.Errorf("create default task status: %w", err)
	}
	return nil
}

func (r *DefaultTaskRepository) SaveStatus(ctx context.Context, status *model.DefaultTaskStatus) error {
	if err := r.db.WithContext(ctx).Save(status).Error; err != nil {
		return fmt.Errorf("save default task status: %w", err)
	}
	return nil
}

func (r *DefaultTaskRepository) ListStatuses(ctx context.Context, userID, date string) ([]model.DefaultTaskStatus, error) {
	var statuses []model.DefaultTaskStatus
	if err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).
		Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}
