package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jacoagency/productivity/internal/model"
)

// TaskRepository handles CRUD for tasks. Every query is scoped by the
// owning user id.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByFolder returns the tasks directly contained in a folder node.
func (r *TaskRepository) ListByFolder(ctx context.Context, userID, folder, folderDate string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND folder = ? AND folder_date = ?", userID, folder, folderDate).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// UpdateCategoryRefs rewrites the denormalized label/color on every task of
// the user referencing the category.
func (r *TaskRepository) UpdateCategoryRefs(ctx context.Context, userID, categoryID, label, color string) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND category = ?", userID, categoryID).
		Updates(map[string]interface{}{"category_label": label, "category_color": color}).Error; err != nil {
		return fmt.Errorf("update category refs: %w", err)
	}
	return nil
}

// ClearCategoryRefs unsets the reference and denormalized copy on every task
// of the user referencing the category. The tasks themselves survive.
func (r *TaskRepository) ClearCategoryRefs(ctx context.Context, userID, categoryID string) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND category = ?", userID, categoryID).
		Updates(map[string]interface{}{"category": nil, "category_label": "", "category_color": ""}).Error; err != nil {
		return fmt.Errorf("clear category refs: %w", err)
	}
	return nil
}

func (r *TaskRepository) UpdateImportanceRefs(ctx context.Context, userID, levelID, label, color string) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND importance = ?", userID, levelID).
		Updates(map[string]interface{}{"importance_label": label, "importance_color": color}).Error; err != nil {
		return fmt.Errorf("update importance refs: %w", err)
	}
	return nil
}

func (r *TaskRepository) ClearImportanceRefs(ctx context.Context, userID, levelID string) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND importance = ?", userID, levelID).
		Updates(map[string]interface{}{"importance": nil, "importance_label": "", "importance_color": ""}).Error; err != nil {
		return fmt.Errorf("clear importance refs: %w", err)
	}
	return nil
}

// ArchiveMonthsBefore moves month folders with a date key strictly below the
// cutoff into the given year folder. Returns the number of moved tasks.
func (r *TaskRepository) ArchiveMonthsBefore(ctx context.Context, userID, cutoffMonth, yearKey string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND folder = ? AND folder_date < ?", userID, model.FolderMonth, cutoffMonth).
		Updates(map[string]interface{}{"folder": model.FolderYear, "folder_date": yearKey})
	if res.Error != nil {
		return 0, fmt.Errorf("archive tasks: %w", res.Error)
	}
	return res.RowsAffected, nil
}
