package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jacoagency/productivity/internal/model"
)

// EventRepository handles CRUD for calendar events, scoped by owning user.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) ListByUser(ctx context.Context, userID string) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, userID, eventID string) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, eventID).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByTask resolves a mirrored event through its explicit task link.
func (r *EventRepository) FindByTask(ctx context.Context, userID, taskID string) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("user_id = ? AND task_id = ?", userID, taskID).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByTitleAndStart is the legacy-compatibility lookup for rows lacking an
// explicit task link. Duplicate titles at the same instant defeat it, which
// is why the explicit link always wins.
func (r *EventRepository) FindByTitleAndStart(ctx context.Context, userID, title string, start time.Time) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND title = ? AND start_time = ?", userID, title, start).
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// HasOverlap reports whether any of the user's events overlaps [start, end).
// Strictly adjacent intervals do not collide.
func (r *EventRepository) HasOverlap(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("user_id = ? AND start_time < ? AND end_time > ?", userID, end, start).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count overlapping events: %w", err)
	}
	return count > 0, nil
}

func (r *EventRepository) Save(ctx context.Context, event *model.Event) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, userID, eventID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, eventID).
		Delete(&model.Event{}).Error; err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (r *EventRepository) UpdateCategoryRefs(ctx context.Context, userID, categoryID, label, color string) error {
	if err := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("user_id = ? AND category = ?", userID, categoryID).
		Updates(map[string]interface{}{"category_label": label, "category_color": color}).Error; err != nil {
		return fmt.Errorf("update category refs: %w", err)
	}
	return nil
}

func (r *EventRepository) ClearCategoryRefs(ctx context.Context, userID, categoryID string) error {
	if err := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("user_id = ? AND category = ?", userID, categoryID).
		Updates(map[string]interface{}{"category": nil, "category_label": "", "category_color": ""}).Error; err != nil {
		return fmt.Errorf("clear category refs: %w", err)
	}
	return nil
}

func (r *EventRepository) UpdateImportanceRefs(ctx context.Context, userID, levelID, label, color string) error {
	if err := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("user_id = ? AND importance = ?", userID, levelID).
		Updates(map[string]interface{}{"importance_label": label, "importance_color": color}).Error; err != nil {
		return fmt.Errorf("update importance refs: %w", err)
	}
	return nil
}

func (r *EventRepository) ClearImportanceRefs(ctx context.Context, userID, levelID string) error {
	if err := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("user_id = ? AND importance = ?", userID, levelID).
		Updates(map[string]interface{}{"importance": nil, "importance_label": "", "importance_color": ""}).Error; err != nil {
		return fmt.Errorf("clear importance refs: %w", err)
	}
	return nil
}
