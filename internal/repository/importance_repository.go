package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jacoagency/productivity/internal/model"
)

// ImportanceRepository manages per-user custom importance levels.
type ImportanceRepository struct {
	db *gorm.DB
}

func NewImportanceRepository(db *gorm.DB) *ImportanceRepository {
	return &ImportanceRepository{db: db}
}

func (r *ImportanceRepository) Create(ctx context.Context, level *model.ImportanceLevel) error {
	if err := r.db.WithContext(ctx).Create(level).Error; err != nil {
		return fmt.Errorf("create importance level: %w", err)
	}
	return nil
}

func (r *ImportanceRepository) ListByUser(ctx context.Context, userID string) ([]model.ImportanceLevel, error) {
	var levels []model.ImportanceLevel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

func (r *ImportanceRepository) FindByID(ctx context.Context, userID, levelID string) (*model.ImportanceLevel, error) {
	var level model.ImportanceLevel
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, levelID).First(&level).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *ImportanceRepository) Save(ctx context.Context, level *model.ImportanceLevel) error {
	if err := r.db.WithContext(ctx).Save(level).Error; err != nil {
		return fmt.Errorf("save importance level: %w", err)
	}
	return nil
}

func (r *ImportanceRepository) Delete(ctx context.Context, userID, levelID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, levelID).
		Delete(&model.ImportanceLevel{}).Error; err != nil {
		return fmt.Errorf("delete importance level: %w", err)
	}
	return nil
}
