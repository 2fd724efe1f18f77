package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jacoagency/productivity/internal/model"
	"github.com/jacoagency/productivity/internal/repository"
)

// Built-in categories and importance levels. These ship with the product,
// are the same for every user and cannot be edited or deleted; user-created
// entries are unioned in behind them.
var builtinCategories = []model.Category{
	{ID: "work", Label: "Work", Color: "#2563EB"},
	{ID: "personal", Label: "Personal", Color: "#16A34A"},
	{ID: "study", Label: "Study", Color: "#9333EA"},
	{ID: "health", Label: "Health", Color: "#DC2626"},
	{ID: "social", Label: "Social", Color: "#CA8A04"},
	{ID: "other", Label: "Other", Color: "#6B7280"},
}

var builtinImportanceLevels = []model.ImportanceLevel{
	{ID: "high", Label: "High Priority", Color: "#DC2626"},
	{ID: "medium", Label: "Medium Priority", Color: "#CA8A04"},
	{ID: "low", Label: "Low Priority", Color: "#16A34A"},
}

// RegistryService maps category/importance ids to display label + color and
// owns the per-user custom entries. Label/color edits are propagated to the
// denormalized copies stored on referencing tasks and events so rendering
// never joins.
type RegistryService struct {
	categories *repository.CategoryRepository
	importance *repository.ImportanceRepository
	tasks      *repository.TaskRepository
	events     *repository.EventRepository
}

func NewRegistryService(
	categories *repository.CategoryRepository,
	importance *repository.ImportanceRepository,
	tasks *repository.TaskRepository,
	events *repository.EventRepository,
) *RegistryService {
	return &RegistryService{categories: categories, importance: importance, tasks: tasks, events: events}
}

// ListCategories returns built-ins first, then the user's custom entries in
// creation order.
func (s *RegistryService) ListCategories(ctx context.Context, userID string) ([]model.Category, error) {
	custom, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Category, 0, len(builtinCategories)+len(custom))
	out = append(out, builtinCategories...)
	out = append(out, custom...)
	return out, nil
}

func (s *RegistryService) CreateCategory(ctx context.Context, userID, label, color string) (*model.Category, error) {
	if strings.TrimSpace(label) == "" {
		return nil, fmt.Errorf("%w: label is required", ErrValidation)
	}
	category := model.Category{
		ID:     newID(categoryIDPrefix),
		UserID: userID,
		Label:  label,
		Color:  color,
	}
	if err := s.categories.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *RegistryService) UpdateCategory(ctx context.Context, userID, categoryID, label, color string) (*model.Category, error) {
	if isBuiltinCategory(categoryID) {
		return nil, fmt.Errorf("%w: built-in category %q cannot be modified", ErrValidation, categoryID)
	}
	if strings.TrimSpace(label) == "" {
		return nil, fmt.Errorf("%w: label is required", ErrValidation)
	}
	category, err := s.categories.FindByID(ctx, userID, categoryID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	category.Label = label
	category.Color = color
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	if err := s.tasks.UpdateCategoryRefs(ctx, userID, categoryID, label, color); err != nil {
		return nil, err
	}
	if err := s.events.UpdateCategoryRefs(ctx, userID, categoryID, label, color); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a custom entry and unsets the reference (and the
// denormalized label/color) on every referencing task and event. The
// referencing records themselves are kept.
func (s *RegistryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if isBuiltinCategory(categoryID) {
		return fmt.Errorf("%w: built-in category %q cannot be deleted", ErrValidation, categoryID)
	}
	if _, err := s.categories.FindByID(ctx, userID, categoryID); err != nil {
		return notFoundOr(err)
	}
	if err := s.categories.Delete(ctx, userID, categoryID); err != nil {
		return err
	}
	if err := s.tasks.ClearCategoryRefs(ctx, userID, categoryID); err != nil {
		return err
	}
	return s.events.ClearCategoryRefs(ctx, userID, categoryID)
}

func (s *RegistryService) ListImportanceLevels(ctx context.Context, userID string) ([]model.ImportanceLevel, error) {
	custom, err := s.importance.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.ImportanceLevel, 0, len(builtinImportanceLevels)+len(custom))
	out = append(out, builtinImportanceLevels...)
	out = append(out, custom...)
	return out, nil
}

func (s *RegistryService) CreateImportanceLevel(ctx context.Context, userID, label, color string) (*model.ImportanceLevel, error) {
	if strings.TrimSpace(label) == "" {
		return nil, fmt.Errorf("%w: label is required", ErrValidation)
	}
	level := model.ImportanceLevel{
		ID:     newID(importanceIDPrefix),
		UserID: userID,
		Label:  label,
		Color:  color,
	}
	if err := s.importance.Create(ctx, &level); err != nil {
		return nil, err
	}
	return &level, nil
}

func (s *RegistryService) UpdateImportanceLevel(ctx context.Context, userID, levelID, label, color string) (*model.ImportanceLevel, error) {
	if isBuiltinImportance(levelID) {
		return nil, fmt.Errorf("%w: built-in importance level %q cannot be modified", ErrValidation, levelID)
	}
	if strings.TrimSpace(label) == "" {
		return nil, fmt.Errorf("%w: label is required", ErrValidation)
	}
	level, err := s.importance.FindByID(ctx, userID, levelID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	level.Label = label
	level.Color = color
	if err := s.importance.Save(ctx, level); err != nil {
		return nil, err
	}
	if err := s.tasks.UpdateImportanceRefs(ctx, userID, levelID, label, color); err != nil {
		return nil, err
	}
	if err := s.events.UpdateImportanceRefs(ctx, userID, levelID, label, color); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *RegistryService) DeleteImportanceLevel(ctx context.Context, userID, levelID string) error {
	if isBuiltinImportance(levelID) {
		return fmt.Errorf("%w: built-in importance level %q cannot be deleted", ErrValidation, levelID)
	}
	if _, err := s.importance.FindByID(ctx, userID, levelID); err != nil {
		return notFoundOr(err)
	}
	if err := s.importance.Delete(ctx, userID, levelID); err != nil {
		return err
	}
	if err := s.tasks.ClearImportanceRefs(ctx, userID, levelID); err != nil {
		return err
	}
	return s.events.ClearImportanceRefs(ctx, userID, levelID)
}

// ResolveCategory returns the display label and color for a category id,
// looking at built-ins first, then the user's custom entries.
func (s *RegistryService) ResolveCategory(ctx context.Context, userID, categoryID string) (label, color string, ok bool) {
	for _, c := range builtinCategories {
		if c.ID == categoryID {
			return c.Label, c.Color, true
		}
	}
	category, err := s.categories.FindByID(ctx, userID, categoryID)
	if err != nil {
		return "", "", false
	}
	return category.Label, category.Color, true
}

func (s *RegistryService) ResolveImportance(ctx context.Context, userID, levelID string) (label, color string, ok bool) {
	for _, l := range builtinImportanceLevels {
		if l.ID == levelID {
			return l.Label, l.Color, true
		}
	}
	level, err := s.importance.FindByID(ctx, userID, levelID)
	if err != nil {
		return "", "", false
	}
	return level.Label, level.Color, true
}

func isBuiltinCategory(id string) bool {
	for _, c := range builtinCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func isBuiltinImportance(id string) bool {
	for _, l := range builtinImportanceLevels {
		if l.ID == id {
			return true
		}
	}
	return false
}
