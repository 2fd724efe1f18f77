package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jacoagency/productivity/internal/model"
	"github.com/jacoagency/productivity/internal/repository"
)

// mirrorDuration is the default calendar window of a task's mirrored event.
const mirrorDuration = time.Hour

// TaskInput carries the fields accepted on task creation.
type TaskInput struct {
	Title      string
	DueDate    *time.Time
	Folder     string
	FolderDate string
	Category   *string
	Importance *string
}

// TaskPatch carries partial task updates. Nil means "leave unchanged"; an
// empty category/importance id clears the reference.
type TaskPatch struct {
	Title      *string
	Completed  *bool
	DueDate    *time.Time
	Folder     *string
	Category   *string
	Importance *string
}

// EventInput carries the fields accepted on event creation. IsTaskEvent asks
// for a mirrored task to be created alongside the event.
type EventInput struct {
	Title       string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Description string
	Category    *string
	Importance  *string
	Color       string
	IsTaskEvent bool
}

// EventPatch carries partial event updates.
type EventPatch struct {
	Title       *string
	Start       *time.Time
	End         *time.Time
	AllDay      *bool
	Description *string
	Category    *string
	Importance  *string
	Color       *string
}

// SyncService owns tasks and events and keeps the best-effort mirror
// relationship between them: a task with a due date has exactly one calendar
// event, edits and deletions propagate one hop to the counterpart, and
// completion recolors the mirror. There is no transaction spanning the two
// collections; a failure between writes leaves the mirror behind, which is
// accepted.
type SyncService struct {
	tasks    *repository.TaskRepository
	events   *repository.EventRepository
	registry *RegistryService
	now      func() time.Time
}

func NewSyncService(tasks *repository.TaskRepository, events *repository.EventRepository, registry *RegistryService) *SyncService {
	return &SyncService{tasks: tasks, events: events, registry: registry, now: time.Now}
}

func (s *SyncService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

// CreateTask validates the input, rejects overlapping schedules and inserts
// the task plus, when a due date is present, its mirrored event with a
// one-hour window. The two records are cross-linked by id.
func (s *SyncService) CreateTask(ctx context.Context, userID string, input TaskInput) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	folder := input.Folder
	if folder == "" {
		folder = model.FolderDay
	}
	switch folder {
	case model.FolderDay, model.FolderMonth, model.FolderYear:
	default:
		return nil, fmt.Errorf("%w: unknown folder %q", ErrValidation, folder)
	}
	if input.DueDate == nil && folder != model.FolderYear {
		return nil, fmt.Errorf("%w: due date is required for %s folder", ErrValidation, folder)
	}

	folderDate := input.FolderDate
	if input.DueDate != nil {
		folderDate = folderDateKey(folder, *input.DueDate)
	} else if folderDate == "" {
		folderDate = s.now().Format("2006")
	}

	task := model.Task{
		ID:         newID(taskIDPrefix),
		UserID:     userID,
		Title:      input.Title,
		DueDate:    input.DueDate,
		Folder:     folder,
		FolderDate: folderDate,
	}
	s.applyCategory(ctx, userID, &task.Category, &task.CategoryLabel, &task.CategoryColor, input.Category)
	s.applyImportance(ctx, userID, &task.Importance, &task.ImportanceLabel, &task.ImportanceColor, input.Importance)

	if input.DueDate != nil {
		start := *input.DueDate
		end := start.Add(mirrorDuration)
		overlap, err := s.events.HasOverlap(ctx, userID, start, end)
		if err != nil {
			return nil, err
		}
		if overlap {
			return nil, fmt.Errorf("%w: an event is already scheduled for this time", ErrConflict)
		}
	}

	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}

	if input.DueDate != nil {
		event := model.Event{
			ID:              newID(eventIDPrefix),
			UserID:          userID,
			Title:           task.Title,
			Start:           *input.DueDate,
			End:             input.DueDate.Add(mirrorDuration),
			Description:     "Task due date",
			Category:        task.Category,
			CategoryLabel:   task.CategoryLabel,
			CategoryColor:   task.CategoryColor,
			Importance:      task.Importance,
			ImportanceLabel: task.ImportanceLabel,
			ImportanceColor: task.ImportanceColor,
			IsTaskEvent:     true,
			TaskID:          &task.ID,
			Color:           model.EventColorDefault,
		}
		if err := s.events.Create(ctx, &event); err != nil {
			return nil, err
		}
		task.EventID = &event.ID
		if err := s.tasks.Save(ctx, &task); err != nil {
			return nil, err
		}
	}

	return &task, nil
}

// UpdateTask applies a partial update and propagates title, schedule,
// category and importance changes to the mirrored event. A completion flip
// sets or clears CompletedAt and recolors the mirror; a missing mirror is
// not an error.
func (s *SyncService) UpdateTask(ctx context.Context, userID, taskID string, patch TaskPatch) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	// The legacy mirror lookup matches on the task's pre-edit title and due
	// date, so resolve it before touching the record.
	mirror := s.mirrorEvent(ctx, userID, task)

	var titleChanged, dueChanged, completedChanged, tagsChanged bool

	if patch.Title != nil && *patch.Title != task.Title {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		task.Title = *patch.Title
		titleChanged = true
	}
	if patch.Folder != nil {
		switch *patch.Folder {
		case model.FolderDay, model.FolderMonth, model.FolderYear:
			task.Folder = *patch.Folder
		default:
			return nil, fmt.Errorf("%w: unknown folder %q", ErrValidation, *patch.Folder)
		}
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
		dueChanged = true
	}
	if task.DueDate != nil && task.Folder != "" {
		task.FolderDate = folderDateKey(task.Folder, *task.DueDate)
	}
	if patch.Category != nil {
		s.applyCategory(ctx, userID, &task.Category, &task.CategoryLabel, &task.CategoryColor, patch.Category)
		tagsChanged = true
	}
	if patch.Importance != nil {
		s.applyImportance(ctx, userID, &task.Importance, &task.ImportanceLabel, &task.ImportanceColor, patch.Importance)
		tagsChanged = true
	}
	if patch.Completed != nil && *patch.Completed != task.Completed {
		task.Completed = *patch.Completed
		if task.Completed {
			completedAt := s.now()
			task.CompletedAt = &completedAt
		} else {
			task.CompletedAt = nil
		}
		completedChanged = true
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	if mirror == nil {
		// No mirrored event to update; completion still commits.
		return task, nil
	}

	if titleChanged {
		mirror.Title = task.Title
	}
	if dueChanged && task.DueDate != nil {
		window := mirror.End.Sub(mirror.Start)
		if window <= 0 {
			window = mirrorDuration
		}
		mirror.Start = *task.DueDate
		mirror.End = task.DueDate.Add(window)
	}
	if tagsChanged {
		mirror.Category = task.Category
		mirror.CategoryLabel = task.CategoryLabel
		mirror.CategoryColor = task.CategoryColor
		mirror.Importance = task.Importance
		mirror.ImportanceLabel = task.ImportanceLabel
		mirror.ImportanceColor = task.ImportanceColor
	}
	if completedChanged {
		if task.Completed {
			mirror.Color = model.EventColorCompleted
		} else {
			mirror.Color = model.EventColorDefault
		}
	}
	if titleChanged || dueChanged || tagsChanged || completedChanged {
		if err := s.events.Save(ctx, mirror); err != nil {
			return nil, err
		}
	}

	return task, nil
}

// DeleteTask removes the task and its mirrored event. Exactly one hop: the
// event is deleted directly, never through its own cascade.
func (s *SyncService) DeleteTask(ctx context.Context, userID, taskID string) error {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		return notFoundOr(err)
	}
	mirror := s.mirrorEvent(ctx, userID, task)
	if err := s.tasks.Delete(ctx, userID, taskID); err != nil {
		return err
	}
	if mirror != nil {
		return s.events.Delete(ctx, userID, mirror.ID)
	}
	return nil
}

func (s *SyncService) ListEvents(ctx context.Context, userID string) ([]model.Event, error) {
	return s.events.ListByUser(ctx, userID)
}

// CreateEvent validates the window, rejects overlaps and inserts the event.
// When IsTaskEvent is set, a mirrored task is created and cross-linked, the
// symmetric counterpart of CreateTask.
func (s *SyncService) CreateEvent(ctx context.Context, userID string, input EventInput) (*model.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.Start.IsZero() {
		return nil, fmt.Errorf("%w: start is required", ErrValidation)
	}
	end := input.End
	if end.IsZero() || !end.After(input.Start) {
		end = input.Start.Add(mirrorDuration)
	}

	overlap, err := s.events.HasOverlap(ctx, userID, input.Start, end)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, fmt.Errorf("%w: an event is already scheduled for this time", ErrConflict)
	}

	color := input.Color
	if color == "" {
		color = model.EventColorDefault
	}
	event := model.Event{
		ID:          newID(eventIDPrefix),
		UserID:      userID,
		Title:       input.Title,
		Start:       input.Start,
		End:         end,
		AllDay:      input.AllDay,
		Description: input.Description,
		IsTaskEvent: input.IsTaskEvent,
		Color:       color,
	}
	s.applyCategory(ctx, userID, &event.Category, &event.CategoryLabel, &event.CategoryColor, input.Category)
	s.applyImportance(ctx, userID, &event.Importance, &event.ImportanceLabel, &event.ImportanceColor, input.Importance)

	if err := s.events.Create(ctx, &event); err != nil {
		return nil, err
	}

	if input.IsTaskEvent {
		due := input.Start
		task := model.Task{
			ID:              newID(taskIDPrefix),
			UserID:          userID,
			Title:           event.Title,
			DueDate:         &due,
			Folder:          model.FolderDay,
			FolderDate:      folderDateKey(model.FolderDay, due),
			Category:        event.Category,
			CategoryLabel:   event.CategoryLabel,
			CategoryColor:   event.CategoryColor,
			Importance:      event.Importance,
			ImportanceLabel: event.ImportanceLabel,
			ImportanceColor: event.ImportanceColor,
			EventID:         &event.ID,
		}
		if err := s.tasks.Create(ctx, &task); err != nil {
			return nil, err
		}
		event.TaskID = &task.ID
		if err := s.events.Save(ctx, &event); err != nil {
			return nil, err
		}
	}

	return &event, nil
}

// UpdateEvent applies a partial update and propagates title, schedule,
// category and importance to the linked task in the same write. Color-only
// changes stay on the event.
func (s *SyncService) UpdateEvent(ctx context.Context, userID, eventID string, patch EventPatch) (*model.Event, error) {
	event, err := s.events.FindByID(ctx, userID, eventID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	var titleChanged, startChanged, tagsChanged bool

	if patch.Title != nil && *patch.Title != event.Title {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		event.Title = *patch.Title
		titleChanged = true
	}
	if patch.Start != nil {
		event.Start = *patch.Start
		startChanged = true
	}
	if patch.End != nil {
		event.End = *patch.End
	}
	if event.End.Before(event.Start) {
		return nil, fmt.Errorf("%w: end precedes start", ErrValidation)
	}
	if patch.AllDay != nil {
		event.AllDay = *patch.AllDay
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Color != nil {
		event.Color = *patch.Color
	}
	if patch.Category != nil {
		s.applyCategory(ctx, userID, &event.Category, &event.CategoryLabel, &event.CategoryColor, patch.Category)
		tagsChanged = true
	}
	if patch.Importance != nil {
		s.applyImportance(ctx, userID, &event.Importance, &event.ImportanceLabel, &event.ImportanceColor, patch.Importance)
		tagsChanged = true
	}

	if err := s.events.Save(ctx, event); err != nil {
		return nil, err
	}

	if event.TaskID == nil || !(titleChanged || startChanged || tagsChanged) {
		return event, nil
	}

	task, err := s.tasks.FindByID(ctx, userID, *event.TaskID)
	if err != nil {
		// Dangling forward-reference; the event update already committed.
		return event, nil
	}
	if titleChanged {
		task.Title = event.Title
	}
	if startChanged {
		start := event.Start
		task.DueDate = &start
		if task.Folder != "" {
			task.FolderDate = folderDateKey(task.Folder, start)
		}
	}
	if tagsChanged {
		task.Category = event.Category
		task.CategoryLabel = event.CategoryLabel
		task.CategoryColor = event.CategoryColor
		task.Importance = event.Importance
		task.ImportanceLabel = event.ImportanceLabel
		task.ImportanceColor = event.ImportanceColor
	}
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes the event and, when it was created from a task, that
// task. One hop only.
func (s *SyncService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	event, err := s.events.FindByID(ctx, userID, eventID)
	if err != nil {
		return notFoundOr(err)
	}
	if err := s.events.Delete(ctx, userID, eventID); err != nil {
		return err
	}
	if event.TaskID != nil {
		return s.tasks.Delete(ctx, userID, *event.TaskID)
	}
	return nil
}

// ArchiveOldMonths rotates month folders older than twelve months into the
// year folder of the cutoff. Exposed as an on-demand operation.
func (s *SyncService) ArchiveOldMonths(ctx context.Context, userID string) (int64, error) {
	cutoff := s.now().AddDate(0, -12, 0)
	return s.tasks.ArchiveMonthsBefore(ctx, userID, cutoff.Format("2006-01"), cutoff.Format("2006"))
}

// mirrorEvent resolves a task's calendar counterpart. The explicit id link
// is authoritative; the title+start match only covers legacy rows that
// predate the link.
func (s *SyncService) mirrorEvent(ctx context.Context, userID string, task *model.Task) *model.Event {
	if task.EventID != nil {
		if event, err := s.events.FindByID(ctx, userID, *task.EventID); err == nil {
			return event
		}
	}
	if task.DueDate != nil {
		if event, err := s.events.FindByTitleAndStart(ctx, userID, task.Title, *task.DueDate); err == nil {
			return event
		}
	}
	return nil
}

// applyCategory sets or clears a category reference and its denormalized
// display copy. An unknown id keeps the reference but leaves the copy empty.
func (s *SyncService) applyCategory(ctx context.Context, userID string, ref **string, label, color *string, id *string) {
	if id == nil {
		return
	}
	if *id == "" {
		*ref = nil
		*label, *color = "", ""
		return
	}
	*ref = id
	if l, c, ok := s.registry.ResolveCategory(ctx, userID, *id); ok {
		*label, *color = l, c
	} else {
		*label, *color = "", ""
	}
}

func (s *SyncService) applyImportance(ctx context.Context, userID string, ref **string, label, color *string, id *string) {
	if id == nil {
		return
	}
	if *id == "" {
		*ref = nil
		*label, *color = "", ""
		return
	}
	*ref = id
	if l, c, ok := s.registry.ResolveImportance(ctx, userID, *id); ok {
		*label, *color = l, c
	} else {
		*label, *color = "", ""
	}
}

// folderDateKey derives the folder's date key from a due date.
func folderDateKey(folder string, due time.Time) string {
	switch folder {
	case model.FolderMonth:
		return due.Format("2006-01")
	case model.FolderYear:
		return due.Format("2006")
	default:
		return due.Format("2006-01-02")
	}
}
