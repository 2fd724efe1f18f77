package model

import "time"

// Display colors for calendar events. Completion recolors the mirrored
// event rather than changing its schedule.
const (
	EventColorDefault   = "#7C3AED"
	EventColorCompleted = "#22c55e"
)

// Event is a calendar entry. Events created from a task carry IsTaskEvent
// and a TaskID forward-reference to the source task.
type Event struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index" json:"userId"`
	Title       string    `json:"title"`
	Start       time.Time `gorm:"column:start_time;index" json:"start"`
	End         time.Time `gorm:"column:end_time" json:"end"`
	AllDay      bool      `json:"allDay"`
	Description string    `json:"desc,omitempty"`

	Category        *string `gorm:"index" json:"category,omitempty"`
	CategoryLabel   string  `json:"categoryLabel,omitempty"`
	CategoryColor   string  `json:"categoryColor,omitempty"`
	Importance      *string `gorm:"index" json:"importance,omitempty"`
	ImportanceLabel string  `json:"importanceLabel,omitempty"`
	ImportanceColor string  `json:"importanceColor,omitempty"`

	IsTaskEvent bool    `json:"isTaskEvent"`
	TaskID      *string `gorm:"index" json:"taskId,omitempty"`
	Color       string  `json:"color,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
