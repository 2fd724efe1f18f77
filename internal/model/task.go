package model

import "time"

// Folder types for date-based task navigation.
const (
	FolderDay   = "day"
	FolderMonth = "month"
	FolderYear  = "year"
)

// Task represents a single item in the planner. A task with a due date
// carries a mirrored calendar event; EventID is the back-reference to it.
type Task struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"index" json:"userId"`
	Title       string     `json:"title"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`

	Category        *string `gorm:"index" json:"category,omitempty"`
	CategoryLabel   string  `json:"categoryLabel,omitempty"`
	CategoryColor   string  `json:"categoryColor,omitempty"`
	Importance      *string `gorm:"index" json:"importance,omitempty"`
	ImportanceLabel string  `json:"importanceLabel,omitempty"`
	ImportanceColor string  `json:"importanceColor,omitempty"`

	Folder     string `json:"folder,omitempty"`     // day, month or year
	FolderDate string `json:"folderDate,omitempty"` // "2006-01-02" for day, "2006-01" for month, "2006" for year

	EventID *string `gorm:"index" json:"eventId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
