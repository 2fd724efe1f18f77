package model

import "time"

// DefaultTask is a per-user recurring daily template shown alongside the
// day's regular tasks.
type DefaultTask struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"index" json:"userId"`
	Title         string    `json:"title"`
	Category      string    `json:"category,omitempty"`
	EstimatedTime int       `json:"estimatedTime,omitempty"` // minutes
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DefaultTaskStatus records per-day completion of a template. One row per
// (user, template, date) triple, upserted on toggle.
type DefaultTaskStatus struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"index:idx_status_lookup" json:"userId"`
	DefaultTaskID string    `gorm:"index:idx_status_lookup" json:"defaultTaskId"`
	Date          string    `gorm:"index:idx_status_lookup" json:"date"` // "2006-01-02"
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
