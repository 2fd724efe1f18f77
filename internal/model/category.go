package model

import "time"

// Category tags tasks and events by area (work, health, study, etc.).
// A fixed built-in set is unioned with per-user custom entries; only the
// custom entries live in this table.
type Category struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"userId,omitempty"`
	Label     string    `json:"label"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ImportanceLevel tags tasks and events by priority. Same built-in/custom
// split as Category.
type ImportanceLevel struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"userId,omitempty"`
	Label     string    `json:"label"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
