package model

import "time"

// User identifies an account. Identity itself is delegated to an external
// provider; the service only maps an API token to a user id, which scopes
// every other record.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex" json:"-"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
