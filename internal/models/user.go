// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Avatar is the gravatar URL computed
// from the email at registration time.
//
// Users are hard-deleted on account deletion: the email column carries a plain
// unique constraint, so a lingering soft-deleted row would block the address
// from ever registering again.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
