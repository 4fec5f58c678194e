package domain

import "time"

// User represents a registered library member.
//
// The name is the primary identifier and is unique across the directory.
// Users are immutable after registration and are never deleted.
type User struct {
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash,omitempty"` // Stored hashed, filter from API responses
	CreatedAt    time.Time `json:"created_at"`
}
