package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                     // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username
	Email        string    `json:"email" db:"email"`               // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`           // bcrypt hash, never serialized
	IsActive     bool      `json:"is_active" db:"is_active"`       // Soft-delete flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}
