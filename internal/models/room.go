package models

import (
	"time"

	"github.com/google/uuid"
)

// RoomDB represents a room record in the database
type RoomDB struct {
	RoomID          uuid.UUID `json:"id" db:"id"`                             // Primary key
	Name            string    `json:"name" db:"name"`                         // Unique among active rooms
	DisplayName     string    `json:"display_name" db:"display_name"`         // Human-readable name
	Description     *string   `json:"description" db:"description"`           // Optional description
	CreatorID       uuid.UUID `json:"creator_id" db:"creator_id"`             // Owning user
	MaxParticipants int       `json:"max_participants" db:"max_participants"` // Active membership cap
	IsActive        bool      `json:"is_active" db:"is_active"`               // Soft-delete flag
	CreatedAt       time.Time `json:"created_at" db:"created_at"`             // Creation timestamp
}

// RoomWithCount is a room row joined with its current active member count.
// The count is always computed from room_memberships, never stored.
type RoomWithCount struct {
	RoomDB
	ParticipantCount int `json:"participant_count" db:"participant_count"`
}
