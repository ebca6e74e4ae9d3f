package models

import (
	"time"

	"github.com/google/uuid"
)

// MembershipDB represents one visit of a user to a room. A user accumulates
// a new row per rejoin; at most one row per (user, room) is active at a time.
type MembershipDB struct {
	MembershipID uuid.UUID  `json:"id" db:"id"`                 // Primary key
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`       // FK to users
	RoomID       uuid.UUID  `json:"room_id" db:"room_id"`       // FK to rooms
	JoinedAt     time.Time  `json:"joined_at" db:"joined_at"`   // Visit start
	LeftAt       *time.Time `json:"left_at" db:"left_at"`       // Visit end, nil while active
	IsActive     bool       `json:"is_active" db:"is_active"`   // Cleared on leave or room delete
}

// RoomMemberDB is an active membership joined with the member's identity,
// used for room detail responses.
type RoomMemberDB struct {
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	Username string    `json:"username" db:"username"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

// JoinCredential is the scoped media-session token minted on join.
type JoinCredential struct {
	Token               string `json:"token"`                // Signed LiveKit access token
	RoomName            string `json:"room_name"`            // LiveKit room name
	ParticipantIdentity string `json:"participant_identity"` // Identity embedded in the token
	URL                 string `json:"livekit_url"`          // Public media server URL
}
