package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
)

// ErrorResponse is the JSON body for all error outcomes.
// Code distinguishes outcomes sharing a status, e.g. the two 409s on join.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Room not found
	Error string `json:"error"`

	// Machine-checkable outcome code
	// example: room_full
	Code string `json:"code,omitempty"`
}

// UserResponse represents a user in API responses. The password hash is
// never included.
// swagger:model UserResponse
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// RoomResponse represents a room in API responses, with its live member count.
// swagger:model RoomResponse
type RoomResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	DisplayName      string    `json:"display_name"`
	Description      *string   `json:"description"`
	CreatorID        uuid.UUID `json:"creator_id"`
	IsActive         bool      `json:"is_active"`
	MaxParticipants  int       `json:"max_participants"`
	CreatedAt        time.Time `json:"created_at"`
	ParticipantCount int       `json:"participant_count"`
}

func newRoomResponse(room *models.RoomDB, participantCount int) RoomResponse {
	return RoomResponse{
		ID:               room.RoomID,
		Name:             room.Name,
		DisplayName:      room.DisplayName,
		Description:      room.Description,
		CreatorID:        room.CreatorID,
		IsActive:         room.IsActive,
		MaxParticipants:  room.MaxParticipants,
		CreatedAt:        room.CreatedAt,
		ParticipantCount: participantCount,
	}
}

// MemberResponse represents an active room member.
// swagger:model MemberResponse
type MemberResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joined_at"`
}

// MembershipResponse represents one visit of a user to a room.
// swagger:model MembershipResponse
type MembershipResponse struct {
	ID       uuid.UUID  `json:"id"`
	UserID   uuid.UUID  `json:"user_id"`
	RoomID   uuid.UUID  `json:"room_id"`
	JoinedAt time.Time  `json:"joined_at"`
	LeftAt   *time.Time `json:"left_at"`
	IsActive bool       `json:"is_active"`
}

func newMembershipResponse(m *models.MembershipDB) MembershipResponse {
	return MembershipResponse{
		ID:       m.MembershipID,
		UserID:   m.UserID,
		RoomID:   m.RoomID,
		JoinedAt: m.JoinedAt,
		LeftAt:   m.LeftAt,
		IsActive: m.IsActive,
	}
}
