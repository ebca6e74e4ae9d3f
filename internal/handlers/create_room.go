package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-video-rooms/internal/logger"
	"github.com/sbilibin2017/gw-video-rooms/internal/middlewares"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
	"github.com/sbilibin2017/gw-video-rooms/internal/services"
)

// defaultMaxParticipants is applied when the request omits a cap.
const defaultMaxParticipants = 50

// RoomCreator defines the interface that the room service must implement.
type RoomCreator interface {
	Create(ctx context.Context, creatorID uuid.UUID, name, displayName string, description *string, maxParticipants int) (*models.RoomDB, error)
}

// CreateRoomRequest represents the JSON body for room creation
// swagger:model CreateRoomRequest
type CreateRoomRequest struct {
	// Unique room name
	// required: true
	// example: daily-standup
	Name string `json:"name"`

	// Human-readable name
	// required: true
	// example: Daily Standup
	DisplayName string `json:"display_name"`

	// Optional description
	// example: Team sync, every morning
	Description *string `json:"description"`

	// Active participant cap, defaults to 50
	// example: 10
	MaxParticipants int `json:"max_participants"`
}

// NewCreateRoomHandler returns an HTTP handler for room creation.
// @Summary Create a room
// @Description Creates a new active room owned by the authenticated user and provisions it on the media platform.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createRoomRequest body handlers.CreateRoomRequest true "Room creation request"
// @Success 201 {object} handlers.RoomResponse "Room created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid session credential"
// @Failure 409 {object} handlers.ErrorResponse "Room name already taken"
// @Failure 502 {object} handlers.ErrorResponse "Media platform unavailable"
// @Router /rooms [post]
func NewCreateRoomHandler(svc RoomCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateRoomRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Name == "" || req.DisplayName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Name and display_name are required"})
			return
		}
		if req.MaxParticipants < 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "max_participants must be positive"})
			return
		}
		if req.MaxParticipants == 0 {
			req.MaxParticipants = defaultMaxParticipants
		}

		creatorID := middlewares.GetUserIDFromContext(r.Context())

		room, err := svc.Create(r.Context(), creatorID, req.Name, req.DisplayName, req.Description, req.MaxParticipants)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRoomAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Room with this name already exists",
					Code:  "room_exists",
				})
			case errors.Is(err, services.ErrMediaPlatformUnavailable):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Media platform unavailable, try again",
					Code:  "media_unavailable",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newRoomResponse(room, 0))
	}
}
