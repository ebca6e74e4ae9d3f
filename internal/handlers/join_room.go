package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-video-rooms/internal/logger"
	"github.com/sbilibin2017/gw-video-rooms/internal/middlewares"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
	"github.com/sbilibin2017/gw-video-rooms/internal/services"
)

// RoomJoiner defines the interface that the membership service must implement.
type RoomJoiner interface {
	Join(ctx context.Context, userID, roomID uuid.UUID) (*models.MembershipDB, *models.JoinCredential, error)
}

// JoinRoomResponse carries the media-session credential and the recorded visit
// swagger:model JoinRoomResponse
type JoinRoomResponse struct {
	Token               string             `json:"token"`
	RoomName            string             `json:"room_name"`
	ParticipantIdentity string             `json:"participant_identity"`
	URL                 string             `json:"livekit_url"`
	Membership          MembershipResponse `json:"membership"`
}

// NewJoinRoomHandler returns an HTTP handler for joining a room.
// @Summary Join a room
// @Description Adds the authenticated user to the room and returns a scoped media-session credential.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomID path string true "Room ID"
// @Success 200 {object} handlers.JoinRoomResponse "Joined"
// @Failure 400 {object} handlers.ErrorResponse "Invalid room ID"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid session credential"
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Failure 409 {object} handlers.ErrorResponse "Already a member or room full"
// @Failure 502 {object} handlers.ErrorResponse "Media platform unavailable"
// @Router /rooms/{roomID}/join [post]
func NewJoinRoomHandler(svc RoomJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid room ID"})
			return
		}

		userID := middlewares.GetUserIDFromContext(r.Context())

		membership, credential, err := svc.Join(r.Context(), userID, roomID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrRoomNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Room not found"})
			case errors.Is(err, services.ErrAlreadyMember):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Already a member of this room",
					Code:  "already_member",
				})
			case errors.Is(err, services.ErrRoomFull):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Room has reached its participant limit",
					Code:  "room_full",
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(JoinRoomResponse{
			Token:               credential.Token,
			RoomName:            credential.RoomName,
			ParticipantIdentity: credential.ParticipantIdentity,
			URL:                 credential.URL,
			Membership:          newMembershipResponse(membership),
		})
	}
}
