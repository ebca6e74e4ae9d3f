package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-video-rooms/internal/logger"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
	"github.com/sbilibin2017/gw-video-rooms/internal/services"
)

// RoomGetter defines the interface that the room service must implement.
type RoomGetter interface {
	Get(ctx context.Context, roomID uuid.UUID) (*models.RoomDB, []models.RoomMemberDB, error)
}

// RoomDetailResponse represents a room together with its current members
// swagger:model RoomDetailResponse
type RoomDetailResponse struct {
	RoomResponse
	Members []MemberResponse `json:"members"`
}

// NewGetRoomHandler returns an HTTP handler for fetching a single room.
// @Summary Get a room
// @Description Returns an active room with its current members ordered by join time.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomID path string true "Room ID"
// @Success 200 {object} handlers.RoomDetailResponse "Room with members"
// @Failure 400 {object} handlers.ErrorResponse "Invalid room ID"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid session credential"
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Router /rooms/{roomID} [get]
func NewGetRoomHandler(svc RoomGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid room ID"})
			return
		}

		room, members, err := svc.Get(r.Context(), roomID)
		if err != nil {
			if errors.Is(err, services.ErrRoomNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Room not found"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		resp := RoomDetailResponse{
			RoomResponse: newRoomResponse(room, len(members)),
			Members:      make([]MemberResponse, 0, len(members)),
		}
		for _, m := range members {
			resp.Members = append(resp.Members, MemberResponse{
				UserID:   m.UserID,
				Username: m.Username,
				JoinedAt: m.JoinedAt,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
