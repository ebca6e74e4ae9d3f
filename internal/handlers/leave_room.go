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
	"github.com/sbilibin2017/gw-video-rooms/internal/services"
)

// RoomLeaver defines the interface that the membership service must implement.
type RoomLeaver interface {
	Leave(ctx context.Context, userID, roomID uuid.UUID) error
}

// NewLeaveRoomHandler returns an HTTP handler for leaving a room.
// @Summary Leave a room
// @Description Closes the authenticated user's active visit to the room.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomID path string true "Room ID"
// @Success 204 "Left the room"
// @Failure 400 {object} handlers.ErrorResponse "Invalid room ID"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid session credential"
// @Failure 404 {object} handlers.ErrorResponse "No active membership"
// @Router /rooms/{roomID}/leave [post]
func NewLeaveRoomHandler(svc RoomLeaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid room ID"})
			return
		}

		userID := middlewares.GetUserIDFromContext(r.Context())

		if err := svc.Leave(r.Context(), userID, roomID); err != nil {
			if errors.Is(err, services.ErrMembershipNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "No active membership for this room"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
