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

// RoomDeleter defines the interface that the room service must implement.
type RoomDeleter interface {
	Delete(ctx context.Context, roomID, requesterID uuid.UUID) error
}

// NewDeleteRoomHandler returns an HTTP handler for room deletion.
// @Summary Delete a room
// @Description Soft-deletes a room, closes all active memberships and revokes the media platform room. Only the creator may delete.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomID path string true "Room ID"
// @Success 204 "Room deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid room ID"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid session credential"
// @Failure 403 {object} handlers.ErrorResponse "Requester is not the room creator"
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Failure 502 {object} handlers.ErrorResponse "Media platform unavailable"
// @Router /rooms/{roomID} [delete]
func NewDeleteRoomHandler(svc RoomDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid room ID"})
			return
		}

		requesterID := middlewares.GetUserIDFromContext(r.Context())

		if err := svc.Delete(r.Context(), roomID, requesterID); err != nil {
			switch {
			case errors.Is(err, services.ErrRoomNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Room not found"})
			case errors.Is(err, services.ErrNotRoomCreator):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the room creator can delete the room"})
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

		w.WriteHeader(http.StatusNoContent)
	}
}
