package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-video-rooms/internal/logger"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
)

// RoomLister defines the interface that the room service must implement.
type RoomLister interface {
	List(ctx context.Context) ([]models.RoomWithCount, error)
}

// ListRoomsResponse represents the room listing payload
// swagger:model ListRoomsResponse
type ListRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// NewListRoomsHandler returns an HTTP handler that lists active rooms.
// @Summary List rooms
// @Description Returns all active rooms with their current participant counts.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ListRoomsResponse "Active rooms"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid session credential"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /rooms [get]
func NewListRoomsHandler(svc RoomLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		resp := ListRoomsResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
		for i := range rooms {
			resp.Rooms = append(resp.Rooms, newRoomResponse(&rooms[i].RoomDB, rooms[i].ParticipantCount))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
