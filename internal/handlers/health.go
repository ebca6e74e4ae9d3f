package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the health check response
// swagger:model HealthResponse
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NewHealthHandler returns a liveness probe handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:  "healthy",
			Service: "gw-video-rooms",
		})
	}
}
