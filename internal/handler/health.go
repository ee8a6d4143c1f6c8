package handler

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
}

// Health handles GET /api/health. It reports unhealthy when the database
// does not answer a ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	if err := h.db.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:    "unhealthy",
			Timestamp: now,
			Message:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: now})
}
