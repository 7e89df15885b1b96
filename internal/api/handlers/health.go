package handlers

import (
	"net/http"

	"github.com/nico/guidepanel/internal/admin"
)

type HealthHandler struct {
	store *admin.Store
}

func NewHealthHandler(store *admin.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

type HealthResponse struct {
	Status     string `json:"status"`
	Properties int    `json:"properties"`
	Users      int    `json:"users"`
}

// Health reports liveness plus collection sizes; with an in-memory store
// there is nothing else that can be unhealthy.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	state := h.store.Snapshot()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     "healthy",
		Properties: len(state.Properties),
		Users:      len(state.Users),
	})
}
