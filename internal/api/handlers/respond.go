package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nico/guidepanel/internal/admin"
	"github.com/nico/guidepanel/internal/api/dto"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message})
}

func writeValidationErrors(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Validation failed",
		Details: details,
	})
}

// writeStoreError maps the store's sentinel errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, admin.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, admin.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, admin.ErrConflict):
		writeError(w, http.StatusConflict, "Id already exists")
	case errors.Is(err, admin.ErrInvalidNode):
		writeError(w, http.StatusBadRequest, "Invalid property node")
	default:
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}
