package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nico/guidepanel/internal/api/dto"
	"github.com/nico/guidepanel/internal/places"
)

type PlacesHandler struct {
	service *places.Service
}

func NewPlacesHandler(service *places.Service) *PlacesHandler {
	return &PlacesHandler{service: service}
}

// Search handles GET /api/v1/places/search?q=
func (h *PlacesHandler) Search(w http.ResponseWriter, r *http.Request) {
	req := dto.PlaceSearchRequest{Query: r.URL.Query().Get("q")}
	if details := req.Validate(); len(details) > 0 {
		writeValidationErrors(w, details)
		return
	}

	predictions, err := h.service.Search(r.Context(), req.Query)
	if err != nil {
		writePlacesError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"predictions": predictions})
}

// Details handles GET /api/v1/places/{placeId}
func (h *PlacesHandler) Details(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Details(r.Context(), chi.URLParam(r, "placeId"))
	if err != nil {
		writePlacesError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func writePlacesError(w http.ResponseWriter, err error) {
	if errors.Is(err, places.ErrDisabled) {
		writeError(w, http.StatusServiceUnavailable, "Places search is not configured")
		return
	}
	writeError(w, http.StatusBadGateway, "Places lookup failed")
}
