package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nico/guidepanel/internal/admin"
	"github.com/nico/guidepanel/internal/api/dto"
	"github.com/nico/guidepanel/internal/guide"
)

type PropertyHandler struct {
	store *admin.Store
}

func NewPropertyHandler(store *admin.Store) *PropertyHandler {
	return &PropertyHandler{store: store}
}

// List handles GET /api/v1/properties
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	state := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"properties":         state.Properties,
		"selectedPropertyId": state.SelectedPropertyID,
	})
}

// Get handles GET /api/v1/properties/{id}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	property, ok := h.store.Snapshot().Property(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, property)
}

// Create handles POST /api/v1/properties
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeValidationErrors(w, details)
		return
	}

	property, err := h.store.AddProperty(req.Name, req.Location)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

// Clone handles POST /api/v1/properties/{id}/clone
func (h *PropertyHandler) Clone(w http.ResponseWriter, r *http.Request) {
	var req dto.ClonePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeValidationErrors(w, details)
		return
	}

	cloned, err := h.store.CloneProperty(admin.CloneInput{
		SourceID: chi.URLParam(r, "id"),
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cloned)
}

// Update handles PUT /api/v1/properties/{id}
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var property guide.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	property.ID = chi.URLParam(r, "id")

	if err := h.store.UpdateProperty(property); err != nil {
		writeStoreError(w, err)
		return
	}
	updated, _ := h.store.Snapshot().Property(property.ID)
	writeJSON(w, http.StatusOK, updated)
}

// UpdateNode handles PUT /api/v1/properties/{id}/nodes/{node}
func (h *PropertyHandler) UpdateNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	node := guide.NodeName(chi.URLParam(r, "node"))
	if !guide.ValidNodeName(node) {
		writeError(w, http.StatusBadRequest, "Invalid property node")
		return
	}

	value, err := decodeNode(node, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.UpdatePropertyNode(id, node, value); err != nil {
		writeStoreError(w, err)
		return
	}
	updated, _ := h.store.Snapshot().Property(id)
	writeJSON(w, http.StatusOK, updated)
}

// decodeNode parses the request body as the node's concrete type.
func decodeNode(node guide.NodeName, r *http.Request) (interface{}, error) {
	decode := func(v interface{}) error {
		return json.NewDecoder(r.Body).Decode(v)
	}
	switch node {
	case guide.NodeWelcome:
		var v guide.Welcome
		return v, decode(&v)
	case guide.NodeRules:
		var v []guide.Rule
		return v, decode(&v)
	case guide.NodeWifi:
		var v guide.Wifi
		return v, decode(&v)
	case guide.NodeDiscover:
		var v []guide.DiscoverCard
		return v, decode(&v)
	case guide.NodeAssistance:
		var v guide.Assistance
		return v, decode(&v)
	case guide.NodePropertyCare:
		var v guide.PropertyCare
		return v, decode(&v)
	}
	return nil, fmt.Errorf("unknown node %q", node)
}

// Delete handles DELETE /api/v1/properties/{id}
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProperty(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "Property deleted"})
}

// Select handles PUT /api/v1/selection
func (h *PropertyHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.store.SelectProperty(req.ID); err != nil {
		writeStoreError(w, err)
		return
	}
	state := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]string{
		"selectedPropertyId": state.SelectedPropertyID,
	})
}

// Import handles POST /api/v1/properties/import. A malformed payload is
// rejected before any dispatch, so state is never touched by bad JSON.
func (h *PropertyHandler) Import(w http.ResponseWriter, r *http.Request) {
	var property guide.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse property JSON")
		return
	}
	details := make(map[string]string)
	if property.ID == "" {
		details["id"] = "Property id is required"
	}
	if property.Name == "" {
		details["name"] = "Property name is required"
	}
	if len(details) > 0 {
		writeValidationErrors(w, details)
		return
	}

	if err := h.store.ImportProperty(property); err != nil {
		writeStoreError(w, err)
		return
	}
	imported, _ := h.store.Snapshot().Property(property.ID)
	writeJSON(w, http.StatusOK, imported)
}

// Export handles GET /api/v1/properties/{id}/export, streaming the property
// as a pretty-printed JSON download named <id>.json.
func (h *PropertyHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	property, err := h.store.ExportProperty(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	data, err := json.MarshalIndent(property, "", "  ")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".json"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
