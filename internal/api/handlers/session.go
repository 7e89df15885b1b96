package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nico/guidepanel/internal/admin"
	"github.com/nico/guidepanel/internal/api/dto"
	"github.com/nico/guidepanel/internal/api/middleware"
	"github.com/nico/guidepanel/internal/auth"
	"github.com/nico/guidepanel/internal/guide"
)

type SessionHandler struct {
	authService *auth.Service
	store       *admin.Store
}

func NewSessionHandler(authService *auth.Service, store *admin.Store) *SessionHandler {
	return &SessionHandler{authService: authService, store: store}
}

// Login handles POST /api/v1/auth/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeValidationErrors(w, details)
		return
	}

	result, err := h.authService.Login(auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		UserID:   req.UserID,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token:       result.Token,
		User:        result.User,
		Permissions: result.Permissions,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "Logged out"})
}

// Me handles GET /api/v1/me
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetSessionUser(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":        user,
		"permissions": h.store.Permissions(),
	})
}

type stateResponse struct {
	Authed             bool               `json:"authed"`
	User               *admin.SessionUser `json:"user"`
	SelectedPropertyID string             `json:"selectedPropertyId,omitempty"`
	Properties         []guide.Property   `json:"properties"`
	Users              []guide.User       `json:"users"`
	Permissions        admin.Permissions  `json:"permissions"`
}

// State handles GET /api/v1/state, the console's boot snapshot.
func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	state := h.store.Snapshot()
	writeJSON(w, http.StatusOK, stateResponse{
		Authed:             state.Authed,
		User:               state.User,
		SelectedPropertyID: state.SelectedPropertyID,
		Properties:         state.Properties,
		Users:              state.Users,
		Permissions:        admin.DerivePermissions(state.AccessLevel()),
	})
}
