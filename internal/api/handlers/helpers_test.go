package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nico/guidepanel/internal/api"
	"github.com/nico/guidepanel/internal/auth"
	"github.com/nico/guidepanel/internal/places"
	"github.com/nico/guidepanel/internal/testutil"
)

// newServer wires the full router around a seeded store, with the places
// proxy left unconfigured.
func newServer(t *testing.T) (*testutil.TestSetup, http.Handler) {
	t.Helper()
	ts := testutil.NewTestSetup(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	placesService, err := places.NewService("", time.Minute, logger)
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Store:         ts.Store,
		Logger:        logger,
		JWTService:    ts.JWTService,
		AuthService:   ts.AuthService,
		PlacesService: placesService,
	})
	return ts, router
}

// login establishes a session for the given seeded member and returns the
// bearer token the console would hold.
func login(t *testing.T, ts *testutil.TestSetup, userID string) string {
	t.Helper()
	result, err := ts.AuthService.Login(auth.LoginInput{
		Email:    userID + "@example.com",
		Password: testutil.Password,
		UserID:   userID,
	})
	require.NoError(t, err)
	return result.Token
}

func do(t *testing.T, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
