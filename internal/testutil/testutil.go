// Package testutil builds pre-seeded stores and authenticated requests for
// handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nico/guidepanel/internal/admin"
	"github.com/nico/guidepanel/internal/auth"
	"github.com/nico/guidepanel/internal/guide"
)

// Clock is the pinned time every test store stamps updates with.
var Clock = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// SeedProperties returns two small properties for store tests.
func SeedProperties() []guide.Property {
	return []guide.Property{
		Property("villa-a", "Villa A"),
		Property("villa-b", "Villa B"),
	}
}

// Property builds a minimal but complete property record.
func Property(id, name string) guide.Property {
	return guide.Property{
		ID:   id,
		Name: name,
		Welcome: guide.Welcome{
			HeroImage: "https://example.com/hero.jpg",
			Host:      guide.Host{Name: "Host"},
			Greeting:  "Welcome!",
			Body:      []string{"Enjoy your stay."},
		},
		Rules: []guide.Rule{
			{ID: id + "-rule-1", Title: "Quiet hours", Details: "After 22:00."},
		},
		Wifi: guide.Wifi{
			NetworkName:  name + " Guest",
			Password:     "secret",
			Instructions: []string{},
		},
		Discover: []guide.DiscoverCard{
			{ID: id + "-card-1", PlaceID: "place-1", Category: guide.CategoryRestaurant},
		},
		Assistance: guide.Assistance{Contacts: []guide.Contact{}},
		PropertyCare: guide.PropertyCare{
			Guidelines: []guide.CareGuideline{
				{ID: id + "-guideline-1", Label: "General", Title: "Thermostat", Description: "22°C."},
			},
		},
		UpdatedAt: "2026-07-01T00:00:00Z",
	}
}

// SeedUsers returns an owner, a sole manager and a coordinator.
func SeedUsers() []guide.User {
	return []guide.User{
		User("user-owner", "Olive Owner", "Property Owner"),
		User("user-manager", "Mara Manager", "Property Manager"),
		User("user-coord", "Omar Coordinator", "Operations Coordinator"),
	}
}

// User builds a normalized team member.
func User(id, name, role string) guide.User {
	return guide.NormalizeUser(guide.User{
		ID:   id,
		Name: name,
		Role: role,
		Channels: []guide.Channel{
			{Type: guide.ChannelEmail, Label: "Email", Value: id + "@example.com", Primary: true},
		},
	})
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewStore builds a seeded store with a pinned clock and silent logger.
func NewStore(t *testing.T) *admin.Store {
	t.Helper()
	return admin.NewStore(SeedProperties(), SeedUsers(),
		admin.WithClock(func() time.Time { return Clock }),
		admin.WithLogger(quietLogger()),
	)
}

// LoginAs establishes a session for the given access level so dispatches pass
// the permission gate.
func LoginAs(t *testing.T, store *admin.Store, level guide.AccessLevel) admin.SessionUser {
	t.Helper()
	user := admin.SessionUser{
		ID:          "session-" + string(level),
		Name:        "Session " + string(level),
		Role:        "Tester",
		AccessLevel: level,
		Email:       string(level) + "@example.com",
	}
	if err := store.Login(user); err != nil {
		t.Fatalf("failed to log in as %s: %v", level, err)
	}
	return user
}

// TestSetup bundles a seeded store with the services handler tests need.
type TestSetup struct {
	Store       *admin.Store
	JWTService  *auth.JWTService
	AuthService *auth.Service
}

// Password is the console passphrase every TestSetup accepts.
const Password = "console-pass"

// NewTestSetup builds the store, JWT service and auth service for a handler
// test.
func NewTestSetup(t *testing.T) *TestSetup {
	t.Helper()
	store := NewStore(t)
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	hash, err := auth.HashPassword(Password)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	return &TestSetup{
		Store:       store,
		JWTService:  jwtService,
		AuthService: auth.NewService(store, jwtService, hash, quietLogger()),
	}
}

// Token mints a bearer token for the given session user.
func (ts *TestSetup) Token(t *testing.T, user admin.SessionUser) string {
	t.Helper()
	token, err := ts.JWTService.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// AuthenticatedRequest builds a request carrying the given bearer token, JSON
// encoding body when present.
func AuthenticatedRequest(t *testing.T, method, path, token string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// RawRequest builds a request with a literal body, for malformed-payload
// tests.
func RawRequest(t *testing.T, method, path, token, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}
