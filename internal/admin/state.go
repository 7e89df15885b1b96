// Package admin holds the console's session state machine: one state shape,
// a tagged action union, a pure reducer, and the Store that owns the state
// behind a lock. Nothing here persists anything; restarting the process
// resets the session to its fixtures.
package admin

import "github.com/nico/guidepanel/internal/guide"

// SessionUser is the logged-in identity carried by the session, a slim
// projection of a team member plus the email typed at login.
type SessionUser struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Role        string            `json:"role"`
	AccessLevel guide.AccessLevel `json:"accessLevel"`
	Email       string            `json:"email,omitempty"`
}

// State is the whole admin session. It is a value: the reducer returns a new
// State on every transition and never mutates the previous one.
type State struct {
	Authed             bool
	User               *SessionUser
	Properties         []guide.Property
	SelectedPropertyID string
	Users              []guide.User
}

// Property returns the property with the given id, if present.
func (s State) Property(id string) (guide.Property, bool) {
	for _, property := range s.Properties {
		if property.ID == id {
			return property, true
		}
	}
	return guide.Property{}, false
}

// SelectedProperty returns the currently selected property, if any.
func (s State) SelectedProperty() (guide.Property, bool) {
	if s.SelectedPropertyID == "" {
		return guide.Property{}, false
	}
	return s.Property(s.SelectedPropertyID)
}

// UserByID returns the team member with the given id, if present.
func (s State) UserByID(id string) (guide.User, bool) {
	for _, user := range s.Users {
		if user.ID == id {
			return user, true
		}
	}
	return guide.User{}, false
}

// AccessLevel is the session's effective tier: viewer when nobody is logged in.
func (s State) AccessLevel() guide.AccessLevel {
	if s.User == nil {
		return guide.AccessViewer
	}
	return s.User.AccessLevel
}
