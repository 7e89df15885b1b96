package admin

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nico/guidepanel/internal/guide"
)

// Store owns the session state. It is constructed explicitly and injected
// wherever it is needed; there is no package-level instance. All access goes
// through the lock, and every mutation flows through Dispatch so permission
// checks and the reducer cannot be bypassed.
type Store struct {
	mu     sync.RWMutex
	state  State
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Store at construction.
type Option func(*Store)

// WithClock pins the store's clock, used by tests to make updatedAt stamps
// deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger attaches a logger for dispatch tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// NewStore seeds a store from fixture collections. The first property starts
// selected and the manager re-sync invariant is established immediately.
func NewStore(properties []guide.Property, users []guide.User, opts ...Option) *Store {
	s := &Store{
		state: State{
			Properties:         properties,
			SelectedPropertyID: firstPropertyID(properties),
			Users:              EnsureManagerAssignments(users, properties),
		},
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies one action. The session's permissions are derived from the
// current state and checked before the reducer runs; either the whole
// transition applies or the state is untouched.
func (s *Store) Dispatch(action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(action)
}

func (s *Store) dispatchLocked(action Action) error {
	perms := DerivePermissions(s.state.AccessLevel())
	if !action.Allowed(perms) {
		s.logger.Warn("action rejected",
			"action", action.Name(),
			"accessLevel", string(s.state.AccessLevel()),
		)
		return fmt.Errorf("%s: %w", action.Name(), ErrForbidden)
	}

	next, err := Reduce(s.state, action, s.now())
	if err != nil {
		return err
	}
	s.state = next
	s.logger.Debug("action applied", "action", action.Name())
	return nil
}

// Snapshot returns a copy of the current state. The collections are copied so
// callers can range over them without holding the lock; elements are value
// types and safe to share.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.state
	state.Properties = append([]guide.Property(nil), s.state.Properties...)
	state.Users = append([]guide.User(nil), s.state.Users...)
	if s.state.User != nil {
		user := *s.state.User
		state.User = &user
	}
	return state
}

// Permissions derives the current session's permission set.
func (s *Store) Permissions() Permissions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return DerivePermissions(s.state.AccessLevel())
}

// Login records the authenticated session user.
func (s *Store) Login(user SessionUser) error {
	return s.Dispatch(Login{User: user})
}

// Logout clears the session, keeping both collections.
func (s *Store) Logout() error {
	return s.Dispatch(Logout{})
}

// AddProperty seeds a new property from the starter template and selects it.
func (s *Store) AddProperty(name, location string) (guide.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	property := guide.NewProperty(name, location, s.now())
	if err := s.dispatchLocked(AddProperty{Property: property}); err != nil {
		return guide.Property{}, err
	}
	return property, nil
}

// CloneInput names the source and optional overrides for a clone.
type CloneInput struct {
	SourceID string
	Name     string
	Location string
}

// CloneProperty copies an existing property under a fresh id and selects the
// clone. Sub-entity ids are re-minted so they never collide with the source.
func (s *Store) CloneProperty(input CloneInput) (guide.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	source, ok := s.state.Property(input.SourceID)
	if !ok {
		return guide.Property{}, fmt.Errorf("clone property %q: %w", input.SourceID, ErrNotFound)
	}
	cloned := guide.CloneProperty(source, guide.CloneOptions{
		Name:     input.Name,
		Location: input.Location,
	}, s.now())
	if err := s.dispatchLocked(CloneProperty{SourceID: input.SourceID, Cloned: cloned}); err != nil {
		return guide.Property{}, err
	}
	return cloned, nil
}

// DeleteProperty removes a property by id.
func (s *Store) DeleteProperty(id string) error {
	return s.Dispatch(DeleteProperty{ID: id})
}

// SelectProperty changes the working property; empty id keeps the current
// selection (or falls back to the first property).
func (s *Store) SelectProperty(id string) error {
	return s.Dispatch(SelectProperty{ID: id})
}

// UpdateProperty replaces a property wholesale.
func (s *Store) UpdateProperty(property guide.Property) error {
	return s.Dispatch(UpdateProperty{ID: property.ID, Property: property})
}

// UpdatePropertyNode replaces one content sub-document.
func (s *Store) UpdatePropertyNode(id string, node guide.NodeName, value any) error {
	return s.Dispatch(UpdatePropertyNode{ID: id, Node: node, Value: value})
}

// ImportProperty upserts a property by id and selects it.
func (s *Store) ImportProperty(property guide.Property) error {
	return s.Dispatch(ImportProperty{Property: property})
}

// ExportProperty is the read side of export: it returns the property to be
// serialized and leaves state untouched.
func (s *Store) ExportProperty(id string) (guide.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	property, ok := s.state.Property(id)
	if !ok {
		return guide.Property{}, fmt.Errorf("export property %q: %w", id, ErrNotFound)
	}
	return property, nil
}

// SelectedProperty returns the currently selected property.
func (s *Store) SelectedProperty() (guide.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SelectedProperty()
}

// AddUser normalizes and appends a team member, minting an id when absent.
func (s *Store) AddUser(user guide.User) (guide.User, error) {
	if user.ID == "" {
		user.ID = "user-" + uuid.NewString()[:8]
	}
	user = guide.NormalizeUser(user)
	if err := s.Dispatch(AddUser{User: user}); err != nil {
		return guide.User{}, err
	}
	return user, nil
}

// UpdateUser normalizes and replaces a team member by id.
func (s *Store) UpdateUser(user guide.User) (guide.User, error) {
	user = guide.NormalizeUser(user)
	if err := s.Dispatch(UpdateUser{User: user}); err != nil {
		return guide.User{}, err
	}
	return user, nil
}

// DeleteUser removes a team member by id.
func (s *Store) DeleteUser(id string) error {
	return s.Dispatch(DeleteUser{ID: id})
}
