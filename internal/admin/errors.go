package admin

import "errors"

var (
	// ErrNotFound is returned when an action names a property or user id
	// absent from the collection. A server cannot assume callers only send
	// ids they just read, so missing ids fail loudly instead of no-opping.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when adding an entity whose id already exists.
	ErrConflict = errors.New("id already exists")

	// ErrForbidden is returned by Dispatch when the session's permissions do
	// not cover the action. Enforcement lives inside the transition boundary
	// so no caller can bypass it by constructing the action directly.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidNode is returned when a node update names an unknown
	// sub-document or carries a value of the wrong type.
	ErrInvalidNode = errors.New("invalid property node")
)
