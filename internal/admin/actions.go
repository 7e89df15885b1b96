package admin

import "github.com/nico/guidepanel/internal/guide"

// Action is the closed set of session transitions. Each action declares the
// permission it needs; Dispatch checks it against the current session before
// reducing, so authorization cannot be skipped at a call site.
type Action interface {
	// Name is the action's wire/log tag.
	Name() string
	// Allowed reports whether a session holding p may apply this action.
	Allowed(p Permissions) bool
}

// Login establishes the session identity. Anyone may attempt it; credential
// checks happen in the auth service before the action is built.
type Login struct {
	User SessionUser
}

func (Login) Name() string { return "LOGIN" }
func (Login) Allowed(Permissions) bool { return true }

// Logout clears identity and resets selection, keeping both collections.
type Logout struct{}

func (Logout) Name() string { return "LOGOUT" }
func (Logout) Allowed(Permissions) bool { return true }

// AddProperty appends a new property and selects it.
type AddProperty struct {
	Property guide.Property
}

func (AddProperty) Name() string { return "ADD_PROPERTY" }
func (AddProperty) Allowed(p Permissions) bool { return p.CanAddEntities }

// CloneProperty appends a precomputed clone and selects it. The clone itself
// is produced by guide.CloneProperty before dispatch.
type CloneProperty struct {
	SourceID string
	Cloned   guide.Property
}

func (CloneProperty) Name() string { return "CLONE_PROPERTY" }
func (CloneProperty) Allowed(p Permissions) bool { return p.CanAddEntities }

// DeleteProperty removes a property; selection falls back to the first
// remaining property.
type DeleteProperty struct {
	ID string
}

func (DeleteProperty) Name() string { return "DELETE_PROPERTY" }
func (DeleteProperty) Allowed(p Permissions) bool { return p.CanDeleteEntities }

// SelectProperty changes the working property. An empty ID keeps the current
// selection, falling back to the first property.
type SelectProperty struct {
	ID string
}

func (SelectProperty) Name() string { return "SELECT_PROPERTY" }
func (SelectProperty) Allowed(Permissions) bool { return true }

// UpdateProperty replaces a property wholesale, stamping updatedAt.
type UpdateProperty struct {
	ID       string
	Property guide.Property
}

func (UpdateProperty) Name() string { return "UPDATE_PROPERTY" }
func (UpdateProperty) Allowed(p Permissions) bool { return p.CanEditContent }

// UpdatePropertyNode replaces exactly one content sub-document. Value must be
// the node's concrete type: guide.Welcome, []guide.Rule, guide.Wifi,
// []guide.DiscoverCard, guide.Assistance or guide.PropertyCare.
type UpdatePropertyNode struct {
	ID    string
	Node  guide.NodeName
	Value any
}

func (UpdatePropertyNode) Name() string { return "UPDATE_PROPERTY_NODE" }
func (UpdatePropertyNode) Allowed(p Permissions) bool { return p.CanEditContent }

// ImportProperty upserts a property by id and selects it.
type ImportProperty struct {
	Property guide.Property
}

func (ImportProperty) Name() string { return "IMPORT_PROPERTY_JSON" }
func (ImportProperty) Allowed(p Permissions) bool { return p.CanAddEntities }

// AddUser appends a team member.
type AddUser struct {
	User guide.User
}

func (AddUser) Name() string { return "ADD_USER" }
func (AddUser) Allowed(p Permissions) bool { return p.CanManageUsers }

// UpdateUser replaces a team member by id.
type UpdateUser struct {
	User guide.User
}

func (UpdateUser) Name() string { return "UPDATE_USER" }
func (UpdateUser) Allowed(p Permissions) bool { return p.CanManageUsers }

// DeleteUser removes a team member. Deleting accounts needs both the user
// management and the delete capability, matching the console's gating.
type DeleteUser struct {
	ID string
}

func (DeleteUser) Name() string { return "DELETE_USER" }
func (DeleteUser) Allowed(p Permissions) bool {
	return p.CanManageUsers && p.CanDeleteEntities
}
