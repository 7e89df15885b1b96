package admin

import "github.com/nico/guidepanel/internal/guide"

// Permissions is the fixed record of capabilities a session holds. It is
// derived, never stored: access level is the single source of truth.
type Permissions struct {
	IsAdmin           bool `json:"isAdmin"`
	IsEditor          bool `json:"isEditor"`
	IsViewer          bool `json:"isViewer"`
	CanEditContent    bool `json:"canEditContent"`
	CanAddEntities    bool `json:"canAddEntities"`
	CanManageUsers    bool `json:"canManageUsers"`
	CanDeleteEntities bool `json:"canDeleteEntities"`
}

// DerivePermissions maps an access level to its permission set. Unknown or
// empty levels (no logged-in user) derive the viewer set, so the function is
// total.
func DerivePermissions(level guide.AccessLevel) Permissions {
	switch level {
	case guide.AccessAdmin:
		return Permissions{
			IsAdmin:           true,
			CanEditContent:    true,
			CanAddEntities:    true,
			CanManageUsers:    true,
			CanDeleteEntities: true,
		}
	case guide.AccessEditor:
		return Permissions{
			IsEditor:       true,
			CanEditContent: true,
		}
	default:
		return Permissions{IsViewer: true}
	}
}
