package guide

import "strings"

// Role substrings drive behaviour: "owner" maps to admin access, "manager" to
// editor access and the manager re-sync invariant, "operations coordinator"
// is recognised for display grouping.

func IsManagerRole(role string) bool {
	return strings.Contains(strings.ToLower(role), "manager")
}

func IsOwnerRole(role string) bool {
	return strings.Contains(strings.ToLower(role), "owner")
}

func IsOperationsCoordinatorRole(role string) bool {
	return strings.Contains(strings.ToLower(role), "operations coordinator")
}

// DeriveAccessLevel infers an access level from a free-text role.
func DeriveAccessLevel(role string) AccessLevel {
	switch {
	case IsOwnerRole(role):
		return AccessAdmin
	case IsManagerRole(role):
		return AccessEditor
	default:
		return AccessViewer
	}
}

// DefaultRoleOptions is the fallback when the user collection carries no
// role strings of its own.
var DefaultRoleOptions = []string{"Property Owner", "Property Manager", "Operations Coordinator"}

// RoleOptions returns the distinct non-blank roles present in users, in first
// appearance order, falling back to DefaultRoleOptions.
func RoleOptions(users []User) []string {
	seen := make(map[string]struct{})
	var options []string
	for _, user := range users {
		role := strings.TrimSpace(user.Role)
		if role == "" {
			continue
		}
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		options = append(options, role)
	}
	if len(options) == 0 {
		return append([]string(nil), DefaultRoleOptions...)
	}
	return options
}
