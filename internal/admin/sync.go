package admin

import "github.com/nico/guidepanel/internal/guide"

// EnsureManagerAssignments keeps a sole property manager's portfolio in sync:
// when exactly one user holds a manager role, their managedPropertyIds is
// overwritten with the full property id list. With zero or several managers
// the ambiguity is left for a human and users is returned untouched. The
// rewrite is skipped when the assignment already covers the same id set, so
// unchanged users keep their identity.
func EnsureManagerAssignments(users []guide.User, properties []guide.Property) []guide.User {
	managerIdx := -1
	for i, user := range users {
		if !guide.IsManagerRole(user.Role) {
			continue
		}
		if managerIdx >= 0 {
			return users
		}
		managerIdx = i
	}
	if managerIdx < 0 {
		return users
	}

	ids := make([]string, len(properties))
	for i, property := range properties {
		ids[i] = property.ID
	}
	if sameIDSet(users[managerIdx].ManagedPropertyIDs, ids) {
		return users
	}

	next := make([]guide.User, len(users))
	copy(next, users)
	manager := next[managerIdx]
	manager.ManagedPropertyIDs = ids
	next[managerIdx] = manager
	return next
}

// sameIDSet compares two id lists as sets, ignoring order and duplicates.
func sameIDSet(a, b []string) bool {
	seen := make(map[string]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	inB := make(map[string]struct{}, len(b))
	for _, id := range b {
		inB[id] = struct{}{}
	}
	for _, id := range a {
		if _, ok := inB[id]; !ok {
			return false
		}
	}
	return true
}
