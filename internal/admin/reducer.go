package admin

import (
	"fmt"
	"time"

	"github.com/nico/guidepanel/internal/guide"
)

// Reduce applies one action to the session, returning the next state. It is
// pure: the input state is never mutated, collections are replaced wholesale.
// now stamps updatedAt on content mutations.
func Reduce(state State, action Action, now time.Time) (State, error) {
	switch a := action.(type) {
	case Login:
		user := a.User
		state.Authed = true
		state.User = &user
		return state, nil

	case Logout:
		state.Authed = false
		state.User = nil
		state.SelectedPropertyID = firstPropertyID(state.Properties)
		return state, nil

	case AddProperty:
		if _, ok := state.Property(a.Property.ID); ok {
			return state, fmt.Errorf("add property %q: %w", a.Property.ID, ErrConflict)
		}
		state.Properties = appendProperty(state.Properties, a.Property)
		state.SelectedPropertyID = a.Property.ID
		state.Users = EnsureManagerAssignments(state.Users, state.Properties)
		return state, nil

	case CloneProperty:
		if _, ok := state.Property(a.SourceID); !ok {
			return state, fmt.Errorf("clone property %q: %w", a.SourceID, ErrNotFound)
		}
		if _, ok := state.Property(a.Cloned.ID); ok {
			return state, fmt.Errorf("clone property %q: %w", a.Cloned.ID, ErrConflict)
		}
		state.Properties = appendProperty(state.Properties, a.Cloned)
		state.SelectedPropertyID = a.Cloned.ID
		state.Users = EnsureManagerAssignments(state.Users, state.Properties)
		return state, nil

	case DeleteProperty:
		if _, ok := state.Property(a.ID); !ok {
			return state, fmt.Errorf("delete property %q: %w", a.ID, ErrNotFound)
		}
		remaining := make([]guide.Property, 0, len(state.Properties)-1)
		for _, property := range state.Properties {
			if property.ID != a.ID {
				remaining = append(remaining, property)
			}
		}
		state.Properties = remaining
		if state.SelectedPropertyID == a.ID {
			state.SelectedPropertyID = firstPropertyID(remaining)
		}
		state.Users = EnsureManagerAssignments(state.Users, state.Properties)
		return state, nil

	case SelectProperty:
		if a.ID == "" {
			if state.SelectedPropertyID == "" {
				state.SelectedPropertyID = firstPropertyID(state.Properties)
			}
			return state, nil
		}
		if _, ok := state.Property(a.ID); !ok {
			return state, fmt.Errorf("select property %q: %w", a.ID, ErrNotFound)
		}
		state.SelectedPropertyID = a.ID
		return state, nil

	case UpdateProperty:
		if _, ok := state.Property(a.ID); !ok {
			return state, fmt.Errorf("update property %q: %w", a.ID, ErrNotFound)
		}
		updated := a.Property
		updated.ID = a.ID
		updated.UpdatedAt = now.UTC().Format(time.RFC3339)
		state.Properties = replaceProperty(state.Properties, updated)
		return state, nil

	case UpdatePropertyNode:
		property, ok := state.Property(a.ID)
		if !ok {
			return state, fmt.Errorf("update node on %q: %w", a.ID, ErrNotFound)
		}
		if err := setNode(&property, a.Node, a.Value); err != nil {
			return state, err
		}
		property.UpdatedAt = now.UTC().Format(time.RFC3339)
		state.Properties = replaceProperty(state.Properties, property)
		return state, nil

	case ImportProperty:
		imported := a.Property
		if imported.UpdatedAt == "" {
			imported.UpdatedAt = now.UTC().Format(time.RFC3339)
		}
		if _, ok := state.Property(imported.ID); ok {
			state.Properties = replaceProperty(state.Properties, imported)
		} else {
			state.Properties = appendProperty(state.Properties, imported)
		}
		state.SelectedPropertyID = imported.ID
		state.Users = EnsureManagerAssignments(state.Users, state.Properties)
		return state, nil

	case AddUser:
		if _, ok := state.UserByID(a.User.ID); ok {
			return state, fmt.Errorf("add user %q: %w", a.User.ID, ErrConflict)
		}
		users := make([]guide.User, 0, len(state.Users)+1)
		users = append(users, state.Users...)
		users = append(users, a.User)
		state.Users = EnsureManagerAssignments(users, state.Properties)
		return state, nil

	case UpdateUser:
		if _, ok := state.UserByID(a.User.ID); !ok {
			return state, fmt.Errorf("update user %q: %w", a.User.ID, ErrNotFound)
		}
		users := make([]guide.User, len(state.Users))
		for i, user := range state.Users {
			if user.ID == a.User.ID {
				users[i] = a.User
			} else {
				users[i] = user
			}
		}
		state.Users = EnsureManagerAssignments(users, state.Properties)
		return state, nil

	case DeleteUser:
		if _, ok := state.UserByID(a.ID); !ok {
			return state, fmt.Errorf("delete user %q: %w", a.ID, ErrNotFound)
		}
		users := make([]guide.User, 0, len(state.Users)-1)
		for _, user := range state.Users {
			if user.ID != a.ID {
				users = append(users, user)
			}
		}
		state.Users = EnsureManagerAssignments(users, state.Properties)
		return state, nil

	default:
		return state, fmt.Errorf("unknown action %T", action)
	}
}

func firstPropertyID(properties []guide.Property) string {
	if len(properties) == 0 {
		return ""
	}
	return properties[0].ID
}

func appendProperty(properties []guide.Property, property guide.Property) []guide.Property {
	next := make([]guide.Property, 0, len(properties)+1)
	next = append(next, properties...)
	return append(next, property)
}

func replaceProperty(properties []guide.Property, updated guide.Property) []guide.Property {
	next := make([]guide.Property, len(properties))
	for i, property := range properties {
		if property.ID == updated.ID {
			next[i] = updated
		} else {
			next[i] = property
		}
	}
	return next
}

// setNode assigns value to the named sub-document, rejecting unknown nodes
// and mismatched payload types.
func setNode(property *guide.Property, node guide.NodeName, value any) error {
	switch node {
	case guide.NodeWelcome:
		welcome, ok := value.(guide.Welcome)
		if !ok {
			return fmt.Errorf("node %s wants guide.Welcome, got %T: %w", node, value, ErrInvalidNode)
		}
		property.Welcome = welcome
	case guide.NodeRules:
		rules, ok := value.([]guide.Rule)
		if !ok {
			return fmt.Errorf("node %s wants []guide.Rule, got %T: %w", node, value, ErrInvalidNode)
		}
		property.Rules = rules
	case guide.NodeWifi:
		wifi, ok := value.(guide.Wifi)
		if !ok {
			return fmt.Errorf("node %s wants guide.Wifi, got %T: %w", node, value, ErrInvalidNode)
		}
		property.Wifi = wifi
	case guide.NodeDiscover:
		cards, ok := value.([]guide.DiscoverCard)
		if !ok {
			return fmt.Errorf("node %s wants []guide.DiscoverCard, got %T: %w", node, value, ErrInvalidNode)
		}
		property.Discover = cards
	case guide.NodeAssistance:
		assistance, ok := value.(guide.Assistance)
		if !ok {
			return fmt.Errorf("node %s wants guide.Assistance, got %T: %w", node, value, ErrInvalidNode)
		}
		property.Assistance = assistance
	case guide.NodePropertyCare:
		care, ok := value.(guide.PropertyCare)
		if !ok {
			return fmt.Errorf("node %s wants guide.PropertyCare, got %T: %w", node, value, ErrInvalidNode)
		}
		property.PropertyCare = care
	default:
		return fmt.Errorf("unknown node %q: %w", node, ErrInvalidNode)
	}
	return nil
}
