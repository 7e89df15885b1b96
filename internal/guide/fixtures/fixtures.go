// Package fixtures seeds the admin store. Default data ships embedded in the
// binary; paths from config may override either collection. Fixtures are read
// once at boot and never written back.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nico/guidepanel/internal/guide"
)

//go:embed data/properties.json data/users.json
var seedFS embed.FS

// rawUser tolerates the legacy fixture shape: availability may be a schedule
// object or a free-text string like "Always available".
type rawUser struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Role               string            `json:"role"`
	Availability       json.RawMessage   `json:"availability"`
	Photo              string            `json:"photo"`
	Channels           []guide.Channel   `json:"channels"`
	AccessLevel        guide.AccessLevel `json:"accessLevel"`
	ManagedPropertyIDs []string          `json:"managedPropertyIds"`
}

// Load returns the normalized seed collections, preferring the override paths
// when set. now stamps properties missing an updatedAt.
func Load(propertiesPath, usersPath string, now time.Time) ([]guide.Property, []guide.User, error) {
	propertiesRaw, err := read(propertiesPath, "data/properties.json")
	if err != nil {
		return nil, nil, fmt.Errorf("loading property fixtures: %w", err)
	}
	usersRaw, err := read(usersPath, "data/users.json")
	if err != nil {
		return nil, nil, fmt.Errorf("loading user fixtures: %w", err)
	}

	properties, err := ParseProperties(propertiesRaw, now)
	if err != nil {
		return nil, nil, err
	}
	users, err := ParseUsers(usersRaw)
	if err != nil {
		return nil, nil, err
	}
	return properties, users, nil
}

func read(path, embedded string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return seedFS.ReadFile(embedded)
}

// ParseProperties decodes a property fixture array, defaulting updatedAt.
func ParseProperties(data []byte, now time.Time) ([]guide.Property, error) {
	var properties []guide.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		return nil, fmt.Errorf("parsing property fixtures: %w", err)
	}
	stamp := now.UTC().Format(time.RFC3339)
	for i := range properties {
		if properties[i].UpdatedAt == "" {
			properties[i].UpdatedAt = stamp
		}
	}
	return properties, nil
}

// ParseUsers decodes a user fixture array, normalizing availability (object,
// legacy string, or absent), access level and managed property ids.
func ParseUsers(data []byte) ([]guide.User, error) {
	var raws []rawUser
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parsing user fixtures: %w", err)
	}

	users := make([]guide.User, 0, len(raws))
	for _, raw := range raws {
		availability, err := parseAvailability(raw.Availability)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", raw.ID, err)
		}
		user := guide.User{
			ID:                 raw.ID,
			Name:               raw.Name,
			Role:               raw.Role,
			Availability:       availability,
			Photo:              raw.Photo,
			Channels:           raw.Channels,
			AccessLevel:        raw.AccessLevel,
			ManagedPropertyIDs: raw.ManagedPropertyIDs,
		}
		users = append(users, guide.NormalizeUser(user))
	}
	return users, nil
}

func parseAvailability(raw json.RawMessage) (guide.Availability, error) {
	if len(raw) == 0 {
		return guide.DefaultAvailability(), nil
	}

	var schedule guide.Availability
	if err := json.Unmarshal(raw, &schedule); err == nil {
		return guide.NormalizeAvailability(schedule), nil
	}

	// Legacy fixtures wrote availability as prose ("Always available"); any
	// string form maps to the always-available default.
	var legacy string
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return guide.Availability{}, fmt.Errorf("unrecognized availability %s", raw)
	}
	return guide.DefaultAvailability(), nil
}
