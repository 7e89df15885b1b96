package fixtures_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nico/guidepanel/internal/guide"
	"github.com/nico/guidepanel/internal/guide/fixtures"
)

var now = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestLoad_EmbeddedSeed(t *testing.T) {
	properties, users, err := fixtures.Load("", "", now)
	require.NoError(t, err)

	assert.NotEmpty(t, properties)
	assert.NotEmpty(t, users)

	for _, property := range properties {
		assert.NotEmpty(t, property.ID)
		assert.NotEmpty(t, property.UpdatedAt, "property %s missing updatedAt", property.ID)
	}
	for _, user := range users {
		assert.True(t, guide.ValidAccessLevel(user.AccessLevel), "user %s has no access level", user.ID)
		assert.NotNil(t, user.ManagedPropertyIDs)
		// explicit partial schedules survive loading; only the day codes are
		// guaranteed, not the count
		assert.NotEmpty(t, user.Availability.Days, "user %s has no availability days", user.ID)
		for _, day := range user.Availability.Days {
			assert.True(t, guide.ValidWeekday(day), "user %s has invalid day %q", user.ID, day)
		}
	}
}

func TestLoad_EmbeddedSeedSchedules(t *testing.T) {
	_, users, err := fixtures.Load("", "", now)
	require.NoError(t, err)

	byID := make(map[string]guide.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	// explicit weekday lists are kept as seeded
	giulia, ok := byID["user-giulia"]
	require.True(t, ok)
	assert.Equal(t, []guide.Weekday{"mon", "tue", "wed", "thu", "fri"}, giulia.Availability.Days)

	elena, ok := byID["user-elena"]
	require.True(t, ok)
	assert.Equal(t, []guide.Weekday{"sat", "sun"}, elena.Availability.Days)

	// the legacy prose form collapses to the always-available default
	marco, ok := byID["user-marco"]
	require.True(t, ok)
	assert.True(t, marco.Availability.Always)
	assert.Len(t, marco.Availability.Days, 7)
}

func TestParseProperties(t *testing.T) {
	t.Run("defaults updatedAt", func(t *testing.T) {
		properties, err := fixtures.ParseProperties([]byte(`[{"id":"p1","name":"P1"}]`), now)
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, "2026-08-01T12:00:00Z", properties[0].UpdatedAt)
	})

	t.Run("keeps existing updatedAt", func(t *testing.T) {
		properties, err := fixtures.ParseProperties([]byte(`[{"id":"p1","name":"P1","updatedAt":"2026-01-01T00:00:00Z"}]`), now)
		require.NoError(t, err)
		assert.Equal(t, "2026-01-01T00:00:00Z", properties[0].UpdatedAt)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := fixtures.ParseProperties([]byte(`{not valid`), now)
		assert.Error(t, err)
	})
}

func TestParseUsers(t *testing.T) {
	t.Run("structured availability", func(t *testing.T) {
		users, err := fixtures.ParseUsers([]byte(`[{"id":"u1","name":"U","role":"Cleaner","availability":{"always":false,"days":["sat"],"start":"08:00","end":"14:00"}}]`))
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.False(t, users[0].Availability.Always)
		assert.Equal(t, []guide.Weekday{"sat"}, users[0].Availability.Days)
	})

	t.Run("legacy string availability", func(t *testing.T) {
		users, err := fixtures.ParseUsers([]byte(`[{"id":"u1","name":"U","role":"Cleaner","availability":"Always available"}]`))
		require.NoError(t, err)
		assert.True(t, users[0].Availability.Always)
		assert.Len(t, users[0].Availability.Days, 7)
	})

	t.Run("absent availability defaults", func(t *testing.T) {
		users, err := fixtures.ParseUsers([]byte(`[{"id":"u1","name":"U","role":"Cleaner"}]`))
		require.NoError(t, err)
		assert.True(t, users[0].Availability.Always)
	})

	t.Run("access level inferred from role", func(t *testing.T) {
		users, err := fixtures.ParseUsers([]byte(`[{"id":"u1","name":"U","role":"Property Manager"}]`))
		require.NoError(t, err)
		assert.Equal(t, guide.AccessEditor, users[0].AccessLevel)
	})

	t.Run("rejects unrecognized availability", func(t *testing.T) {
		_, err := fixtures.ParseUsers([]byte(`[{"id":"u1","name":"U","role":"Cleaner","availability":42}]`))
		assert.Error(t, err)
	})
}
