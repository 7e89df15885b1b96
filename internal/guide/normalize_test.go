package guide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nico/guidepanel/internal/guide"
)

func TestNormalizeAvailability(t *testing.T) {
	t.Run("fills empty schedule", func(t *testing.T) {
		got := guide.NormalizeAvailability(guide.Availability{Always: true})
		assert.Len(t, got.Days, 7)
		assert.Equal(t, "00:00", got.Start)
		assert.Equal(t, "23:59", got.End)
	})

	t.Run("keeps explicit schedule", func(t *testing.T) {
		got := guide.NormalizeAvailability(guide.Availability{
			Days:  []guide.Weekday{"mon", "tue"},
			Start: "09:00",
			End:   "17:00",
		})
		assert.Equal(t, []guide.Weekday{"mon", "tue"}, got.Days)
		assert.Equal(t, "09:00", got.Start)
		assert.Equal(t, "17:00", got.End)
	})
}

func TestNormalizeChannels(t *testing.T) {
	t.Run("empty stays empty", func(t *testing.T) {
		assert.Empty(t, guide.NormalizeChannels(nil))
	})

	t.Run("promotes first when none primary", func(t *testing.T) {
		got := guide.NormalizeChannels([]guide.Channel{
			{Type: guide.ChannelEmail, Value: "a@example.com"},
			{Type: guide.ChannelPhone, Value: "+1"},
		})
		assert.True(t, got[0].Primary)
		assert.False(t, got[1].Primary)
	})

	t.Run("demotes extra primaries", func(t *testing.T) {
		got := guide.NormalizeChannels([]guide.Channel{
			{Type: guide.ChannelEmail, Value: "a@example.com", Primary: true},
			{Type: guide.ChannelPhone, Value: "+1", Primary: true},
			{Type: guide.ChannelSMS, Value: "+2", Primary: true},
		})
		assert.True(t, got[0].Primary)
		assert.False(t, got[1].Primary)
		assert.False(t, got[2].Primary)
	})

	t.Run("input slice not mutated", func(t *testing.T) {
		input := []guide.Channel{
			{Type: guide.ChannelEmail, Value: "a@example.com", Primary: true},
			{Type: guide.ChannelPhone, Value: "+1", Primary: true},
		}
		_ = guide.NormalizeChannels(input)
		assert.True(t, input[1].Primary)
	})
}

func TestDeriveAccessLevel(t *testing.T) {
	tests := []struct {
		name string
		role string
		want guide.AccessLevel
	}{
		{"owner", "Property Owner", guide.AccessAdmin},
		{"owner_substring", "Co-owner & host", guide.AccessAdmin},
		{"manager", "Property Manager", guide.AccessEditor},
		{"manager_case", "PROPERTY MANAGER", guide.AccessEditor},
		{"coordinator", "Operations Coordinator", guide.AccessViewer},
		{"other", "Cleaner", guide.AccessViewer},
		{"empty", "", guide.AccessViewer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guide.DeriveAccessLevel(tt.role))
		})
	}
}

func TestNormalizeUser(t *testing.T) {
	t.Run("infers access level from role", func(t *testing.T) {
		got := guide.NormalizeUser(guide.User{ID: "u1", Role: "Property Manager"})
		assert.Equal(t, guide.AccessEditor, got.AccessLevel)
	})

	t.Run("explicit access level wins", func(t *testing.T) {
		got := guide.NormalizeUser(guide.User{ID: "u1", Role: "Property Manager", AccessLevel: guide.AccessAdmin})
		assert.Equal(t, guide.AccessAdmin, got.AccessLevel)
	})

	t.Run("managed ids never nil", func(t *testing.T) {
		got := guide.NormalizeUser(guide.User{ID: "u1"})
		assert.NotNil(t, got.ManagedPropertyIDs)
	})
}

func TestRoleOptions(t *testing.T) {
	t.Run("distinct in first appearance order", func(t *testing.T) {
		users := []guide.User{
			{Role: "Property Manager"},
			{Role: "Property Owner"},
			{Role: "Property Manager"},
			{Role: "  "},
		}
		assert.Equal(t, []string{"Property Manager", "Property Owner"}, guide.RoleOptions(users))
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		assert.Equal(t, guide.DefaultRoleOptions, guide.RoleOptions(nil))
	})
}
