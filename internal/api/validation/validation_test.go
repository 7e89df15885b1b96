package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"valid email", "giulia@example.com", true},
		{"valid with plus", "giulia+console@example.com", true},
		{"valid subdomain", "host@mail.example.co.uk", true},
		{"missing at", "giulia.example.com", false},
		{"missing domain", "giulia@", false},
		{"missing tld", "giulia@example", false},
		{"empty", "", false},
		{"spaces", "giulia @example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidClockTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"midnight", "00:00", true},
		{"end of day", "23:59", true},
		{"morning", "09:30", true},
		{"hour too large", "24:00", false},
		{"minute too large", "10:60", false},
		{"missing leading zero", "9:30", false},
		{"with seconds", "09:30:00", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidClockTime(tt.value))
		})
	}
}

func TestIsValidSlugID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"plain slug", "villa-limoni", true},
		{"slug with suffix", "villa-limoni-3f8a91bc", true},
		{"single word", "villa", true},
		{"uppercase", "Villa-Limoni", false},
		{"trailing dash", "villa-", false},
		{"leading dash", "-villa", false},
		{"double dash", "villa--limoni", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSlugID(tt.id))
		})
	}
}
