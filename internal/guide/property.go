package guide

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases value and collapses every non-alphanumeric run into a
// single dash, capped at 48 characters. Empty input yields "property".
func Slugify(value string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(value), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 48 {
		slug = strings.Trim(slug[:48], "-")
	}
	if slug == "" {
		return "property"
	}
	return slug
}

// NewID mints a collision-free id for a property from its name.
func NewID(name string) string {
	return Slugify(name) + "-" + uuid.NewString()[:8]
}

func newEntityID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// NewProperty builds the starter guide document the console seeds a fresh
// property with.
func NewProperty(name, location string, now time.Time) Property {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = "Untitled property"
	}
	return Property{
		ID:       NewID(name),
		Name:     trimmed,
		Location: location,
		// Rome, a reasonable default for the seed portfolio.
		Coordinates: &Coordinates{Lat: 41.9028, Lng: 12.4964},
		Welcome: Welcome{
			HeroImage: "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267",
			Host: Host{
				Name:   "Host name",
				Title:  "Local host",
				Avatar: "https://images.unsplash.com/photo-1544723795-3fb6469f5b39",
			},
			Greeting: "Welcome!",
			Body:     []string{"Customize the welcome message for your operations team."},
			CTALabel: "Open guide",
		},
		Rules: []Rule{
			{
				ID:      newEntityID("rule"),
				Title:   "New guideline",
				Details: "Describe the key instruction the team needs to remember.",
			},
		},
		Wifi: Wifi{
			Instructions: []string{},
		},
		Discover: []DiscoverCard{},
		Assistance: Assistance{
			Contacts: []Contact{},
		},
		PropertyCare: PropertyCare{
			Guidelines: []CareGuideline{
				{
					ID:    newEntityID("guideline"),
					Label: "General",
					Icon:  "sparkles",
					Accent: &Accent{
						IconBg:    "bg-violet-100",
						IconColor: "text-violet-600",
					},
					Title:       "Thermostat",
					Description: "Keep set to 22°C/72°F for comfort. Turn off when opening windows or leaving for extended periods.",
				},
			},
		},
		UpdatedAt: now.UTC().Format(time.RFC3339),
	}
}

// CloneOptions override the cloned property's name and location. Zero values
// keep the source's, with " Copy" appended to the name.
type CloneOptions struct {
	Name     string
	Location string
}

// CloneProperty copies every sub-document of source into a new property.
// Rules, discover cards and care guidelines get fresh ids so entries never
// collide across properties; all other field values are preserved.
func CloneProperty(source Property, opts CloneOptions, now time.Time) Property {
	name := opts.Name
	if name == "" {
		name = source.Name + " Copy"
	}
	location := source.Location
	if opts.Location != "" {
		location = opts.Location
	}

	cloned := source
	cloned.ID = NewID(name)
	cloned.Name = name
	cloned.Location = location
	cloned.UpdatedAt = now.UTC().Format(time.RFC3339)

	if source.Coordinates != nil {
		coords := *source.Coordinates
		cloned.Coordinates = &coords
	}

	cloned.Welcome.Body = append([]string(nil), source.Welcome.Body...)
	cloned.Wifi.Instructions = append([]string(nil), source.Wifi.Instructions...)
	cloned.Assistance.Contacts = append([]Contact(nil), source.Assistance.Contacts...)

	cloned.Rules = make([]Rule, len(source.Rules))
	for i, rule := range source.Rules {
		rule.ID = newEntityID("rule")
		cloned.Rules[i] = rule
	}
	cloned.Discover = make([]DiscoverCard, len(source.Discover))
	for i, card := range source.Discover {
		card.ID = newEntityID("card")
		cloned.Discover[i] = card
	}
	cloned.PropertyCare.Guidelines = make([]CareGuideline, len(source.PropertyCare.Guidelines))
	for i, guideline := range source.PropertyCare.Guidelines {
		guideline.ID = newEntityID("guideline")
		if guideline.Accent != nil {
			accent := *guideline.Accent
			guideline.Accent = &accent
		}
		cloned.PropertyCare.Guidelines[i] = guideline
	}

	return cloned
}
