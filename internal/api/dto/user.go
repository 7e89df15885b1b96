package dto

import (
	"github.com/nico/guidepanel/internal/api/validation"
	"github.com/nico/guidepanel/internal/guide"
)

type ChannelPayload struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Action  string `json:"action,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

type AvailabilityPayload struct {
	Always bool     `json:"always"`
	Days   []string `json:"days"`
	Start  string   `json:"start"`
	End    string   `json:"end"`
}

type SaveUserRequest struct {
	ID                 string               `json:"id,omitempty"`
	Name               string               `json:"name"`
	Role               string               `json:"role"`
	Availability       *AvailabilityPayload `json:"availability,omitempty"`
	Photo              string               `json:"photo,omitempty"`
	Channels           []ChannelPayload     `json:"channels"`
	AccessLevel        string               `json:"accessLevel,omitempty"`
	ManagedPropertyIDs []string             `json:"managedPropertyIds,omitempty"`
}

func (r SaveUserRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	if r.Role == "" {
		errors["role"] = "Role is required"
	}
	if r.AccessLevel != "" && !guide.ValidAccessLevel(guide.AccessLevel(r.AccessLevel)) {
		errors["accessLevel"] = "Access level must be admin, editor or viewer"
	}
	if r.Availability != nil {
		if r.Availability.Start != "" && !validation.IsValidClockTime(r.Availability.Start) {
			errors["availability.start"] = "Start must be HH:mm"
		}
		if r.Availability.End != "" && !validation.IsValidClockTime(r.Availability.End) {
			errors["availability.end"] = "End must be HH:mm"
		}
		for _, day := range r.Availability.Days {
			if !guide.ValidWeekday(guide.Weekday(day)) {
				errors["availability.days"] = "Days must be weekday codes (mon..sun)"
				break
			}
		}
	}
	for _, channel := range r.Channels {
		if !guide.ValidChannelType(guide.ChannelType(channel.Type)) {
			errors["channels"] = "Channel type must be phone, email, whatsapp or sms"
			break
		}
		if channel.Type == string(guide.ChannelEmail) && !validation.IsValidEmail(channel.Value) {
			errors["channels"] = "Email channel value must be a valid address"
			break
		}
	}
	return errors
}

// ToUser converts the payload into a domain user; normalization (channel
// primaries, access level inference) happens in the store.
func (r SaveUserRequest) ToUser() guide.User {
	user := guide.User{
		ID:                 r.ID,
		Name:               r.Name,
		Role:               r.Role,
		Photo:              r.Photo,
		AccessLevel:        guide.AccessLevel(r.AccessLevel),
		ManagedPropertyIDs: r.ManagedPropertyIDs,
	}
	if r.Availability != nil {
		days := make([]guide.Weekday, len(r.Availability.Days))
		for i, day := range r.Availability.Days {
			days[i] = guide.Weekday(day)
		}
		user.Availability = guide.Availability{
			Always: r.Availability.Always,
			Days:   days,
			Start:  r.Availability.Start,
			End:    r.Availability.End,
		}
	} else {
		user.Availability = guide.DefaultAvailability()
	}
	for _, channel := range r.Channels {
		user.Channels = append(user.Channels, guide.Channel{
			Type:    guide.ChannelType(channel.Type),
			Label:   channel.Label,
			Value:   channel.Value,
			Action:  channel.Action,
			Primary: channel.Primary,
		})
	}
	return user
}
