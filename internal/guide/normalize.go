package guide

// DefaultAvailability is "always reachable": every weekday, all day.
func DefaultAvailability() Availability {
	return Availability{
		Always: true,
		Days:   append([]Weekday(nil), WeekDays...),
		Start:  "00:00",
		End:    "23:59",
	}
}

// NormalizeAvailability fills the gaps a partial schedule leaves: no days
// means all seven, missing bounds cover the whole day.
func NormalizeAvailability(a Availability) Availability {
	if len(a.Days) == 0 {
		a.Days = append([]Weekday(nil), WeekDays...)
	}
	if a.Start == "" {
		a.Start = "00:00"
	}
	if a.End == "" {
		a.End = "23:59"
	}
	return a
}

// NormalizeChannels enforces the single-primary invariant: the first channel
// flagged primary keeps the flag, later ones are demoted. When channels exist
// but none is primary, the first is promoted.
func NormalizeChannels(channels []Channel) []Channel {
	if len(channels) == 0 {
		return channels
	}
	normalized := append([]Channel(nil), channels...)
	found := false
	for i := range normalized {
		if !normalized[i].Primary {
			continue
		}
		if found {
			normalized[i].Primary = false
		}
		found = true
	}
	if !found {
		normalized[0].Primary = true
	}
	return normalized
}

// NormalizeUser completes a partially-specified team member record: channel
// primaries deduped, access level inferred from the role when absent or
// unknown, managed property ids never nil.
func NormalizeUser(user User) User {
	user.Availability = NormalizeAvailability(user.Availability)
	user.Channels = NormalizeChannels(user.Channels)
	if !ValidAccessLevel(user.AccessLevel) {
		user.AccessLevel = DeriveAccessLevel(user.Role)
	}
	if user.ManagedPropertyIDs == nil {
		user.ManagedPropertyIDs = []string{}
	}
	return user
}
