package validation

import "regexp"

var (
	// emailRegex validates email format
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// clockRegex validates 24h wall-clock times like "09:30"
	clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

	// slugRegex validates property-style ids: slug plus optional suffix
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// IsValidEmail checks if the string is a valid email format
func IsValidEmail(email string) bool {
	if len(email) > 254 {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidClockTime checks if the string is a valid HH:mm time
func IsValidClockTime(value string) bool {
	return clockRegex.MatchString(value)
}

// IsValidSlugID checks if the string is a valid slug-shaped id
func IsValidSlugID(id string) bool {
	if len(id) > 80 {
		return false
	}
	return slugRegex.MatchString(id)
}
