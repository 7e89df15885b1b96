package guide

// AccessLevel is the coarse permission tier assigned to a team member,
// independent of their free-text role.
type AccessLevel string

const (
	AccessAdmin  AccessLevel = "admin"
	AccessEditor AccessLevel = "editor"
	AccessViewer AccessLevel = "viewer"
)

// ValidAccessLevel reports whether level is one of the three known tiers.
func ValidAccessLevel(level AccessLevel) bool {
	switch level {
	case AccessAdmin, AccessEditor, AccessViewer:
		return true
	}
	return false
}

// NodeName identifies one of a property's six content sub-documents.
type NodeName string

const (
	NodeWelcome      NodeName = "welcome"
	NodeRules        NodeName = "rules"
	NodeWifi         NodeName = "wifi"
	NodeDiscover     NodeName = "discover"
	NodeAssistance   NodeName = "assistance"
	NodePropertyCare NodeName = "propertyCare"
)

// NodeNames lists the sub-documents in the order the console renders them.
var NodeNames = []NodeName{
	NodeWelcome, NodeRules, NodeWifi, NodeDiscover, NodeAssistance, NodePropertyCare,
}

// ValidNodeName reports whether name is a known sub-document.
func ValidNodeName(name NodeName) bool {
	for _, n := range NodeNames {
		if n == name {
			return true
		}
	}
	return false
}

type DiscoverCategory string

const (
	CategoryRestaurant DiscoverCategory = "restaurant"
	CategoryBeach      DiscoverCategory = "beach"
	CategoryNightlife  DiscoverCategory = "nightlife"
	CategoryActivity   DiscoverCategory = "activity"
)

func ValidDiscoverCategory(c DiscoverCategory) bool {
	switch c {
	case CategoryRestaurant, CategoryBeach, CategoryNightlife, CategoryActivity:
		return true
	}
	return false
}

type Host struct {
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Welcome is the guide's landing section: hero image, host identity and
// greeting copy.
type Welcome struct {
	HeroImage string   `json:"heroImage"`
	Host      Host     `json:"host"`
	Greeting  string   `json:"greeting"`
	Body      []string `json:"body"`
	CTALabel  string   `json:"ctaLabel,omitempty"`
}

type Rule struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Details string `json:"details"`
	Icon    string `json:"icon,omitempty"`
}

type Wifi struct {
	NetworkName  string   `json:"networkName"`
	Password     string   `json:"password"`
	ShareNote    string   `json:"shareNote,omitempty"`
	Instructions []string `json:"instructions"`
}

type DiscoverCard struct {
	ID       string           `json:"id"`
	PlaceID  string           `json:"placeId"`
	Category DiscoverCategory `json:"category"`
	Note     string           `json:"note,omitempty"`
}

type Contact struct {
	Role   string `json:"role"`
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
	Notes  string `json:"notes,omitempty"`
	UserID string `json:"userId,omitempty"`
}

type Assistance struct {
	Contacts []Contact `json:"contacts"`
}

type Accent struct {
	IconBg    string `json:"iconBg,omitempty"`
	IconColor string `json:"iconColor,omitempty"`
}

type CareGuideline struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Icon        string  `json:"icon,omitempty"`
	Accent      *Accent `json:"accent,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

type PropertyCare struct {
	Guidelines []CareGuideline `json:"guidelines"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Property is one rental unit's complete guide document. Properties are value
// types: every mutation goes through the admin reducer, which replaces the
// whole record rather than editing it in place.
type Property struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Location     string         `json:"location,omitempty"`
	Coordinates  *Coordinates   `json:"coordinates,omitempty"`
	Welcome      Welcome        `json:"welcome"`
	Rules        []Rule         `json:"rules"`
	Wifi         Wifi           `json:"wifi"`
	Discover     []DiscoverCard `json:"discover"`
	Assistance   Assistance     `json:"assistance"`
	PropertyCare PropertyCare   `json:"propertyCare"`
	UpdatedAt    string         `json:"updatedAt"`
}

type Weekday string

// WeekDays lists the seven weekday codes in schedule order.
var WeekDays = []Weekday{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

func ValidWeekday(d Weekday) bool {
	for _, day := range WeekDays {
		if day == d {
			return true
		}
	}
	return false
}

type Availability struct {
	Always bool      `json:"always"`
	Days   []Weekday `json:"days"`
	Start  string    `json:"start"`
	End    string    `json:"end"`
}

type ChannelType string

const (
	ChannelPhone    ChannelType = "phone"
	ChannelEmail    ChannelType = "email"
	ChannelWhatsApp ChannelType = "whatsapp"
	ChannelSMS      ChannelType = "sms"
)

func ValidChannelType(t ChannelType) bool {
	switch t {
	case ChannelPhone, ChannelEmail, ChannelWhatsApp, ChannelSMS:
		return true
	}
	return false
}

type Channel struct {
	Type    ChannelType `json:"type"`
	Label   string      `json:"label"`
	Value   string      `json:"value"`
	Action  string      `json:"action,omitempty"`
	Primary bool        `json:"primary,omitempty"`
}

// User is a team-member account. Role is free text, but certain substrings
// ("owner", "manager", "operations coordinator") drive behaviour; see roles.go.
type User struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Role               string       `json:"role"`
	Availability       Availability `json:"availability"`
	Photo              string       `json:"photo,omitempty"`
	Channels           []Channel    `json:"channels"`
	AccessLevel        AccessLevel  `json:"accessLevel"`
	ManagedPropertyIDs []string     `json:"managedPropertyIds"`
}
