package domain

import "time"

// Layouts used for parsing user input and rendering local times
const (
	// DateLayout is the layout of a local calendar date, also used as the
	// recurring alarm date guard.
	DateLayout = "2006-01-02"

	// InputLayout is the layout accepted by absolute registrations (local time).
	InputLayout = "2006-01-02 15:04"

	// DisplayLayout is the layout used when showing alarm times to users.
	DisplayLayout = "2006-01-02 15:04:05"

	// TimeOfDayLayout is the HH:MM layout of recurring alarms.
	TimeOfDayLayout = "15:04"
)

const (
	// DefaultTimezone is the zone used when none is configured
	DefaultTimezone = "Asia/Seoul"

	// DefaultTickInterval is how often the scheduler evaluates due alarms
	DefaultTickInterval = 60 * time.Second

	// MaxRelativeMinutes caps relative registrations to one year
	MaxRelativeMinutes = 365 * 24 * 60

	// MaxMessageLength is the longest alarm message accepted, in runes
	MaxMessageLength = 1000
)

// MentionPolicy selects which mentions a delivered message may trigger.
type MentionPolicy int

const (
	// MentionUser allows user mentions only; broadcast mentions are escaped.
	MentionUser MentionPolicy = iota
	// MentionEveryone additionally honors <!everyone>, <!channel> and <!here>.
	MentionEveryone
)

func (p MentionPolicy) String() string {
	switch p {
	case MentionEveryone:
		return "everyone"
	default:
		return "user"
	}
}

// WellKnownTimes maps named times of day accepted by recurring commands to
// their hour and minute.
var WellKnownTimes = map[string][2]int{
	"morning":  {9, 0},
	"noon":     {12, 0},
	"evening":  {18, 0},
	"midnight": {0, 0},
}
