package entity

import "time"

// Alarm is a one-shot alarm. Fired flips to true once, when the scheduler
// delivers it.
type Alarm struct {
	ID        int64
	GuildID   string
	ChannelID string
	UserID    string
	RunAt     time.Time // UTC
	Message   string
	Fired     bool
	CreatedAt time.Time
}

// RecurringAlarm fires once per local calendar day at Hour:Minute.
type RecurringAlarm struct {
	ID        int64
	GuildID   string
	ChannelID string
	UserID    string
	Hour      int
	Minute    int
	Message   string
	Enabled   bool
	// LastFiredDate is the local date (YYYY-MM-DD) of the last delivery,
	// empty when it never fired.
	LastFiredDate string
	// StartsOn is the first local date (YYYY-MM-DD) the alarm may fire on,
	// empty when it may fire right away.
	StartsOn     string
	PingEveryone bool
	CreatedAt    time.Time
}

// Confirmation is returned when a one-shot alarm is registered.
type Confirmation struct {
	ID        int64
	LocalTime time.Time
}

// PendingAlarm is a one-shot alarm as shown to its owner.
type PendingAlarm struct {
	ID        int64
	LocalTime time.Time
	Message   string
}

// RecurringConfirmation is returned when a recurring alarm is registered.
type RecurringConfirmation struct {
	ID     int64
	Hour   int
	Minute int
	// FirstLocalDate is the first local date the alarm will fire on.
	FirstLocalDate string
	PingEveryone   bool
}
