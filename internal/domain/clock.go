package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current instant in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// LocalDate returns the calendar date of t in loc.
func LocalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// MinuteOfDay returns the minutes elapsed since local midnight of t in loc.
func MinuteOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// ValidTimeOfDay reports whether hour and minute form a valid HH:MM.
func ValidTimeOfDay(hour, minute int) bool {
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

// FormatTimeOfDay renders hour and minute as HH:MM.
func FormatTimeOfDay(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ParseTimeOfDay parses "HH:MM" (or "H:MM") or one of the WellKnownTimes names.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hm, ok := WellKnownTimes[s]; ok {
		return hm[0], hm[1], nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[1]) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 {
		return 0, 0, Errorf(ErrInvalid, "invalid time %q, use HH:MM (ex: 20:00)", s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, Errorf(ErrInvalid, "invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, Errorf(ErrInvalid, "invalid minute in %q", s)
	}
	if !ValidTimeOfDay(hour, minute) {
		return 0, 0, Errorf(ErrInvalid, "time %q is out of range (00:00-23:59)", s)
	}

	return hour, minute, nil
}
