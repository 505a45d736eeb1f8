package dateutil

import "time"

// Flags are the highlights a day table shows for a date.
type Flags struct {
	IsToday        bool `json:"is_today" yaml:"is_today"`
	IsWeekend      bool `json:"is_weekend" yaml:"is_weekend"`
	IsLeapDay      bool `json:"is_leap_day" yaml:"is_leap_day"`
	IsQuarterStart bool `json:"is_quarter_start" yaml:"is_quarter_start"`
}

// Classify computes the flags of date relative to today. Today is matched
// by calendar day, not by instant.
func Classify(date, today CalendarDate) Flags {
	return Flags{
		IsToday:        date.Equal(today),
		IsWeekend:      IsWeekend(date),
		IsLeapDay:      IsLeapDay(date),
		IsQuarterStart: IsQuarterStart(date),
	}
}

// IsLeapDay reports whether date is February 29.
func IsLeapDay(date CalendarDate) bool {
	return date.Month() == time.February && date.Day() == 29 && IsLeapYear(date.Year())
}

// IsQuarterStart reports whether date is January 1, April 1, July 1 or
// October 1.
func IsQuarterStart(date CalendarDate) bool {
	if date.Day() != 1 {
		return false
	}
	switch date.Month() {
	case time.January, time.April, time.July, time.October:
		return true
	}
	return false
}
