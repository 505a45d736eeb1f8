// Package dateutil implements calendar arithmetic over Gregorian dates:
// day of year, ISO week numbers, leap years, day and business-day
// differences, date ranges and their summaries. All functions are pure.
package dateutil

import (
	"time"

	"cloudeng.io/datetime"
)

const (
	// DateLayout is the ISO 8601 calendar date layout.
	DateLayout = "2006-01-02"

	secondsPerDay = 24 * 60 * 60
)

// StartOfDay returns the start of the day (00:00:00) for the given time in its location
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date CalendarDate) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date CalendarDate) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two times fall on the same calendar day,
// each read in its own location.
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DayOfYear returns the 1-based ordinal of date within its year: the
// number of whole days since the last day of the previous year.
func DayOfYear(date CalendarDate) int {
	dayZero := NormalizeDate(date.Year(), time.January, 0)
	return DaysBetween(dayZero, date)
}

// ISOWeek returns the ISO 8601 year and week number of date. Weeks start on
// Monday and week 1 is the week holding the year's first Thursday, so the
// ISO year can differ from the calendar year around January 1.
func ISOWeek(date CalendarDate) (year, week int) {
	// Thursday of date's own week decides which year the week belongs to.
	sinceMonday := (int(date.Weekday()) + 6) % 7
	anchor := AddDays(date, 3-sinceMonday)

	jan1 := NormalizeDate(anchor.Year(), time.January, 1)
	shift := (int(time.Thursday) - int(jan1.Weekday()) + 7) % 7
	firstThursday := AddDays(jan1, shift)

	return anchor.Year(), 1 + DaysBetween(firstThursday, anchor)/7
}

// ISOWeekNumber returns the ISO 8601 week number of date.
func ISOWeekNumber(date CalendarDate) int {
	_, week := ISOWeek(date)
	return week
}

// AddDays returns the date n days after date; n may be negative.
func AddDays(date CalendarDate, n int) CalendarDate {
	return NormalizeDate(date.Year(), date.Month(), date.Day()+n)
}

// DaysBetween returns the signed number of days from start to end. It is
// zero for the same day and negative when end is before start.
func DaysBetween(start, end CalendarDate) int {
	return int((end.Unix() - start.Unix()) / secondsPerDay)
}

// DaysSinceEpoch returns the number of days between 1970-01-01 and date,
// negative for earlier dates.
func DaysSinceEpoch(date CalendarDate) int {
	return DaysBetween(NormalizeDate(1970, time.January, 1), date)
}

// BusinessDaysBetween counts the Monday-Friday days in [start, end].
// Holidays are not considered.
func BusinessDaysBetween(start, end CalendarDate) (int, error) {
	r, err := NewDateRange(start, end)
	if err != nil {
		return 0, err
	}
	count := 0
	for d := range r.Days() {
		if IsWeekday(d) {
			count++
		}
	}
	return count, nil
}
