package dateutil

import (
	"fmt"
	"time"
)

// CalendarDate is a Gregorian calendar day. Its instant is midnight UTC of
// that day, so differences between dates are always whole days.
//
// The zero value is not a valid date; use NewCalendarDate, NormalizeDate,
// FromTime or ParseDate.
type CalendarDate struct {
	t time.Time
}

// NewCalendarDate returns the date for the given triple, failing with
// ErrInvalidDate if it does not exist (month outside 1..12, Feb 30 and so on).
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	if month < time.January || month > time.December {
		return CalendarDate{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return CalendarDate{}, fmt.Errorf("%w: %04d-%02d has no day %d", ErrInvalidDate, year, month, day)
	}
	return CalendarDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}, nil
}

// MustDate is like NewCalendarDate but panics on an invalid triple.
// Intended for constants and tests.
func MustDate(year int, month time.Month, day int) CalendarDate {
	d, err := NewCalendarDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// NormalizeDate builds a date from a possibly out of range triple using
// calendar rollover: month 13 is January of the next year, day 0 is the
// last day of the previous month, day 32 of January is February 1.
func NormalizeDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime returns the calendar date shown by t in its own location.
func FromTime(t time.Time) CalendarDate {
	return NormalizeDate(t.Year(), t.Month(), t.Day())
}

// Today returns the calendar date of now in now's location.
func Today(now time.Time) CalendarDate {
	return FromTime(now)
}

// IsZero reports whether d is the zero value.
func (d CalendarDate) IsZero() bool {
	return d.t.IsZero()
}

func (d CalendarDate) Year() int { return d.t.Year() }

func (d CalendarDate) Month() time.Month { return d.t.Month() }

func (d CalendarDate) Day() int { return d.t.Day() }

func (d CalendarDate) Weekday() time.Weekday { return d.t.Weekday() }

// Time returns the instant of the date, midnight UTC.
func (d CalendarDate) Time() time.Time {
	return d.t
}

// In returns midnight of the date in loc.
func (d CalendarDate) In(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// Unix returns the epoch seconds of the date's instant.
func (d CalendarDate) Unix() int64 {
	return d.t.Unix()
}

// Equal reports whether d and o are the same calendar day.
func (d CalendarDate) Equal(o CalendarDate) bool {
	return d.t.Equal(o.t)
}

func (d CalendarDate) Before(o CalendarDate) bool {
	return d.t.Before(o.t)
}

func (d CalendarDate) After(o CalendarDate) bool {
	return d.t.After(o.t)
}

// Compare returns -1, 0 or +1.
func (d CalendarDate) Compare(o CalendarDate) int {
	return d.t.Compare(o.t)
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return d.t.Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *CalendarDate) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML renders the date as YYYY-MM-DD.
func (d CalendarDate) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}
