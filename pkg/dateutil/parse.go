package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// inputLayouts are tried in order. Layouts without a zone are read in the
// caller's location.
var inputLayouts = []string{
	DateLayout,
	"02.01.2006",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.000-0700",
	"2006-01",
	"2006",
	"20060102",
}

// ParseInstant parses ISO 8601 text, or an integer number of epoch seconds,
// into an instant. Text without an offset is read as UTC. Reduced-precision
// ("2024", "2024-03") and basic-format ("20240301") dates win over epoch
// seconds.
func ParseInstant(text string) (time.Time, error) {
	return ParseInstantIn(text, time.UTC)
}

// ParseInstantIn is like ParseInstant but reads text without an offset in
// loc.
func ParseInstantIn(text string, loc *time.Location) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrInvalidDate)
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, nil
		}
	}
	if t, err := ParseEpoch(text); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
}

// ParseDate parses text into the calendar date it names. A time part is
// accepted and dropped; the date is the one written in the text, not its
// UTC equivalent.
func ParseDate(text string) (CalendarDate, error) {
	t, err := ParseInstant(text)
	if err != nil {
		return CalendarDate{}, err
	}
	return FromTime(t), nil
}

// ParseEpoch parses an integer number of seconds since the Unix epoch.
func ParseEpoch(text string) (time.Time, error) {
	secs, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not an epoch timestamp", ErrInvalidDate, text)
	}
	return FromUnix(secs), nil
}

// FromUnix returns the UTC instant for secs seconds since the Unix epoch.
func FromUnix(secs int64) time.Time {
	return time.Unix(secs, 0).UTC()
}

// FormatISO8601 formats an instant as ISO 8601 with milliseconds in UTC.
// Example: 2025-01-15T10:00:00.000Z
func FormatISO8601(date time.Time) string {
	return date.UTC().Format("2006-01-02T15:04:05.000Z")
}
