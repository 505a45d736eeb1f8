// Package tzclock shows the current time in several timezones and converts
// wall-clock times between them.
//
// Timezone data comes from the host through a ZoneLoader; nothing here keeps
// its own database.
package tzclock

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/datepanel/pkg/dateutil"
)

const (
	// ReadingLayout is the world clock format, for example "09:30:00 Jan 2".
	ReadingLayout = "15:04:05 Jan 2"
	// WallClockLayout is the format of converter input and output.
	WallClockLayout = "15:04"
	// InvalidZoneText replaces a reading whose zone cannot be resolved.
	InvalidZoneText = "Invalid timezone"
)

// CommonZones is the default list of selectable zones.
var CommonZones = []string{
	"UTC",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Asia/Tokyo",
	"Asia/Shanghai",
	"Asia/Kolkata",
	"Australia/Sydney",
	"Pacific/Auckland",
}

// ZoneLoader resolves IANA zone identifiers.
type ZoneLoader interface {
	Load(name string) (*time.Location, error)
}

// ZoneLoaderFunc adapts a function to ZoneLoader.
type ZoneLoaderFunc func(name string) (*time.Location, error)

func (f ZoneLoaderFunc) Load(name string) (*time.Location, error) {
	return f(name)
}

// SystemZones loads zones from the host timezone database.
type SystemZones struct{}

func (SystemZones) Load(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}

// Resolve loads name through loader. Every failure, including an empty
// name, wraps dateutil.ErrUnsupportedTimezone.
func Resolve(loader ZoneLoader, name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty zone name", dateutil.ErrUnsupportedTimezone)
	}
	loc, err := loader.Load(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", dateutil.ErrUnsupportedTimezone, name, err)
	}
	return loc, nil
}

// DisplayName returns the zone identifier with underscores shown as spaces.
func DisplayName(zone string) string {
	return strings.ReplaceAll(zone, "_", " ")
}

// Reading is the time shown for one world clock slot.
type Reading struct {
	Zone  string `json:"zone" yaml:"zone"`
	Label string `json:"label" yaml:"label"`
	Text  string `json:"text" yaml:"text"`
	Err   error  `json:"-" yaml:"-"`
}

// WorldClock reads now in every zone. A zone that cannot be resolved yields
// a reading with Err set and InvalidZoneText; the other slots are still
// computed.
func WorldClock(loader ZoneLoader, now time.Time, zones []string) []Reading {
	readings := make([]Reading, 0, len(zones))
	for _, zone := range zones {
		r := Reading{Zone: zone, Label: DisplayName(zone)}
		loc, err := Resolve(loader, zone)
		if err != nil {
			r.Err = err
			r.Text = InvalidZoneText
		} else {
			r.Text = now.In(loc).Format(ReadingLayout)
		}
		readings = append(readings, r)
	}
	return readings
}

// Convert reads wallClock ("HH:MM") as a time on ref's calendar day in the
// from zone and returns the same instant in the to zone.
func Convert(loader ZoneLoader, wallClock, from, to string, ref time.Time) (time.Time, error) {
	clock, err := time.Parse(WallClockLayout, strings.TrimSpace(wallClock))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not HH:MM", dateutil.ErrInvalidDate, wallClock)
	}

	fromLoc, err := Resolve(loader, from)
	if err != nil {
		return time.Time{}, err
	}
	toLoc, err := Resolve(loader, to)
	if err != nil {
		return time.Time{}, err
	}

	day := ref.In(fromLoc)
	source := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, fromLoc)
	return source.In(toLoc), nil
}

// Contains reports whether zone is one of zones.
func Contains(zones []string, zone string) bool {
	for _, z := range zones {
		if z == zone {
			return true
		}
	}
	return false
}
