package tzclock

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/username/datepanel/pkg/dateutil"
)

// fakeZones serves fixed offsets so tests do not depend on the host
// timezone database.
var fakeZones = ZoneLoaderFunc(func(name string) (*time.Location, error) {
	switch name {
	case "UTC":
		return time.UTC, nil
	case "America/New_York":
		return time.FixedZone("EST", -5*60*60), nil
	case "Asia/Tokyo":
		return time.FixedZone("JST", 9*60*60), nil
	case "Asia/Kolkata":
		return time.FixedZone("IST", 5*60*60+30*60), nil
	}
	return nil, fmt.Errorf("unknown time zone %s", name)
})

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		wantErr bool
	}{
		{"Known zone", "Asia/Tokyo", false},
		{"Unknown zone", "Mars/Olympus_Mons", true},
		{"Empty", "", true},
		{"Blank", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Resolve(fakeZones, tt.zone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.zone, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, dateutil.ErrUnsupportedTimezone) {
				t.Errorf("Resolve(%q) error = %v, want %v", tt.zone, err, dateutil.ErrUnsupportedTimezone)
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("Resolve(%q) returned nil location", tt.zone)
			}
		})
	}
}

func TestSystemZonesUTC(t *testing.T) {
	loc, err := Resolve(SystemZones{}, "UTC")
	if err != nil {
		t.Fatalf("Resolve(UTC) error = %v", err)
	}
	if loc.String() != "UTC" {
		t.Errorf("Resolve(UTC) = %v", loc)
	}
	if _, err := Resolve(SystemZones{}, "Not/AZone"); !errors.Is(err, dateutil.ErrUnsupportedTimezone) {
		t.Errorf("Resolve(Not/AZone) error = %v, want %v", err, dateutil.ErrUnsupportedTimezone)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		zone string
		want string
	}{
		{"America/New_York", "America/New York"},
		{"America/Los_Angeles", "America/Los Angeles"},
		{"UTC", "UTC"},
		{"America/Port_of_Spain", "America/Port of Spain"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.zone); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.zone, got, tt.want)
		}
	}
}

func TestWorldClock(t *testing.T) {
	now := time.Date(2024, 1, 1, 2, 30, 15, 0, time.UTC)

	readings := WorldClock(fakeZones, now, []string{"UTC", "America/New_York", "Bogus/Zone", "Asia/Tokyo"})
	if len(readings) != 4 {
		t.Fatalf("WorldClock() returned %d readings, want 4", len(readings))
	}

	want := []string{"02:30:15 Jan 1", "21:30:15 Dec 31", InvalidZoneText, "11:30:15 Jan 1"}
	for i, r := range readings {
		if r.Text != want[i] {
			t.Errorf("reading %d (%s) = %q, want %q", i, r.Zone, r.Text, want[i])
		}
	}

	if !errors.Is(readings[2].Err, dateutil.ErrUnsupportedTimezone) {
		t.Errorf("bad slot error = %v, want %v", readings[2].Err, dateutil.ErrUnsupportedTimezone)
	}
	if readings[1].Err != nil || readings[3].Err != nil {
		t.Errorf("valid slots reported errors: %v, %v", readings[1].Err, readings[3].Err)
	}
	if readings[1].Label != "America/New York" {
		t.Errorf("label = %q, want America/New York", readings[1].Label)
	}
}

func TestConvert(t *testing.T) {
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		clock    string
		from, to string
		want     string
		wantDay  int
	}{
		{"UTC to New York", "09:00", "UTC", "America/New_York", "04:00", 15},
		{"Tokyo to UTC crosses midnight", "07:15", "Asia/Tokyo", "UTC", "22:15", 14},
		{"Half hour offset", "00:00", "UTC", "Asia/Kolkata", "05:30", 15},
		{"Same zone", "23:59", "UTC", "UTC", "23:59", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(fakeZones, tt.clock, tt.from, tt.to, ref)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if got.Format(WallClockLayout) != tt.want {
				t.Errorf("Convert(%s, %s -> %s) = %s, want %s", tt.clock, tt.from, tt.to, got.Format(WallClockLayout), tt.want)
			}
			if got.Day() != tt.wantDay {
				t.Errorf("Convert(%s, %s -> %s) day = %d, want %d", tt.clock, tt.from, tt.to, got.Day(), tt.wantDay)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	if _, err := Convert(fakeZones, "25:00", "UTC", "UTC", ref); !errors.Is(err, dateutil.ErrInvalidDate) {
		t.Errorf("Convert(25:00) error = %v, want %v", err, dateutil.ErrInvalidDate)
	}
	if _, err := Convert(fakeZones, "10:00", "Bogus/Zone", "UTC", ref); !errors.Is(err, dateutil.ErrUnsupportedTimezone) {
		t.Errorf("Convert(from bogus) error = %v, want %v", err, dateutil.ErrUnsupportedTimezone)
	}
	if _, err := Convert(fakeZones, "10:00", "UTC", "Bogus/Zone", ref); !errors.Is(err, dateutil.ErrUnsupportedTimezone) {
		t.Errorf("Convert(to bogus) error = %v, want %v", err, dateutil.ErrUnsupportedTimezone)
	}
}

func TestCommonZonesHaveNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, z := range CommonZones {
		if seen[z] {
			t.Errorf("duplicate zone %s", z)
		}
		seen[z] = true
	}
	if !Contains(CommonZones, "Asia/Tokyo") || Contains(CommonZones, "Mars/Base") {
		t.Errorf("Contains() gave wrong answers")
	}
}
