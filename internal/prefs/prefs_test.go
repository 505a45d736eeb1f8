package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/username/datepanel/pkg/dateutil"
)

var allowed = []string{"UTC", "America/New_York", "Asia/Tokyo", "Europe/Berlin", "Asia/Kolkata"}

var defaults = Selection{
	Slots: []string{"UTC", "America/New_York", "Asia/Tokyo"},
	From:  "UTC",
	To:    "America/New_York",
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "prefs.json"), allowed, zaptest.NewLogger(t))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := store.Apply(defaults); !reflect.DeepEqual(got, defaults) {
		t.Errorf("Apply() = %+v, want defaults %+v", got, defaults)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	store := NewStore(path, allowed, zaptest.NewLogger(t))
	sel := Selection{Slots: []string{"", "Europe/Berlin", ""}, To: "Asia/Kolkata"}
	if err := store.Remember(sel); err != nil {
		t.Fatalf("Remember() error = %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded := NewStore(path, allowed, zaptest.NewLogger(t))
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Selection{
		Slots: []string{"UTC", "Europe/Berlin", "Asia/Tokyo"},
		From:  "UTC",
		To:    "Asia/Kolkata",
	}
	if got := reloaded.Apply(defaults); !reflect.DeepEqual(got, want) {
		t.Errorf("Apply() = %+v, want %+v", got, want)
	}
	if reloaded.GetCurrentState().SavedAt == "" {
		t.Errorf("SavedAt was not recorded")
	}
}

func TestLoadIgnoresUnknownZones(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	content := `{"timezones": {"timezone1": "Mars/Olympus", "timezone2": "Asia/Tokyo", "from-timezone": "Nowhere"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	store := NewStore(path, allowed, zap.New(core))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Selection{
		Slots: []string{"UTC", "Asia/Tokyo", "Asia/Tokyo"},
		From:  "UTC",
		To:    "America/New_York",
	}
	if got := store.Apply(defaults); !reflect.DeepEqual(got, want) {
		t.Errorf("Apply() = %+v, want %+v", got, want)
	}
	if n := logs.FilterMessage("Ignoring unknown timezone in preferences").Len(); n != 2 {
		t.Errorf("logged %d warnings, want 2", n)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	store := NewStore(path, allowed, zaptest.NewLogger(t))
	if err := store.Load(); err == nil {
		t.Errorf("Load() of corrupt file succeeded")
	}
}

func TestRememberRejectsUnknownZone(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "prefs.json"), allowed, zaptest.NewLogger(t))

	err := store.Remember(Selection{Slots: []string{"Asia/Tokyo"}, From: "Mars/Olympus"})
	if err == nil {
		t.Fatalf("Remember() accepted an unknown zone")
	}
	if !errors.Is(err, dateutil.ErrUnsupportedTimezone) {
		t.Errorf("Remember() error = %v, want %v", err, dateutil.ErrUnsupportedTimezone)
	}
	if len(store.GetCurrentState().Timezones) != 0 {
		t.Errorf("Remember() recorded %v after failing", store.GetCurrentState().Timezones)
	}
}

func TestApplyDoesNotAliasDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "prefs.json"), allowed, zaptest.NewLogger(t))
	if err := store.Remember(Selection{Slots: []string{"Europe/Berlin"}}); err != nil {
		t.Fatalf("Remember() error = %v", err)
	}

	base := Selection{Slots: []string{"UTC"}}
	got := store.Apply(base)
	if base.Slots[0] != "UTC" {
		t.Errorf("Apply() modified its input: %v", base.Slots)
	}
	if got.Slots[0] != "Europe/Berlin" {
		t.Errorf("Apply().Slots[0] = %s, want Europe/Berlin", got.Slots[0])
	}
}
