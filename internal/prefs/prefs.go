// Package prefs persists the timezone selections of a single user.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/username/datepanel/internal/tzclock"
	"github.com/username/datepanel/pkg/dateutil"
)

const (
	KeyFrom = "from-timezone"
	KeyTo   = "to-timezone"
)

// SlotKey returns the stored key of world clock slot i (zero based).
func SlotKey(i int) string {
	return fmt.Sprintf("timezone%d", i+1)
}

// State is the on-disk form of the preferences.
type State struct {
	Timezones map[string]string `json:"timezones"`
	SavedAt   string            `json:"saved_at,omitempty"`
}

// Selection is the set of zones shown by the world clock and converter.
type Selection struct {
	Slots []string `json:"slots" yaml:"slots"`
	From  string   `json:"from" yaml:"from"`
	To    string   `json:"to" yaml:"to"`
}

// Store manages the preferences file
type Store struct {
	stateFile string
	allowed   []string
	state     *State
	logger    *zap.Logger
	now       func() time.Time
}

// NewStore creates a new preferences store. Only zones listed in allowed are
// accepted from the file.
func NewStore(stateFile string, allowed []string, logger *zap.Logger) *Store {
	return &Store{
		stateFile: stateFile,
		allowed:   allowed,
		logger:    logger,
		now:       time.Now,
		state:     &State{Timezones: make(map[string]string)},
	}
}

// Load loads the preferences from file. A missing file leaves the store
// empty; entries naming a zone outside the allowed list are dropped.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.stateFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.state = &State{Timezones: make(map[string]string)}
			return nil
		}
		return fmt.Errorf("failed to read preferences file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse preferences file: %w", err)
	}

	kept := make(map[string]string, len(state.Timezones))
	for key, zone := range state.Timezones {
		if !tzclock.Contains(s.allowed, zone) {
			s.logger.Warn("Ignoring unknown timezone in preferences",
				zap.String("key", key),
				zap.String("zone", zone))
			continue
		}
		kept[key] = zone
	}
	state.Timezones = kept

	s.state = &state
	s.logger.Debug("Preferences loaded",
		zap.String("file", s.stateFile),
		zap.Int("timezones", len(kept)))

	return nil
}

// Save saves the preferences to file
func (s *Store) Save() error {
	s.state.SavedAt = s.now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if dir := filepath.Dir(s.stateFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create preferences directory: %w", err)
		}
	}
	if err := os.WriteFile(s.stateFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}

	s.logger.Info("Preferences saved",
		zap.String("file", s.stateFile),
		zap.Int("timezones", len(s.state.Timezones)))

	return nil
}

// Apply overlays the stored zones on defaults.
func (s *Store) Apply(defaults Selection) Selection {
	out := Selection{
		Slots: make([]string, len(defaults.Slots)),
		From:  defaults.From,
		To:    defaults.To,
	}
	copy(out.Slots, defaults.Slots)

	for i := range out.Slots {
		if zone, ok := s.state.Timezones[SlotKey(i)]; ok {
			out.Slots[i] = zone
		}
	}
	if zone, ok := s.state.Timezones[KeyFrom]; ok {
		out.From = zone
	}
	if zone, ok := s.state.Timezones[KeyTo]; ok {
		out.To = zone
	}
	return out
}

// Remember records sel in the store. Zones outside the allowed list are
// rejected and nothing is recorded.
func (s *Store) Remember(sel Selection) error {
	for _, zone := range append(append([]string{}, sel.Slots...), sel.From, sel.To) {
		if zone != "" && !tzclock.Contains(s.allowed, zone) {
			return fmt.Errorf("%w: %q is not in the selectable list", dateutil.ErrUnsupportedTimezone, zone)
		}
	}

	for i, zone := range sel.Slots {
		if zone != "" {
			s.state.Timezones[SlotKey(i)] = zone
		}
	}
	if sel.From != "" {
		s.state.Timezones[KeyFrom] = sel.From
	}
	if sel.To != "" {
		s.state.Timezones[KeyTo] = sel.To
	}
	return nil
}

// GetCurrentState returns current state
func (s *Store) GetCurrentState() *State {
	return s.state
}
