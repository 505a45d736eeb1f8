package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/username/datepanel/internal/calendar"
	"github.com/username/datepanel/internal/tzclock"
)

// SlotCount is the number of world clock slots.
const SlotCount = 3

// Config represents application configuration
type Config struct {
	Timezones TimezonesConfig `mapstructure:"timezones"`
	Table     TableConfig     `mapstructure:"table"`
	Clock     ClockConfig     `mapstructure:"clock"`
	Log       LogConfig       `mapstructure:"log"`
	State     StateConfig     `mapstructure:"state"`
}

// TimezonesConfig selects the world clock and converter zones
type TimezonesConfig struct {
	Slots     []string `mapstructure:"slots"`
	From      string   `mapstructure:"from"`
	To        string   `mapstructure:"to"`
	Available []string `mapstructure:"available"`
}

// TableConfig represents day table configuration
type TableConfig struct {
	ViewMode string `mapstructure:"view_mode"` // year-grid, month-calendar or compact-table
	MinYear  int    `mapstructure:"min_year"`
	MaxYear  int    `mapstructure:"max_year"`
}

// ClockConfig represents world clock loop configuration
type ClockConfig struct {
	RefreshInterval string `mapstructure:"refresh_interval"`
	SystemTray      bool   `mapstructure:"system_tray"` // Show system tray icon (Windows only)
}

// LogConfig represents file logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// StateConfig represents state storage configuration
type StateConfig struct {
	PreferencesFile string `mapstructure:"preferences_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timezones.slots", []string{"UTC", "America/New_York", "Asia/Tokyo"})
	v.SetDefault("timezones.from", "UTC")
	v.SetDefault("timezones.to", "America/New_York")
	v.SetDefault("timezones.available", tzclock.CommonZones)
	v.SetDefault("table.view_mode", string(calendar.ViewYearGrid))
	v.SetDefault("table.min_year", 1900)
	v.SetDefault("table.max_year", 2100)
	v.SetDefault("clock.refresh_interval", "1s")
	v.SetDefault("clock.system_tray", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("state.preferences_file", "datepanel-prefs.json")
}

// Load loads configuration from file. Without an explicit path a missing
// config file is not an error; every key has a default.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.datepanel")
		v.AddConfigPath("/etc/datepanel")
	}

	// Read environment variables, e.g. DATEPANEL_CLOCK_REFRESH_INTERVAL
	v.SetEnvPrefix("datepanel")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate Timezones config
	if len(c.Timezones.Available) == 0 {
		return fmt.Errorf("timezones.available must not be empty")
	}
	if len(c.Timezones.Slots) != SlotCount {
		return fmt.Errorf("timezones.slots must list %d zones, got %d", SlotCount, len(c.Timezones.Slots))
	}
	for _, zone := range append(append([]string{}, c.Timezones.Slots...), c.Timezones.From, c.Timezones.To) {
		if !tzclock.Contains(c.Timezones.Available, zone) {
			return fmt.Errorf("timezone '%s' is not listed in timezones.available", zone)
		}
	}

	// Validate Table config
	if _, err := calendar.ParseViewMode(c.Table.ViewMode); err != nil {
		return fmt.Errorf("table.view_mode: %w", err)
	}
	if c.Table.MinYear > c.Table.MaxYear {
		return fmt.Errorf("table.min_year (%d) must not exceed table.max_year (%d)", c.Table.MinYear, c.Table.MaxYear)
	}

	return nil
}

// GetRefreshInterval returns the world clock refresh interval
func (c *ClockConfig) GetRefreshInterval() time.Duration {
	if c.RefreshInterval == "" {
		return time.Second
	}
	duration, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || duration <= 0 {
		return time.Second
	}
	return duration
}

// GetViewMode returns the configured day table layout
func (c *TableConfig) GetViewMode() calendar.ViewMode {
	mode, err := calendar.ParseViewMode(c.ViewMode)
	if err != nil {
		return calendar.ViewYearGrid
	}
	return mode
}

// Bounds returns the navigable year range
func (c *TableConfig) Bounds() calendar.Bounds {
	return calendar.Bounds{MinYear: c.MinYear, MaxYear: c.MaxYear}
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
	c.State.PreferencesFile = os.ExpandEnv(c.State.PreferencesFile)
}
