package panel

import (
	"time"

	"go.uber.org/zap"

	"github.com/username/datepanel/internal/prefs"
	"github.com/username/datepanel/internal/tzclock"
)

// DefaultSelection returns the configured world clock and converter zones.
func (p *Panel) DefaultSelection() prefs.Selection {
	return prefs.Selection{
		Slots: append([]string(nil), p.config.Timezones.Slots...),
		From:  p.config.Timezones.From,
		To:    p.config.Timezones.To,
	}
}

// AvailableZones returns the selectable zones.
func (p *Panel) AvailableZones() []string {
	return p.config.Timezones.Available
}

// WorldClock reads now in every slot. Unresolvable slots are logged and
// reported in their reading; the rest are unaffected.
func (p *Panel) WorldClock(now time.Time, slots []string) []tzclock.Reading {
	readings := tzclock.WorldClock(p.zones, now, slots)
	for _, r := range readings {
		if r.Err != nil {
			p.logger.Warn("Failed to resolve timezone",
				zap.String("zone", r.Zone),
				zap.Error(r.Err))
		}
	}
	return readings
}

// ConvertTime converts a HH:MM wall clock on ref's day from one zone to
// another and returns it as HH:MM.
func (p *Panel) ConvertTime(wallClock, from, to string, ref time.Time) (string, error) {
	t, err := tzclock.Convert(p.zones, wallClock, from, to, ref)
	if err != nil {
		p.logger.Debug("Time conversion failed",
			zap.String("time", wallClock),
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err))
		return "", err
	}
	return t.Format(tzclock.WallClockLayout), nil
}
