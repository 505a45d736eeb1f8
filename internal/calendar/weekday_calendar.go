package calendar

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/datepanel/pkg/dateutil"
)

// WeekdayCalendar implements Calendar with a plain Monday to Friday week.
// It knows no holidays.
type WeekdayCalendar struct {
	logger  *zap.Logger
	now     func() time.Time
	cache   map[string]*MonthInfo
	cacheMu sync.RWMutex
}

// Option configures a WeekdayCalendar.
type Option func(*WeekdayCalendar)

// WithNow sets the clock used to decide which day is today.
func WithNow(now func() time.Time) Option {
	return func(wc *WeekdayCalendar) {
		wc.now = now
	}
}

// NewWeekdayCalendar creates a new WeekdayCalendar instance
func NewWeekdayCalendar(logger *zap.Logger, opts ...Option) *WeekdayCalendar {
	wc := &WeekdayCalendar{
		logger: logger,
		now:    time.Now,
		cache:  make(map[string]*MonthInfo),
	}
	for _, opt := range opts {
		opt(wc)
	}
	return wc
}

// Today returns the calendar day of the configured clock.
func (wc *WeekdayCalendar) Today() dateutil.CalendarDate {
	return dateutil.Today(wc.now())
}

// IsWorkday checks if the given date is a working day
func (wc *WeekdayCalendar) IsWorkday(date dateutil.CalendarDate) (bool, error) {
	if date.IsZero() {
		return false, fmt.Errorf("%w: date is not set", dateutil.ErrInvalidDate)
	}
	return dateutil.IsWeekday(date), nil
}

// GetMonthInfo returns calendar info for the entire month. The month layout
// is cached; the today flag is applied on every call.
func (wc *WeekdayCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d out of range", dateutil.ErrInvalidDate, month)
	}

	cacheKey := fmt.Sprintf("%d-%02d", year, month)

	wc.cacheMu.RLock()
	cached, ok := wc.cache[cacheKey]
	wc.cacheMu.RUnlock()

	if !ok {
		cached = buildMonth(year, month)

		wc.cacheMu.Lock()
		wc.cache[cacheKey] = cached
		wc.cacheMu.Unlock()

		wc.logger.Debug("Month info built and cached",
			zap.Int("year", year),
			zap.Int("month", int(month)))
	}

	return withToday(cached, wc.Today()), nil
}

// GetDayInfo returns detailed info for a specific day
func (wc *WeekdayCalendar) GetDayInfo(date dateutil.CalendarDate) (*DayInfo, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is not set", dateutil.ErrInvalidDate)
	}

	monthInfo, err := wc.GetMonthInfo(date.Year(), date.Month())
	if err != nil {
		return nil, err
	}

	day := monthInfo.Days[date.Day()-1]
	return &day, nil
}

// buildMonth computes every day of a month with IsToday left unset.
func buildMonth(year int, month time.Month) *MonthInfo {
	info := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, dateutil.DaysInMonth(year, month)),
	}

	for date := range dateutil.MonthRange(year, month).Days() {
		day := DayInfo{
			Date:      date,
			DayOfYear: dateutil.DayOfYear(date),
			Type:      DayTypeWorkday,
			IsWorkday: true,
			Flags: dateutil.Flags{
				IsWeekend:      dateutil.IsWeekend(date),
				IsLeapDay:      dateutil.IsLeapDay(date),
				IsQuarterStart: dateutil.IsQuarterStart(date),
			},
		}
		if day.Flags.IsWeekend {
			day.Type = DayTypeWeekend
			day.IsWorkday = false
			info.Weekends++
		} else {
			info.WorkDays++
		}
		info.Days = append(info.Days, day)
	}

	return info
}

// withToday returns a copy of month with the today flag applied.
func withToday(month *MonthInfo, today dateutil.CalendarDate) *MonthInfo {
	out := *month
	out.Days = make([]DayInfo, len(month.Days))
	copy(out.Days, month.Days)
	if today.Year() == month.Year && today.Month() == month.Month {
		out.Days[today.Day()-1].Flags.IsToday = true
	}
	return &out
}
