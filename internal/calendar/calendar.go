package calendar

import (
	"time"

	"github.com/username/datepanel/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	default:
		return "unknown"
	}
}

// DayInfo is one cell of a day table: a date, its position in the year and
// the highlights it carries.
type DayInfo struct {
	Date      dateutil.CalendarDate `json:"date" yaml:"date"`
	DayOfYear int                   `json:"day_of_year" yaml:"day_of_year"`
	Type      DayType               `json:"-" yaml:"-"`
	IsWorkday bool                  `json:"is_workday" yaml:"is_workday"`
	Flags     dateutil.Flags        `json:"flags" yaml:"flags"`
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year     int        `json:"year" yaml:"year"`
	Month    time.Month `json:"month" yaml:"month"`
	WorkDays int        `json:"work_days" yaml:"work_days"`
	Weekends int        `json:"weekends" yaml:"weekends"`
	Days     []DayInfo  `json:"days" yaml:"days"`
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date dateutil.CalendarDate) (bool, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date dateutil.CalendarDate) (*DayInfo, error)
}
