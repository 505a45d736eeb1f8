package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/datepanel/pkg/dateutil"
)

// ViewMode selects how a day table is laid out.
type ViewMode string

const (
	ViewYearGrid      ViewMode = "year-grid"
	ViewMonthCalendar ViewMode = "month-calendar"
	ViewCompactTable  ViewMode = "compact-table"
)

// ViewModes lists the supported layouts in menu order.
var ViewModes = []ViewMode{ViewYearGrid, ViewMonthCalendar, ViewCompactTable}

// ParseViewMode maps a layout name to a ViewMode. An empty name selects the
// year grid.
func ParseViewMode(name string) (ViewMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ViewYearGrid, nil
	}
	for _, mode := range ViewModes {
		if string(mode) == name {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown view mode %q (expected one of year-grid, month-calendar, compact-table)", name)
}

// Description is the one-line help shown above a view.
func (v ViewMode) Description() string {
	switch v {
	case ViewMonthCalendar:
		return "Traditional calendar view - navigate months to see day-of-year values"
	case ViewCompactTable:
		return "Compact year view showing all 12 months"
	default:
		return "Year overview - one row per day of the month, one column per month"
	}
}

// YearGrid has one row per day number 1..31 and one column per month. Cells
// for dates that do not exist (Feb 30, Apr 31) are nil.
type YearGrid struct {
	Year  int              `json:"year" yaml:"year"`
	Leap  bool             `json:"leap" yaml:"leap"`
	Cells [31][12]*DayInfo `json:"cells" yaml:"cells"`
}

// BuildYearGrid lays out year from cal.
func BuildYearGrid(cal Calendar, year int) (*YearGrid, error) {
	grid := &YearGrid{Year: year, Leap: dateutil.IsLeapYear(year)}

	for m := time.January; m <= time.December; m++ {
		info, err := cal.GetMonthInfo(year, m)
		if err != nil {
			return nil, fmt.Errorf("failed to build %d-%02d: %w", year, m, err)
		}
		for i := range info.Days {
			day := info.Days[i]
			grid.Cells[day.Date.Day()-1][m-1] = &day
		}
	}

	return grid, nil
}

// MonthCalendar is a month laid out in Sunday-first weeks. Cells before the
// first and after the last day of the month are nil.
type MonthCalendar struct {
	Year  int           `json:"year" yaml:"year"`
	Month time.Month    `json:"month" yaml:"month"`
	Weeks [][7]*DayInfo `json:"weeks" yaml:"weeks"`
}

// BuildMonthCalendar lays out one month from cal.
func BuildMonthCalendar(cal Calendar, year int, month time.Month) (*MonthCalendar, error) {
	info, err := cal.GetMonthInfo(year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to build %d-%02d: %w", year, month, err)
	}

	mc := &MonthCalendar{Year: year, Month: month}
	var week [7]*DayInfo
	for i := range info.Days {
		day := info.Days[i]
		col := int(day.Date.Weekday())
		week[col] = &day
		if col == int(time.Saturday) {
			mc.Weeks = append(mc.Weeks, week)
			week = [7]*DayInfo{}
		}
	}
	if last := info.Days[len(info.Days)-1]; last.Date.Weekday() != time.Saturday {
		mc.Weeks = append(mc.Weeks, week)
	}

	return mc, nil
}

// CompactTable holds every month of a year, day cells only.
type CompactTable struct {
	Year   int         `json:"year" yaml:"year"`
	Leap   bool        `json:"leap" yaml:"leap"`
	Months []MonthInfo `json:"months" yaml:"months"`
}

// BuildCompactTable lays out year as twelve month blocks.
func BuildCompactTable(cal Calendar, year int) (*CompactTable, error) {
	table := &CompactTable{
		Year:   year,
		Leap:   dateutil.IsLeapYear(year),
		Months: make([]MonthInfo, 0, 12),
	}

	for m := time.January; m <= time.December; m++ {
		info, err := cal.GetMonthInfo(year, m)
		if err != nil {
			return nil, fmt.Errorf("failed to build %d-%02d: %w", year, m, err)
		}
		table.Months = append(table.Months, *info)
	}

	return table, nil
}

// YearLabel describes whether year is a leap year.
func YearLabel(year int) string {
	if dateutil.IsLeapYear(year) {
		return fmt.Sprintf("%d - Leap Year", year)
	}
	return fmt.Sprintf("%d - Regular Year", year)
}

// CellText is the text copied from a day table cell, for example
// "2024-02-29 (Thursday, February 29, Day 60 of 2024)".
func CellText(f dateutil.Formatter, day DayInfo) string {
	return fmt.Sprintf("%s (%s, %s %d, Day %d of %d)",
		day.Date,
		f.WeekdayName(day.Date.Weekday()),
		f.MonthName(day.Date.Month()),
		day.Date.Day(),
		day.DayOfYear,
		day.Date.Year())
}

// CellTitle is the short description of a compact table cell, for example
// "Feb 29 - Day 60 of 2024".
func CellTitle(f dateutil.Formatter, day DayInfo) string {
	return fmt.Sprintf("%s %d - Day %d of %d",
		f.ShortMonthName(day.Date.Month()), day.Date.Day(), day.DayOfYear, day.Date.Year())
}

// Cursor is the year and month a day table is showing.
type Cursor struct {
	Year  int        `json:"year" yaml:"year"`
	Month time.Month `json:"month" yaml:"month"`
}

// Bounds limits table navigation to [MinYear, MaxYear].
type Bounds struct {
	MinYear int
	MaxYear int
}

// Contains reports whether year is navigable.
func (b Bounds) Contains(year int) bool {
	return year >= b.MinYear && year <= b.MaxYear
}

// ChangeYear moves the cursor by delta years. A move outside the bounds is
// refused and the cursor is returned unchanged with ok false.
func ChangeYear(c Cursor, delta int, b Bounds) (Cursor, bool) {
	next := Cursor{Year: c.Year + delta, Month: c.Month}
	if !b.Contains(next.Year) {
		return c, false
	}
	return next, true
}

// ChangeMonth moves the cursor by delta months, rolling over year ends.
// A move outside the bounds is refused like ChangeYear.
func ChangeMonth(c Cursor, delta int, b Bounds) (Cursor, bool) {
	first := dateutil.NormalizeDate(c.Year, c.Month+time.Month(delta), 1)
	next := Cursor{Year: first.Year(), Month: first.Month()}
	if !b.Contains(next.Year) {
		return c, false
	}
	return next, true
}
