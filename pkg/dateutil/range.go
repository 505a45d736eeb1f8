package dateutil

import (
	"fmt"
	"iter"
	"time"
)

// DateRange is an inclusive span of calendar days with start <= end.
type DateRange struct {
	start CalendarDate
	end   CalendarDate
}

// NewDateRange returns the range [start, end]. A range that starts after it
// ends is rejected with ErrInvalidRange; the bounds are never swapped.
func NewDateRange(start, end CalendarDate) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, fmt.Errorf("%w: range bound is not set", ErrInvalidDate)
	}
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	return DateRange{start: start, end: end}, nil
}

// MonthRange returns the range covering every day of month in year.
func MonthRange(year int, month time.Month) DateRange {
	start := NormalizeDate(year, month, 1)
	return DateRange{start: start, end: NormalizeDate(year, month, DaysInMonth(year, month))}
}

// YearRange returns the range covering every day of year.
func YearRange(year int) DateRange {
	return DateRange{
		start: NormalizeDate(year, time.January, 1),
		end:   NormalizeDate(year, time.December, 31),
	}
}

func (r DateRange) Start() CalendarDate {
	return r.start
}

func (r DateRange) End() CalendarDate {
	return r.end
}

// Valid reports whether r was built from set bounds in order.
func (r DateRange) Valid() bool {
	return !r.start.IsZero() && !r.end.IsZero() && !r.start.After(r.end)
}

// Len returns the number of days in the range, counting both ends.
func (r DateRange) Len() int {
	return DaysBetween(r.start, r.end) + 1
}

// Contains reports whether d lies within the range.
func (r DateRange) Contains(d CalendarDate) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

// Days yields every date of the range in ascending order.
func (r DateRange) Days() iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		if !r.Valid() {
			return
		}
		for d := r.start; !d.After(r.end); d = AddDays(d, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.start, r.end)
}

// MonthCount is the number of range days that fall in one month.
type MonthCount struct {
	Year  int        `json:"year" yaml:"year"`
	Month time.Month `json:"month" yaml:"month"`
	Days  int        `json:"days" yaml:"days"`
}

// RangeSummary aggregates a DateRange. BusinessDays + WeekendDays always
// equals TotalDays; Monthly is in chronological order.
type RangeSummary struct {
	Start        CalendarDate `json:"start" yaml:"start"`
	End          CalendarDate `json:"end" yaml:"end"`
	TotalDays    int          `json:"total_days" yaml:"total_days"`
	BusinessDays int          `json:"business_days" yaml:"business_days"`
	WeekendDays  int          `json:"weekend_days" yaml:"weekend_days"`
	FullWeeks    int          `json:"full_weeks" yaml:"full_weeks"`
	Monthly      []MonthCount `json:"monthly" yaml:"monthly"`
}

// Summarize walks the range once and counts business, weekend and per-month
// days.
func Summarize(r DateRange) (RangeSummary, error) {
	if !r.Valid() {
		return RangeSummary{}, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}

	summary := RangeSummary{
		Start:     r.start,
		End:       r.end,
		TotalDays: r.Len(),
	}
	for d := range r.Days() {
		if IsWeekend(d) {
			summary.WeekendDays++
		} else {
			summary.BusinessDays++
		}

		last := len(summary.Monthly) - 1
		if last < 0 || summary.Monthly[last].Year != d.Year() || summary.Monthly[last].Month != d.Month() {
			summary.Monthly = append(summary.Monthly, MonthCount{Year: d.Year(), Month: d.Month()})
			last++
		}
		summary.Monthly[last].Days++
	}
	summary.FullWeeks = summary.TotalDays / 7
	return summary, nil
}
