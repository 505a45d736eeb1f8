package dateutil

import (
	"fmt"
	"time"
)

// Formatter supplies the locale dependent names used when dates are shown
// to people. Calendar arithmetic never depends on it.
type Formatter interface {
	MonthName(m time.Month) string
	ShortMonthName(m time.Month) string
	WeekdayName(d time.Weekday) string
	ShortWeekdayName(d time.Weekday) string
}

// English is the default Formatter.
type English struct{}

func (English) MonthName(m time.Month) string {
	return m.String()
}

func (English) ShortMonthName(m time.Month) string {
	return m.String()[:3]
}

func (English) WeekdayName(d time.Weekday) string {
	return d.String()
}

func (English) ShortWeekdayName(d time.Weekday) string {
	return d.String()[:3]
}

// LongDate renders date as "Monday, January 1, 2024".
func LongDate(f Formatter, date CalendarDate) string {
	return fmt.Sprintf("%s, %s %d, %d",
		f.WeekdayName(date.Weekday()), f.MonthName(date.Month()), date.Day(), date.Year())
}
