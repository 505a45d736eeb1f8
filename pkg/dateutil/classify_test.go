package dateutil

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	today := MustDate(2024, time.March, 15)

	tests := []struct {
		name string
		date CalendarDate
		want Flags
	}{
		{"Today is a Friday", today, Flags{IsToday: true}},
		{"Leap day", MustDate(2024, time.February, 29), Flags{IsLeapDay: true}},
		{"Quarter start on a Monday", MustDate(2024, time.April, 1), Flags{IsQuarterStart: true}},
		{"Quarter start on a Saturday", MustDate(2023, time.July, 1), Flags{IsWeekend: true, IsQuarterStart: true}},
		{"Sunday", MustDate(2024, time.March, 17), Flags{IsWeekend: true}},
		{"Plain Tuesday", MustDate(2024, time.March, 19), Flags{}},
		{"Same day next year", MustDate(2025, time.March, 15), Flags{IsWeekend: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.date, today); got != tt.want {
				t.Errorf("Classify(%v, %v) = %+v, want %+v", tt.date, today, got, tt.want)
			}
		})
	}
}

func TestClassifyTodayMatchesByCalendarDay(t *testing.T) {
	late := time.Date(2024, 3, 15, 23, 59, 0, 0, time.FixedZone("PST", -8*60*60))
	if !Classify(MustDate(2024, time.March, 15), Today(late)).IsToday {
		t.Errorf("Classify() did not flag the local calendar day of %v as today", late)
	}
}

func TestQuarterStarts(t *testing.T) {
	count := 0
	for d := range YearRange(2024).Days() {
		if IsQuarterStart(d) {
			count++
		}
	}
	if count != 4 {
		t.Errorf("found %d quarter starts in 2024, want 4", count)
	}
}

func TestLongDate(t *testing.T) {
	tests := []struct {
		date CalendarDate
		want string
	}{
		{MustDate(2024, time.January, 1), "Monday, January 1, 2024"},
		{MustDate(2024, time.February, 29), "Thursday, February 29, 2024"},
	}

	for _, tt := range tests {
		if got := LongDate(English{}, tt.date); got != tt.want {
			t.Errorf("LongDate(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestEnglishShortNames(t *testing.T) {
	f := English{}
	if got := f.ShortMonthName(time.September); got != "Sep" {
		t.Errorf("ShortMonthName(September) = %q, want Sep", got)
	}
	if got := f.ShortWeekdayName(time.Wednesday); got != "Wed" {
		t.Errorf("ShortWeekdayName(Wednesday) = %q, want Wed", got)
	}
}
