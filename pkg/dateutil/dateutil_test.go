package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{2400, true},
		{1996, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestIsLeapYearMatchesGregorianRule(t *testing.T) {
	for year := 1600; year <= 2400; year++ {
		// Gregorian leap years are exactly the years with a Feb 29.
		want := time.Date(year, time.February, 29, 0, 0, 0, 0, time.UTC).Month() == time.February
		if got := IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		name  string
		input CalendarDate
		want  int
	}{
		{"Jan 1", MustDate(2023, time.January, 1), 1},
		{"Feb 1", MustDate(2023, time.February, 1), 32},
		{"Leap day", MustDate(2024, time.February, 29), 60},
		{"Mar 1 leap year", MustDate(2024, time.March, 1), 61},
		{"Mar 1 regular year", MustDate(2023, time.March, 1), 60},
		{"Dec 31 leap year", MustDate(2024, time.December, 31), 366},
		{"Dec 31 regular year", MustDate(2023, time.December, 31), 365},
		{"Dec 31 1900", MustDate(1900, time.December, 31), 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOfYear(tt.input); got != tt.want {
				t.Errorf("DayOfYear(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestDayOfYearBoundaries(t *testing.T) {
	for year := 1890; year <= 2110; year++ {
		if got := DayOfYear(MustDate(year, time.January, 1)); got != 1 {
			t.Errorf("DayOfYear(%d-01-01) = %d, want 1", year, got)
		}
		want := 365
		if IsLeapYear(year) {
			want = 366
		}
		if got := DayOfYear(MustDate(year, time.December, 31)); got != want {
			t.Errorf("DayOfYear(%d-12-31) = %d, want %d", year, got, want)
		}
	}
}

func TestISOWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    CalendarDate
		wantYear int
		wantWeek int
	}{
		{"Mid January 2025", MustDate(2025, time.January, 15), 2025, 3},
		{"Start of 2025", MustDate(2025, time.January, 1), 2025, 1},
		{"Monday Dec 31 2018 is in 2019", MustDate(2018, time.December, 31), 2019, 1},
		{"Sunday Jan 1 2023 is in 2022", MustDate(2023, time.January, 1), 2022, 52},
		{"Week 53 of 2020", MustDate(2020, time.December, 31), 2020, 53},
		{"Jan 3 2021 still week 53", MustDate(2021, time.January, 3), 2020, 53},
		{"Jan 4 2021 week 1", MustDate(2021, time.January, 4), 2021, 1},
		{"Thursday Jan 1 2026", MustDate(2026, time.January, 1), 2026, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, week := ISOWeek(tt.input)

			if year != tt.wantYear || week != tt.wantWeek {
				t.Errorf("ISOWeek(%v) = (%v, %v), want (%v, %v)",
					tt.input, year, week, tt.wantYear, tt.wantWeek)
			}
		})
	}
}

func TestISOWeekNumberMatchesTimePackage(t *testing.T) {
	r := YearRange(2015)
	end := MustDate(2030, time.December, 31)
	for d := r.Start(); !d.After(end); d = AddDays(d, 1) {
		wantYear, wantWeek := d.Time().ISOWeek()
		year, week := ISOWeek(d)
		if year != wantYear || week != wantWeek {
			t.Fatalf("ISOWeek(%v) = (%d, %d), want (%d, %d)", d, year, week, wantYear, wantWeek)
		}
		if got := ISOWeekNumber(d); got != wantWeek {
			t.Fatalf("ISOWeekNumber(%v) = %d, want %d", d, got, wantWeek)
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name  string
		input CalendarDate
		n     int
		want  CalendarDate
	}{
		{"Into leap day", MustDate(2024, time.February, 28), 1, MustDate(2024, time.February, 29)},
		{"Over Feb in regular year", MustDate(2023, time.February, 28), 1, MustDate(2023, time.March, 1)},
		{"Across year end", MustDate(2023, time.December, 31), 1, MustDate(2024, time.January, 1)},
		{"Backwards across year", MustDate(2024, time.January, 1), -1, MustDate(2023, time.December, 31)},
		{"Zero", MustDate(2024, time.June, 15), 0, MustDate(2024, time.June, 15)},
		{"A full leap year", MustDate(2024, time.January, 1), 366, MustDate(2025, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDays(tt.input, tt.n); !got.Equal(tt.want) {
				t.Errorf("AddDays(%v, %d) = %v, want %v", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

func TestAddDaysRoundTrip(t *testing.T) {
	starts := []CalendarDate{
		MustDate(2024, time.February, 29),
		MustDate(1900, time.March, 1),
		MustDate(2023, time.December, 31),
		MustDate(1969, time.December, 31),
	}
	for _, start := range starts {
		for _, n := range []int{-100000, -3653, -366, -1, 0, 1, 29, 365, 1461, 100000} {
			there := AddDays(start, n)
			back := AddDays(there, -n)
			if !back.Equal(start) {
				t.Errorf("AddDays(AddDays(%v, %d), %d) = %v, want %v", start, n, -n, back, start)
			}
			if got := DaysBetween(start, there); got != n {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", start, there, got, n)
			}
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end CalendarDate
		want       int
	}{
		{"Same day", MustDate(2024, time.March, 10), MustDate(2024, time.March, 10), 0},
		{"Forward across DST", MustDate(2024, time.March, 9), MustDate(2024, time.March, 11), 2},
		{"Backward", MustDate(2024, time.January, 10), MustDate(2024, time.January, 1), -9},
		{"Whole leap year", MustDate(2024, time.January, 1), MustDate(2025, time.January, 1), 366},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDaysSinceEpoch(t *testing.T) {
	tests := []struct {
		input CalendarDate
		want  int
	}{
		{MustDate(1970, time.January, 1), 0},
		{MustDate(1970, time.January, 2), 1},
		{MustDate(1969, time.December, 31), -1},
		{MustDate(2024, time.January, 1), 19723},
	}

	for _, tt := range tests {
		if got := DaysSinceEpoch(tt.input); got != tt.want {
			t.Errorf("DaysSinceEpoch(%v) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestBusinessDaysBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end CalendarDate
		want       int
	}{
		{"Mon-Sun", MustDate(2024, time.January, 1), MustDate(2024, time.January, 7), 5},
		{"Single Saturday", MustDate(2024, time.January, 6), MustDate(2024, time.January, 6), 0},
		{"Single Monday", MustDate(2024, time.January, 1), MustDate(2024, time.January, 1), 1},
		{"January 2024", MustDate(2024, time.January, 1), MustDate(2024, time.January, 31), 23},
		{"Sat-Mon", MustDate(2024, time.January, 6), MustDate(2024, time.January, 8), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BusinessDaysBetween(tt.start, tt.end)
			if err != nil {
				t.Fatalf("BusinessDaysBetween(%v, %v) error = %v", tt.start, tt.end, err)
			}
			if got != tt.want {
				t.Errorf("BusinessDaysBetween(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestBusinessDaysBetweenRejectsReversedRange(t *testing.T) {
	_, err := BusinessDaysBetween(MustDate(2024, time.January, 7), MustDate(2024, time.January, 1))
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("BusinessDaysBetween(reversed) error = %v, want %v", err, ErrInvalidRange)
	}
}

func TestIsWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input CalendarDate
		want  bool
	}{
		{"Monday is weekday", MustDate(2025, 1, 13), true},
		{"Tuesday is weekday", MustDate(2025, 1, 14), true},
		{"Wednesday is weekday", MustDate(2025, 1, 15), true},
		{"Thursday is weekday", MustDate(2025, 1, 16), true},
		{"Friday is weekday", MustDate(2025, 1, 17), true},
		{"Saturday is not weekday", MustDate(2025, 1, 18), false},
		{"Sunday is not weekday", MustDate(2025, 1, 19), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsWeekday(tt.input); result != tt.want {
				t.Errorf("IsWeekday(%v) = %v, want %v", tt.input, result, tt.want)
			}
			if result := IsWeekend(tt.input); result == tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v", tt.input, result, !tt.want)
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{
			"Same date different time",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Different date",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSameDay(tt.date1, tt.date2)

			if result != tt.want {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v",
					tt.date1, tt.date2, result, tt.want)
			}
		})
	}
}
