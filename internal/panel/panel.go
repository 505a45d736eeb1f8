package panel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/datepanel/internal/calendar"
	"github.com/username/datepanel/internal/config"
	"github.com/username/datepanel/internal/tzclock"
	"github.com/username/datepanel/pkg/dateutil"
)

// Placeholder is shown in place of a value that could not be computed.
const Placeholder = "-"

const (
	StatusReady   = "Ready to parse"
	StatusInvalid = "Invalid date string"
	StatusParsed  = "Successfully parsed"
)

// Panel computes the results shown on every card of the date panel.
type Panel struct {
	config    *config.Config
	calendar  calendar.Calendar
	zones     tzclock.ZoneLoader
	formatter dateutil.Formatter
	logger    *zap.Logger
}

// GetCalendar returns the calendar the day tables are built from
func (p *Panel) GetCalendar() calendar.Calendar {
	return p.calendar
}

// NewPanel creates a new date panel
func NewPanel(
	cfg *config.Config,
	cal calendar.Calendar,
	zones tzclock.ZoneLoader,
	formatter dateutil.Formatter,
	logger *zap.Logger,
) *Panel {
	return &Panel{
		config:    cfg,
		calendar:  cal,
		zones:     zones,
		formatter: formatter,
		logger:    logger,
	}
}

// Status maps an error to the status line shown next to a result.
func Status(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, dateutil.ErrInvalidRange):
		return "Invalid range"
	case errors.Is(err, dateutil.ErrUnsupportedTimezone):
		return tzclock.InvalidZoneText
	case errors.Is(err, dateutil.ErrInvalidDate):
		return "Invalid date"
	default:
		return "Error"
	}
}

// NowInfo is the current time card.
type NowInfo struct {
	Time string `json:"time" yaml:"time"`
	Line string `json:"line" yaml:"line"`
}

// Now describes now, for example "Monday, January 1, 2024 | Day 1 of 2024".
func (p *Panel) Now(now time.Time) NowInfo {
	today := dateutil.Today(now)
	return NowInfo{
		Time: now.Format("15:04:05"),
		Line: fmt.Sprintf("%s | Day %d of %d",
			dateutil.LongDate(p.formatter, today), dateutil.DayOfYear(today), today.Year()),
	}
}

// Format is one entry of the format grid.
type Format struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// DateInfo is the date calculations card.
type DateInfo struct {
	Date           dateutil.CalendarDate `json:"date" yaml:"date"`
	DayOfYear      int                   `json:"day_of_year" yaml:"day_of_year"`
	ISOYear        int                   `json:"iso_year" yaml:"iso_year"`
	ISOWeek        int                   `json:"iso_week" yaml:"iso_week"`
	DaysSinceEpoch int                   `json:"days_since_epoch" yaml:"days_since_epoch"`
	LeapYear       bool                  `json:"leap_year" yaml:"leap_year"`
	Formats        []Format              `json:"formats" yaml:"formats"`
}

// DateInfo computes the calendar facts and format grid of input.
func (p *Panel) DateInfo(input string) (*DateInfo, error) {
	instant, err := dateutil.ParseInstant(input)
	if err != nil {
		p.logger.Debug("Rejected date input", zap.String("input", input), zap.Error(err))
		return nil, err
	}

	date := dateutil.FromTime(instant)
	isoYear, isoWeek := dateutil.ISOWeek(date)

	return &DateInfo{
		Date:           date,
		DayOfYear:      dateutil.DayOfYear(date),
		ISOYear:        isoYear,
		ISOWeek:        isoWeek,
		DaysSinceEpoch: dateutil.DaysSinceEpoch(date),
		LeapYear:       dateutil.IsLeapYear(date.Year()),
		Formats:        FormatGrid(instant, date),
	}, nil
}

// FormatGrid renders instant in the common interchange formats. The
// calendar formats use date, the day written in the input.
func FormatGrid(instant time.Time, date dateutil.CalendarDate) []Format {
	return []Format{
		{"ISO 8601", dateutil.FormatISO8601(instant)},
		{"RFC 2822", instant.Format(time.RFC1123Z)},
		{"YYYY-MM-DD", date.String()},
		{"MM/DD/YYYY", date.Time().Format("01/02/2006")},
		{"DD/MM/YYYY", date.Time().Format("02/01/2006")},
		{"Unix Timestamp", strconv.FormatInt(instant.Unix(), 10)},
		{"Milliseconds", strconv.FormatInt(instant.UnixMilli(), 10)},
		{"UTC String", instant.UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT")},
	}
}

// Difference is the signed distance between two dates.
type Difference struct {
	Days  int    `json:"days" yaml:"days"`
	Label string `json:"label" yaml:"label"`
}

// Difference counts the days from base to target.
func (p *Panel) Difference(base, target string) (*Difference, error) {
	from, err := dateutil.ParseDate(base)
	if err != nil {
		return nil, fmt.Errorf("base date: %w", err)
	}
	to, err := dateutil.ParseDate(target)
	if err != nil {
		return nil, fmt.Errorf("target date: %w", err)
	}

	days := dateutil.DaysBetween(from, to)
	return &Difference{Days: days, Label: DifferenceLabel(days)}, nil
}

// DifferenceLabel renders a signed day count as "N days until",
// "N days since" or "Same day".
func DifferenceLabel(days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("%d days until", days)
	case days < 0:
		return fmt.Sprintf("%d days since", -days)
	default:
		return "Same day"
	}
}

// AddDays shifts input by n days.
func (p *Panel) AddDays(input string, n int) (dateutil.CalendarDate, error) {
	date, err := dateutil.ParseDate(input)
	if err != nil {
		return dateutil.CalendarDate{}, err
	}
	return dateutil.AddDays(date, n), nil
}

// BusinessDays counts Monday to Friday days in [start, end].
func (p *Panel) BusinessDays(start, end string) (int, error) {
	from, err := dateutil.ParseDate(start)
	if err != nil {
		return 0, fmt.Errorf("start date: %w", err)
	}
	to, err := dateutil.ParseDate(end)
	if err != nil {
		return 0, fmt.Errorf("end date: %w", err)
	}
	return dateutil.BusinessDaysBetween(from, to)
}

// TimestampToHuman renders epoch seconds as ISO 8601 UTC.
func (p *Panel) TimestampToHuman(text string) (string, error) {
	t, err := dateutil.ParseEpoch(text)
	if err != nil {
		return "", err
	}
	return dateutil.FormatISO8601(t), nil
}

// HumanToTimestamp returns the epoch seconds of a date or date-time.
func (p *Panel) HumanToTimestamp(text string) (int64, error) {
	t, err := dateutil.ParseInstant(text)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// ParseDetails breaks a parsed instant into its fields.
type ParseDetails struct {
	ISO         string `json:"iso" yaml:"iso"`
	Local       string `json:"local" yaml:"local"`
	UTC         string `json:"utc" yaml:"utc"`
	Unix        int64  `json:"unix" yaml:"unix"`
	Year        int    `json:"year" yaml:"year"`
	Month       int    `json:"month" yaml:"month"`
	MonthName   string `json:"month_name" yaml:"month_name"`
	Day         int    `json:"day" yaml:"day"`
	Weekday     int    `json:"weekday" yaml:"weekday"`
	WeekdayName string `json:"weekday_name" yaml:"weekday_name"`
	Hours       int    `json:"hours" yaml:"hours"`
	Minutes     int    `json:"minutes" yaml:"minutes"`
	Seconds     int    `json:"seconds" yaml:"seconds"`
}

// ParseResult is the date parser card.
type ParseResult struct {
	Status  string        `json:"status" yaml:"status"`
	Details *ParseDetails `json:"details,omitempty" yaml:"details,omitempty"`
}

// Parse interprets free text as a date. Fields are taken in the offset
// written in the text, UTC when there is none.
func (p *Panel) Parse(input string) ParseResult {
	if strings.TrimSpace(input) == "" {
		return ParseResult{Status: StatusReady}
	}

	t, err := dateutil.ParseInstant(input)
	if err != nil {
		return ParseResult{Status: StatusInvalid}
	}

	return ParseResult{
		Status: StatusParsed,
		Details: &ParseDetails{
			ISO:         dateutil.FormatISO8601(t),
			Local:       t.Format(time.RFC1123Z),
			UTC:         t.UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT"),
			Unix:        t.Unix(),
			Year:        t.Year(),
			Month:       int(t.Month()),
			MonthName:   p.formatter.MonthName(t.Month()),
			Day:         t.Day(),
			Weekday:     int(t.Weekday()),
			WeekdayName: p.formatter.WeekdayName(t.Weekday()),
			Hours:       t.Hour(),
			Minutes:     t.Minute(),
			Seconds:     t.Second(),
		},
	}
}

// Range summarizes [start, end]. Both ends must parse and start must not
// be after end.
func (p *Panel) Range(start, end string) (*dateutil.RangeSummary, error) {
	from, err := dateutil.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("range start: %w", err)
	}
	to, err := dateutil.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("range end: %w", err)
	}

	r, err := dateutil.NewDateRange(from, to)
	if err != nil {
		p.logger.Debug("Rejected date range",
			zap.String("start", start),
			zap.String("end", end),
			zap.Error(err))
		return nil, err
	}

	summary, err := dateutil.Summarize(r)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// MonthLabel names a breakdown entry, for example "January 2024".
func (p *Panel) MonthLabel(mc dateutil.MonthCount) string {
	return fmt.Sprintf("%s %d", p.formatter.MonthName(mc.Month), mc.Year)
}

// CurrentMonthRange returns the first through last day of now's month.
func (p *Panel) CurrentMonthRange(now time.Time) dateutil.DateRange {
	today := dateutil.Today(now)
	return dateutil.MonthRange(today.Year(), today.Month())
}
