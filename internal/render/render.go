// Package render prints panel results as styled terminal text, JSON or
// YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/username/datepanel/internal/calendar"
	"github.com/username/datepanel/internal/panel"
	"github.com/username/datepanel/internal/tzclock"
	"github.com/username/datepanel/pkg/dateutil"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps an --output value to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected text, json or yaml)", name)
}

// Renderer writes results to w in one Format.
type Renderer struct {
	w         io.Writer
	format    Format
	formatter dateutil.Formatter
}

// New creates a Renderer.
func New(w io.Writer, format Format, formatter dateutil.Formatter) *Renderer {
	return &Renderer{w: w, format: format, formatter: formatter}
}

// emit writes v as JSON or YAML, or the output of text in text mode.
func (r *Renderer) emit(v any, text func() string) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(r.w, text())
		return err
	}
}

// Value writes a single named result.
func (r *Renderer) Value(label string, v any) error {
	return r.emit(map[string]any{label: v}, func() string {
		return LabelStyle.Render(label+":") + " " + fmt.Sprint(v)
	})
}

// Failure writes the placeholder for a result that could not be computed,
// with the status derived from err.
func (r *Renderer) Failure(label string, err error) error {
	out := map[string]any{
		label:    nil,
		"status": panel.Status(err),
		"error":  err.Error(),
	}
	return r.emit(out, func() string {
		return LabelStyle.Render(label+":") + " " + panel.Placeholder + "  " +
			ErrorStyle.Render(panel.Status(err)+": "+err.Error())
	})
}

// Now writes the current time card.
func (r *Renderer) Now(info panel.NowInfo) error {
	return r.emit(info, func() string {
		return TitleStyle.Render(info.Time) + "\n" + SubtitleStyle.Render(info.Line)
	})
}

// DateInfo writes the date calculations card and its format grid.
func (r *Renderer) DateInfo(info *panel.DateInfo) error {
	return r.emit(info, func() string {
		leap := "No"
		if info.LeapYear {
			leap = "Yes"
		}
		facts := keyValues([][2]string{
			{"Date", info.Date.String()},
			{"Day of year", strconv.Itoa(info.DayOfYear)},
			{"ISO week", fmt.Sprintf("%d (ISO year %d)", info.ISOWeek, info.ISOYear)},
			{"Days since epoch", strconv.Itoa(info.DaysSinceEpoch)},
			{"Leap year", leap},
		})

		formats := make([][2]string, 0, len(info.Formats))
		for _, f := range info.Formats {
			formats = append(formats, [2]string{f.Label, f.Value})
		}

		return lipgloss.JoinVertical(lipgloss.Left,
			facts,
			TitleStyle.Render("Formats"),
			keyValues(formats))
	})
}

// Difference writes the date difference card.
func (r *Renderer) Difference(d *panel.Difference) error {
	return r.emit(d, func() string {
		return accentStyle.Render(d.Label)
	})
}

// Parse writes the date parser card.
func (r *Renderer) Parse(res panel.ParseResult) error {
	return r.emit(res, func() string {
		if res.Details == nil {
			style := SubtitleStyle
			if res.Status == panel.StatusInvalid {
				style = ErrorStyle
			}
			return style.Render(res.Status)
		}

		d := res.Details
		return lipgloss.JoinVertical(lipgloss.Left,
			TitleStyle.Render(res.Status),
			keyValues([][2]string{
				{"Parsed date", d.ISO},
				{"Local string", d.Local},
				{"UTC string", d.UTC},
				{"Unix timestamp", strconv.FormatInt(d.Unix, 10)},
				{"Year", strconv.Itoa(d.Year)},
				{"Month", fmt.Sprintf("%d (%s)", d.Month, d.MonthName)},
				{"Day", strconv.Itoa(d.Day)},
				{"Day of week", fmt.Sprintf("%d (%s)", d.Weekday, d.WeekdayName)},
				{"Hours", strconv.Itoa(d.Hours)},
				{"Minutes", strconv.Itoa(d.Minutes)},
				{"Seconds", strconv.Itoa(d.Seconds)},
			}))
	})
}

// Range writes a range summary with its monthly breakdown.
func (r *Renderer) Range(s *dateutil.RangeSummary) error {
	return r.emit(s, func() string {
		summary := keyValues([][2]string{
			{"Range", fmt.Sprintf("%s to %s", s.Start, s.End)},
			{"Total days", strconv.Itoa(s.TotalDays)},
			{"Business days", strconv.Itoa(s.BusinessDays)},
			{"Weekend days", strconv.Itoa(s.WeekendDays)},
			{"Full weeks", strconv.Itoa(s.FullWeeks)},
		})

		rows := make([][]string, 0, len(s.Monthly))
		for _, m := range s.Monthly {
			rows = append(rows, []string{
				fmt.Sprintf("%s %d", r.formatter.MonthName(m.Month), m.Year),
				fmt.Sprintf("%d days", m.Days),
			})
		}
		breakdown := newTable().
			Headers("Month", "Days").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})

		return lipgloss.JoinVertical(lipgloss.Left, summary, breakdown.String())
	})
}

// WorldClock writes one row per world clock slot.
func (r *Renderer) WorldClock(readings []tzclock.Reading) error {
	return r.emit(readings, func() string {
		rows := make([][]string, 0, len(readings))
		for _, reading := range readings {
			rows = append(rows, []string{reading.Label, reading.Text})
		}
		t := newTable().
			Headers("Zone", "Time").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if row >= 0 && row < len(readings) && readings[row].Err != nil {
					return cellStyle.Foreground(colorError)
				}
				return cellStyle
			})
		return t.String()
	})
}

// Zones lists the selectable zones, marking the ones in use.
func (r *Renderer) Zones(available []string, selected []string) error {
	out := struct {
		Available []string `json:"available" yaml:"available"`
		Selected  []string `json:"selected" yaml:"selected"`
	}{available, selected}

	return r.emit(out, func() string {
		var b strings.Builder
		for _, zone := range available {
			marker := "  "
			if tzclock.Contains(selected, zone) {
				marker = accentStyle.Render("* ")
			}
			b.WriteString(marker + tzclock.DisplayName(zone) + LabelStyle.Render("  ("+zone+")") + "\n")
		}
		return strings.TrimRight(b.String(), "\n")
	})
}

// DayTable writes whichever layout t carries.
func (r *Renderer) DayTable(t *panel.DayTable) error {
	return r.emit(t, func() string {
		var body string
		switch {
		case t.MonthCalendar != nil:
			body = r.monthCalendar(t.MonthCalendar)
		case t.CompactTable != nil:
			body = r.compactTable(t.CompactTable)
		case t.YearGrid != nil:
			body = r.yearGrid(t.YearGrid)
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			TitleStyle.Render(t.Label),
			SubtitleStyle.Render(t.Description),
			body,
			legend())
	})
}

func (r *Renderer) yearGrid(grid *calendar.YearGrid) string {
	headers := []string{"Day"}
	for m := time.January; m <= time.December; m++ {
		headers = append(headers, r.formatter.ShortMonthName(m))
	}

	rows := make([][]string, 0, len(grid.Cells))
	for day, months := range grid.Cells {
		row := []string{fmt.Sprintf("%02d", day+1)}
		for _, cell := range months {
			if cell == nil {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.Itoa(cell.DayOfYear))
		}
		rows = append(rows, row)
	}

	return newTable().
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			if row < 0 || row >= len(grid.Cells) || col > 12 {
				return cellStyle
			}
			return dayStyle(grid.Cells[row][col-1])
		}).
		String()
}

func (r *Renderer) monthCalendar(mc *calendar.MonthCalendar) string {
	headers := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		headers = append(headers, r.formatter.ShortWeekdayName(d))
	}

	rows := make([][]string, 0, len(mc.Weeks))
	for _, week := range mc.Weeks {
		row := make([]string, 0, 7)
		for _, cell := range week {
			if cell == nil {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprintf("%d (%d)", cell.Date.Day(), cell.DayOfYear))
		}
		rows = append(rows, row)
	}

	title := fmt.Sprintf("%s %d", r.formatter.MonthName(mc.Month), mc.Year)
	t := newTable().
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(mc.Weeks) || col > 6 {
				return cellStyle
			}
			return dayStyle(mc.Weeks[row][col])
		})

	return lipgloss.JoinVertical(lipgloss.Left, accentStyle.Render(title), t.String())
}

func (r *Renderer) compactTable(ct *calendar.CompactTable) string {
	headers := []string{"Month"}
	for day := 1; day <= 31; day++ {
		headers = append(headers, strconv.Itoa(day))
	}

	rows := make([][]string, 0, len(ct.Months))
	for _, month := range ct.Months {
		row := []string{r.formatter.ShortMonthName(month.Month)}
		for _, day := range month.Days {
			row = append(row, strconv.Itoa(day.DayOfYear))
		}
		for len(row) < len(headers) {
			row = append(row, "")
		}
		rows = append(rows, row)
	}

	return newTable().
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			if row < 0 || row >= len(ct.Months) || col > len(ct.Months[row].Days) {
				return emptyCellStyle
			}
			day := ct.Months[row].Days[col-1]
			return dayStyle(&day)
		}).
		String()
}

// dayStyle picks the highlight of a day cell. Today wins over the other
// flags; a nil cell is an empty slot.
func dayStyle(day *calendar.DayInfo) lipgloss.Style {
	switch {
	case day == nil:
		return emptyCellStyle
	case day.Flags.IsToday:
		return todayStyle
	case day.Flags.IsLeapDay:
		return leapDayStyle
	case day.Flags.IsQuarterStart:
		return quarterStartStyle
	case day.Flags.IsWeekend:
		return weekendStyle
	default:
		return cellStyle
	}
}

func legend() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		todayStyle.Render("today"),
		weekendStyle.Render("weekend"),
		leapDayStyle.Render("leap day"),
		quarterStartStyle.Render("quarter start"))
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle)
}

func keyValues(pairs [][2]string) string {
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p[0], p[1]})
	}
	return newTable().
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return cellStyle.Foreground(colorMuted)
			}
			return cellStyle
		}).
		String()
}
