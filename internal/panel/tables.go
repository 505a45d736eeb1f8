package panel

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/username/datepanel/internal/calendar"
	"github.com/username/datepanel/internal/export"
	"github.com/username/datepanel/pkg/dateutil"
)

// DayTable is one rendering of the day table card. Exactly one of the
// layouts is set, matching View.
type DayTable struct {
	View          calendar.ViewMode       `json:"view" yaml:"view"`
	Cursor        calendar.Cursor         `json:"cursor" yaml:"cursor"`
	Label         string                  `json:"label" yaml:"label"`
	Description   string                  `json:"description" yaml:"description"`
	YearGrid      *calendar.YearGrid      `json:"year_grid,omitempty" yaml:"year_grid,omitempty"`
	MonthCalendar *calendar.MonthCalendar `json:"month_calendar,omitempty" yaml:"month_calendar,omitempty"`
	CompactTable  *calendar.CompactTable  `json:"compact_table,omitempty" yaml:"compact_table,omitempty"`
}

// DayTable builds the table for view at cursor. The year must lie within
// the configured bounds.
func (p *Panel) DayTable(view calendar.ViewMode, cursor calendar.Cursor) (*DayTable, error) {
	if !p.config.Table.Bounds().Contains(cursor.Year) {
		return nil, fmt.Errorf("%w: year %d outside %d..%d", dateutil.ErrInvalidDate,
			cursor.Year, p.config.Table.MinYear, p.config.Table.MaxYear)
	}

	table := &DayTable{
		View:        view,
		Cursor:      cursor,
		Label:       calendar.YearLabel(cursor.Year),
		Description: view.Description(),
	}

	var err error
	switch view {
	case calendar.ViewMonthCalendar:
		table.MonthCalendar, err = calendar.BuildMonthCalendar(p.calendar, cursor.Year, cursor.Month)
	case calendar.ViewCompactTable:
		table.CompactTable, err = calendar.BuildCompactTable(p.calendar, cursor.Year)
	default:
		table.View = calendar.ViewYearGrid
		table.Description = calendar.ViewYearGrid.Description()
		table.YearGrid, err = calendar.BuildYearGrid(p.calendar, cursor.Year)
	}
	if err != nil {
		return nil, err
	}

	p.logger.Debug("Day table built",
		zap.String("view", string(table.View)),
		zap.Int("year", cursor.Year),
		zap.Int("month", int(cursor.Month)))

	return table, nil
}

// ChangeYear moves cursor by delta years within the configured bounds.
func (p *Panel) ChangeYear(cursor calendar.Cursor, delta int) calendar.Cursor {
	next, ok := calendar.ChangeYear(cursor, delta, p.config.Table.Bounds())
	if !ok {
		p.logger.Debug("Year navigation out of bounds",
			zap.Int("year", cursor.Year),
			zap.Int("delta", delta))
	}
	return next
}

// ChangeMonth moves cursor by delta months within the configured bounds.
func (p *Panel) ChangeMonth(cursor calendar.Cursor, delta int) calendar.Cursor {
	next, ok := calendar.ChangeMonth(cursor, delta, p.config.Table.Bounds())
	if !ok {
		p.logger.Debug("Month navigation out of bounds",
			zap.Int("year", cursor.Year),
			zap.Int("month", int(cursor.Month)),
			zap.Int("delta", delta))
	}
	return next
}

// ExportYear writes the day table CSV for year into dir.
func (p *Panel) ExportYear(dir string, year int) (string, error) {
	if !p.config.Table.Bounds().Contains(year) {
		return "", fmt.Errorf("%w: year %d outside %d..%d", dateutil.ErrInvalidDate,
			year, p.config.Table.MinYear, p.config.Table.MaxYear)
	}
	return export.WriteYearFile(dir, p.calendar, year, p.formatter, p.logger)
}
