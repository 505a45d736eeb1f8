// Package export writes day tables to files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/username/datepanel/internal/calendar"
	"github.com/username/datepanel/pkg/dateutil"
)

// Header is the first row of a year CSV.
var Header = []string{"Date", "DayOfYear", "Month", "Day", "Weekday", "IsWeekend", "IsLeapDay"}

// FileName returns the conventional file name for a year export.
func FileName(year int) string {
	return fmt.Sprintf("day-table-%d.csv", year)
}

// WriteYearCSV writes one row per day of year, in ascending order.
func WriteYearCSV(w io.Writer, cal calendar.Calendar, year int, f dateutil.Formatter) error {
	table, err := calendar.BuildCompactTable(cal, year)
	if err != nil {
		return fmt.Errorf("failed to build day table: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, month := range table.Months {
		for _, day := range month.Days {
			row := []string{
				day.Date.String(),
				strconv.Itoa(day.DayOfYear),
				f.MonthName(day.Date.Month()),
				strconv.Itoa(day.Date.Day()),
				f.WeekdayName(day.Date.Weekday()),
				strconv.FormatBool(day.Flags.IsWeekend),
				strconv.FormatBool(day.Flags.IsLeapDay),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write %s: %w", day.Date, err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// WriteYearFile writes the year CSV into dir under FileName(year) and
// returns the path written.
func WriteYearFile(dir string, cal calendar.Calendar, year int, f dateutil.Formatter, logger *zap.Logger) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, FileName(year))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	if err := WriteYearCSV(file, cal, year, f); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	logger.Info("Day table exported",
		zap.Int("year", year),
		zap.String("file", path))

	return path, nil
}
