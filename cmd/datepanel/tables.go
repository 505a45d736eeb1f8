package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/username/datepanel/internal/calendar"
)

func tableCmd() *cobra.Command {
	var (
		view   string
		year   int
		month  int
		years  int
		months int
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the day-of-year table for a year or month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}

			mode := a.cfg.Table.GetViewMode()
			if cmd.Flags().Changed("view") {
				if mode, err = calendar.ParseViewMode(view); err != nil {
					return err
				}
			}

			now := time.Now()
			cursor := calendar.Cursor{Year: now.Year(), Month: now.Month()}
			if year != 0 {
				cursor.Year = year
			}
			if month != 0 {
				if month < 1 || month > 12 {
					return fmt.Errorf("invalid month %d (expected 1..12)", month)
				}
				cursor.Month = time.Month(month)
			}
			if years != 0 {
				cursor = a.panel.ChangeYear(cursor, years)
			}
			if months != 0 {
				cursor = a.panel.ChangeMonth(cursor, months)
			}

			t, err := a.panel.DayTable(mode, cursor)
			if err != nil {
				return a.fail("Day table", err)
			}
			return a.renderer.DayTable(t)
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "Layout: year-grid, month-calendar or compact-table (default from config)")
	cmd.Flags().IntVar(&year, "year", 0, "Year to show (default this year)")
	cmd.Flags().IntVar(&month, "month", 0, "Month to show in the month calendar (default this month)")
	cmd.Flags().IntVar(&years, "years", 0, "Move the table by this many years, e.g. -1 for the previous year")
	cmd.Flags().IntVar(&months, "months", 0, "Move the month calendar by this many months, rolling over year ends")

	return cmd
}

func exportCmd() *cobra.Command {
	var (
		year int
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the day table of a year as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			if year == 0 {
				year = time.Now().Year()
			}

			path, err := a.panel.ExportYear(dir, year)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			return a.renderer.Value("Exported", path)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to export (default this year)")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write day-table-<year>.csv into")

	return cmd
}
