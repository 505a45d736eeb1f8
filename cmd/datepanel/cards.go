package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/username/datepanel/pkg/dateutil"
)

func nowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show the current time and day of year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			return a.renderer.Now(a.panel.Now(time.Now()))
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [date]",
		Short: "Show day of year, ISO week and common formats of a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			input := dateutil.Today(time.Now()).String()
			if len(args) == 1 {
				input = args[0]
			}
			info, err := a.panel.DateInfo(input)
			if err != nil {
				return a.fail("Date", err)
			}
			return a.renderer.DateInfo(info)
		},
	}
}

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <target> [base]",
		Short: "Count days from base (default today) to target",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			base := dateutil.Today(time.Now()).String()
			if len(args) == 2 {
				base = args[1]
			}
			d, err := a.panel.Difference(base, args[0])
			if err != nil {
				return a.fail("Difference", err)
			}
			return a.renderer.Difference(d)
		},
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <days>",
		Short: "Add a signed number of days to a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day count %q: %w", args[1], err)
			}
			date, err := a.panel.AddDays(args[0], n)
			if err != nil {
				return a.fail("Result", err)
			}
			return a.renderer.Value("Result", date.String())
		},
	}
}

func businessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "business <start> <end>",
		Short: "Count Monday to Friday days between two dates, inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			n, err := a.panel.BusinessDays(args[0], args[1])
			if err != nil {
				return a.fail("Business days", err)
			}
			return a.renderer.Value("Business days", n)
		},
	}
}

func timestampCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timestamp <epoch-seconds>",
		Short: "Convert a Unix timestamp to ISO 8601 UTC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			text, err := a.panel.TimestampToHuman(args[0])
			if err != nil {
				return a.fail("Date", err)
			}
			return a.renderer.Value("Date", text)
		},
	}
}

func unixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unix <date>",
		Short: "Convert a date or date-time to a Unix timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			ts, err := a.panel.HumanToTimestamp(args[0])
			if err != nil {
				return a.fail("Timestamp", err)
			}
			return a.renderer.Value("Timestamp", ts)
		},
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse free text as a date and break it into fields",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return a.renderer.Parse(a.panel.Parse(input))
		},
	}
}

func rangeCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Summarize a date range (default the current month)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			current := a.panel.CurrentMonthRange(time.Now())
			if start == "" {
				start = current.Start().String()
			}
			if end == "" {
				end = current.End().String()
			}
			summary, err := a.panel.Range(start, end)
			if err != nil {
				return a.fail("Range", err)
			}
			return a.renderer.Range(summary)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First day of the range (default first day of this month)")
	cmd.Flags().StringVar(&end, "end", "", "Last day of the range (default last day of this month)")

	return cmd
}
