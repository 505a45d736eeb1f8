package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/username/datepanel/internal/daemon"
	"github.com/username/datepanel/internal/prefs"
)

func clockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "Show the current time in the world clock zones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			return a.renderer.WorldClock(a.panel.WorldClock(time.Now(), a.selection().Slots))
		},
	}
}

func convertCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert <HH:MM>",
		Short: "Convert a wall-clock time between two zones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			sel := a.selection()
			if from == "" {
				from = sel.From
			}
			if to == "" {
				to = sel.To
			}

			converted, err := a.panel.ConvertTime(args[0], from, to, time.Now())
			if err != nil {
				return a.fail("Converted", err)
			}
			return a.renderer.Value("Converted", converted)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Source zone (default from preferences)")
	cmd.Flags().StringVar(&to, "to", "", "Target zone (default from preferences)")

	return cmd
}

func zonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List selectable zones, marking the ones in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			sel := a.selection()
			inUse := append(append([]string{}, sel.Slots...), sel.From, sel.To)
			return a.renderer.Zones(a.panel.AvailableZones(), inUse)
		},
	}

	cmd.AddCommand(zonesSetCmd())

	return cmd
}

func zonesSetCmd() *cobra.Command {
	var (
		slots    []string
		from, to string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save world clock and converter zones to the preferences file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}
			if len(slots) > len(a.cfg.Timezones.Slots) {
				return fmt.Errorf("at most %d slots can be set, got %d", len(a.cfg.Timezones.Slots), len(slots))
			}

			if err := a.prefs.Remember(prefs.Selection{Slots: slots, From: from, To: to}); err != nil {
				return err
			}
			if err := a.prefs.Save(); err != nil {
				return fmt.Errorf("failed to save preferences: %w", err)
			}

			sel := a.selection()
			return a.renderer.Zones(a.panel.AvailableZones(), append(append([]string{}, sel.Slots...), sel.From, sel.To))
		},
	}

	cmd.Flags().StringSliceVar(&slots, "slot", nil, "World clock zones in slot order; an empty entry keeps the slot")
	cmd.Flags().StringVar(&from, "from", "", "Converter source zone")
	cmd.Flags().StringVar(&to, "to", "", "Converter target zone")

	return cmd
}

func watchCmd() *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the live world clock until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(cmd)
			if err != nil {
				return err
			}

			clock := daemon.NewClock(
				a.panel,
				a.selection().Slots,
				a.cfg.Clock.GetRefreshInterval(),
				os.Stdout,
				logger,
				daemon.WithSystemTray(a.cfg.Clock.SystemTray),
			)

			if duration > 0 {
				return clock.RunWithTimeout(duration)
			}
			return clock.Run(cmd.Context())
		},
	}

	cmd.Flags().DurationVar(&duration, "for", 0, "Stop after this long (default run until interrupted)")

	return cmd
}
