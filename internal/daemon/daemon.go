package daemon

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/username/datepanel/internal/panel"
	"github.com/username/datepanel/internal/tzclock"
)

// Clock is the live world clock: it reads every slot once per interval and
// publishes the readings to the console or the system tray.
type Clock struct {
	panel      *panel.Panel
	slots      []string
	interval   time.Duration
	systemTray bool
	out        io.Writer
	logger     *zap.Logger
	now        func() time.Time
	trayApp    *TrayApp

	mu     sync.Mutex
	cancel context.CancelFunc
	last   []tzclock.Reading
	ticks  int
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow sets the time source of the clock.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// WithSystemTray shows the readings in the system tray instead of the
// console, where the platform supports it.
func WithSystemTray(enabled bool) Option {
	return func(c *Clock) {
		c.systemTray = enabled
	}
}

// NewClock creates a world clock over slots that writes one line per tick
// to out.
func NewClock(p *panel.Panel, slots []string, interval time.Duration, out io.Writer, logger *zap.Logger, opts ...Option) *Clock {
	c := &Clock{
		panel:    p,
		slots:    append([]string(nil), slots...),
		interval: interval,
		out:      out,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run runs the clock until ctx is cancelled, SIGINT/SIGTERM arrives or the
// tray Quit item is clicked.
func (c *Clock) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	// Initialize system tray if enabled (Windows only)
	if c.systemTray {
		c.logger.Info("Initializing system tray")
		trayApp, err := NewTrayApp(c, c.logger)
		if err != nil {
			c.logger.Warn("Failed to initialize system tray", zap.Error(err))
			// Fall back to console mode
			return c.runLoop(ctx)
		}
		c.trayApp = trayApp
		// Run tray (blocks until Quit)
		c.trayApp.Run(ctx)
		return nil
	}

	c.logger.Info("Running without system tray")
	return c.runLoop(ctx)
}

// RunWithTimeout runs the clock for at most timeout.
func (c *Clock) RunWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return c.Run(ctx)
}

// Stop stops a running clock.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

// runLoop ticks until ctx is done or a termination signal arrives
func (c *Clock) runLoop(ctx context.Context) error {
	c.logger.Info("World clock started",
		zap.Strings("zones", c.slots),
		zap.Duration("refresh_interval", c.interval))

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if err := c.Tick(); err != nil {
		return err
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("World clock stopped")
			return nil

		case sig := <-sigChan:
			c.logger.Info("Received signal, shutting down",
				zap.String("signal", sig.String()))
			c.Stop()
			return nil

		case <-ticker.C:
			if err := c.Tick(); err != nil {
				return err
			}
		}
	}
}

// Tick reads every slot once and publishes the result.
func (c *Clock) Tick() error {
	readings := c.panel.WorldClock(c.now(), c.slots)

	c.mu.Lock()
	c.last = readings
	c.ticks++
	c.mu.Unlock()

	if c.trayApp != nil {
		c.trayApp.Update(readings)
		return nil
	}

	if _, err := fmt.Fprintln(c.out, Line(readings)); err != nil {
		return fmt.Errorf("failed to write clock line: %w", err)
	}
	return nil
}

// LastReadings returns the readings of the latest tick.
func (c *Clock) LastReadings() []tzclock.Reading {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]tzclock.Reading(nil), c.last...)
}

// Ticks returns how many times the clock has ticked.
func (c *Clock) Ticks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Line joins readings into one console line, for example
// "UTC 12:00:00 Jan 1 | America/New York 07:00:00 Jan 1".
func Line(readings []tzclock.Reading) string {
	parts := make([]string, 0, len(readings))
	for _, r := range readings {
		parts = append(parts, r.Label+" "+r.Text)
	}
	return strings.Join(parts, " | ")
}
