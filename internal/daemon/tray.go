//go:build windows

package daemon

import (
	"context"
	"strings"
	"sync"

	"fyne.io/systray"
	"go.uber.org/zap"

	"github.com/username/datepanel/internal/tzclock"
)

// TrayApp shows the world clock in the system tray: one disabled menu item
// per slot and the full readout as the tooltip.
type TrayApp struct {
	clock  *Clock
	logger *zap.Logger

	mu    sync.Mutex
	items []*systray.MenuItem
}

// NewTrayApp creates a new system tray application
func NewTrayApp(clock *Clock, logger *zap.Logger) (*TrayApp, error) {
	return &TrayApp{
		clock:  clock,
		logger: logger,
	}, nil
}

// Run starts the system tray application (blocks until Quit or ctx is done)
func (t *TrayApp) Run(ctx context.Context) {
	systray.Run(func() { t.onReady(ctx) }, t.onExit)
}

func (t *TrayApp) onReady(ctx context.Context) {
	systray.SetIcon(clockIcon())
	systray.SetTitle("DP")
	systray.SetTooltip("Date panel world clock")

	t.mu.Lock()
	for _, zone := range t.clock.slots {
		item := systray.AddMenuItem(tzclock.DisplayName(zone), zone)
		item.Disable()
		t.items = append(t.items, item)
	}
	t.mu.Unlock()

	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the world clock")

	// Start clock loop in background
	go func() {
		if err := t.clock.runLoop(ctx); err != nil {
			t.logger.Error("World clock failed", zap.Error(err))
		}
		systray.Quit()
	}()

	// Handle menu item clicks
	go func() {
		select {
		case <-mQuit.ClickedCh:
			t.logger.Info("Quit clicked from tray")
			t.clock.Stop()
		case <-ctx.Done():
		}
	}()
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

// Update shows readings in the menu and tooltip
func (t *TrayApp) Update(readings []tzclock.Reading) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := make([]string, 0, len(readings))
	for i, r := range readings {
		line := r.Label + "  " + r.Text
		lines = append(lines, line)
		if i < len(t.items) {
			t.items[i].SetTitle(line)
		}
	}
	systray.SetTooltip(strings.Join(lines, "\n"))
}
