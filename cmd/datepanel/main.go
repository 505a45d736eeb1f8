package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/datepanel/internal/calendar"
	"github.com/username/datepanel/internal/config"
	"github.com/username/datepanel/internal/panel"
	"github.com/username/datepanel/internal/prefs"
	"github.com/username/datepanel/internal/render"
	"github.com/username/datepanel/internal/tzclock"
	"github.com/username/datepanel/pkg/dateutil"
)

var (
	configPath   string
	outputFormat string
	logger       *zap.Logger
)

// errReported marks a failure already shown to the user as a card.
var errReported = errors.New("reported")

func main() {
	rootCmd := &cobra.Command{
		Use:           "datepanel",
		Short:         "Date and time utility panel",
		Long:          "Calendar math, day-of-year tables, date parsing and a world clock in the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json or yaml")

	rootCmd.AddCommand(
		nowCmd(),
		infoCmd(),
		diffCmd(),
		addCmd(),
		businessCmd(),
		timestampCmd(),
		unixCmd(),
		parseCmd(),
		rangeCmd(),
		tableCmd(),
		exportCmd(),
		clockCmd(),
		convertCmd(),
		zonesCmd(),
		watchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// app bundles what every subcommand needs.
type app struct {
	cfg      *config.Config
	panel    *panel.Panel
	renderer *render.Renderer
	prefs    *prefs.Store
}

func initializeApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	format, err := render.ParseFormat(outputFormat)
	if err != nil {
		return nil, err
	}

	formatter := dateutil.English{}
	cal := calendar.NewWeekdayCalendar(logger)
	p := panel.NewPanel(cfg, cal, tzclock.SystemZones{}, formatter, logger)

	store := prefs.NewStore(cfg.State.PreferencesFile, cfg.Timezones.Available, logger)
	if err := store.Load(); err != nil {
		logger.Warn("Failed to load preferences, using defaults", zap.Error(err))
	}

	return &app{
		cfg:      cfg,
		panel:    p,
		renderer: render.New(cmd.OutOrStdout(), format, formatter),
		prefs:    store,
	}, nil
}

// selection returns the configured zones with saved preferences applied.
func (a *app) selection() prefs.Selection {
	return a.prefs.Apply(a.panel.DefaultSelection())
}

// fail shows label as a failed card and returns errReported.
func (a *app) fail(label string, err error) error {
	if rerr := a.renderer.Failure(label, err); rerr != nil {
		return rerr
	}
	return errReported
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
