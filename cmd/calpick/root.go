package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hy4ri/calpick/internal/calendar"
	"github.com/hy4ri/calpick/internal/config"
	"github.com/hy4ri/calpick/internal/logging"
	"github.com/hy4ri/calpick/internal/picker"
)

// errCancelled is returned when the user quits the picker without
// confirming.
var errCancelled = errors.New("cancelled")

func newRootCmd() *cobra.Command {
	var (
		debug   bool
		logFile string
		closer  io.Closer
	)

	root := &cobra.Command{
		Use:   "calpick",
		Short: "calpick - a terminal date and time picker",
		Long: `calpick lets you pick dates, weeks, months, quarters, years and times
from a calendar in the terminal and prints the value on stdout.

Examples:
  # Pick a single date
  calpick pick

  # Pick a range of weeks, starting from a previous value
  calpick pick --mode weekRange --value 2024-W10,2024-W12

  # Print the current month
  calpick sheet --locale de-DE
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := logFile
			if path == "" && debug {
				dir, err := config.ConfigDir()
				if err != nil {
					return err
				}
				path = filepath.Join(dir, "debug.log")
			}
			c, err := logging.Init(path)
			if err != nil {
				return fmt.Errorf("failed to open log: %w", err)
			}
			closer = c
			slog.Debug("calpick starting", "command", cmd.Name(), "version", version)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closer == nil {
				return nil
			}
			return closer.Close()
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to debug.log in the config directory")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")
	addPickerFlags(root)
	addSessionFlags(root)

	root.AddCommand(newPickCmd(), newSheetCmd(), newInitCmd(), newVersionCmd())
	return root
}

// addPickerFlags registers the flags shared by every command that builds a
// picker. Unset flags fall back to the config file.
func addPickerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("mode", "m", "", "Selection mode (date, dates, dateRange, week, ..., time, timeRange, dateTime)")
	f.StringP("value", "v", "", "Initial value")
	f.String("locale", "", "BCP 47 locale tag (default from config or $LANG)")
	f.String("days", "", "Month sizing: default, minimal or maximal")
	f.String("min", "", "Earliest selectable date (YYYY-MM-DD)")
	f.String("max", "", "Latest selectable date (YYYY-MM-DD)")
	f.Bool("week-numbers", false, "Show week numbers")
	f.Bool("disable-weekends", false, "Make weekend days unselectable")
	f.Bool("century", false, "Allow zooming out to the century view")
}

// applyPickerFlags copies every flag the user set onto cfg.
func applyPickerFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	p := &cfg.Picker

	strs := map[string]*string{
		"mode":   &p.Mode,
		"locale": &p.Locale,
		"days":   &p.DaysAmount,
		"min":    &p.MinDate,
		"max":    &p.MaxDate,
	}
	for name, dst := range strs {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}

	bools := map[string]*bool{
		"week-numbers":     &p.ShowWeekNumbers,
		"disable-weekends": &p.DisableWeekends,
		"century":          &p.EnableCenturyView,
	}
	for name, dst := range bools {
		if f.Changed(name) {
			*dst, _ = f.GetBool(name)
		}
	}
}

// loadPicker returns the config with flags applied, the selection mode and
// the picker options for today.
func loadPicker(cmd *cobra.Command, today calendar.Date) (*config.Config, picker.SelectionMode, picker.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, 0, picker.Options{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyPickerFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, 0, picker.Options{}, err
	}

	mode, err := cfg.SelectionMode()
	if err != nil {
		return nil, 0, picker.Options{}, err
	}
	opts, err := cfg.PickerOptions(today)
	if err != nil {
		return nil, 0, picker.Options{}, err
	}
	return cfg, mode, opts, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calpick version %s\n", version)
		},
	}
}
