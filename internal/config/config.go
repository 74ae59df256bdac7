// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hy4ri/calpick/internal/calendar"
	"github.com/hy4ri/calpick/internal/locale"
	"github.com/hy4ri/calpick/internal/picker"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "CALPICK_CONFIG"

// ErrInvalidMinuteStep is returned when ui.minute_step is outside 1..30.
var ErrInvalidMinuteStep = errors.New("invalid minute step")

// Config represents the application configuration.
type Config struct {
	Picker PickerConfig `yaml:"picker"`
	UI     UIConfig     `yaml:"ui"`
}

// PickerConfig holds the defaults of a picker session.
type PickerConfig struct {
	Mode              string `yaml:"mode"`
	Locale            string `yaml:"locale,omitempty"` // BCP 47 tag; empty uses $LANG
	DaysAmount        string `yaml:"days_amount"`      // "default", "minimal" or "maximal"
	ShowWeekNumbers   bool   `yaml:"show_week_numbers"`
	HighlightToday    bool   `yaml:"highlight_today"`
	HighlightWeekends bool   `yaml:"highlight_weekends"`
	DisableWeekends   bool   `yaml:"disable_weekends"`
	EnableCenturyView bool   `yaml:"enable_century_view"`

	// Bounds as YYYY-MM-DD; empty means unbounded.
	MinDate string `yaml:"min_date,omitempty"`
	MaxDate string `yaml:"max_date,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	MinuteStep      int  `yaml:"minute_step"`
	NotifyOnConfirm bool `yaml:"notify_on_confirm"`
	AltScreen       bool `yaml:"alt_screen"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Picker: PickerConfig{
			Mode:              "date",
			DaysAmount:        "default",
			HighlightToday:    true,
			HighlightWeekends: true,
		},
		UI: UIConfig{
			MinuteStep: 5,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		dir := filepath.Dir(p)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "calpick")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if _, err := picker.ParseSelectionMode(c.Picker.Mode); err != nil {
		return fmt.Errorf("picker.mode: %w", err)
	}
	if _, err := picker.ParseDaysAmount(c.Picker.DaysAmount); err != nil {
		return fmt.Errorf("picker.days_amount: %w", err)
	}
	// min_date after max_date is accepted; the picker then disables every cell.
	if _, _, err := c.Picker.bounds(); err != nil {
		return err
	}
	if c.UI.MinuteStep < 1 || c.UI.MinuteStep > 30 {
		return fmt.Errorf("ui.minute_step: %w: %d", ErrInvalidMinuteStep, c.UI.MinuteStep)
	}
	return nil
}

func (p PickerConfig) bounds() (minDate, maxDate *calendar.Date, err error) {
	if p.MinDate != "" {
		d, err := calendar.ParseDate(p.MinDate)
		if err != nil {
			return nil, nil, fmt.Errorf("picker.min_date: %w", err)
		}
		minDate = &d
	}
	if p.MaxDate != "" {
		d, err := calendar.ParseDate(p.MaxDate)
		if err != nil {
			return nil, nil, fmt.Errorf("picker.max_date: %w", err)
		}
		maxDate = &d
	}
	return minDate, maxDate, nil
}

// SelectionMode returns the configured mode.
func (c *Config) SelectionMode() (picker.SelectionMode, error) {
	return picker.ParseSelectionMode(c.Picker.Mode)
}

// PickerOptions builds the picker options for the given current day.
func (c *Config) PickerOptions(today calendar.Date) (picker.Options, error) {
	days, err := picker.ParseDaysAmount(c.Picker.DaysAmount)
	if err != nil {
		return picker.Options{}, fmt.Errorf("picker.days_amount: %w", err)
	}
	minDate, maxDate, err := c.Picker.bounds()
	if err != nil {
		return picker.Options{}, err
	}

	return picker.Options{
		Locale:            locale.New(c.LocaleTag()),
		MinDate:           minDate,
		MaxDate:           maxDate,
		Today:             today,
		DaysAmount:        days,
		ShowWeekNumbers:   c.Picker.ShowWeekNumbers,
		HighlightToday:    c.Picker.HighlightToday,
		HighlightWeekends: c.Picker.HighlightWeekends,
		DisableWeekends:   c.Picker.DisableWeekends,
		EnableCenturyView: c.Picker.EnableCenturyView,
	}, nil
}

// LocaleTag returns the configured locale, or one derived from $LANG such
// as "de_DE.UTF-8".
func (c *Config) LocaleTag() string {
	if c.Picker.Locale != "" {
		return c.Picker.Locale
	}
	return tagFromEnv(os.Getenv("LANG"))
}

func tagFromEnv(lang string) string {
	lang, _, _ = strings.Cut(lang, ".")
	lang, _, _ = strings.Cut(lang, "@")
	if lang == "" || lang == "C" || lang == "POSIX" {
		return "en-US"
	}
	return strings.ReplaceAll(lang, "_", "-")
}
