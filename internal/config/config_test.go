package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/calpick/internal/calendar"
	"github.com/hy4ri/calpick/internal/picker"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestSaveAndLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "")

	cfg := DefaultConfig()
	cfg.Picker.Mode = "weekRange"
	cfg.Picker.Locale = "de-DE"
	cfg.Picker.MinDate = "2024-01-01"
	cfg.UI.MinuteStep = 15
	require.NoError(t, Save(cfg))

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "calpick", "config.yaml"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigPath_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "picker.yaml")
	t.Setenv(EnvConfigPath, path)

	got, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, path, got)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("picker:\n  mode: months\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "months", cfg.Picker.Mode)
	assert.Equal(t, 5, cfg.UI.MinuteStep, "unset fields keep their defaults")
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(EnvConfigPath, path)

	require.NoError(t, os.WriteFile(path, []byte("picker:\n  mode: fortnight\n"), 0600))
	_, err := Load()
	assert.ErrorIs(t, err, picker.ErrUnknownMode)

	require.NoError(t, os.WriteFile(path, []byte("picker: [not, a, map]\n"), 0600))
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown mode", func(c *Config) { c.Picker.Mode = "Date" }, picker.ErrUnknownMode},
		{"bad days amount", func(c *Config) { c.Picker.DaysAmount = "big" }, picker.ErrInvalidDaysAmount},
		{"bad min date", func(c *Config) { c.Picker.MinDate = "2024-02-30" }, calendar.ErrInvalidDate},
		{"bad max date", func(c *Config) { c.Picker.MaxDate = "soon" }, calendar.ErrInvalidDate},
		{"zero minute step", func(c *Config) { c.UI.MinuteStep = 0 }, ErrInvalidMinuteStep},
		{"huge minute step", func(c *Config) { c.UI.MinuteStep = 45 }, ErrInvalidMinuteStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	inverted := DefaultConfig()
	inverted.Picker.MinDate, inverted.Picker.MaxDate = "2025-01-01", "2024-01-01"
	assert.NoError(t, inverted.Validate(), "inverted bounds are allowed")
}

func TestPickerOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Picker.Locale = "en-US"
	cfg.Picker.DaysAmount = "maximal"
	cfg.Picker.MinDate = "2024-03-10"
	cfg.Picker.ShowWeekNumbers = true

	today := calendar.Date{Year: 2024, Month: 2, Day: 15}
	o, err := cfg.PickerOptions(today)
	require.NoError(t, err)

	assert.Equal(t, today, o.Today)
	assert.Equal(t, picker.DaysMaximal, o.DaysAmount)
	require.NotNil(t, o.MinDate)
	assert.Equal(t, calendar.Date{Year: 2024, Month: 2, Day: 10}, *o.MinDate)
	assert.Nil(t, o.MaxDate)
	assert.True(t, o.ShowWeekNumbers)
	assert.True(t, o.HighlightToday)
	assert.Equal(t, 0, o.Locale.FirstDayOfWeek())

	mode, err := cfg.SelectionMode()
	require.NoError(t, err)
	assert.Equal(t, picker.ModeDate, mode)
}

func TestLocaleTag(t *testing.T) {
	cfg := DefaultConfig()

	tests := map[string]string{
		"de_DE.UTF-8":     "de-DE",
		"fr_CA":           "fr-CA",
		"sr_RS@latin":     "sr-RS",
		"C":               "en-US",
		"POSIX":           "en-US",
		"":                "en-US",
		"en_GB.ISO8859-1": "en-GB",
	}
	for lang, want := range tests {
		t.Setenv("LANG", lang)
		assert.Equal(t, want, cfg.LocaleTag(), "LANG=%q", lang)
	}

	cfg.Picker.Locale = "es-MX"
	assert.Equal(t, "es-MX", cfg.LocaleTag())
}
