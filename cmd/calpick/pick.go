package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/hy4ri/calpick/internal/calendar"
	"github.com/hy4ri/calpick/internal/config"
	"github.com/hy4ri/calpick/internal/tui"
)

func newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the interactive picker",
		Long: `Open the interactive picker and print the confirmed value on stdout.
The picker itself is drawn on stderr, so the command can be used in
substitutions:

  due=$(calpick pick --mode dateTime)

Quitting without confirming exits with status 2.`,
		Args: cobra.NoArgs,
		RunE: runPick,
	}
	addPickerFlags(cmd)
	addSessionFlags(cmd)
	return cmd
}

func addSessionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("title", "", "Heading printed above the calendar")
	f.Int("step", 0, "Minute step of the time views (default from config)")
	f.Bool("notify", false, "Send a desktop notification on confirm")
	f.Bool("alt-screen", false, "Draw on the alternate screen")
}

// sessionOptions builds the TUI options from the config and the session
// flags.
func sessionOptions(cmd *cobra.Command, today calendar.Date) (tui.Options, *config.Config, error) {
	cfg, mode, opts, err := loadPicker(cmd, today)
	if err != nil {
		return tui.Options{}, nil, err
	}

	f := cmd.Flags()
	if f.Changed("step") {
		cfg.UI.MinuteStep, _ = f.GetInt("step")
		if err := cfg.Validate(); err != nil {
			return tui.Options{}, nil, err
		}
	}
	if f.Changed("notify") {
		cfg.UI.NotifyOnConfirm, _ = f.GetBool("notify")
	}
	if f.Changed("alt-screen") {
		cfg.UI.AltScreen, _ = f.GetBool("alt-screen")
	}
	value, _ := f.GetString("value")
	title, _ := f.GetString("title")

	return tui.Options{
		Mode:       mode,
		Picker:     opts,
		Value:      value,
		MinuteStep: cfg.UI.MinuteStep,
		Notify:     cfg.UI.NotifyOnConfirm,
		Title:      title,
	}, cfg, nil
}

func runPick(cmd *cobra.Command, args []string) error {
	opts, cfg, err := sessionOptions(cmd, calendar.Today())
	if err != nil {
		return err
	}

	// The picker draws on stderr while stdout may be captured, so color
	// support is probed on stderr.
	term := termenv.NewOutput(cmd.ErrOrStderr())
	lipgloss.SetColorProfile(term.ColorProfile())
	lipgloss.SetHasDarkBackground(term.HasDarkBackground())

	model := tui.New(opts)
	programOpts := []tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.ErrOrStderr()),
	}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}
	if !model.Confirmed() {
		return errCancelled
	}

	fmt.Fprintln(cmd.OutOrStdout(), model.Value())
	return nil
}
