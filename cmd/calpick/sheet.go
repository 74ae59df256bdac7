package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hy4ri/calpick/internal/calendar"
	"github.com/hy4ri/calpick/internal/picker"
	"github.com/hy4ri/calpick/internal/tui"
)

func newSheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Print a calendar sheet",
		Long: `Print the sheet the picker would show, without interaction.

Examples:
  # The current month with week numbers
  calpick sheet --week-numbers

  # The decade around a date, with a selection
  calpick sheet --mode years --date 2031-06-01 --value 2030,2033
`,
		Args: cobra.NoArgs,
		RunE: runSheet,
	}
	addPickerFlags(cmd)
	cmd.Flags().String("date", "", "Day the sheet is built around (default today)")
	cmd.Flags().String("view", "", "Sheet level: month, year, decade or century (default the mode's)")
	return cmd
}

func runSheet(cmd *cobra.Command, args []string) error {
	today := calendar.Today()
	if s, _ := cmd.Flags().GetString("date"); s != "" {
		d, err := calendar.ParseDate(s)
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}
		today = d
	}

	_, mode, opts, err := loadPicker(cmd, today)
	if err != nil {
		return err
	}
	if !mode.Behavior().Kind.HasCalendar() {
		return fmt.Errorf("mode %s has no calendar", mode)
	}

	ctrl := picker.New(mode, opts, picker.Hooks{})
	if value, _ := cmd.Flags().GetString("value"); value != "" {
		ctrl.SetValue(value)
	}

	if name, _ := cmd.Flags().GetString("view"); name != "" {
		view, err := picker.ParseView(name)
		if err != nil {
			return fmt.Errorf("--view: %w", err)
		}
		if err := zoomTo(ctrl, view); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderCalendar(ctrl, -1))
	return nil
}

// zoomTo drills up from the initial view until view is shown.
func zoomTo(ctrl *picker.Controller, view picker.View) error {
	for ctrl.State().View != view {
		if !ctrl.TitleEnabled() {
			return fmt.Errorf("view %s is not reachable from %s", view, ctrl.State().View)
		}
		ctrl.Dispatch(picker.TitleActivated{})
	}
	return nil
}
