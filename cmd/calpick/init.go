package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hy4ri/calpick/internal/config"
)

const configTemplate = `# calpick configuration
# Location: ~/.config/calpick/config.yaml (override with $CALPICK_CONFIG)

picker:
  # date, dates, dateRange, week, weeks, weekRange, month, months,
  # monthRange, quarter, quarters, quarterRange, year, years, yearRange,
  # time, timeRange or dateTime
  mode: date

  # BCP 47 tag such as en-GB or de-DE; empty derives one from $LANG
  locale: ""

  # default pads to whole weeks, minimal blanks neighboring days,
  # maximal always shows six weeks
  days_amount: default

  show_week_numbers: false
  highlight_today: true
  highlight_weekends: true
  disable_weekends: false
  enable_century_view: false

  # Selectable bounds as YYYY-MM-DD; empty means unbounded
  # min_date: "2024-01-01"
  # max_date: "2030-12-31"

ui:
  # Minute increment of the time views (1-30)
  minute_step: 5
  notify_on_confirm: false
  alt_screen: false
`

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a template config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return createConfigTemplate(cmd, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}

// createConfigTemplate writes the commented default configuration.
func createConfigTemplate(cmd *cobra.Command, force bool) error {
	out := cmd.OutOrStdout()

	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(out, "Config file already exists: %s\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")

		var response string
		fmt.Fscanln(cmd.InOrStdin(), &response)

		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	// Ensure directory exists
	if _, err := config.ConfigDir(); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Config file created: %s\n", path)
	return nil
}
