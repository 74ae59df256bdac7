// Package styles provides Lip Gloss styles for the picker.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected cells
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// RangeColor tints cells between the ends of a range
	RangeColor = lipgloss.AdaptiveColor{Light: "#E4DBFF", Dark: "#3B2F6B"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Base styles
var (
	// App is the frame around the whole picker
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the sheet title when it drills up
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// TitleDisabled is the sheet title at the top level
	TitleDisabled = lipgloss.NewStyle().
			Bold(true)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// NavArrow is an enabled previous/next arrow
	NavArrow = lipgloss.NewStyle().
			Foreground(Highlight)

	// NavArrowDisabled is an arrow with nowhere to go
	NavArrowDisabled = lipgloss.NewStyle().
				Foreground(Subtle).
				Faint(true)
)

// Calendar styles
// NOTE: Width is NOT set here - cells are padded in RenderSheet
var (
	// CalendarWeekday is for column headers
	CalendarWeekday = lipgloss.NewStyle().
			Foreground(Subtle)

	// CalendarWeekdayHighlighted is for weekend column headers
	CalendarWeekdayHighlighted = lipgloss.NewStyle().
					Foreground(WarningColor)

	// CalendarWeekNumber is for row headers
	CalendarWeekNumber = lipgloss.NewStyle().
				Foreground(Subtle).
				Faint(true)

	// CalendarDay is for regular cells
	CalendarDay = lipgloss.NewStyle()

	// CalendarDaySelected is for selected cells and range ends
	CalendarDaySelected = lipgloss.NewStyle().
				Bold(true).
				Background(Highlight).
				Foreground(lipgloss.Color("#ffffff"))

	// CalendarDayInRange is for cells inside a selected range
	CalendarDayInRange = lipgloss.NewStyle().
				Background(RangeColor)

	// CalendarDayToday is for the current cell
	CalendarDayToday = lipgloss.NewStyle().
				Bold(true).
				Foreground(SuccessColor)

	// CalendarDayWeekend is for highlighted columns
	CalendarDayWeekend = lipgloss.NewStyle().
				Foreground(WarningColor)

	// CalendarDayOtherMonth is for cells of a neighboring period
	CalendarDayOtherMonth = lipgloss.NewStyle().
				Faint(true)

	// CalendarDayDisabled is for cells that cannot be picked
	CalendarDayDisabled = lipgloss.NewStyle().
				Foreground(Subtle).
				Strikethrough(true)

	// CalendarCursor marks the focused cell
	CalendarCursor = lipgloss.NewStyle().
			Underline(true).
			Bold(true)
)

// Time view styles
var (
	// Clock is for the large digits of the time view
	Clock = lipgloss.NewStyle().
		Foreground(Highlight)

	// ClockLabel names the edited slot
	ClockLabel = lipgloss.NewStyle().
			Foreground(Subtle).
			Bold(true)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Padding(0, 1)

	// StatusBarValue is for the current wire value
	StatusBarValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSeparator is the separator between key and description
	HelpSeparator = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Input styles
var (
	// InputFocused is for the value editor
	InputFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)
)
