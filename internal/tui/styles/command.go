package styles

import "github.com/charmbracelet/lipgloss"

// Value editor styles
var (
	// CommandPrompt is the style for the ":" prompt.
	CommandPrompt = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// CommandInput is the style for the typed value.
	CommandInput = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// CommandPlaceholder is the style for the example shown in an empty editor.
	CommandPlaceholder = lipgloss.NewStyle().
				Foreground(Subtle)
)
