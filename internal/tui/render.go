package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/calpick/internal/calendar"
	"github.com/hy4ri/calpick/internal/picker"
	"github.com/hy4ri/calpick/internal/tui/styles"
)

// RenderSheet paints the grid of a sheet: column headers, optional week
// numbers and one line per row. cursor is the index of the focused cell, or
// -1 for none.
func RenderSheet(sheet calendar.Sheet, cells []picker.Cell, cursor int) string {
	cols := max(sheet.ColumnCount, 1)
	width := cellWidth(sheet, cells)
	rowWidth := 0
	for _, name := range sheet.RowNames {
		rowWidth = max(rowWidth, runewidth.StringWidth(name))
	}

	var b strings.Builder
	if len(sheet.ColumnNames) > 0 {
		if rowWidth > 0 {
			b.WriteString(strings.Repeat(" ", rowWidth+1))
		}
		headers := make([]string, len(sheet.ColumnNames))
		for i, name := range sheet.ColumnNames {
			style := styles.CalendarWeekday
			if slices.Contains(sheet.HighlightedColumns, i) {
				style = styles.CalendarWeekdayHighlighted
			}
			headers[i] = style.Render(runewidth.FillLeft(name, width))
		}
		b.WriteString(strings.Join(headers, " "))
		b.WriteString("\n")
	}

	for row := 0; row*cols < len(cells); row++ {
		if rowWidth > 0 {
			name := ""
			if row < len(sheet.RowNames) {
				name = sheet.RowNames[row]
			}
			b.WriteString(styles.CalendarWeekNumber.Render(runewidth.FillLeft(name, rowWidth)))
			b.WriteString(" ")
		}

		end := min((row+1)*cols, len(cells))
		parts := make([]string, 0, cols)
		for i := row * cols; i < end; i++ {
			parts = append(parts, renderCell(cells[i], width, i == cursor))
		}
		b.WriteString(strings.Join(parts, " "))
		if end < len(cells) {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderCalendar paints the header and grid of the controller's current
// sheet.
func RenderCalendar(c *picker.Controller, cursor int) string {
	sheet := c.Sheet()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(sheet, c.TitleEnabled()),
		"",
		RenderSheet(sheet, c.Cells(), cursor),
	)
}

// cellWidth is the widest display name or column header, at least two
// columns so day numbers line up.
func cellWidth(sheet calendar.Sheet, cells []picker.Cell) int {
	w := 2
	for _, c := range cells {
		w = max(w, runewidth.StringWidth(c.DisplayName))
	}
	for _, name := range sheet.ColumnNames {
		w = max(w, runewidth.StringWidth(name))
	}
	return w
}

func renderCell(c picker.Cell, width int, focused bool) string {
	if c.Placeholder {
		return strings.Repeat(" ", width)
	}

	text := runewidth.FillRight(c.DisplayName, width)
	if c.Type == calendar.ItemDay {
		text = runewidth.FillLeft(c.DisplayName, width)
	}

	style := cellStyle(c)
	if focused {
		style = style.Inherit(styles.CalendarCursor)
	}
	return style.Render(text)
}

// cellStyle picks the style of a cell. Selection wins over range
// membership, which wins over the informational flags.
func cellStyle(c picker.Cell) lipgloss.Style {
	switch {
	case c.Disabled:
		return styles.CalendarDayDisabled
	case c.Selected, c.RangeStart, c.RangeEnd:
		return styles.CalendarDaySelected
	case c.InRange:
		return styles.CalendarDayInRange
	case c.ShowCurrent:
		return styles.CalendarDayToday
	case c.Adjacent:
		return styles.CalendarDayOtherMonth
	case c.Highlighted:
		return styles.CalendarDayWeekend
	}
	return styles.CalendarDay
}

// renderHeader paints "‹ title ›" with the arrows dimmed when there is
// nothing to navigate to.
func renderHeader(sheet calendar.Sheet, titleEnabled bool) string {
	arrow := func(s string, ok bool) string {
		if ok {
			return styles.NavArrow.Render(s)
		}
		return styles.NavArrowDisabled.Render(s)
	}
	title := styles.TitleDisabled.Render(sheet.Title)
	if titleEnabled {
		title = styles.Title.Render(sheet.Title)
	}
	return arrow("‹", sheet.Previous.IsSome()) + " " + title + " " + arrow("›", sheet.Next.IsSome())
}

// renderTimeView paints the clock of the active slot and its localized
// reading.
func renderTimeView(s picker.State, o picker.Options) string {
	t, label := s.Time1, "Time"
	if picker.Time2Available(s) {
		label = "Start"
	}
	if s.View == picker.ViewTime2 {
		t, label = s.Time2, "End"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ClockLabel.Render(label),
		"",
		styles.Clock.Render(renderClock(t.String())),
		"",
		styles.Subtitle.Render(o.FormatTime(t)),
	)
}
