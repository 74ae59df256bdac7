// Package tui provides the terminal user interface of the picker.
package tui

import (
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/calpick/internal/calendar"
	"github.com/hy4ri/calpick/internal/picker"
	"github.com/hy4ri/calpick/internal/tui/styles"
)

// Options configure a picker session.
type Options struct {
	Mode   picker.SelectionMode
	Picker picker.Options

	// Value is the initial wire value.
	Value string

	// MinuteStep is the minute increment of the time views.
	MinuteStep int

	// Notify sends a desktop notification on confirm.
	Notify bool

	// Title is printed above the sheet; empty prints nothing.
	Title string
}

// ValueChangedMsg is sent after the picker value changed.
type ValueChangedMsg struct {
	Value string
}

type statusMsg struct {
	msg string
	err bool
}

// Model is the Bubble Tea model of one picker session.
type Model struct {
	ctrl *picker.Controller
	keys KeyMap
	help help.Model

	input   textinput.Model
	editing bool

	cursor     int
	width      int
	minuteStep int
	notify     bool
	title      string

	// body caches the rendered sheet until the controller asks for a
	// repaint or the cursor moves.
	body       string
	bodyCursor int
	dirty      bool

	changed   bool
	status    string
	statusErr bool

	confirmed bool
	done      bool

	writeClipboard func(string) error
	sendNotify     func(title, message string) error
}

// New creates a picker session.
func New(opts Options) *Model {
	m := &Model{
		keys:           DefaultKeyMap(),
		help:           help.New(),
		minuteStep:     max(opts.MinuteStep, 1),
		notify:         opts.Notify,
		title:          opts.Title,
		dirty:          true,
		writeClipboard: clipboard.WriteAll,
		sendNotify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
	m.ctrl = picker.New(opts.Mode, opts.Picker, picker.Hooks{
		RequestUpdate: func() { m.dirty = true },
		OnChange:      func() { m.changed = true },
	})
	if opts.Value != "" {
		m.ctrl.SetValue(opts.Value)
		m.changed = false
	}

	m.help.Styles.ShortKey = styles.HelpKey
	m.help.Styles.ShortDesc = styles.HelpDesc
	m.help.Styles.ShortSeparator = styles.HelpSeparator
	m.help.Styles.FullKey = styles.HelpKey
	m.help.Styles.FullDesc = styles.HelpDesc
	m.help.Styles.FullSeparator = styles.HelpSeparator

	m.input = textinput.New()
	m.input.Prompt = ": "
	m.input.Placeholder = "2024-03-15"
	m.input.CharLimit = 512
	m.input.PromptStyle = styles.CommandPrompt
	m.input.TextStyle = styles.CommandInput
	m.input.PlaceholderStyle = styles.CommandPlaceholder

	m.focus()
	return m
}

// Value returns the current wire value.
func (m *Model) Value() string { return m.ctrl.Value() }

// Confirmed reports whether the session ended with a confirm.
func (m *Model) Confirmed() bool { return m.confirmed }

// Controller exposes the underlying picker.
func (m *Model) Controller() *picker.Controller { return m.ctrl }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 10)

	case statusMsg:
		m.status, m.statusErr = msg.msg, msg.err

	case tea.KeyMsg:
		if m.editing {
			cmd = m.updateInput(msg)
		} else {
			cmd = m.handleKey(msg)
		}
	}

	if m.changed {
		m.changed = false
		value := m.ctrl.Value()
		changed := func() tea.Msg { return ValueChangedMsg{Value: value} }
		if cmd == nil {
			cmd = changed
		} else {
			cmd = tea.Batch(cmd, changed)
		}
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := m.ctrl.State()

	switch {
	case key.Matches(msg, m.keys.Cancel):
		slog.Debug("picker cancelled")
		m.done = true
		return tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Copy):
		return m.copyValue()

	case key.Matches(msg, m.keys.Edit):
		return m.startEditing()

	case key.Matches(msg, m.keys.Time1):
		m.ctrl.Dispatch(picker.TimeViewRequested{Slot: picker.Time1})

	case key.Matches(msg, m.keys.Time2):
		m.ctrl.Dispatch(picker.TimeViewRequested{Slot: picker.Time2})

	case key.Matches(msg, m.keys.Calendar):
		m.ctrl.Dispatch(picker.CalendarViewRequested{})
		m.focus()

	case key.Matches(msg, m.keys.Reset):
		m.ctrl.ResetView()
		m.focus()

	case s.View.IsTime():
		m.handleTimeKey(msg, s)

	default:
		m.handleCalendarKey(msg)
	}
	return nil
}

func (m *Model) handleCalendarKey(msg tea.KeyMsg) {
	cols := max(m.ctrl.Sheet().ColumnCount, 1)

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-cols)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(cols)

	case key.Matches(msg, m.keys.Previous):
		m.ctrl.Dispatch(picker.PreviousActivated{})
		m.clampCursor()
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Dispatch(picker.NextActivated{})
		m.clampCursor()

	case key.Matches(msg, m.keys.DrillUp):
		before := m.ctrl.State().View
		m.ctrl.Dispatch(picker.TitleActivated{})
		if m.ctrl.State().View != before {
			m.focus()
		}

	case key.Matches(msg, m.keys.Today):
		m.ctrl.Dispatch(picker.TodayRequested{})
		m.focusCurrent()

	case key.Matches(msg, m.keys.Activate):
		m.activate()
	}
}

func (m *Model) handleTimeKey(msg tea.KeyMsg, s picker.State) {
	slot, t := picker.Time1, s.Time1
	if s.View == picker.ViewTime2 {
		slot, t = picker.Time2, s.Time2
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.ctrl.Dispatch(picker.HoursSet{Slot: slot, Hours: (t.Hours + 1) % 24})
	case key.Matches(msg, m.keys.Down):
		m.ctrl.Dispatch(picker.HoursSet{Slot: slot, Hours: (t.Hours + 23) % 24})
	case key.Matches(msg, m.keys.Right):
		m.ctrl.Dispatch(picker.MinutesSet{Slot: slot, Minutes: stepUp(t.Minutes, m.minuteStep)})
	case key.Matches(msg, m.keys.Left):
		m.ctrl.Dispatch(picker.MinutesSet{Slot: slot, Minutes: stepDown(t.Minutes, m.minuteStep)})
	case key.Matches(msg, m.keys.Activate):
		m.ctrl.Dispatch(picker.CalendarViewRequested{})
		m.focus()
	}
}

// stepUp moves to the next multiple of step, wrapping past 59.
func stepUp(minutes, step int) int {
	next := (minutes/step + 1) * step
	if next > 59 {
		return 0
	}
	return next
}

// stepDown moves to the previous multiple of step, wrapping below 0.
func stepDown(minutes, step int) int {
	prev := minutes - step
	if rem := minutes % step; rem != 0 {
		prev = minutes - rem
	}
	if prev < 0 {
		return 59 / step * step
	}
	return prev
}

func (m *Model) activate() {
	cells := m.ctrl.Cells()
	if m.cursor < 0 || m.cursor >= len(cells) || cells[m.cursor].Placeholder {
		return
	}
	before := m.ctrl.State()
	m.ctrl.Dispatch(picker.CellActivated{Item: cells[m.cursor].Item})
	after := m.ctrl.State()
	if after.View != before.View || after.Anchor != before.Anchor {
		m.focus()
	}
}

// moveCursor moves the focus by delta cells, paging to the neighboring sheet
// when it leaves the grid or would land on a blank cell. Day cursors land on
// the same date of the new sheet.
func (m *Model) moveCursor(delta int) {
	cells := m.ctrl.Cells()
	if len(cells) == 0 {
		return
	}
	items := make([]calendar.Item, len(cells))
	for i, c := range cells {
		items[i] = c.Item
	}
	m.cursor = clampIndex(m.cursor, len(items))
	next := m.cursor + delta
	if next >= 0 && next < len(items) && !cells[next].Placeholder {
		m.cursor = next
		return
	}

	from := items[m.cursor]
	var ev picker.Event = picker.NextActivated{}
	if delta < 0 {
		ev = picker.PreviousActivated{}
	}
	before := m.ctrl.State().Anchor
	m.ctrl.Dispatch(ev)
	if m.ctrl.State().Anchor == before {
		return
	}

	paged := m.ctrl.Sheet().Items
	if from.Type == calendar.ItemDay {
		if i := indexOfDay(paged, from.Date().AddDays(delta)); i >= 0 {
			m.cursor = i
			return
		}
	}
	if next < 0 {
		next += len(paged)
	} else if next >= len(items) {
		next -= len(items)
	}
	m.cursor = clampIndex(next, len(paged))
	m.skipPlaceholder()
}

func indexOfDay(items []calendar.Item, d calendar.Date) int {
	for i, it := range items {
		if it.Type == calendar.ItemDay && !it.Adjacent && it.Date() == d {
			return i
		}
	}
	return -1
}

func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}

func (m *Model) clampCursor() {
	m.cursor = clampIndex(m.cursor, len(m.ctrl.Sheet().Items))
	m.skipPlaceholder()
}

// skipPlaceholder moves a cursor resting on a blank cell to the nearest
// visible one.
func (m *Model) skipPlaceholder() {
	cells := m.ctrl.Cells()
	if m.cursor < 0 || m.cursor >= len(cells) || !cells[m.cursor].Placeholder {
		return
	}
	for d := 1; d < len(cells); d++ {
		for _, i := range []int{m.cursor - d, m.cursor + d} {
			if i >= 0 && i < len(cells) && !cells[i].Placeholder {
				m.cursor = i
				return
			}
		}
	}
}

// focus puts the cursor on the first selected cell, else the current one,
// else the first cell of the period.
func (m *Model) focus() {
	cells := m.ctrl.Cells()
	preds := []func(picker.Cell) bool{
		func(c picker.Cell) bool { return c.Selected && !c.Placeholder },
		func(c picker.Cell) bool { return c.Current && !c.Adjacent },
		func(c picker.Cell) bool { return !c.Adjacent },
	}
	for _, pred := range preds {
		for i, c := range cells {
			if pred(c) {
				m.cursor = i
				return
			}
		}
	}
	m.cursor = 0
}

func (m *Model) focusCurrent() {
	for i, c := range m.ctrl.Cells() {
		if c.Current && !c.Adjacent {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) confirm() tea.Cmd {
	value := m.ctrl.Value()
	slog.Debug("picker confirmed", "value", value)
	m.confirmed, m.done = true, true
	if !m.notify {
		return tea.Quit
	}
	return tea.Sequence(m.notifyCmd(value), tea.Quit)
}

func (m *Model) notifyCmd(value string) tea.Cmd {
	send := m.sendNotify
	return func() tea.Msg {
		message := "Nothing picked"
		if value != "" {
			message = "Picked " + value
		}
		if err := send("calpick", message); err != nil {
			slog.Warn("failed to send notification", "error", err)
		}
		return nil
	}
}

// copyValue copies the wire value to the clipboard.
func (m *Model) copyValue() tea.Cmd {
	value := m.ctrl.Value()
	if value == "" {
		m.status, m.statusErr = "Nothing to copy", true
		return nil
	}
	write := m.writeClipboard
	return func() tea.Msg {
		if err := write(value); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error(), err: true}
		}
		return statusMsg{msg: "Copied: " + value}
	}
}

func (m *Model) startEditing() tea.Cmd {
	m.editing = true
	m.input.SetValue(m.ctrl.Value())
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		raw := strings.TrimSpace(m.input.Value())
		m.ctrl.SetValue(raw)
		m.stopEditing()
		m.focus()
		if raw != "" && m.ctrl.Value() == "" {
			m.status, m.statusErr = "No valid value in "+raw, true
		} else {
			m.status, m.statusErr = "", false
		}
		return nil

	case tea.KeyEsc, tea.KeyCtrlC:
		m.stopEditing()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) View() string {
	if m.done {
		return ""
	}

	var sections []string
	if m.title != "" {
		title := m.title
		if m.width > 0 {
			title = runewidth.Truncate(title, max(m.width-4, 1), "…")
		}
		sections = append(sections, styles.Subtitle.Render(title))
	}
	sections = append(sections, m.renderBody(), "", m.renderStatus())
	if m.editing {
		sections = append(sections, styles.InputFocused.Render(m.input.View()))
	}
	sections = append(sections, m.help.View(m.keys))

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderBody() string {
	if !m.dirty && m.bodyCursor == m.cursor {
		return m.body
	}

	s := m.ctrl.State()
	if s.View.IsTime() {
		m.body = renderTimeView(s, m.ctrl.Options())
	} else {
		m.body = RenderCalendar(m.ctrl, m.cursor)
	}
	m.dirty = false
	m.bodyCursor = m.cursor
	return m.body
}

func (m *Model) renderStatus() string {
	s := m.ctrl.State()
	value := m.ctrl.Value()
	if value == "" {
		value = "none"
	}
	line := styles.Subtitle.Render(s.Mode.String()) + " " + styles.StatusBarValue.Render(value)

	if m.status != "" {
		style := styles.StatusBarSuccess
		if m.statusErr {
			style = styles.StatusBarError
		}
		line += "  " + style.Render(m.status)
	}
	return styles.StatusBar.Render(line)
}
