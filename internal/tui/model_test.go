package tui

import (
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/hy4ri/calpick/internal/calendar"
	"github.com/hy4ri/calpick/internal/locale"
	"github.com/hy4ri/calpick/internal/picker"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var testToday = calendar.Date{Year: 2024, Month: 2, Day: 15}

func newTestModel(mode picker.SelectionMode) *Model {
	return New(Options{
		Mode:       mode,
		Picker:     picker.Options{Today: testToday, HighlightToday: true},
		MinuteStep: 15,
	})
}

// sendKey feeds one key press and returns the resulting command.
func sendKey(m *Model, key string) tea.Cmd {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func focusedDate(m *Model) calendar.Date {
	return m.ctrl.Cells()[m.cursor].Date()
}

func TestModel_StartsOnToday(t *testing.T) {
	m := newTestModel(picker.ModeDate)

	if got := focusedDate(m); got != testToday {
		t.Errorf("Expected cursor on %v, got %v", testToday, got)
	}
	if m.Value() != "" {
		t.Errorf("Expected empty value, got %q", m.Value())
	}
}

func TestModel_SelectDateWithKeys(t *testing.T) {
	m := newTestModel(picker.ModeDate)

	cmd := sendKey(m, "enter")
	if m.Value() != "2024-03-15" {
		t.Fatalf("Expected 2024-03-15, got %q", m.Value())
	}
	if cmd == nil {
		t.Fatal("Expected a command after the value changed")
	}
	msg, ok := cmd().(ValueChangedMsg)
	if !ok || msg.Value != "2024-03-15" {
		t.Errorf("Expected ValueChangedMsg{2024-03-15}, got %#v", cmd())
	}

	sendKey(m, "l")
	sendKey(m, "j")
	sendKey(m, "space")
	if m.Value() != "2024-03-23" {
		t.Errorf("Expected 2024-03-23 after moving, got %q", m.Value())
	}
}

func TestModel_NavigationDoesNotReportChange(t *testing.T) {
	m := newTestModel(picker.ModeDate)

	for _, k := range []string{"l", "]", "[", "u", "."} {
		if cmd := sendKey(m, k); cmd != nil {
			if _, ok := cmd().(ValueChangedMsg); ok {
				t.Errorf("Expected no ValueChangedMsg after %q", k)
			}
		}
	}
}

func TestModel_MovingPastTheGridPages(t *testing.T) {
	m := New(Options{
		Mode:   picker.ModeDate,
		Picker: picker.Options{Today: calendar.Date{Year: 2024, Month: 2, Day: 1}},
	})

	sendKey(m, "k")
	if a := m.ctrl.State().Anchor; a != (calendar.Anchor{Year: 2024, Month: 1}) {
		t.Fatalf("Expected February 2024, got %v", a)
	}
	want := calendar.Date{Year: 2024, Month: 1, Day: 23}
	if got := focusedDate(m); got != want {
		t.Errorf("Expected cursor on %v, got %v", want, got)
	}
}

func TestModel_MinimalSkipsBlankCells(t *testing.T) {
	m := New(Options{
		Mode: picker.ModeDate,
		Picker: picker.Options{
			Today:      calendar.Date{Year: 2024, Month: 2, Day: 1},
			DaysAmount: picker.DaysMinimal,
		},
	})

	// Monday-first March 2024 opens with four blank February cells.
	sendKey(m, "h")
	if a := m.ctrl.State().Anchor; a != (calendar.Anchor{Year: 2024, Month: 1}) {
		t.Fatalf("Expected February 2024, got %v", a)
	}
	want := calendar.Date{Year: 2024, Month: 1, Day: 29}
	if got := focusedDate(m); got != want {
		t.Errorf("Expected cursor on %v, got %v", want, got)
	}

	m.cursor = len(m.ctrl.Cells()) - 1
	if !m.ctrl.Cells()[m.cursor].Placeholder {
		t.Fatal("Expected the last February cell to be blank")
	}
	sendKey(m, "enter")
	if m.Value() != "" {
		t.Errorf("Expected blank cells to ignore enter, got %q", m.Value())
	}
}

func TestModel_MinimalPagingAvoidsBlankCells(t *testing.T) {
	m := New(Options{
		Mode: picker.ModeDate,
		Picker: picker.Options{
			Today:          calendar.Date{Year: 2024, Month: 2, Day: 31},
			HighlightToday: true,
			DaysAmount:     picker.DaysMinimal,
		},
	})
	if got := focusedDate(m); got.Day != 31 {
		t.Fatalf("Expected cursor on March 31, got %v", got)
	}

	sendKey(m, "]")
	want := calendar.Date{Year: 2024, Month: 3, Day: 30}
	if got := focusedDate(m); got != want {
		t.Errorf("Expected cursor on %v, got %v", want, got)
	}
}

func TestModel_PreviousAndNext(t *testing.T) {
	m := newTestModel(picker.ModeDate)

	sendKey(m, "]")
	if a := m.ctrl.State().Anchor; a != (calendar.Anchor{Year: 2024, Month: 3}) {
		t.Errorf("Expected April 2024, got %v", a)
	}
	sendKey(m, "[")
	sendKey(m, "[")
	if a := m.ctrl.State().Anchor; a != (calendar.Anchor{Year: 2024, Month: 1}) {
		t.Errorf("Expected February 2024, got %v", a)
	}
	sendKey(m, ".")
	if a := m.ctrl.State().Anchor; a != (calendar.Anchor{Year: 2024, Month: 2}) {
		t.Errorf("Expected March 2024 after today, got %v", a)
	}
	if got := focusedDate(m); got != testToday {
		t.Errorf("Expected cursor on today, got %v", got)
	}
}

func TestModel_DrillUpAndDown(t *testing.T) {
	m := newTestModel(picker.ModeDate)

	sendKey(m, "u")
	if v := m.ctrl.State().View; v != picker.ViewYear {
		t.Fatalf("Expected year view, got %v", v)
	}
	it := m.ctrl.Cells()[m.cursor]
	if it.Type != calendar.ItemMonth || it.Month != 2 {
		t.Errorf("Expected cursor on March, got %v %d", it.Type, it.Month)
	}

	sendKey(m, "l")
	sendKey(m, "enter")
	s := m.ctrl.State()
	if s.View != picker.ViewMonth || s.Anchor != (calendar.Anchor{Year: 2024, Month: 3}) {
		t.Errorf("Expected month view of April 2024, got %v %v", s.View, s.Anchor)
	}
	if m.Value() != "" {
		t.Errorf("Expected drilling not to select, got %q", m.Value())
	}

	sendKey(m, "backspace")
	sendKey(m, "u")
	if v := m.ctrl.State().View; v != picker.ViewDecade {
		t.Errorf("Expected decade view, got %v", v)
	}
	sendKey(m, "u")
	if v := m.ctrl.State().View; v != picker.ViewDecade {
		t.Errorf("Expected decade view to be the top without the century view, got %v", v)
	}

	sendKey(m, "r")
	if v := m.ctrl.State().View; v != picker.ViewMonth {
		t.Errorf("Expected reset to month view, got %v", v)
	}
}

func TestModel_RangeKeys(t *testing.T) {
	m := newTestModel(picker.ModeDateRange)

	sendKey(m, "enter")
	sendKey(m, "h")
	sendKey(m, "h")
	sendKey(m, "enter")
	if m.Value() != "2024-03-13,2024-03-15" {
		t.Errorf("Expected 2024-03-13,2024-03-15, got %q", m.Value())
	}
}

func TestModel_TimeKeys(t *testing.T) {
	m := newTestModel(picker.ModeTime)

	if v := m.ctrl.State().View; v != picker.ViewTime1 {
		t.Fatalf("Expected the first time view, got %v", v)
	}

	sendKey(m, "k")
	if m.Value() != "01:00" {
		t.Errorf("Expected 01:00, got %q", m.Value())
	}
	sendKey(m, "j")
	sendKey(m, "j")
	if m.Value() != "23:00" {
		t.Errorf("Expected hours to wrap to 23:00, got %q", m.Value())
	}
	sendKey(m, "l")
	if m.Value() != "23:15" {
		t.Errorf("Expected 23:15, got %q", m.Value())
	}
	sendKey(m, "h")
	sendKey(m, "h")
	if m.Value() != "23:45" {
		t.Errorf("Expected minutes to wrap to 23:45, got %q", m.Value())
	}

	sendKey(m, "T")
	if v := m.ctrl.State().View; v != picker.ViewTime1 {
		t.Errorf("Expected no second time in single time mode, got %v", v)
	}
}

func TestModel_TimeRangeSecondSlot(t *testing.T) {
	m := newTestModel(picker.ModeTimeRange)

	sendKey(m, "T")
	if v := m.ctrl.State().View; v != picker.ViewTime2 {
		t.Fatalf("Expected the second time view, got %v", v)
	}
	sendKey(m, "up")
	sendKey(m, "l")
	if m.Value() != "00:00,01:15" {
		t.Errorf("Expected 00:00,01:15, got %q", m.Value())
	}
	if !strings.Contains(m.View(), "End") {
		t.Error("Expected the second slot to be labelled End")
	}
}

func TestModel_DateTimeSwitchesViews(t *testing.T) {
	m := newTestModel(picker.ModeDateTime)

	sendKey(m, "enter")
	sendKey(m, "t")
	if v := m.ctrl.State().View; v != picker.ViewTime1 {
		t.Fatalf("Expected the time view, got %v", v)
	}
	sendKey(m, "k")
	sendKey(m, "m")
	if v := m.ctrl.State().View; v != picker.ViewMonth {
		t.Errorf("Expected back to the month view, got %v", v)
	}
	if m.Value() != "2024-03-15T01:00" {
		t.Errorf("Expected 2024-03-15T01:00, got %q", m.Value())
	}
}

func TestStepUpDown(t *testing.T) {
	tests := []struct {
		minutes, step, up, down int
	}{
		{0, 5, 5, 55},
		{7, 5, 10, 5},
		{55, 5, 0, 50},
		{0, 15, 15, 45},
		{59, 1, 0, 58},
		{0, 7, 7, 56},
	}
	for _, tt := range tests {
		if got := stepUp(tt.minutes, tt.step); got != tt.up {
			t.Errorf("stepUp(%d, %d): expected %d, got %d", tt.minutes, tt.step, tt.up, got)
		}
		if got := stepDown(tt.minutes, tt.step); got != tt.down {
			t.Errorf("stepDown(%d, %d): expected %d, got %d", tt.minutes, tt.step, tt.down, got)
		}
	}
}

func TestModel_EditValue(t *testing.T) {
	m := newTestModel(picker.ModeDates)

	sendKey(m, ":")
	if !m.editing {
		t.Fatal("Expected the value editor to open")
	}
	sendKey(m, "2023-12-24,2023-12-01")
	cmd := sendKey(m, "enter")

	if m.editing {
		t.Error("Expected the editor to close on enter")
	}
	if m.Value() != "2023-12-01,2023-12-24" {
		t.Errorf("Expected sorted dates, got %q", m.Value())
	}
	if a := m.ctrl.State().Anchor; a != (calendar.Anchor{Year: 2023, Month: 11}) {
		t.Errorf("Expected December 2023, got %v", a)
	}
	if got := focusedDate(m); got != (calendar.Date{Year: 2023, Month: 11, Day: 1}) {
		t.Errorf("Expected cursor on the first selected day, got %v", got)
	}
	if _, ok := cmd().(ValueChangedMsg); !ok {
		t.Error("Expected ValueChangedMsg after editing")
	}
}

func TestModel_EditInvalidValue(t *testing.T) {
	m := newTestModel(picker.ModeDate)

	sendKey(m, ":")
	sendKey(m, "soon")
	sendKey(m, "enter")
	if m.Value() != "" {
		t.Errorf("Expected empty value, got %q", m.Value())
	}
	if !m.statusErr || !strings.Contains(m.status, "soon") {
		t.Errorf("Expected an error status, got %q", m.status)
	}

	sendKey(m, ":")
	sendKey(m, "2024-01-01")
	sendKey(m, "esc")
	if m.editing || m.Value() != "" {
		t.Errorf("Expected esc to discard the edit, got %q", m.Value())
	}
}

func TestModel_InitialValue(t *testing.T) {
	m := New(Options{
		Mode:   picker.ModeMonthRange,
		Picker: picker.Options{Today: testToday},
		Value:  "2022-05,2022-02",
	})

	if m.Value() != "2022-02,2022-05" {
		t.Errorf("Expected 2022-02,2022-05, got %q", m.Value())
	}
	if m.changed {
		t.Error("Expected the initial value not to count as a change")
	}
	it := m.ctrl.Cells()[m.cursor]
	if it.Year != 2022 || it.Month != 1 {
		t.Errorf("Expected cursor on February 2022, got %d-%d", it.Year, it.Month)
	}
}

func TestModel_CopyUsesClipboard(t *testing.T) {
	m := newTestModel(picker.ModeDate)
	var copied string
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	sendKey(m, "y")
	if !m.statusErr {
		t.Error("Expected an error status when there is nothing to copy")
	}

	sendKey(m, "enter")
	cmd := sendKey(m, "y")
	if cmd == nil {
		t.Fatal("Expected a copy command")
	}
	m.Update(cmd())
	if copied != "2024-03-15" {
		t.Errorf("Expected 2024-03-15 on the clipboard, got %q", copied)
	}
	if m.status != "Copied: 2024-03-15" || m.statusErr {
		t.Errorf("Expected success status, got %q", m.status)
	}

	m.writeClipboard = func(string) error { return errors.New("no display") }
	m.Update(sendKey(m, "y")())
	if !m.statusErr || !strings.Contains(m.status, "no display") {
		t.Errorf("Expected the clipboard error in the status, got %q", m.status)
	}
}

func TestModel_ConfirmAndCancel(t *testing.T) {
	m := newTestModel(picker.ModeDate)
	sendKey(m, "enter")

	cmd := sendKey(m, "c")
	if !m.Confirmed() {
		t.Error("Expected the session to be confirmed")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected confirm to quit")
	}
	if m.View() != "" {
		t.Error("Expected an empty view after the session ended")
	}

	m = newTestModel(picker.ModeDate)
	cmd = sendKey(m, "q")
	if m.Confirmed() {
		t.Error("Expected cancel not to confirm")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected cancel to quit")
	}
}

func TestModel_ConfirmNotifies(t *testing.T) {
	m := New(Options{
		Mode:   picker.ModeDate,
		Picker: picker.Options{Today: testToday},
		Notify: true,
	})
	var title, message string
	m.sendNotify = func(gotTitle, gotMessage string) error {
		title, message = gotTitle, gotMessage
		return nil
	}

	if cmd := sendKey(m, "c"); cmd == nil {
		t.Fatal("Expected a command on confirm")
	}
	m.notifyCmd("2024-03-15")()
	if title != "calpick" || message != "Picked 2024-03-15" {
		t.Errorf("Expected the pick in the notification, got %q %q", title, message)
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(picker.ModeDate)

	sendKey(m, "?")
	if !m.help.ShowAll {
		t.Error("Expected the full help after '?'")
	}
	if !strings.Contains(m.View(), "type value") {
		t.Error("Expected the full help in the view")
	}
	sendKey(m, "?")
	if m.help.ShowAll {
		t.Error("Expected the short help after the second '?'")
	}
}

func TestModel_ViewUsesLocale(t *testing.T) {
	m := New(Options{
		Mode: picker.ModeDate,
		Picker: picker.Options{
			Today:  testToday,
			Locale: locale.New("en-US"),
		},
		Title: "Pick a day",
	})

	view := m.View()
	for _, want := range []string{"Pick a day", "March 2024", "Su", "Sa", "15", "date"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in the view", want)
		}
	}

	// The cached body follows the controller.
	sendKey(m, "]")
	if !strings.Contains(m.View(), "April 2024") {
		t.Error("Expected the view to repaint after paging")
	}
}

func TestModel_TruncatesTitleToWidth(t *testing.T) {
	m := New(Options{
		Mode:   picker.ModeDate,
		Picker: picker.Options{Today: testToday},
		Title:  "A very long heading",
	})
	m.Update(tea.WindowSizeMsg{Width: 12, Height: 40})

	view := m.View()
	if !strings.Contains(view, "A very …") || strings.Contains(view, "heading") {
		t.Errorf("Expected the title truncated to the window, got:\n%s", view)
	}
}
