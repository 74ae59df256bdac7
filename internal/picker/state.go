package picker

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/hy4ri/calpick/internal/calendar"
)

// ErrInvalidDaysAmount is returned for an unknown month sizing name.
var ErrInvalidDaysAmount = errors.New("invalid days amount")

// TimeValue is a time of day.
type TimeValue struct {
	Hours   int
	Minutes int
}

func (t TimeValue) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}

func (t TimeValue) clamp() TimeValue {
	return TimeValue{Hours: clamp(t.Hours, 0, 23), Minutes: clamp(t.Minutes, 0, 59)}
}

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTimeValue parses H:MM or HH:MM.
func ParseTimeValue(s string) (TimeValue, bool) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return TimeValue{}, false
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	if h > 23 || mins > 59 {
		return TimeValue{}, false
	}
	return TimeValue{Hours: h, Minutes: mins}, true
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// State is everything the picker remembers between events.
type State struct {
	Mode      SelectionMode
	View      View
	Anchor    calendar.Anchor
	Selection Selection
	Time1     TimeValue
	Time2     TimeValue
}

// NewState returns the initial state of mode, anchored on today.
func NewState(mode SelectionMode, today calendar.Date) State {
	return resetState(mode, calendar.AnchorOf(today))
}

func resetState(mode SelectionMode, anchor calendar.Anchor) State {
	return State{
		Mode:   mode,
		View:   mode.Behavior().InitialView,
		Anchor: anchor,
	}
}

// Equal reports whether two states are identical.
func (s State) Equal(o State) bool {
	return s.Mode == o.Mode &&
		s.View == o.View &&
		s.Anchor == o.Anchor &&
		s.Time1 == o.Time1 &&
		s.Time2 == o.Time2 &&
		slices.Equal(s.Selection, o.Selection)
}

// DaysAmount sizes the month grid.
type DaysAmount int

const (
	// DaysDefault shows as many weeks as the month spans.
	DaysDefault DaysAmount = iota
	// DaysMinimal is DaysDefault with adjacent days left blank.
	DaysMinimal
	// DaysMaximal always shows six weeks.
	DaysMaximal
)

var daysAmountNames = [...]string{"default", "minimal", "maximal"}

func (d DaysAmount) String() string {
	if d < 0 || int(d) >= len(daysAmountNames) {
		return "DaysAmount(" + strconv.Itoa(int(d)) + ")"
	}
	return daysAmountNames[d]
}

func ParseDaysAmount(s string) (DaysAmount, error) {
	for i, name := range daysAmountNames {
		if name == s {
			return DaysAmount(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDaysAmount, s)
}

// Formatter is the locale capability the picker consumes. It is satisfied
// by *locale.Localizer.
type Formatter interface {
	calendar.Labels
	FirstDayOfWeek() int
	WeekendDays() []int
	CalendarWeek(calendar.Date) calendar.Week
	FormatDate(calendar.Date) string
	FormatTime(hours, minutes int) string
}

// Options configure sheets and transitions.
type Options struct {
	// Locale may be nil: weeks then start on Monday, weekends are Saturday
	// and Sunday, and labels are plain numbers.
	Locale Formatter

	MinDate *calendar.Date
	MaxDate *calendar.Date

	// Today is the current day; the zero Date marks no cell current.
	Today calendar.Date

	DaysAmount        DaysAmount
	ShowWeekNumbers   bool
	HighlightToday    bool
	HighlightWeekends bool
	DisableWeekends   bool
	EnableCenturyView bool
}

func (o Options) constraints() calendar.Constraints {
	c := calendar.Constraints{
		MinDate:        o.MinDate,
		MaxDate:        o.MaxDate,
		FirstDayOfWeek: 1,
		WeekendDays:    []int{6, 0},
		Today:          o.Today,
	}
	if o.Locale != nil {
		c.FirstDayOfWeek = o.Locale.FirstDayOfWeek()
		c.WeekendDays = o.Locale.WeekendDays()
		c.CalendarWeek = o.Locale.CalendarWeek
		c.Labels = o.Locale
	}
	return c
}

// FormatTime formats t with the locale, or as HH:MM without one.
func (o Options) FormatTime(t TimeValue) string {
	if o.Locale == nil {
		return t.String()
	}
	return o.Locale.FormatTime(t.Hours, t.Minutes)
}
