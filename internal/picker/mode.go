// Package picker implements the selection and view state machine of the
// date/time picker. State transitions are a pure function (Reduce) over an
// explicit State; Controller wraps it with the host callbacks.
package picker

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownMode is returned when a selection mode name is not recognized.
var ErrUnknownMode = errors.New("unknown selection mode")

// SelectionMode picks what the picker selects and how.
type SelectionMode int

const (
	ModeDate SelectionMode = iota
	ModeDates
	ModeDateRange
	ModeWeek
	ModeWeeks
	ModeWeekRange
	ModeMonth
	ModeMonths
	ModeMonthRange
	ModeQuarter
	ModeQuarters
	ModeQuarterRange
	ModeYear
	ModeYears
	ModeYearRange
	ModeTime
	ModeTimeRange
	ModeDateTime

	modeCount
)

// Kind says whether a mode has a calendar, a time view, or both.
type Kind int

const (
	KindCalendar Kind = iota
	KindCalendarTime
	KindTime
)

// HasTime reports whether the time sub-views are reachable.
func (k Kind) HasTime() bool { return k != KindCalendar }

// HasCalendar reports whether the calendar views are reachable.
func (k Kind) HasCalendar() bool { return k != KindTime }

func (k Kind) String() string {
	switch k {
	case KindCalendar:
		return "calendar"
	case KindCalendarTime:
		return "calendar+time"
	case KindTime:
		return "time"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// SelectType is the selection mutation policy.
type SelectType int

const (
	SelectSingle SelectType = iota
	SelectMulti
	SelectRange
)

func (t SelectType) String() string {
	switch t {
	case SelectSingle:
		return "single"
	case SelectMulti:
		return "multi"
	case SelectRange:
		return "range"
	}
	return "SelectType(" + strconv.Itoa(int(t)) + ")"
}

// Unit is the granularity of a selection key.
type Unit int

const (
	UnitNone Unit = iota
	UnitDay
	UnitWeek
	UnitMonth
	UnitQuarter
	UnitYear
)

func (u Unit) String() string {
	switch u {
	case UnitNone:
		return "none"
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitQuarter:
		return "quarter"
	case UnitYear:
		return "year"
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// Behavior is the fixed record of a selection mode.
type Behavior struct {
	Name        string
	Kind        Kind
	SelectType  SelectType
	InitialView View
	Unit        Unit
}

var behaviors = [modeCount]Behavior{
	ModeDate:         {"date", KindCalendar, SelectSingle, ViewMonth, UnitDay},
	ModeDates:        {"dates", KindCalendar, SelectMulti, ViewMonth, UnitDay},
	ModeDateRange:    {"dateRange", KindCalendar, SelectRange, ViewMonth, UnitDay},
	ModeWeek:         {"week", KindCalendar, SelectSingle, ViewMonth, UnitWeek},
	ModeWeeks:        {"weeks", KindCalendar, SelectMulti, ViewMonth, UnitWeek},
	ModeWeekRange:    {"weekRange", KindCalendar, SelectRange, ViewMonth, UnitWeek},
	ModeMonth:        {"month", KindCalendar, SelectSingle, ViewYear, UnitMonth},
	ModeMonths:       {"months", KindCalendar, SelectMulti, ViewYear, UnitMonth},
	ModeMonthRange:   {"monthRange", KindCalendar, SelectRange, ViewYear, UnitMonth},
	ModeQuarter:      {"quarter", KindCalendar, SelectSingle, ViewYear, UnitQuarter},
	ModeQuarters:     {"quarters", KindCalendar, SelectMulti, ViewYear, UnitQuarter},
	ModeQuarterRange: {"quarterRange", KindCalendar, SelectRange, ViewYear, UnitQuarter},
	ModeYear:         {"year", KindCalendar, SelectSingle, ViewDecade, UnitYear},
	ModeYears:        {"years", KindCalendar, SelectMulti, ViewDecade, UnitYear},
	ModeYearRange:    {"yearRange", KindCalendar, SelectRange, ViewDecade, UnitYear},
	ModeTime:         {"time", KindTime, SelectSingle, ViewTime1, UnitNone},
	ModeTimeRange:    {"timeRange", KindTime, SelectRange, ViewTime1, UnitNone},
	ModeDateTime:     {"dateTime", KindCalendarTime, SelectSingle, ViewMonth, UnitDay},
}

// Valid reports whether m is one of the defined modes.
func (m SelectionMode) Valid() bool {
	return m >= 0 && m < modeCount
}

// Behavior returns the mode's record. It panics for an undefined mode.
func (m SelectionMode) Behavior() Behavior {
	if !m.Valid() {
		panic(fmt.Sprintf("picker: undefined selection mode %d", int(m)))
	}
	return behaviors[m]
}

func (m SelectionMode) String() string {
	if !m.Valid() {
		return "SelectionMode(" + strconv.Itoa(int(m)) + ")"
	}
	return behaviors[m].Name
}

// ParseSelectionMode parses a camelCase mode name such as "dateRange".
func ParseSelectionMode(s string) (SelectionMode, error) {
	for m := SelectionMode(0); m < modeCount; m++ {
		if behaviors[m].Name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Modes returns every defined mode in declaration order.
func Modes() []SelectionMode {
	out := make([]SelectionMode, 0, modeCount)
	for m := SelectionMode(0); m < modeCount; m++ {
		out = append(out, m)
	}
	return out
}
