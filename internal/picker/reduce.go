package picker

import (
	"fmt"

	"github.com/hy4ri/calpick/internal/calendar"
)

// Event is a user or host interaction fed to Reduce.
type Event interface {
	isEvent()
}

// CellActivated is a click on a sheet item.
type CellActivated struct{ Item calendar.Item }

// TitleActivated is a click on the sheet title: drill up.
type TitleActivated struct{}

type PreviousActivated struct{}

type NextActivated struct{}

// TimeViewRequested switches to the view of one time value.
type TimeViewRequested struct{ Slot TimeSlot }

// CalendarViewRequested returns from a time view to the calendar.
type CalendarViewRequested struct{}

type HoursSet struct {
	Slot  TimeSlot
	Hours int
}

type MinutesSet struct {
	Slot    TimeSlot
	Minutes int
}

// ModeChanged is the host replacing the selection mode.
type ModeChanged struct{ Mode SelectionMode }

// ValueSet is the host replacing the value with a wire string.
type ValueSet struct{ Value string }

// TodayRequested moves the calendar to the current day.
type TodayRequested struct{}

// ViewReset returns to the initial view, anchored on the first selected key
// or on today.
type ViewReset struct{}

func (CellActivated) isEvent()         {}
func (TitleActivated) isEvent()        {}
func (PreviousActivated) isEvent()     {}
func (NextActivated) isEvent()         {}
func (TimeViewRequested) isEvent()     {}
func (CalendarViewRequested) isEvent() {}
func (HoursSet) isEvent()              {}
func (MinutesSet) isEvent()            {}
func (ModeChanged) isEvent()           {}
func (ValueSet) isEvent()              {}
func (TodayRequested) isEvent()        {}
func (ViewReset) isEvent()             {}

// Effect reports what the host must do besides repainting.
type Effect struct {
	// Changed means the encoded value changed and OnChange must fire.
	Changed bool
}

// Reduce applies ev to s. A state with an undefined view is a broken
// invariant and panics.
func Reduce(s State, ev Event, o Options) (State, Effect) {
	if !s.View.valid() {
		panic(fmt.Sprintf("picker: undefined view %d", int(s.View)))
	}
	b := s.Mode.Behavior()

	switch ev := ev.(type) {
	case CellActivated:
		return activate(s, b, ev.Item)

	case TitleActivated:
		if !canDrillUp(s.View, o) {
			return s, Effect{}
		}
		s.View = s.View.coarser()
		return s, Effect{}

	case PreviousActivated, NextActivated:
		if !s.View.IsCalendar() {
			return s, Effect{}
		}
		sheet := SheetFor(s, o)
		target := sheet.Next
		if _, ok := ev.(PreviousActivated); ok {
			target = sheet.Previous
		}
		if a, ok := target.Get(); ok {
			s.Anchor = a
		}
		return s, Effect{}

	case TimeViewRequested:
		if !b.Kind.HasTime() {
			return s, Effect{}
		}
		if ev.Slot == Time2 && !time2Available(s, b) {
			return s, Effect{}
		}
		s.View = ev.Slot.view()
		return s, Effect{}

	case CalendarViewRequested:
		if b.Kind.HasCalendar() && s.View.IsTime() {
			s.View = b.InitialView
		}
		return s, Effect{}

	case HoursSet:
		if !b.Kind.HasTime() {
			return s, Effect{}
		}
		return setTime(s, ev.Slot, func(t TimeValue) TimeValue {
			t.Hours = ev.Hours
			return t
		})

	case MinutesSet:
		if !b.Kind.HasTime() {
			return s, Effect{}
		}
		return setTime(s, ev.Slot, func(t TimeValue) TimeValue {
			t.Minutes = ev.Minutes
			return t
		})

	case ModeChanged:
		if ev.Mode == s.Mode || !ev.Mode.Valid() {
			return s, Effect{}
		}
		before := Encode(s)
		s = resetState(ev.Mode, s.Anchor)
		return s, Effect{Changed: Encode(s) != before}

	case ValueSet:
		before := Encode(s)
		s = Decode(s, ev.Value)
		if p, ok := ParseKey(string(s.Selection.First())); ok {
			s.Anchor = p.Anchor()
		}
		return s, Effect{Changed: Encode(s) != before}

	case TodayRequested:
		if s.View.IsCalendar() && !o.Today.IsZero() {
			s.Anchor = calendar.AnchorOf(o.Today)
		}
		return s, Effect{}

	case ViewReset:
		s.View = b.InitialView
		if p, ok := ParseKey(string(s.Selection.First())); ok {
			s.Anchor = p.Anchor()
		} else if !o.Today.IsZero() {
			s.Anchor = calendar.AnchorOf(o.Today)
		}
		return s, Effect{}
	}
	return s, Effect{}
}

func activate(s State, b Behavior, it calendar.Item) (State, Effect) {
	if it.Disabled || !s.View.IsCalendar() {
		return s, Effect{}
	}

	if s.View != b.InitialView {
		anchor := calendar.Anchor{Year: it.Year, Month: s.Anchor.Month}
		switch it.Type {
		case calendar.ItemDay, calendar.ItemMonth, calendar.ItemQuarter:
			anchor.Month = it.Month
		}
		s.View = s.View.finer()
		s.Anchor = calendar.NormalizeAnchor(anchor.Year, anchor.Month)
		return s, Effect{}
	}

	s.Selection = applyPolicy(s.Selection, KeyFor(it, b.Unit), b.SelectType)
	if b.Kind == KindCalendarTime && b.SelectType != SelectSingle && s.Selection.Len() == 2 {
		s.View = ViewTime2
	}
	return s, Effect{Changed: true}
}

// CanDrillUp reports whether activating the title of the current view does
// anything.
func CanDrillUp(s State, o Options) bool {
	return canDrillUp(s.View, o)
}

func canDrillUp(v View, o Options) bool {
	switch v {
	case ViewCentury, ViewTime1, ViewTime2:
		return false
	case ViewDecade:
		return o.EnableCenturyView
	}
	return v.IsCalendar()
}

// time2Available reports whether the second time value means anything.
func time2Available(s State, b Behavior) bool {
	return b.SelectType == SelectRange || s.Selection.Len() >= 2
}

// Time2Available is time2Available for the host.
func Time2Available(s State) bool {
	return time2Available(s, s.Mode.Behavior())
}

func setTime(s State, slot TimeSlot, edit func(TimeValue) TimeValue) (State, Effect) {
	target := &s.Time1
	if slot == Time2 {
		target = &s.Time2
	}
	next := edit(*target).clamp()
	if next == *target {
		return s, Effect{}
	}
	*target = next
	return s, Effect{Changed: true}
}
