package picker

import (
	"fmt"
	"strconv"
)

// View is the drill level or time sub-view on screen.
type View int

const (
	ViewCentury View = iota
	ViewDecade
	ViewYear
	ViewMonth
	ViewTime1
	ViewTime2

	viewCount
)

var viewNames = [viewCount]string{"century", "decade", "year", "month", "time1", "time2"}

func (v View) String() string {
	if v < 0 || v >= viewCount {
		return "View(" + strconv.Itoa(int(v)) + ")"
	}
	return viewNames[v]
}

// ParseView parses a view name.
func ParseView(s string) (View, error) {
	for v := View(0); v < viewCount; v++ {
		if viewNames[v] == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown view %q", s)
}

func (v View) valid() bool { return v >= 0 && v < viewCount }

// IsCalendar reports whether v is part of the century to month chain.
func (v View) IsCalendar() bool { return v >= ViewCentury && v <= ViewMonth }

// IsTime reports whether v is a time sub-view.
func (v View) IsTime() bool { return v == ViewTime1 || v == ViewTime2 }

// finer returns the next level down the calendar chain; month is the leaf.
func (v View) finer() View {
	if v < ViewMonth {
		return v + 1
	}
	return ViewMonth
}

// coarser returns the next level up the calendar chain; century is the root.
func (v View) coarser() View {
	if v > ViewCentury && v <= ViewMonth {
		return v - 1
	}
	return ViewCentury
}

// TimeSlot names one of the two time values.
type TimeSlot int

const (
	Time1 TimeSlot = iota
	Time2
)

func (t TimeSlot) view() View {
	if t == Time2 {
		return ViewTime2
	}
	return ViewTime1
}
