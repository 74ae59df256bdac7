package calendar

import (
	"fmt"
	"slices"
	"strconv"
)

// ItemType is the granularity of a sheet cell.
type ItemType int

const (
	ItemDay ItemType = iota
	ItemMonth
	ItemQuarter
	ItemYear
	ItemDecade
)

func (t ItemType) String() string {
	switch t {
	case ItemDay:
		return "day"
	case ItemMonth:
		return "month"
	case ItemQuarter:
		return "quarter"
	case ItemYear:
		return "year"
	case ItemDecade:
		return "decade"
	}
	return "ItemType(" + strconv.Itoa(int(t)) + ")"
}

// Item is one selectable or padding cell of a sheet.
type Item struct {
	Type  ItemType
	Year  int
	Month int // zero-based; first month of the quarter for quarter items
	Day   int

	// Week is set on day items when week selection is enabled.
	Week *Week

	DisplayName string

	Current     bool
	Highlighted bool
	Adjacent    bool // belongs to a neighboring period
	Disabled    bool // weekend exclusion or outside min/max
	OutOfRange  bool // outside min/max

	InSelectedRange bool
	IsRangeStart    bool
	IsRangeEnd      bool
}

// Date returns the first day covered by the item.
func (it Item) Date() Date {
	switch it.Type {
	case ItemDay:
		return Date{Year: it.Year, Month: it.Month, Day: it.Day}
	case ItemMonth, ItemQuarter:
		return Date{Year: it.Year, Month: it.Month, Day: 1}
	}
	return Date{Year: it.Year, Month: 0, Day: 1}
}

// Sheet is the grid of cells for one drill level.
type Sheet struct {
	Title              string
	Previous           OptionalAnchor
	Next               OptionalAnchor
	ColumnCount        int
	HighlightedColumns []int
	ColumnNames        []string
	RowNames           []string
	Items              []Item
}

// Range is an inclusive selection interval used for range highlighting. Only
// the components relevant to the sheet level are compared: full dates on a
// month sheet, months or quarters on a year sheet, years on a decade sheet.
type Range struct {
	Start Date
	End   Date
}

// Labels produces the display strings of a sheet.
type Labels interface {
	FormatDay(day int) string
	FormatMonthTitle(year, month int) string
	FormatMonthName(month int, short bool) string
	FormatQuarter(quarter int) string
	FormatYear(year int) string
	FormatYearSpan(start, count int) string
	FormatWeekNumber(week int) string
	WeekdayNames(firstDayOfWeek int, short bool) []string
}

// Constraints are the inputs shared by every sheet level.
type Constraints struct {
	MinDate *Date
	MaxDate *Date

	// FirstDayOfWeek is 0 (Sunday) to 6 (Saturday).
	FirstDayOfWeek int
	WeekendDays    []int

	// CalendarWeek numbers weeks; nil means ISOWeek.
	CalendarWeek func(Date) Week

	// Today marks the current cells; the zero Date marks none.
	Today Date

	// Labels formats display names; nil means plain numbers.
	Labels Labels
}

func (c Constraints) labels() Labels {
	if c.Labels == nil {
		return plainLabels{}
	}
	return c.Labels
}

func (c Constraints) firstDayOfWeek() int {
	return mod(c.FirstDayOfWeek, 7)
}

func (c Constraints) week(d Date) Week {
	if c.CalendarWeek == nil {
		return ISOWeek(d)
	}
	return c.CalendarWeek(d)
}

func (c Constraints) isWeekend(d Date) bool {
	return slices.Contains(c.WeekendDays, d.Weekday())
}

func (c Constraints) isToday(d Date) bool {
	return !c.Today.IsZero() && c.Today == d
}

func (c Constraints) bounds() bounds {
	b := bounds{min: c.MinDate, max: c.MaxDate}
	if b.min != nil && b.max != nil && b.max.Before(*b.min) {
		b.empty = true
	}
	return b
}

// bounds answers min/max questions at every granularity. An empty bounds
// (min after max) contains nothing, and years outside 0..ceilingYear are
// never in range.
type bounds struct {
	min, max *Date
	empty    bool
}

func (b bounds) containsDate(d Date) bool {
	if b.empty || d.Year < 0 || d.Year > ceilingYear {
		return false
	}
	if b.min != nil && d.Before(*b.min) {
		return false
	}
	return b.max == nil || !b.max.Before(d)
}

// monthSpanInRange reports whether any month in [first, last] (base-12
// counters) lies inside the bounds.
func (b bounds) monthSpanInRange(first, last int) bool {
	if b.empty || last < 0 || first > ceilingYear*12+11 {
		return false
	}
	if b.min != nil && last < b.min.monthIndex() {
		return false
	}
	return b.max == nil || first <= b.max.monthIndex()
}

// yearSpanInRange reports whether any year in [first, last] lies inside the
// bounds.
func (b bounds) yearSpanInRange(first, last int) bool {
	if b.empty || last < 0 || first > ceilingYear {
		return false
	}
	if b.min != nil && last < b.min.Year {
		return false
	}
	return b.max == nil || first <= b.max.Year
}

// rangeFlags computes the selected-range markers of value v for an interval
// given as ordinals. Reversed intervals mark nothing.
func rangeFlags(start, end, v int) (in, first, last bool) {
	if start > end {
		return false, false, false
	}
	in = v >= start && v <= end
	return in, in && v == start, in && v == end
}

// floorYear is the earliest year backward navigation may reach.
const floorYear = 2

// ceilingYear is the last year with a four-digit key. Forward navigation
// stops there.
const ceilingYear = 9999

// plainLabels is used when no Labels are supplied.
type plainLabels struct{}

func (plainLabels) FormatDay(day int) string { return strconv.Itoa(day) }

func (plainLabels) FormatMonthTitle(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month+1)
}

func (plainLabels) FormatMonthName(month int, _ bool) string { return fmt.Sprintf("%02d", month+1) }

func (plainLabels) FormatQuarter(quarter int) string { return "Q" + strconv.Itoa(quarter) }

func (plainLabels) FormatYear(year int) string { return strconv.Itoa(year) }

func (plainLabels) FormatYearSpan(start, count int) string {
	return fmt.Sprintf("%d–%d", start, start+count-1)
}

func (plainLabels) FormatWeekNumber(week int) string { return strconv.Itoa(week) }

func (plainLabels) WeekdayNames(firstDayOfWeek int, _ bool) []string {
	names := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	out := make([]string, 7)
	for i := range out {
		out[i] = names[mod(firstDayOfWeek+i, 7)]
	}
	return out
}
