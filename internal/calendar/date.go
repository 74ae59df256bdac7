// Package calendar builds the cell grids ("sheets") a date picker shows for
// each drill level: the days of a month, the months or quarters of a year,
// the years of a decade and the decades of a century.
//
// Every function in this package is pure. The current day is an explicit
// input, so identical inputs always produce an identical Sheet.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a date string is not a valid YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar day. Month is zero-based (0 = January) to match the
// navigation anchor arithmetic.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns the normalized date for the given components. Out-of-range
// months and days roll over into adjacent months and years.
func NewDate(year, month, day int) Date {
	return FromTime(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, month, day-1))
}

// FromTime returns the calendar day of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m) - 1, Day: d}
}

// Today returns the current local day.
func Today() Date {
	return FromTime(time.Now())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week, 0 = Sunday.
func (d Date) Weekday() int {
	return int(d.Time().Weekday())
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// IsZero reports whether d is the zero Date, which never names a real day.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	a, b := d.ordinal(), o.ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// monthIndex is the base-12 month counter of d.
func (d Date) monthIndex() int {
	return d.Year*12 + d.Month
}

// ordinal orders normalized dates: month*100+day never reaches 10000.
func (d Date) ordinal() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

// Week identifies a calendar week by its week-based year and number.
type Week struct {
	Year   int
	Number int
}

// ISOWeek returns the ISO-8601 week of d: week 1 is the week containing the
// first Thursday of the year, and weeks start on Monday.
func ISOWeek(d Date) Week {
	y, w := d.Time().ISOWeek()
	return Week{Year: y, Number: w}
}

// WeekStart returns the Monday of the given ISO week.
func WeekStart(w Week) Date {
	// January 4th always lies in week 1.
	jan4 := NewDate(w.Year, 0, 4)
	offset := (jan4.Weekday() + 6) % 7
	return jan4.AddDays(-offset + (w.Number-1)*7)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
