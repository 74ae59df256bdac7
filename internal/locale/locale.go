// Package locale provides the locale-dependent formatting the picker
// consumes: week start, weekend days, week numbering and display labels.
package locale

import (
	"fmt"
	"strconv"

	"github.com/hy4ri/calpick/internal/calendar"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Direction is the text direction of a locale.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Localizer formats labels for one language tag. It is immutable and safe
// for concurrent use.
type Localizer struct {
	tag    language.Tag
	base   string
	region string
	names  *nameTable
}

// New returns a Localizer for a BCP 47 tag such as "en-US" or "de". Tags
// that do not parse fall back to American English.
func New(tag string) *Localizer {
	t, err := language.Parse(tag)
	if err != nil || t == language.Und {
		t = language.AmericanEnglish
	}

	b, _ := t.Base()
	r, _ := t.Region()
	_, idx, _ := matcher.Match(t)

	return &Localizer{
		tag:    t,
		base:   b.String(),
		region: r.String(),
		names:  &tables[idx],
	}
}

// Tag returns the canonical tag string.
func (l *Localizer) Tag() string { return l.tag.String() }

// Region returns the (possibly inferred) ISO 3166 region code.
func (l *Localizer) Region() string { return l.region }

// Direction returns the text direction of the locale's language.
func (l *Localizer) Direction() Direction {
	if rtlScripts[l.base] {
		return RTL
	}
	return LTR
}

// FirstDayOfWeek returns 0 (Sunday) to 6 (Saturday).
func (l *Localizer) FirstDayOfWeek() int {
	switch {
	case l.region == "MV":
		return 5
	case saturdayFirst[l.region]:
		return 6
	case sundayFirst[l.region]:
		return 0
	}
	return 1
}

// WeekendDays returns the weekday indices of the weekend.
func (l *Localizer) WeekendDays() []int {
	switch {
	case l.region == "AF":
		return []int{4, 5}
	case l.region == "IR":
		return []int{5}
	case l.region == "IN" || l.region == "UG":
		return []int{0}
	case fridaySaturdayWeekend[l.region]:
		return []int{5, 6}
	}
	return []int{6, 0}
}

// CalendarWeek returns the ISO-8601 week of d.
func (l *Localizer) CalendarWeek(d calendar.Date) calendar.Week {
	return calendar.ISOWeek(d)
}

// FormatDate returns a short numeric date in the locale's field order.
func (l *Localizer) FormatDate(d calendar.Date) string {
	layout := "02/01/2006"
	switch {
	case monthDayYear[l.region]:
		layout = "01/02/2006"
	case yearFirst[l.region]:
		layout = "2006-01-02"
	case l.base == "de":
		layout = "02.01.2006"
	}
	return d.Time().Format(layout)
}

// FormatTime formats a time of day, 12-hour with AM/PM where the region
// customarily uses it.
func (l *Localizer) FormatTime(hours, minutes int) string {
	if !twelveHour[l.region] {
		return fmt.Sprintf("%02d:%02d", hours, minutes)
	}
	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}
	h := hours % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minutes, suffix)
}

func (l *Localizer) FormatDay(day int) string { return strconv.Itoa(day) }

// FormatMonthTitle returns e.g. "March 2024" or "Mars 2024".
func (l *Localizer) FormatMonthTitle(year, month int) string {
	return l.title(l.names.months[month]) + " " + strconv.Itoa(year)
}

func (l *Localizer) FormatMonthName(month int, short bool) string {
	if short {
		return l.title(l.names.shortMonths[month])
	}
	return l.title(l.names.months[month])
}

// FormatQuarter takes a one-based quarter.
func (l *Localizer) FormatQuarter(quarter int) string {
	return l.names.quarter + strconv.Itoa(quarter)
}

func (l *Localizer) FormatYear(year int) string { return strconv.Itoa(year) }

// FormatYearSpan labels count years starting at start, e.g. "2020–2029".
func (l *Localizer) FormatYearSpan(start, count int) string {
	return fmt.Sprintf("%d–%d", start, start+count-1)
}

func (l *Localizer) FormatWeekNumber(week int) string { return strconv.Itoa(week) }

// WeekdayNames returns the seven weekday names starting at firstDayOfWeek.
func (l *Localizer) WeekdayNames(firstDayOfWeek int, short bool) []string {
	src := l.names.weekdays
	if short {
		src = l.names.minWeekdays
	}
	out := make([]string, 7)
	for i := range out {
		out[i] = l.title(src[((firstDayOfWeek+i)%7+7)%7])
	}
	return out
}

// title upper-cases the first letter using the locale's casing rules. A
// Caser keeps state, so each call gets its own.
func (l *Localizer) title(s string) string {
	return cases.Title(l.tag, cases.NoLower).String(s)
}
