package picker

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/hy4ri/calpick/internal/calendar"
)

// Key is the canonical identity of a selectable unit. Keys of one unit sort
// lexicographically in chronological order.
type Key string

func DayKey(d calendar.Date) Key {
	return Key(fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day))
}

// WeekKey uses the week-based year, which can differ from the calendar year
// of the days at the year boundary.
func WeekKey(w calendar.Week) Key {
	return Key(fmt.Sprintf("%04d-W%02d", w.Year, w.Number))
}

// MonthKey takes a zero-based month.
func MonthKey(year, month int) Key {
	return Key(fmt.Sprintf("%04d-%02d", year, month+1))
}

// QuarterKey takes a one-based quarter.
func QuarterKey(year, quarter int) Key {
	return Key(fmt.Sprintf("%04d-Q%d", year, quarter))
}

func YearKey(year int) Key {
	return Key(fmt.Sprintf("%04d", year))
}

// KeyFor returns the key of a sheet item at the given unit. Day items of a
// week-unit sheet carry their week; items without one use the ISO rule.
func KeyFor(it calendar.Item, unit Unit) Key {
	switch unit {
	case UnitDay:
		return DayKey(it.Date())
	case UnitWeek:
		if it.Week != nil {
			return WeekKey(*it.Week)
		}
		return WeekKey(calendar.ISOWeek(it.Date()))
	case UnitMonth:
		return MonthKey(it.Year, it.Month)
	case UnitQuarter:
		return QuarterKey(it.Year, it.Month/3+1)
	case UnitYear:
		return YearKey(it.Year)
	}
	return ""
}

var keyPattern = regexp.MustCompile(`^(\d{4})(?:-(\d{2})(?:-(\d{2}))?|-Q([1-4])|-W(\d{2}))?$`)

// ParsedKey is a validated key split into its components.
type ParsedKey struct {
	Unit    Unit
	Year    int
	Month   int // zero-based
	Day     int
	Quarter int // one-based
	Week    int
}

// ParseKey validates a key string. Dates must exist and week 53 must exist
// in its week-year.
func ParseKey(s string) (ParsedKey, bool) {
	m := keyPattern.FindStringSubmatch(s)
	if m == nil {
		return ParsedKey{}, false
	}
	p := ParsedKey{Unit: UnitYear}
	p.Year, _ = strconv.Atoi(m[1])

	switch {
	case m[3] != "":
		d, err := calendar.ParseDate(s)
		if err != nil {
			return ParsedKey{}, false
		}
		p.Unit, p.Month, p.Day = UnitDay, d.Month, d.Day
	case m[2] != "":
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return ParsedKey{}, false
		}
		p.Unit, p.Month = UnitMonth, month-1
	case m[4] != "":
		p.Unit = UnitQuarter
		p.Quarter, _ = strconv.Atoi(m[4])
		p.Month = (p.Quarter - 1) * 3
	case m[5] != "":
		week, _ := strconv.Atoi(m[5])
		w := calendar.Week{Year: p.Year, Number: week}
		if week < 1 || calendar.ISOWeek(calendar.WeekStart(w)) != w {
			return ParsedKey{}, false
		}
		p.Unit, p.Week = UnitWeek, week
	}
	return p, true
}

// Key re-encodes p in canonical form.
func (p ParsedKey) Key() Key {
	switch p.Unit {
	case UnitDay:
		return DayKey(calendar.Date{Year: p.Year, Month: p.Month, Day: p.Day})
	case UnitWeek:
		return WeekKey(calendar.Week{Year: p.Year, Number: p.Week})
	case UnitMonth:
		return MonthKey(p.Year, p.Month)
	case UnitQuarter:
		return QuarterKey(p.Year, p.Quarter)
	}
	return YearKey(p.Year)
}

// Span returns the first and last day covered by the key.
func (p ParsedKey) Span() (first, last calendar.Date) {
	switch p.Unit {
	case UnitDay:
		d := calendar.Date{Year: p.Year, Month: p.Month, Day: p.Day}
		return d, d
	case UnitWeek:
		start := calendar.WeekStart(calendar.Week{Year: p.Year, Number: p.Week})
		return start, start.AddDays(6)
	case UnitMonth:
		return calendar.NewDate(p.Year, p.Month, 1), calendar.NewDate(p.Year, p.Month+1, 0)
	case UnitQuarter:
		return calendar.NewDate(p.Year, p.Month, 1), calendar.NewDate(p.Year, p.Month+3, 0)
	}
	return calendar.NewDate(p.Year, 0, 1), calendar.NewDate(p.Year, 11, 31)
}

// Anchor returns the navigation anchor showing the key's first day.
func (p ParsedKey) Anchor() calendar.Anchor {
	first, _ := p.Span()
	return calendar.AnchorOf(first)
}

// Selection is a sorted set of keys. Methods never modify the receiver.
type Selection []Key

func (s Selection) Len() int { return len(s) }

func (s Selection) Has(k Key) bool {
	_, found := slices.BinarySearch(s, k)
	return found
}

// With returns s plus k.
func (s Selection) With(k Key) Selection {
	i, found := slices.BinarySearch(s, k)
	if found {
		return s
	}
	return slices.Insert(slices.Clone(s), i, k)
}

// Without returns s minus k.
func (s Selection) Without(k Key) Selection {
	i, found := slices.BinarySearch(s, k)
	if !found {
		return s
	}
	return slices.Delete(slices.Clone(s), i, i+1)
}

// First returns the smallest key, or "" when empty.
func (s Selection) First() Key {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// Last returns the largest key, or "" when empty.
func (s Selection) Last() Key {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

// NewSelection sorts and deduplicates keys.
func NewSelection(keys ...Key) Selection {
	if len(keys) == 0 {
		return nil
	}
	s := slices.Clone(keys)
	slices.Sort(s)
	return slices.Compact(s)
}

// applyPolicy mutates the selection for one activated key.
func applyPolicy(s Selection, k Key, t SelectType) Selection {
	switch t {
	case SelectSingle:
		if s.Has(k) {
			return nil
		}
		return Selection{k}
	case SelectMulti:
		if s.Has(k) {
			return s.Without(k)
		}
		return s.With(k)
	case SelectRange:
		switch {
		case s.Has(k):
			return s.Without(k)
		case s.Len() >= 2:
			return Selection{k}
		}
		return s.With(k)
	}
	return s
}
