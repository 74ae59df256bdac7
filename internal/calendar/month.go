package calendar

import "slices"

// MonthOptions are the month-sheet flags that vary with the selection mode
// and display settings.
type MonthOptions struct {
	// Maximal always shows six full weeks.
	Maximal bool

	ShowWeekNumbers   bool
	HighlightWeekends bool
	DisableWeekends   bool

	// SelectWeeks attaches week-year and week number to every day.
	SelectWeeks bool

	SelectedRange *Range
}

// MonthSheet returns the day grid of the month identified by anchor, padded
// with days of the neighboring months so rows start on the first day of the
// week.
func MonthSheet(c Constraints, anchor Anchor, opts MonthOptions) Sheet {
	a := NormalizeAnchor(anchor.Year, anchor.Month)
	labels := c.labels()
	firstDay := c.firstDayOfWeek()
	b := c.bounds()

	lead := mod(NewDate(a.Year, a.Month, 1).Weekday()-firstDay, 7)
	count := 42
	if !opts.Maximal {
		count = lead + DayCount(a.Year, a.Month)
		if r := count % 7; r > 0 {
			count += 7 - r
		}
	}

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		d := NewDate(a.Year, a.Month, i-lead+1)
		weekend := c.isWeekend(d)
		out := !b.containsDate(d)
		var week *Week
		if opts.SelectWeeks {
			w := c.week(d)
			week = &w
			out = out || w.Year < 0 || w.Year > ceilingYear
		}

		item := Item{
			Type:        ItemDay,
			Year:        d.Year,
			Month:       d.Month,
			Day:         d.Day,
			DisplayName: labels.FormatDay(d.Day),
			Current:     c.isToday(d),
			Highlighted: opts.HighlightWeekends && weekend,
			Adjacent:    d.Year != a.Year || d.Month != a.Month,
			Disabled:    (opts.DisableWeekends && weekend) || out,
			OutOfRange:  out,
			Week:        week,
		}
		if r := opts.SelectedRange; r != nil {
			item.InSelectedRange, item.IsRangeStart, item.IsRangeEnd =
				rangeFlags(r.Start.ordinal(), r.End.ordinal(), d.ordinal())
		}
		items = append(items, item)
	}

	var rowNames []string
	if opts.ShowWeekNumbers {
		rowNames = make([]string, 0, len(items)/7)
		for i := 0; i < len(items); i += 7 {
			rowNames = append(rowNames, labels.FormatWeekNumber(c.week(items[i].Date()).Number))
		}
	}

	var highlighted []int
	if opts.HighlightWeekends {
		for _, wd := range c.WeekendDays {
			highlighted = append(highlighted, mod(wd-firstDay, 7))
		}
		slices.Sort(highlighted)
		highlighted = slices.Compact(highlighted)
	}

	n := a.Year*12 + a.Month
	previous, next := NoAnchor(), NoAnchor()
	if !b.empty {
		if n-1 >= floorYear*12 && (b.min == nil || n-1 >= b.min.monthIndex()) {
			previous = SomeAnchor(NormalizeAnchor(a.Year, a.Month-1))
		}
		if n+1 <= ceilingYear*12+11 && (b.max == nil || n+1 <= b.max.monthIndex()) {
			next = SomeAnchor(NormalizeAnchor(a.Year, a.Month+1))
		}
	}

	return Sheet{
		Title:              labels.FormatMonthTitle(a.Year, a.Month),
		Previous:           previous,
		Next:               next,
		ColumnCount:        7,
		HighlightedColumns: highlighted,
		ColumnNames:        labels.WeekdayNames(firstDay, true),
		RowNames:           rowNames,
		Items:              items,
	}
}
