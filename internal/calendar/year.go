package calendar

// YearOptions are the year-sheet flags.
type YearOptions struct {
	// SelectQuarters shows four quarters instead of twelve months.
	SelectQuarters bool

	// SelectedRange compares months, or quarters with SelectQuarters.
	SelectedRange *Range
}

// YearSheet returns the months (or quarters) of the anchor's year. The
// anchor's month is carried through to the navigation targets.
func YearSheet(c Constraints, anchor Anchor, opts YearOptions) Sheet {
	a := NormalizeAnchor(anchor.Year, anchor.Month)
	year := a.Year
	labels := c.labels()
	b := c.bounds()

	var items []Item
	if !opts.SelectQuarters {
		items = make([]Item, 0, 12)
		for m := 0; m < 12; m++ {
			idx := year*12 + m
			out := !b.monthSpanInRange(idx, idx)
			item := Item{
				Type:        ItemMonth,
				Year:        year,
				Month:       m,
				DisplayName: labels.FormatMonthName(m, true),
				Current:     !c.Today.IsZero() && c.Today.Year == year && c.Today.Month == m,
				Disabled:    out,
				OutOfRange:  out,
			}
			if r := opts.SelectedRange; r != nil {
				item.InSelectedRange, item.IsRangeStart, item.IsRangeEnd =
					rangeFlags(r.Start.monthIndex(), r.End.monthIndex(), idx)
			}
			items = append(items, item)
		}
	} else {
		items = make([]Item, 0, 4)
		for q := 0; q < 4; q++ {
			first := year*12 + q*3
			out := !b.monthSpanInRange(first, first+2)
			item := Item{
				Type:        ItemQuarter,
				Year:        year,
				Month:       q * 3,
				DisplayName: labels.FormatQuarter(q + 1),
				Current:     !c.Today.IsZero() && c.Today.Year == year && c.Today.Month/3 == q,
				Disabled:    out,
				OutOfRange:  out,
			}
			if r := opts.SelectedRange; r != nil {
				item.InSelectedRange, item.IsRangeStart, item.IsRangeEnd =
					rangeFlags(quarterIndex(r.Start), quarterIndex(r.End), year*4+q)
			}
			items = append(items, item)
		}
	}

	previous, next := NoAnchor(), NoAnchor()
	if !b.empty {
		if year-1 >= floorYear && (b.min == nil || year-1 >= b.min.Year) {
			previous = SomeAnchor(Anchor{Year: year - 1, Month: a.Month})
		}
		if year+1 <= ceilingYear && (b.max == nil || year+1 <= b.max.Year) {
			next = SomeAnchor(Anchor{Year: year + 1, Month: a.Month})
		}
	}

	columns := 4
	if opts.SelectQuarters {
		columns = 2
	}

	return Sheet{
		Title:       labels.FormatYear(year),
		Previous:    previous,
		Next:        next,
		ColumnCount: columns,
		Items:       items,
	}
}

func quarterIndex(d Date) int {
	return d.Year*4 + d.Month/3
}
