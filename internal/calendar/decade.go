package calendar

// DecadeOptions are the decade-sheet flags.
type DecadeOptions struct {
	// SelectedRange compares years.
	SelectedRange *Range
}

// DecadeSheet returns the twelve years around the decade containing the
// anchor's year: the ten years of the decade framed by the last year of the
// previous decade and the first year of the next one, both adjacent.
func DecadeSheet(c Constraints, anchor Anchor, opts DecadeOptions) Sheet {
	a := NormalizeAnchor(anchor.Year, anchor.Month)
	labels := c.labels()
	b := c.bounds()
	start := floorDiv(a.Year, 10) * 10

	items := make([]Item, 0, 12)
	for y := start - 1; y <= start+10; y++ {
		out := !b.yearSpanInRange(y, y)
		item := Item{
			Type:        ItemYear,
			Year:        y,
			DisplayName: labels.FormatYear(y),
			Current:     !c.Today.IsZero() && c.Today.Year == y,
			Adjacent:    y == start-1 || y == start+10,
			Disabled:    out,
			OutOfRange:  out,
		}
		if r := opts.SelectedRange; r != nil {
			item.InSelectedRange, item.IsRangeStart, item.IsRangeEnd =
				rangeFlags(r.Start.Year, r.End.Year, y)
		}
		items = append(items, item)
	}

	// The previous decade ends at start-1, the next one begins at start+10.
	previous, next := NoAnchor(), NoAnchor()
	if !b.empty {
		if start-1 >= floorYear && (b.min == nil || start-1 >= b.min.Year) {
			previous = SomeAnchor(Anchor{Year: a.Year - 10, Month: a.Month})
		}
		if start+10 <= ceilingYear && (b.max == nil || start+10 <= b.max.Year) {
			next = SomeAnchor(Anchor{Year: a.Year + 10, Month: a.Month})
		}
	}

	return Sheet{
		Title:       labels.FormatYearSpan(start, 10),
		Previous:    previous,
		Next:        next,
		ColumnCount: 4,
		Items:       items,
	}
}

// CenturySheet returns twelve decade buckets around the century containing
// the anchor's year: its ten decades framed by one adjacent decade on each
// side.
func CenturySheet(c Constraints, anchor Anchor) Sheet {
	a := NormalizeAnchor(anchor.Year, anchor.Month)
	labels := c.labels()
	b := c.bounds()
	start := floorDiv(a.Year, 100) * 100

	items := make([]Item, 0, 12)
	for i := 0; i < 12; i++ {
		y := start - 10 + i*10
		out := !b.yearSpanInRange(y, y+9)
		items = append(items, Item{
			Type:        ItemDecade,
			Year:        y,
			DisplayName: labels.FormatYearSpan(y, 10),
			Current:     !c.Today.IsZero() && c.Today.Year >= y && c.Today.Year <= y+9,
			Adjacent:    i == 0 || i == 11,
			Disabled:    out,
			OutOfRange:  out,
		})
	}

	previous, next := NoAnchor(), NoAnchor()
	if !b.empty {
		if start-1 >= floorYear && (b.min == nil || start-1 >= b.min.Year) {
			previous = SomeAnchor(Anchor{Year: a.Year - 100, Month: a.Month})
		}
		if start+100 <= ceilingYear && (b.max == nil || start+100 <= b.max.Year) {
			next = SomeAnchor(Anchor{Year: a.Year + 100, Month: a.Month})
		}
	}

	return Sheet{
		Title:       labels.FormatYearSpan(start, 100),
		Previous:    previous,
		Next:        next,
		ColumnCount: 4,
		Items:       items,
	}
}
