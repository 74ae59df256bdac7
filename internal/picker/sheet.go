package picker

import (
	"fmt"

	"github.com/hy4ri/calpick/internal/calendar"
)

// SheetFor materializes the sheet of the current calendar view. Time views
// have no sheet and yield the zero Sheet. An undefined view panics.
func SheetFor(s State, o Options) calendar.Sheet {
	b := s.Mode.Behavior()
	c := o.constraints()

	var r *calendar.Range
	if s.View == b.InitialView {
		r = selectedRange(s.Selection, b)
	}

	switch s.View {
	case ViewMonth:
		return calendar.MonthSheet(c, s.Anchor, calendar.MonthOptions{
			Maximal:           o.DaysAmount == DaysMaximal,
			ShowWeekNumbers:   o.ShowWeekNumbers,
			HighlightWeekends: o.HighlightWeekends,
			DisableWeekends:   o.DisableWeekends,
			SelectWeeks:       b.Unit == UnitWeek,
			SelectedRange:     r,
		})
	case ViewYear:
		return calendar.YearSheet(c, s.Anchor, calendar.YearOptions{
			SelectQuarters: b.Unit == UnitQuarter,
			SelectedRange:  r,
		})
	case ViewDecade:
		return calendar.DecadeSheet(c, s.Anchor, calendar.DecadeOptions{SelectedRange: r})
	case ViewCentury:
		return calendar.CenturySheet(c, s.Anchor)
	case ViewTime1, ViewTime2:
		return calendar.Sheet{}
	}
	panic(fmt.Sprintf("picker: undefined view %d", int(s.View)))
}

// selectedRange spans a two-key range selection from the first day of the
// smaller key to the last day of the larger one.
func selectedRange(sel Selection, b Behavior) *calendar.Range {
	if b.SelectType != SelectRange || sel.Len() != 2 {
		return nil
	}
	first, ok1 := ParseKey(string(sel.First()))
	last, ok2 := ParseKey(string(sel.Last()))
	if !ok1 || !ok2 {
		return nil
	}
	start, _ := first.Span()
	_, end := last.Span()
	return &calendar.Range{Start: start, End: end}
}
