package picker

import "github.com/hy4ri/calpick/internal/calendar"

// Cell is a sheet item decorated with its selection state, ready to paint.
type Cell struct {
	calendar.Item

	// Key is empty above the selecting view.
	Key Key

	Selected   bool
	InRange    bool
	RangeStart bool
	RangeEnd   bool

	// BeforeSingleton and AfterSingleton mark cells on either side of the
	// only key of a one-element range.
	BeforeSingleton bool
	AfterSingleton  bool

	ShowCurrent bool

	// Placeholder cells are painted blank.
	Placeholder bool
}

// Cells decorates the items of the current sheet.
func Cells(s State, o Options) []Cell {
	sheet := SheetFor(s, o)
	b := s.Mode.Behavior()
	selecting := s.View == b.InitialView
	isRange := b.SelectType == SelectRange
	first, last := s.Selection.First(), s.Selection.Last()

	cells := make([]Cell, len(sheet.Items))
	for i, it := range sheet.Items {
		c := Cell{
			Item:        it,
			ShowCurrent: it.Current && o.HighlightToday,
			Placeholder: o.DaysAmount == DaysMinimal && it.Type == calendar.ItemDay && it.Adjacent,
		}
		if selecting {
			c.Key = KeyFor(it, b.Unit)
			c.Selected = s.Selection.Has(c.Key) && !it.Disabled
			if isRange && s.Selection.Len() == 2 {
				c.InRange = it.InSelectedRange
				// Seven day cells share a week key, so weeks get no end markers.
				if b.Unit != UnitWeek {
					c.RangeStart = c.Key == first
					c.RangeEnd = c.Key == last
				}
			}
			if isRange && s.Selection.Len() == 1 {
				c.BeforeSingleton = c.Key < first
				c.AfterSingleton = c.Key > first
			}
		}
		cells[i] = c
	}
	return cells
}
