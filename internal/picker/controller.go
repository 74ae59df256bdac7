package picker

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/hy4ri/calpick/internal/calendar"
)

// Hooks are the host callbacks. Either may be nil.
type Hooks struct {
	// RequestUpdate is called after every state mutation. The host schedules
	// the repaint.
	RequestUpdate func()

	// OnChange is called after the encoded value changed.
	OnChange func()
}

// Controller owns one picker's state. It is not safe for concurrent use.
type Controller struct {
	id    string
	state State
	opts  Options
	hooks Hooks
	log   *slog.Logger
}

// New returns a controller in the initial state of mode. A zero
// opts.Today is replaced with the current local day.
func New(mode SelectionMode, opts Options, hooks Hooks) *Controller {
	if opts.Today.IsZero() {
		opts.Today = calendar.Today()
	}
	id := uuid.NewString()
	c := &Controller{
		id:    id,
		state: NewState(mode, opts.Today),
		opts:  opts,
		hooks: hooks,
		log:   slog.Default().With("picker", id),
	}
	c.log.Debug("picker created", "mode", mode.String(), "view", c.state.View.String())
	return c
}

// ID distinguishes controllers in logs.
func (c *Controller) ID() string { return c.id }

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	s.Selection = NewSelection(s.Selection...)
	return s
}

func (c *Controller) Options() Options { return c.opts }

// Dispatch applies ev and fires the hooks.
func (c *Controller) Dispatch(ev Event) {
	next, eff := Reduce(c.state, ev, c.opts)
	mutated := !next.Equal(c.state)
	c.state = next

	if mutated {
		c.log.Debug("picker event",
			"event", eventName(ev),
			"view", next.View.String(),
			"anchor", next.Anchor.String(),
			"value", Encode(next),
		)
		if c.hooks.RequestUpdate != nil {
			c.hooks.RequestUpdate()
		}
	}
	if eff.Changed && c.hooks.OnChange != nil {
		c.hooks.OnChange()
	}
}

// Value returns the wire value.
func (c *Controller) Value() string { return Encode(c.state) }

// SetValue replaces the value with a wire string. Malformed tokens are
// dropped.
func (c *Controller) SetValue(v string) { c.Dispatch(ValueSet{Value: v}) }

// SetMode switches the selection mode, resetting selection, view and times.
func (c *Controller) SetMode(m SelectionMode) { c.Dispatch(ModeChanged{Mode: m}) }

// ResetView returns to the initial view of the mode.
func (c *Controller) ResetView() { c.Dispatch(ViewReset{}) }

// SetOptions replaces the options. The state is kept.
func (c *Controller) SetOptions(o Options) {
	if o.Today.IsZero() {
		o.Today = c.opts.Today
	}
	c.opts = o
	if c.hooks.RequestUpdate != nil {
		c.hooks.RequestUpdate()
	}
}

// Sheet returns the sheet of the current view.
func (c *Controller) Sheet() calendar.Sheet { return SheetFor(c.state, c.opts) }

// Cells returns the decorated items of the current sheet.
func (c *Controller) Cells() []Cell { return Cells(c.state, c.opts) }

// TitleEnabled reports whether the title drills up.
func (c *Controller) TitleEnabled() bool { return CanDrillUp(c.state, c.opts) }

func eventName(ev Event) string {
	switch ev.(type) {
	case CellActivated:
		return "cell"
	case TitleActivated:
		return "title"
	case PreviousActivated:
		return "previous"
	case NextActivated:
		return "next"
	case TimeViewRequested:
		return "time-view"
	case CalendarViewRequested:
		return "calendar-view"
	case HoursSet:
		return "hours"
	case MinutesSet:
		return "minutes"
	case ModeChanged:
		return "mode"
	case ValueSet:
		return "value"
	case TodayRequested:
		return "today"
	case ViewReset:
		return "reset"
	}
	return "unknown"
}
