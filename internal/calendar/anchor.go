package calendar

import "fmt"

// Anchor identifies the period a sheet is centered on. Month is zero-based;
// any integer is accepted and normalized against the base-12 month counter.
type Anchor struct {
	Year  int
	Month int
}

// NormalizeAnchor rolls out-of-range months into adjacent years, so
// NormalizeAnchor(2024, 12) is January 2025 and NormalizeAnchor(2024, -1)
// is December 2023.
func NormalizeAnchor(year, month int) Anchor {
	n := year*12 + month
	return Anchor{Year: floorDiv(n, 12), Month: mod(n, 12)}
}

// AnchorOf returns the anchor of the month containing d.
func AnchorOf(d Date) Anchor {
	return Anchor{Year: d.Year, Month: d.Month}
}

func (a Anchor) String() string {
	return fmt.Sprintf("%04d-%02d", a.Year, a.Month+1)
}

// OptionalAnchor is a navigation target that may be absent. An absent target
// means the matching previous/next affordance is disabled.
type OptionalAnchor struct {
	anchor Anchor
	ok     bool
}

// SomeAnchor wraps a present navigation target.
func SomeAnchor(a Anchor) OptionalAnchor {
	return OptionalAnchor{anchor: a, ok: true}
}

// NoAnchor is the absent navigation target.
func NoAnchor() OptionalAnchor {
	return OptionalAnchor{}
}

// Get returns the target and whether it is present.
func (o OptionalAnchor) Get() (Anchor, bool) {
	return o.anchor, o.ok
}

// IsSome reports whether the target is present.
func (o OptionalAnchor) IsSome() bool {
	return o.ok
}

func (o OptionalAnchor) String() string {
	if !o.ok {
		return "none"
	}
	return o.anchor.String()
}
